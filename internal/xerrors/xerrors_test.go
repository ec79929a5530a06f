package xerrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackTraceError(t *testing.T) {
	for _, test := range []struct {
		error error
		text  string
	}{
		{
			error: WithStackTrace(fmt.Errorf("fmt.Errorf")),
			//nolint:lll
			text: "fmt.Errorf at `github.com/ydb-platform/ydb-go-backoff/internal/xerrors.TestStackTraceError(xerrors_test.go:19)`",
		},
		{
			error: WithStackTrace(fmt.Errorf("fmt.Errorf %s", "Printf")),
			//nolint:lll
			text: "fmt.Errorf Printf at `github.com/ydb-platform/ydb-go-backoff/internal/xerrors.TestStackTraceError(xerrors_test.go:24)`",
		},
		{
			error: WithStackTrace(
				WithStackTrace(errors.New("errors.New")),
			),
			//nolint:lll
			text: "errors.New at `github.com/ydb-platform/ydb-go-backoff/internal/xerrors.TestStackTraceError(xerrors_test.go:30)` at `github.com/ydb-platform/ydb-go-backoff/internal/xerrors.TestStackTraceError(xerrors_test.go:29)`",
		},
	} {
		t.Run(test.text, func(t *testing.T) {
			require.Equal(t, test.text, test.error.Error())
		})
	}
}

func TestWithStackTraceNil(t *testing.T) {
	require.NoError(t, WithStackTrace(nil))
}

func TestWithStackTraceUnwrap(t *testing.T) {
	err := WithStackTrace(context.Canceled)
	require.ErrorIs(t, err, context.Canceled)
	require.True(t, IsContextError(err))
	require.False(t, IsContextError(io.EOF))
}

func TestJoin(t *testing.T) {
	require.NoError(t, Join(nil, nil))

	err := Join(io.EOF, nil, context.DeadlineExceeded)
	require.Equal(t, `["EOF","context deadline exceeded"]`, err.Error())
	require.ErrorIs(t, err, io.EOF)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.NotErrorIs(t, err, context.Canceled)

	var target *stackError
	require.ErrorAs(t, Join(errors.New("plain"), WithStackTrace(io.EOF)), &target)
}

func TestErrIf(t *testing.T) {
	require.NoError(t, ErrIf(false, io.EOF))
	require.ErrorIs(t, ErrIf(true, io.EOF), io.EOF)
}

func TestIsContextErrorDeadline(t *testing.T) {
	require.True(t, IsContextError(Join(io.EOF, WithStackTrace(context.DeadlineExceeded))))
}
