package retry

import (
	"context"
	"testing"
	"time"

	"github.com/rekby/fixenv"
	"github.com/rekby/fixenv/sf"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ydb-platform/ydb-go-backoff/internal/xtest"
)

func TestDo(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		e := fixenv.New(t)
		j := Journal(e)
		calls := 0
		v, err := Do(sf.Context(e), func(ctx context.Context) (int, error) {
			calls++
			if calls < 3 {
				return 0, testError("not yet")
			}

			return calls, nil
		}, time.Second, j.options(WithJitterFactor(0))...)
		require.NoError(t, err)
		require.Equal(t, 3, v)
		require.Equal(t, millis(0, 1000), j.times())
	})
	t.Run("Exhausted", func(t *testing.T) {
		e := fixenv.New(t)
		j := Journal(e)
		v, err := Do(sf.Context(e), func(ctx context.Context) (string, error) {
			return "partial", testError("broken")
		}, time.Second, j.options(WithMaxAttempts(2))...)
		require.Equal(t, testError("broken"), err)
		require.Empty(t, v)
		require.Len(t, j.retries, 2)
		require.Len(t, j.exhausted, 1)
	})
	t.Run("Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(xtest.Context(t))
		cancel()
		_, err := Do(ctx, func(ctx context.Context) (int, error) {
			return 1, nil
		}, time.Second)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestDoConcurrent(t *testing.T) {
	ctx := xtest.Context(t)
	g, ctx := errgroup.WithContext(ctx)
	results := make([]int, 16)
	for i := range results {
		g.Go(func() error {
			calls := 0
			v, err := Do(ctx, func(ctx context.Context) (int, error) {
				calls++
				if calls <= i%4 {
					return 0, testError("flaky")
				}

				return i, nil
			}, time.Millisecond, WithMaxDelay(2*time.Millisecond), WithSeed(int64(i)))
			results[i] = v

			return err
		})
	}
	require.NoError(t, g.Wait())
	for i, v := range results {
		require.Equal(t, i, v)
	}
}
