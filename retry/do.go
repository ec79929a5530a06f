package retry

import (
	"context"
	"errors"
	"time"

	"github.com/ydb-platform/ydb-go-backoff/internal/xerrors"
)

var errNoValue = errors.New("operation produced no value")

// Do retries op with Backoff until it returns a value or the policy gives up.
func Do[T any](
	ctx context.Context, op func(ctx context.Context) (T, error), minDelay time.Duration, opts ...Option,
) (T, error) {
	upstream := func(yield func(T, error) bool) {
		yield(op(ctx))
	}
	for v, err := range Backoff(ctx, upstream, minDelay, opts...) {
		return v, err
	}

	var zero T

	return zero, xerrors.WithStackTrace(errNoValue)
}
