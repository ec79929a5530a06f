package wait

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/ydb-platform/ydb-go-backoff/internal/xerrors"
)

// Wait blocks for d on clock or until ctx is done.
// It returns non-nil error if and only if ctx expiration branch wins.
func Wait(ctx context.Context, clock clockwork.Clock, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return xerrors.WithStackTrace(err)
	}
	if d <= 0 {
		return nil
	}

	t := clock.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.Chan():
		return nil
	case <-ctx.Done():
		return xerrors.WithStackTrace(ctx.Err())
	}
}
