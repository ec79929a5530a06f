package log

import (
	"github.com/ydb-platform/ydb-go-backoff/trace"
)

// Pace returns trace.Pace with logging events from details
func Pace(l Logger, d trace.Detailer) (t trace.Pace) {
	t.OnWait = func(info trace.PaceWaitInfo) {
		if d.Details()&trace.PaceEvents == 0 {
			return
		}
		ctx := with(*info.Context, TRACE, "backoff", "pace")
		l.Log(ctx, "hold value",
			Duration("period", info.Period),
			Duration("delay", info.Delay),
		)
	}

	return t
}
