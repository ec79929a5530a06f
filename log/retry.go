package log

import (
	"github.com/ydb-platform/ydb-go-backoff/trace"
)

// Retry returns trace.Retry with logging events from details
func Retry(l Logger, d trace.Detailer) (t trace.Retry) {
	t.OnSubscribe = func(info trace.RetrySubscribeInfo) {
		if d.Details()&trace.RetrySubscribeEvents == 0 {
			return
		}
		ctx := with(*info.Context, TRACE, "backoff", "retry", "subscribe")
		l.Log(ctx, "subscribe",
			String("id", info.ID),
			Int("totalAttempt", info.TotalAttempt),
		)
	}
	t.OnBeforeRetry = func(info trace.RetryBeforeRetryInfo) {
		if d.Details()&trace.RetryAttemptEvents == 0 {
			return
		}
		ctx := with(*info.Context, WARN, "backoff", "retry", "attempt")
		l.Log(ctx, "attempt failed, retrying",
			Error(info.Cause),
			String("id", info.ID),
			Int("currentAttempt", info.CurrentAttempt),
			Int("totalAttempt", info.TotalAttempt),
			Duration("delay", info.Delay),
			Duration("elapsed", info.Elapsed),
		)
	}
	t.OnRetriesExhausted = func(info trace.RetryExhaustedInfo) {
		if d.Details()&trace.RetryExhaustedEvents == 0 {
			return
		}
		ctx := with(*info.Context, ERROR, "backoff", "retry", "exhausted")
		l.Log(ctx, "retries exhausted",
			Error(info.Cause),
			String("id", info.ID),
			Int("attempts", info.Attempts),
			Duration("elapsed", info.Elapsed),
		)
	}

	return t
}
