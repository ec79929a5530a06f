package retry

import (
	"context"
	"iter"
	"time"

	"github.com/google/uuid"

	"github.com/ydb-platform/ydb-go-backoff/internal/wait"
	"github.com/ydb-platform/ydb-go-backoff/internal/xerrors"
	"github.com/ydb-platform/ydb-go-backoff/trace"
)

// Backoff returns a sequence which forwards values of upstream and transparently
// re-subscribes to upstream after failures, waiting an exponential backoff with jitter.
//
// Each ranging over the returned sequence is a fresh run with own counters.
// A failure of upstream is retried while the attempt counter is less than max attempts
// and the retryable predicate (if any) accepts it. Otherwise retriesExhausted is called
// once and the failure is yielded unchanged as the last element.
// A budget (if any) is acquired after beforeRetry, right before the wait; a denial
// also ends the sequence through retriesExhausted.
//
// Cancellation of ctx stops the sequence promptly with the context error as the
// last element. Consumer's break stops it without re-subscription and without hooks.
//
// Invalid policy options are yielded as a single error without subscription.
func Backoff[T any](
	ctx context.Context, upstream iter.Seq2[T, error], minDelay time.Duration, opts ...Option,
) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		ctx := ctx

		var zero T

		o, err := newOptions(minDelay, opts...)
		if err != nil {
			yield(zero, err)

			return
		}

		var (
			id = o.id
			b  = o.backoff()
			s  state
		)
		if id == "" {
			id = uuid.NewString()
		}

		for {
			if err := ctx.Err(); err != nil {
				yield(zero, xerrors.WithStackTrace(err))

				return
			}

			trace.RetryOnSubscribe(o.trace, &ctx, id, s.total)

			var (
				cause   error
				stopped bool
			)
			for v, err := range upstream {
				if err != nil {
					cause = err

					break
				}
				if !yield(v, nil) {
					stopped = true

					break
				}
				s = s.succeeded(o.policy.transient)
			}

			switch {
			case stopped, cause == nil:
				return
			case ctx.Err() != nil:
				yield(zero, xerrors.WithStackTrace(ctx.Err()))

				return
			}

			attempt := s.attempt(o.policy.transient)
			if attempt >= o.policy.maxAttempts || !o.isRetryable(cause) {
				o.exhausted(ctx, id, cause, s)
				yield(zero, cause)

				return
			}

			if o.beforeRetry != nil {
				o.beforeRetry(cause, s.current, s.total)
			}

			delay := b.Delay(attempt)
			trace.RetryOnBeforeRetry(o.trace, &ctx, id, cause, s.current, s.total, delay, s.elapsed)

			// budget is taken as a part of the suspension, after the retry is announced
			if o.budget != nil {
				if err := o.budget.Acquire(ctx); err != nil {
					if ctx.Err() != nil {
						yield(zero, xerrors.WithStackTrace(ctx.Err()))
					} else {
						o.exhausted(ctx, id, cause, s)
						yield(zero, cause)
					}

					return
				}
			}

			if err := wait.Wait(ctx, o.clock, delay); err != nil {
				yield(zero, err)

				return
			}

			s = s.failed(delay)
		}
	}
}

func (o *options) isRetryable(err error) bool {
	if o.retryable == nil {
		return true
	}

	return o.retryable(err)
}

func (o *options) exhausted(ctx context.Context, id string, cause error, s state) {
	if o.retriesExhausted != nil {
		o.retriesExhausted(cause)
	}
	trace.RetryOnRetriesExhausted(o.trace, &ctx, id, cause, s.total+1, s.elapsed)
}
