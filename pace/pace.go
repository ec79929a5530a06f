// Package pace throttles a sequence to at most one value per period.
package pace

import (
	"context"
	"iter"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"

	"github.com/ydb-platform/ydb-go-backoff/internal/wait"
	"github.com/ydb-platform/ydb-go-backoff/trace"
)

type options struct {
	clock clockwork.Clock
	trace *trace.Pace
}

type Option func(o *options)

func WithClock(clock clockwork.Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithTrace appends trace hooks. Multiple traces are composed.
func WithTrace(t trace.Pace) Option {
	return func(o *options) {
		o.trace = o.trace.Compose(&t)
	}
}

// Pace re-emits values of upstream no faster than one per period.
// The period is measured from the moment the consumer is done with the previous
// value, so time spent downstream counts towards it. A value which arrives after
// a long enough gap passes immediately, otherwise it is held back for the rest
// of the period. Failures pass through unpaced and unchanged.
// Non-positive period disables pacing.
func Pace[T any](ctx context.Context, upstream iter.Seq2[T, error], period time.Duration, opts ...Option) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		ctx := ctx

		o := options{
			clock: clockwork.NewRealClock(),
			trace: &trace.Pace{},
		}
		for _, opt := range opts {
			if opt != nil {
				opt(&o)
			}
		}

		var lim *rate.Limiter
		if period > 0 {
			lim = rate.NewLimiter(rate.Every(period), 1)
		}

		for v, err := range upstream {
			if err != nil {
				if !yield(v, err) {
					return
				}

				continue
			}

			if lim != nil {
				if delay := holdFor(lim, o.clock.Now()); delay > 0 {
					trace.PaceOnWait(o.trace, &ctx, period, delay)
					if err := wait.Wait(ctx, o.clock, delay); err != nil {
						var zero T
						yield(zero, err)

						return
					}
				}
			}

			if !yield(v, nil) {
				return
			}

			if lim != nil {
				lim.ReserveN(o.clock.Now(), 1)
			}
		}
	}
}

// holdFor returns time left until lim has a whole token at now
func holdFor(lim *rate.Limiter, now time.Time) time.Duration {
	missing := 1 - lim.TokensAt(now)
	if missing <= 0 {
		return 0
	}

	return time.Duration(float64(time.Second) * missing / float64(lim.Limit()))
}
