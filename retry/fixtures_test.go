package retry

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rekby/fixenv"
	"github.com/rekby/fixenv/sf"

	"github.com/ydb-platform/ydb-go-backoff/trace"
)

type testError string

func (e testError) Error() string {
	return string(e)
}

func FakeClock(e fixenv.Env) *clockwork.FakeClock {
	f := func() (*fixenv.GenericResult[*clockwork.FakeClock], error) {
		return fixenv.NewGenericResult(clockwork.NewFakeClock()), nil
	}

	return fixenv.CacheResult(e, f)
}

// virtualTime advances FakeClock by every delay the operator is going to wait
type virtualTime struct {
	clock  *clockwork.FakeClock
	start  time.Time
	delays chan time.Duration
	done   chan struct{}
}

func VirtualTime(e fixenv.Env) *virtualTime {
	f := func() (*fixenv.GenericResult[*virtualTime], error) {
		clock := FakeClock(e)
		vt := &virtualTime{
			clock:  clock,
			start:  clock.Now(),
			delays: make(chan time.Duration),
			done:   make(chan struct{}),
		}
		// a retry can be announced without a wait when the budget denies it
		ctx, cancel := context.WithCancel(sf.Context(e))
		go vt.drive(ctx)

		return fixenv.NewGenericResultWithCleanup(vt, func() {
			cancel()
			<-vt.done
		}), nil
	}

	return fixenv.CacheResult(e, f)
}

func (vt *virtualTime) drive(ctx context.Context) {
	defer close(vt.done)
	for {
		select {
		case d := <-vt.delays:
			if d <= 0 {
				continue
			}
			if err := vt.clock.BlockUntilContext(ctx, 1); err != nil {
				return
			}
			vt.clock.Advance(d)
		case <-ctx.Done():
			return
		}
	}
}

func (vt *virtualTime) options(opts ...Option) []Option {
	return append([]Option{
		WithClock(vt.clock),
		WithTrace(trace.Retry{
			OnBeforeRetry: func(info trace.RetryBeforeRetryInfo) {
				select {
				case vt.delays <- info.Delay:
				case <-vt.done:
				}
			},
		}),
	}, opts...)
}

func (vt *virtualTime) now() time.Duration {
	return vt.clock.Since(vt.start)
}

// journal records hook invocations with virtual time
type journal struct {
	vt        *virtualTime
	retries   []retryCall
	exhausted []exhaustedCall
}

type retryCall struct {
	cause   error
	current int
	total   int
	at      time.Duration
}

type exhaustedCall struct {
	cause error
	at    time.Duration
}

func Journal(e fixenv.Env) *journal {
	f := func() (*fixenv.GenericResult[*journal], error) {
		return fixenv.NewGenericResult(&journal{vt: VirtualTime(e)}), nil
	}

	return fixenv.CacheResult(e, f)
}

func (j *journal) options(opts ...Option) []Option {
	return j.vt.options(append([]Option{
		WithBeforeRetry(func(cause error, currentAttempt, totalAttempt int) {
			j.retries = append(j.retries, retryCall{
				cause:   cause,
				current: currentAttempt,
				total:   totalAttempt,
				at:      j.vt.now(),
			})
		}),
		WithRetriesExhausted(func(cause error) {
			j.exhausted = append(j.exhausted, exhaustedCall{
				cause: cause,
				at:    j.vt.now(),
			})
		}),
	}, opts...)...)
}

func (j *journal) times() (times []time.Duration) {
	for _, c := range j.retries {
		times = append(times, c.at)
	}

	return times
}

func millis(ms ...int) (times []time.Duration) {
	for _, m := range ms {
		times = append(times, time.Duration(m)*time.Millisecond)
	}

	return times
}

// failingThen fails the first n subscriptions with Error1..ErrorN and then yields value
func failingThen[T any](n int, value T) (upstream iter.Seq2[T, error], subscriptions *int) {
	subscriptions = new(int)

	return func(yield func(T, error) bool) {
		*subscriptions++
		if *subscriptions <= n {
			var zero T
			yield(zero, testError(fmt.Sprintf("Error%d", *subscriptions)))

			return
		}
		yield(value, nil)
	}, subscriptions
}

// failingForever fails every subscription with Error1, Error2, ...
func failingForever() iter.Seq2[string, error] {
	upstream, _ := failingThen(int(^uint(0)>>1), "")

	return upstream
}

// everyFourth emits Result<k> for every fourth call k and fails other calls with Call<k>,
// keeping the call counter across subscriptions
func everyFourth() iter.Seq2[string, error] {
	var attempt int

	return func(yield func(string, error) bool) {
		for {
			attempt++
			if attempt%4 != 0 {
				yield("", testError(fmt.Sprintf("Call%d", attempt)))

				return
			}
			if !yield(fmt.Sprintf("Result%d", attempt), nil) {
				return
			}
		}
	}
}

// take collects at most n values of seq and the terminal error if any
func take[T any](seq iter.Seq2[T, error], n int) (values []T, err error) {
	if n <= 0 {
		return nil, nil
	}
	for v, err := range seq {
		if err != nil {
			return values, err
		}
		values = append(values, v)
		if len(values) == n {
			break
		}
	}

	return values, nil
}
