package budget

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/ydb-platform/ydb-go-backoff/internal/xerrors"
	"github.com/ydb-platform/ydb-go-backoff/internal/xrand"
)

type (
	// Budget bounds how many retries the operators sharing it may perform.
	Budget interface {
		// Acquire is called before every retry. A non-nil error denies the retry
		// unless it is a context error, which means cancellation.
		Acquire(ctx context.Context) error
	}
	limited struct {
		clock     clockwork.Clock
		ticker    clockwork.Ticker
		quota     chan struct{}
		done      chan struct{}
		stopOnce  sync.Once
		nonBlock  bool
		loopState sync.WaitGroup
	}
	limitedOption func(q *limited)
	percent       struct {
		percent int
		rand    xrand.Rand
	}
	percentOption func(b *percent)
)

func withLimitedClock(clock clockwork.Clock) limitedOption {
	return func(q *limited) {
		q.clock = clock
	}
}

// WithNonBlocking makes Acquire deny with ErrNoQuota instead of waiting for the next token
func WithNonBlocking() limitedOption {
	return func(q *limited) {
		q.nonBlock = true
	}
}

// Limited returns a token bucket of attemptsPerSecond tokens refilled one by one.
// Non-positive attemptsPerSecond means no limit.
// Stop must be called to release the refill goroutine.
func Limited(attemptsPerSecond int, opts ...limitedOption) *limited {
	q := &limited{
		clock: clockwork.NewRealClock(),
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(q)
		}
	}
	if attemptsPerSecond <= 0 {
		q.quota = make(chan struct{})
		close(q.quota)

		return q
	}

	q.quota = make(chan struct{}, attemptsPerSecond)
	for range attemptsPerSecond {
		q.quota <- struct{}{}
	}
	q.ticker = q.clock.NewTicker(time.Second / time.Duration(attemptsPerSecond))
	q.loopState.Add(1)
	go q.refill()

	return q
}

func (q *limited) refill() {
	defer q.loopState.Done()
	for {
		select {
		case <-q.ticker.Chan():
			select {
			case q.quota <- struct{}{}:
			case <-q.done:
				return
			default:
				// bucket is full
			}
		case <-q.done:
			return
		}
	}
}

// Stop releases the budget. Acquire on a stopped budget denies every retry.
func (q *limited) Stop() {
	q.stopOnce.Do(func() {
		if q.ticker != nil {
			q.ticker.Stop()
		}
		close(q.done)
		q.loopState.Wait()
	})
}

func (q *limited) Acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return xerrors.WithStackTrace(err)
	}
	select {
	case <-q.done:
		return xerrors.WithStackTrace(errClosedBudget)
	default:
	}
	if q.nonBlock {
		select {
		case <-q.quota:
			return nil
		default:
			return xerrors.WithStackTrace(ErrNoQuota)
		}
	}
	select {
	case <-q.done:
		return xerrors.WithStackTrace(errClosedBudget)
	case <-q.quota:
		return nil
	case <-ctx.Done():
		return xerrors.WithStackTrace(ctx.Err())
	}
}

func withPercentRand(r xrand.Rand) percentOption {
	return func(b *percent) {
		b.rand = r
	}
}

// Percent allows the given percent of retries chosen at random.
func Percent(p int, opts ...percentOption) *percent {
	if p > 100 || p < 0 {
		panic(fmt.Sprintf("wrong percent value: %d", p))
	}

	b := &percent{
		percent: p,
		rand:    xrand.New(xrand.WithLock()),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}

	return b
}

func (b *percent) Acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return xerrors.WithStackTrace(err)
	}
	if b.rand.Int(100) < b.percent { //nolint:gomnd
		return nil
	}

	return xerrors.WithStackTrace(ErrNoQuota)
}
