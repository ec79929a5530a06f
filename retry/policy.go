package retry

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/ydb-platform/ydb-go-backoff/internal/backoff"
	"github.com/ydb-platform/ydb-go-backoff/internal/xerrors"
	"github.com/ydb-platform/ydb-go-backoff/internal/xrand"
	"github.com/ydb-platform/ydb-go-backoff/retry/budget"
	"github.com/ydb-platform/ydb-go-backoff/trace"
)

const (
	// Infinite is a max delay without cap
	Infinite = backoff.Infinite

	// Unbounded is a max attempts value which never exhausts
	Unbounded = math.MaxInt
)

// ErrInvalidPolicy is matched by every policy validation error
var ErrInvalidPolicy = errors.New("invalid retry policy")

// Policy describes how failures of a sequence are retried.
// Policy is immutable once constructed.
type Policy struct {
	minDelay     time.Duration
	maxDelay     time.Duration
	factor       float64
	maxAttempts  int
	transient    bool
	jitterFactor float64
}

func (p Policy) MinDelay() time.Duration { return p.minDelay }

func (p Policy) MaxDelay() time.Duration { return p.maxDelay }

func (p Policy) BackoffFactor() float64 { return p.factor }

func (p Policy) MaxAttempts() int { return p.maxAttempts }

func (p Policy) Transient() bool { return p.transient }

func (p Policy) JitterFactor() float64 { return p.jitterFactor }

func (p Policy) validate() error {
	return xerrors.Join(
		xerrors.ErrIf(p.minDelay < 0,
			fmt.Errorf("%w: min delay %v is negative", ErrInvalidPolicy, p.minDelay),
		),
		xerrors.ErrIf(p.maxDelay < p.minDelay,
			fmt.Errorf("%w: max delay %v is less than min delay %v", ErrInvalidPolicy, p.maxDelay, p.minDelay),
		),
		xerrors.ErrIf(math.IsNaN(p.factor) || p.factor < 1,
			fmt.Errorf("%w: backoff factor %v is less than 1", ErrInvalidPolicy, p.factor),
		),
		xerrors.ErrIf(p.maxAttempts < 1,
			fmt.Errorf("%w: max attempts %d is less than 1", ErrInvalidPolicy, p.maxAttempts),
		),
		xerrors.ErrIf(math.IsNaN(p.jitterFactor) || p.jitterFactor < 0 || p.jitterFactor >= 1,
			fmt.Errorf("%w: jitter factor %v is out of [0, 1)", ErrInvalidPolicy, p.jitterFactor),
		),
	)
}

type options struct {
	policy Policy

	rand  xrand.Rand
	clock clockwork.Clock

	beforeRetry      func(cause error, currentAttempt, totalAttempt int)
	retriesExhausted func(cause error)
	trace            *trace.Retry
	id               string
	retryable        func(err error) bool
	budget           budget.Budget
}

// Option configures the retry operator
type Option func(o *options)

// WithMaxDelay caps every computed delay, jitter included
func WithMaxDelay(maxDelay time.Duration) Option {
	return func(o *options) {
		o.policy.maxDelay = maxDelay
	}
}

// WithBackoffFactor sets multiplier applied per consecutive failure
func WithBackoffFactor(factor float64) Option {
	return func(o *options) {
		o.policy.factor = factor
	}
}

// WithMaxAttempts sets the attempt counter value at which retries stop
func WithMaxAttempts(maxAttempts int) Option {
	return func(o *options) {
		o.policy.maxAttempts = maxAttempts
	}
}

// WithTransient selects counting mode.
// In transient mode every produced value resets the consecutive failures counter.
func WithTransient(transient bool) Option {
	return func(o *options) {
		o.policy.transient = transient
	}
}

func WithJitterFactor(jitterFactor float64) Option {
	return func(o *options) {
		o.policy.jitterFactor = jitterFactor
	}
}

// WithRand replaces the shared random source of jitter
func WithRand(r xrand.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

// WithSeed makes jitter reproducible with own random source
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rand = xrand.New(xrand.WithLock(), xrand.WithSeed(seed))
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithBeforeRetry sets callback which called before every wait-and-retry
// with the counts of failures happened so far
func WithBeforeRetry(beforeRetry func(cause error, currentAttempt, totalAttempt int)) Option {
	return func(o *options) {
		o.beforeRetry = beforeRetry
	}
}

// WithRetriesExhausted sets callback which called once with the terminal failure
func WithRetriesExhausted(retriesExhausted func(cause error)) Option {
	return func(o *options) {
		o.retriesExhausted = retriesExhausted
	}
}

// WithTrace appends trace hooks. Multiple traces are composed.
func WithTrace(t trace.Retry) Option {
	return func(o *options) {
		o.trace = o.trace.Compose(&t)
	}
}

// WithID applies id for identification of operator in trace events
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

// WithRetryable sets predicate which reports whether failure must be retried.
// Non-retryable failure exhausts retries immediately.
func WithRetryable(retryable func(err error) bool) Option {
	return func(o *options) {
		o.retryable = retryable
	}
}

// WithBudget limits retries with external budget shared between operators
func WithBudget(b budget.Budget) Option {
	return func(o *options) {
		o.budget = b
	}
}

// NewPolicy builds and validates policy with the same options as Backoff.
// Options which are not a part of policy are ignored.
func NewPolicy(minDelay time.Duration, opts ...Option) (Policy, error) {
	o, err := newOptions(minDelay, opts...)
	if err != nil {
		return Policy{}, err
	}

	return o.policy, nil
}

func newOptions(minDelay time.Duration, opts ...Option) (*options, error) {
	o := &options{
		policy: Policy{
			minDelay:     minDelay,
			maxDelay:     Infinite,
			factor:       backoff.DefaultFactor,
			maxAttempts:  Unbounded,
			transient:    true,
			jitterFactor: backoff.DefaultJitterFactor,
		},
		clock: clockwork.NewRealClock(),
		trace: &trace.Retry{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if err := o.policy.validate(); err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return o, nil
}

func (o *options) backoff() backoff.Exponential {
	return backoff.New(
		backoff.WithMinDelay(o.policy.minDelay),
		backoff.WithMaxDelay(o.policy.maxDelay),
		backoff.WithFactor(o.policy.factor),
		backoff.WithJitterFactor(o.policy.jitterFactor),
		backoff.WithRand(o.rand),
	)
}
