package backoff

import (
	"math"
	"time"

	"github.com/ydb-platform/ydb-go-backoff/internal/xrand"
)

//go:generate mockgen -destination rand_mock_test.go -package backoff -write_package_comment=false github.com/ydb-platform/ydb-go-backoff/internal/xrand Rand

// Backoff is the interface that contains logic of delaying operation retry.
type Backoff interface {
	// Delay returns mapping of i to Delay.
	Delay(i int) time.Duration
}

// Infinite is a max delay which means "no cap"
const Infinite = time.Duration(math.MaxInt64)

// Default parameters of exponential backoff.
const (
	DefaultFactor       = 2.0
	DefaultJitterFactor = 0.1
)

// defaultRand is shared by every backoff without own random source
var defaultRand = xrand.New(xrand.WithLock())

var _ Backoff = Exponential{}

// Exponential contains exponential Backoff policy with symmetric jitter.
type Exponential struct {
	// minDelay is a delay before the first retry.
	minDelay time.Duration

	// maxDelay caps the computed delay, before and after jitter.
	maxDelay time.Duration

	// factor is a multiplier applied per consecutive failure.
	factor float64

	// jitterFactor controls random portion of Backoff Delay.
	// Its value must be in range [0, 1).
	// The Backoff Delay D is perturbed by a uniformly random amount
	// from [-jitterFactor*D, +jitterFactor*D).
	jitterFactor float64

	// generator of jitter
	r xrand.Rand
}

type option func(b *Exponential)

func WithMinDelay(minDelay time.Duration) option {
	return func(b *Exponential) {
		b.minDelay = minDelay
	}
}

func WithMaxDelay(maxDelay time.Duration) option {
	return func(b *Exponential) {
		b.maxDelay = maxDelay
	}
}

func WithFactor(factor float64) option {
	return func(b *Exponential) {
		b.factor = factor
	}
}

func WithJitterFactor(jitterFactor float64) option {
	return func(b *Exponential) {
		b.jitterFactor = jitterFactor
	}
}

func WithRand(r xrand.Rand) option {
	return func(b *Exponential) {
		if r != nil {
			b.r = r
		}
	}
}

func WithSeed(seed int64) option {
	return func(b *Exponential) {
		b.r = xrand.New(xrand.WithLock(), xrand.WithSeed(seed))
	}
}

func New(opts ...option) Exponential {
	b := Exponential{
		maxDelay:     Infinite,
		factor:       DefaultFactor,
		jitterFactor: DefaultJitterFactor,
		r:            defaultRand,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&b)
		}
	}

	return b
}

// Delay returns the delay before retry number i (zero-based):
// minDelay * factor^i capped by maxDelay, then jittered and clamped to [0, maxDelay].
func (b Exponential) Delay(i int) time.Duration {
	if b.minDelay <= 0 {
		return 0
	}
	if i < 0 {
		i = 0
	}
	var (
		max = float64(b.maxDelay)
		d   = float64(b.minDelay) * math.Pow(b.factor, float64(i))
	)
	if math.IsNaN(d) || d >= max {
		d = max
	}
	if b.jitterFactor > 0 {
		d += d * b.jitterFactor * (2*b.r.Float64() - 1)
	}
	switch {
	case d >= max:
		return b.maxDelay
	case d <= 0:
		return 0
	default:
		return time.Duration(d)
	}
}

// Cumulative returns the sum of the first n delays of b, which is the time spent
// waiting before retry number n. Jittered backoffs consume randomness on each call.
func Cumulative(b Backoff, n int) (total time.Duration) {
	for i := 0; i < n; i++ {
		d := b.Delay(i)
		if total > Infinite-d {
			return Infinite
		}
		total += d
	}

	return total
}
