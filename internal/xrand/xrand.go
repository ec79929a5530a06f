package xrand

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Rand is a source of uniform randomness used for backoff jitter.
type Rand interface {
	Int64(max int64) int64
	Int(max int) int
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
}

type r struct {
	m    *sync.Mutex
	max  int64
	seed int64

	r *rand.Rand
}

type option func(r *r)

// WithLock makes Rand safe for concurrent use
func WithLock() option {
	return func(r *r) {
		r.m = &sync.Mutex{}
	}
}

func WithMax(max int64) option {
	return func(r *r) {
		r.max = max
	}
}

// WithSeed pins the generator so that the produced sequence is reproducible
func WithSeed(seed int64) option {
	return func(r *r) {
		r.seed = seed
	}
}

func New(opts ...option) Rand {
	r := &r{
		max:  math.MaxInt64,
		seed: time.Now().UnixNano(),
	}
	for _, o := range opts {
		if o != nil {
			o(r)
		}
	}
	// nolint:gosec
	r.r = rand.New(rand.NewSource(r.seed))

	return r
}

func (r *r) lock() func() {
	if r.m == nil {
		return func() {}
	}
	r.m.Lock()

	return r.m.Unlock
}

func (r *r) int64n(max int64) int64 {
	if max > r.max {
		max = r.max
	}
	defer r.lock()()

	return r.r.Int63n(max)
}

func (r *r) Int64(max int64) int64 {
	return r.int64n(max)
}

func (r *r) Int(max int) int {
	return int(r.int64n(int64(max)))
}

func (r *r) Float64() float64 {
	defer r.lock()()

	return r.r.Float64()
}
