package main

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/ydb-platform/ydb-go-backoff/internal/xrand"
)

var errUnavailable = errors.New("endpoint unavailable")

type reading struct {
	Poller string
	Seq    int
	At     time.Time
}

// poller simulates a remote endpoint which fails with probability failRate
type poller struct {
	id       string
	failRate float64
	rand     xrand.Rand
	clock    clockwork.Clock
	polls    int
}

func newPoller(id string, failRate float64, seed int64, clock clockwork.Clock) *poller {
	return &poller{
		id:       id,
		failRate: failRate,
		rand:     xrand.New(xrand.WithSeed(seed)),
		clock:    clock,
	}
}

// Poll returns a sequence of readings which ends with the first failure.
// Every ranging is a new connection to the endpoint.
func (p *poller) Poll(ctx context.Context) iter.Seq2[reading, error] {
	return func(yield func(reading, error) bool) {
		for ctx.Err() == nil {
			p.polls++
			if p.rand.Float64() < p.failRate {
				yield(reading{}, fmt.Errorf("%w: poll #%d of %s", errUnavailable, p.polls, p.id))

				return
			}
			if !yield(reading{Poller: p.id, Seq: p.polls, At: p.clock.Now()}, nil) {
				return
			}
		}
	}
}
