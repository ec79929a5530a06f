package retry

import (
	"time"
)

// state is owned by one subscription of the operator and threaded by value
type state struct {
	// current counts failures since the last produced value (transient mode)
	// or since the start (non-transient mode)
	current int
	// total counts failures since the start
	total int
	// elapsed is a sum of delays waited so far
	elapsed time.Duration
}

// attempt returns the counter which drives both delay growth and exhaustion
func (s state) attempt(transient bool) int {
	if transient {
		return s.current
	}

	return s.total
}

func (s state) succeeded(transient bool) state {
	if transient {
		s.current = 0
	}

	return s
}

func (s state) failed(delay time.Duration) state {
	s.current++
	s.total++
	s.elapsed += delay

	return s
}
