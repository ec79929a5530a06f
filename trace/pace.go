package trace

import (
	"context"
	"time"
)

type (
	// Pace specified trace of rate pacing activity.
	Pace struct {
		// OnWait is called when a value arrived faster than the period allows
		// and the pacer is going to hold it back
		OnWait func(PaceWaitInfo)
	}
	PaceWaitInfo struct {
		Context *context.Context
		Period  time.Duration
		Delay   time.Duration
	}
)
