package trace

import (
	"context"
	"time"
)

type (
	// Retry specified trace of backoff retry operator activity.
	Retry struct {
		// OnSubscribe is called on every (re)subscription to the upstream sequence
		OnSubscribe func(RetrySubscribeInfo)
		// OnBeforeRetry is called after a retriable failure, before waiting the delay
		OnBeforeRetry func(RetryBeforeRetryInfo)
		// OnRetriesExhausted is called once when the policy gives up, before the
		// failure is surfaced to the consumer
		OnRetriesExhausted func(RetryExhaustedInfo)
	}
	RetrySubscribeInfo struct {
		// Context make available context in trace callback function.
		// Pointer to context provide replacement of context in trace callback function.
		// Warning: concurrent access to pointer on client side must be excluded.
		// Safe replacement of context are provided only inside callback function
		Context      *context.Context
		ID           string
		TotalAttempt int
	}
	RetryBeforeRetryInfo struct {
		Context        *context.Context
		ID             string
		Cause          error
		CurrentAttempt int
		TotalAttempt   int
		Delay          time.Duration
		Elapsed        time.Duration
	}
	RetryExhaustedInfo struct {
		Context  *context.Context
		ID       string
		Cause    error
		Attempts int
		Elapsed  time.Duration
	}
)
