package trace

import (
	"context"
	"time"
)

// retryComposeOptions is a holder of options
type retryComposeOptions struct {
	panicCallback func(e interface{})
}

// RetryComposeOption specified Retry compose option
type RetryComposeOption func(o *retryComposeOptions)

// WithRetryPanicCallback specified behavior on panic
func WithRetryPanicCallback(cb func(e interface{})) RetryComposeOption {
	return func(o *retryComposeOptions) {
		o.panicCallback = cb
	}
}

// Compose returns a new Retry which has functional fields composed both from t and x.
func (t *Retry) Compose(x *Retry, opts ...RetryComposeOption) *Retry {
	var ret Retry
	options := retryComposeOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	{
		h1 := t.OnSubscribe
		h2 := x.OnSubscribe
		ret.OnSubscribe = func(info RetrySubscribeInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			if h1 != nil {
				h1(info)
			}
			if h2 != nil {
				h2(info)
			}
		}
	}
	{
		h1 := t.OnBeforeRetry
		h2 := x.OnBeforeRetry
		ret.OnBeforeRetry = func(info RetryBeforeRetryInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			if h1 != nil {
				h1(info)
			}
			if h2 != nil {
				h2(info)
			}
		}
	}
	{
		h1 := t.OnRetriesExhausted
		h2 := x.OnRetriesExhausted
		ret.OnRetriesExhausted = func(info RetryExhaustedInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			if h1 != nil {
				h1(info)
			}
			if h2 != nil {
				h2(info)
			}
		}
	}

	return &ret
}

func (t *Retry) onSubscribe(info RetrySubscribeInfo) {
	fn := t.OnSubscribe
	if fn == nil {
		return
	}
	fn(info)
}

func (t *Retry) onBeforeRetry(info RetryBeforeRetryInfo) {
	fn := t.OnBeforeRetry
	if fn == nil {
		return
	}
	fn(info)
}

func (t *Retry) onRetriesExhausted(info RetryExhaustedInfo) {
	fn := t.OnRetriesExhausted
	if fn == nil {
		return
	}
	fn(info)
}

func RetryOnSubscribe(t *Retry, c *context.Context, id string, totalAttempt int) {
	var p RetrySubscribeInfo
	p.Context = c
	p.ID = id
	p.TotalAttempt = totalAttempt
	t.onSubscribe(p)
}

func RetryOnBeforeRetry(t *Retry, c *context.Context, id string, cause error,
	currentAttempt, totalAttempt int, delay, elapsed time.Duration,
) {
	var p RetryBeforeRetryInfo
	p.Context = c
	p.ID = id
	p.Cause = cause
	p.CurrentAttempt = currentAttempt
	p.TotalAttempt = totalAttempt
	p.Delay = delay
	p.Elapsed = elapsed
	t.onBeforeRetry(p)
}

func RetryOnRetriesExhausted(t *Retry, c *context.Context, id string, cause error,
	attempts int, elapsed time.Duration,
) {
	var p RetryExhaustedInfo
	p.Context = c
	p.ID = id
	p.Cause = cause
	p.Attempts = attempts
	p.Elapsed = elapsed
	t.onRetriesExhausted(p)
}
