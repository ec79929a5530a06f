package trace

import (
	"context"
	"time"
)

// paceComposeOptions is a holder of options
type paceComposeOptions struct {
	panicCallback func(e interface{})
}

// PaceComposeOption specified Pace compose option
type PaceComposeOption func(o *paceComposeOptions)

// WithPacePanicCallback specified behavior on panic
func WithPacePanicCallback(cb func(e interface{})) PaceComposeOption {
	return func(o *paceComposeOptions) {
		o.panicCallback = cb
	}
}

// Compose returns a new Pace which has functional fields composed both from t and x.
func (t *Pace) Compose(x *Pace, opts ...PaceComposeOption) *Pace {
	var ret Pace
	options := paceComposeOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	{
		h1 := t.OnWait
		h2 := x.OnWait
		ret.OnWait = func(info PaceWaitInfo) {
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

func (t *Pace) onWait(info PaceWaitInfo) {
	fn := t.OnWait
	if fn == nil {
		return
	}
	fn(info)
}

func PaceOnWait(t *Pace, c *context.Context, period, delay time.Duration) {
	var p PaceWaitInfo
	p.Context = c
	p.Period = period
	p.Delay = delay
	t.onWait(p)
}
