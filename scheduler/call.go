package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/block/inaturalist-go/errors"
	"github.com/block/inaturalist-go/logger"
	"github.com/block/inaturalist-go/types"
)

// Call tracks one enqueued request until its callback has fired.
// It resolves exactly once, after the request's OnSuccess or OnError
// callback has returned.
type Call struct {
	req  types.Request
	once sync.Once
	done chan struct{}

	res *types.Response
	err *errors.ApiError
}

func newCall(req types.Request) *Call {
	return &Call{
		req:  req,
		done: make(chan struct{}),
	}
}

func (c *Call) ID() string {
	return c.req.ID
}

// Done is closed once the call has completed.
func (c *Call) Done() <-chan struct{} {
	return c.done
}

// Result returns the outcome of a completed call.
// It must only be called after Done is closed.
func (c *Call) Result() (*types.Response, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.res, nil
}

// Wait blocks until the call completes or ctx is done. A cancelled
// ctx stops the wait only, the request stays queued and is still sent.
func (c *Call) Wait(ctx context.Context) (*types.Response, error) {
	select {
	case <-c.done:
		return c.Result()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// complete stores the outcome and runs the matching callback.
// Later calls are ignored. A panicking callback is recovered so the
// dispatch loop keeps going.
func (c *Call) complete(res *types.Response, err *errors.ApiError, log logger.Logger) {
	c.once.Do(func() {
		c.res = res
		c.err = err
		defer close(c.done)
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("scheduler: callback for request %s panicked: %v", c.req.ID, r)
				if c.err == nil {
					c.res = nil
					c.err = &errors.ApiError{
						Stage:     errors.STAGE_AFTER_REQUEST,
						Type:      errors.TYPE_CALLBACK_PANIC,
						SourceErr: fmt.Errorf("callback panicked: %v", r),
						RequestId: c.req.ID,
					}
				}
			}
		}()

		if err != nil {
			c.req.OnError(err)
			return
		}
		c.req.OnSuccess(res)
	})
}
