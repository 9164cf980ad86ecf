package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/block/inaturalist-go/errors"
	"github.com/block/inaturalist-go/logger"
	"github.com/block/inaturalist-go/queue"
	"github.com/block/inaturalist-go/rate"
	"github.com/block/inaturalist-go/types"
)

// Sender issues a single request. api.Sender implements it.
type Sender interface {
	Send(ctx context.Context, req *types.Request) (*types.Response, *errors.ApiError)
}

// Scheduler serializes requests through one FIFO queue and dispatches
// them one at a time, in enqueue order.
//
// A dispatch starts only after the previous one has completed. While
// the backlog stays at or under the throttle threshold, dispatches run
// back-to-back. Once the backlog left behind a dispatch has exceeded the
// threshold, every later completion is followed by the throttle cooldown
// until the queue drains.
//
// Usage Example:
//
//	s := scheduler.New(sender, rate.NewThrottle(60, time.Second), &logger.Noop{})
//	call, err := s.Enqueue(types.Request{
//	    Method:     http.MethodGet,
//	    ApiVersion: types.V2,
//	    Endpoint:   "observations",
//	    OnSuccess:  func(res *types.Response) { ... },
//	    OnError:    func(err *errors.ApiError) { ... },
//	})
//	<-call.Done()
type Scheduler struct {
	sender   Sender
	throttle *rate.Throttle
	logger   logger.Logger
	queue    *queue.Queue[*Call]

	mu     sync.Mutex
	active bool
	idle   chan struct{}
}

type Status struct {
	Active       bool
	RateLimiting bool
	Pending      int
}

func New(sender Sender, throttle *rate.Throttle, log logger.Logger) *Scheduler {
	if throttle == nil {
		throttle = rate.NewThrottle(rate.DefaultThreshold, rate.DefaultCooldown)
	}
	if log == nil {
		log = &logger.Noop{}
	}
	idle := make(chan struct{})
	close(idle)
	return &Scheduler{
		sender:   sender,
		throttle: throttle,
		logger:   log,
		queue:    queue.New[*Call](),
		idle:     idle,
	}
}

// Enqueue validates req, appends it to the queue and starts dispatching
// if the scheduler was idle. Invalid requests are rejected here and never
// reach the queue.
func (s *Scheduler) Enqueue(req types.Request) (*Call, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.ID = uuid.NewString()
	call := newCall(req)

	s.mu.Lock()
	depth := s.queue.Push(call)
	start := !s.active
	if start {
		s.active = true
		s.idle = make(chan struct{})
	}
	s.mu.Unlock()

	s.logger.Debugf("scheduler: queued %s %s/%s as %s (depth %d)", req.Method, req.ApiVersion, req.Endpoint, req.ID, depth)
	if start {
		s.logger.Debugf("scheduler: queue active")
		go s.run()
	}
	return call, nil
}

// QueueRequest is Enqueue for callers that only rely on the
// request's own callbacks.
func (s *Scheduler) QueueRequest(req types.Request) error {
	_, err := s.Enqueue(req)
	return err
}

// Do enqueues req and waits for its outcome. Callbacks are optional here.
// Cancelling ctx stops the wait, not the request.
func (s *Scheduler) Do(ctx context.Context, req types.Request) (*types.Response, error) {
	if req.OnSuccess == nil {
		req.OnSuccess = func(*types.Response) {}
	}
	if req.OnError == nil {
		req.OnError = func(*errors.ApiError) {}
	}
	call, err := s.Enqueue(req)
	if err != nil {
		return nil, err
	}
	return call.Wait(ctx)
}

func (s *Scheduler) run() {
	for {
		call, backlog, ok := s.next()
		if !ok {
			return
		}

		wasLimiting := s.throttle.Limiting()
		if s.throttle.Observe(backlog) && !wasLimiting {
			s.logger.Infof("scheduler: backlog of %d exceeds %d, rate-limiting until the queue drains", backlog, s.throttle.Threshold())
		}

		s.dispatch(call)

		if delay := s.throttle.Delay(); delay > 0 {
			time.Sleep(delay)
		}
	}
}

// next pops the head of the queue. On an empty queue it marks the
// scheduler idle and resets the throttle in the same critical section
// as Enqueue's activation check, so no request can be stranded.
func (s *Scheduler) next() (*Call, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	call, backlog, ok := s.queue.Pop()
	if ok {
		return call, backlog, true
	}

	s.active = false
	s.throttle.Reset()
	close(s.idle)
	s.logger.Debugf("scheduler: queue drained")
	return nil, 0, false
}

func (s *Scheduler) dispatch(call *Call) {
	res, err := s.sender.Send(context.Background(), &call.req)
	call.complete(res, err, s.logger)
}

// Status reports a snapshot of the queue state.
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Status{
		Active:       s.active,
		RateLimiting: s.throttle.Limiting(),
		Pending:      s.queue.Len(),
	}
}

// Active reports whether requests are queued or in flight.
func (s *Scheduler) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.active
}

// idleState returns the drain event of the current active period.
func (s *Scheduler) idleState() (<-chan struct{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.idle, s.active
}
