package scheduler

import (
	"context"
	"time"
)

const minPollInterval = time.Millisecond

// CheckQueueActive reports the queue state to cb from a new goroutine:
// cb(true) once per poll while the queue is active, then a single
// cb(false) once it has drained, after which polling stops.
//
// A poll happens every interval, or as soon as the queue drains,
// whichever comes first.
func (s *Scheduler) CheckQueueActive(interval time.Duration, cb func(active bool)) {
	if interval < minPollInterval {
		interval = minPollInterval
	}

	go func() {
		for {
			idle, active := s.idleState()
			if !active {
				cb(false)
				return
			}
			cb(true)

			timer := time.NewTimer(interval)
			select {
			case <-timer.C:
			case <-idle:
			}
			timer.Stop()
		}
	}()
}

// Wait blocks until the queue has drained or ctx is done.
func (s *Scheduler) Wait(ctx context.Context) error {
	for {
		idle, active := s.idleState()
		if !active {
			return nil
		}
		select {
		case <-idle:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
