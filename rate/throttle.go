package rate

import (
	"sync/atomic"
	"time"
)

const (
	DefaultCooldown  = 1000 * time.Millisecond
	DefaultThreshold = 60
)

// Throttle decides how long the scheduler waits between dispatches.
//
// Dispatches run back-to-back until the backlog left after a pop
// exceeds threshold. From then on every dispatch is followed by
// cooldown, until Reset is called when the queue drains. The flag
// never clears mid-burst.
type Throttle struct {
	threshold int
	cooldown  time.Duration
	limiting  atomic.Bool
}

func NewThrottle(threshold int, cooldown time.Duration) *Throttle {
	if threshold < 0 {
		threshold = DefaultThreshold
	}
	if cooldown < 0 {
		cooldown = DefaultCooldown
	}
	return &Throttle{
		threshold: threshold,
		cooldown:  cooldown,
	}
}

// Observe records the number of requests still queued behind the one
// being dispatched and reports whether rate-limiting is on.
func (t *Throttle) Observe(backlog int) bool {
	if backlog > t.threshold {
		t.limiting.Store(true)
	}
	return t.limiting.Load()
}

// Delay is the wait to apply after a dispatch completes.
func (t *Throttle) Delay() time.Duration {
	if t.limiting.Load() {
		return t.cooldown
	}
	return 0
}

func (t *Throttle) Limiting() bool {
	return t.limiting.Load()
}

func (t *Throttle) Reset() {
	t.limiting.Store(false)
}

func (t *Throttle) Threshold() int {
	return t.threshold
}

func (t *Throttle) Cooldown() time.Duration {
	return t.cooldown
}
