package rate

import "net/http"

// Limiter is an optional guard applied right before each HTTP call,
// after the scheduler has already decided the request may go out.
//
// The scheduler's own Throttle governs the queue. A Limiter adds a
// second, transport-level ceiling, for example a token bucket shared
// by several clients talking to the same account:
//
//	shared := rate.NewTokenBucket(60, 1)
//	a := inaturalist_go.NewClient(inaturalist_go.WithRateLimiter(shared))
//	b := inaturalist_go.NewClient(inaturalist_go.WithRateLimiter(shared))
//
// Limit should block until the request may be sent, or until the
// request's context is done.
type Limiter interface {
	Limit(req *http.Request)
}
