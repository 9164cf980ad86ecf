package rate

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// TokenBucket spaces requests to perMinute on average, allowing
// bursts of up to burst requests.
type TokenBucket struct {
	limiter *rate.Limiter
}

var _ Limiter = &TokenBucket{}

func NewTokenBucket(perMinute int, burst int) *TokenBucket {
	if perMinute <= 0 {
		perMinute = DefaultThreshold
	}
	if burst <= 0 {
		burst = 1
	}
	return &TokenBucket{
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst),
	}
}

func (t *TokenBucket) Limit(req *http.Request) {
	// A cancelled context lets the request through so the
	// transport reports the cancellation itself.
	_ = t.limiter.Wait(req.Context())
}
