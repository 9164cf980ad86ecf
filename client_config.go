package inaturalist_go

import (
	"net/http"
	"time"

	"github.com/block/inaturalist-go/api"
	"github.com/block/inaturalist-go/logger"
	"github.com/block/inaturalist-go/rate"
)

type config struct {
	// baseUrl is the API root, without the version segment.
	// default: https://api.inaturalist.org
	baseUrl string

	// transport specifies the HTTP transport mechanism
	// for making requests.
	// It's useful for mocking or if customers
	// want to add extra logging, headers, etc.
	// default: http.DefaultTransport
	transport http.RoundTripper

	// timeout sets the maximum duration for HTTP requests
	// before they are cancelled
	// default: 10 seconds
	timeout time.Duration

	// threshold is the queue backlog above which the client
	// switches to rate-limited dispatch until the queue drains.
	// default: 60
	threshold int

	// cooldown is the pause after each dispatch while
	// rate-limiting is on.
	// default: 1 second
	cooldown time.Duration

	// limiter is applied right before every HTTP call,
	// on top of the queue throttle.
	// default: rate.NoopLimiter
	limiter rate.Limiter

	// logger provides logging functionality for all internal
	// inaturalist-go client operations
	// default: logger.Noop
	logger logger.Logger
}

func defaultConfig() *config {
	return &config{
		baseUrl:   api.DefaultBaseUrl,
		transport: http.DefaultTransport,
		timeout:   10 * time.Second,
		threshold: rate.DefaultThreshold,
		cooldown:  rate.DefaultCooldown,
		limiter:   &rate.NoopLimiter{},
		logger:    &logger.Noop{},
	}
}

type ConfigOption func(c *config)

func WithBaseUrl(baseUrl string) ConfigOption {
	return func(c *config) {
		c.baseUrl = baseUrl
	}
}

func WithTransport(transport http.RoundTripper) ConfigOption {
	return func(c *config) {
		c.transport = transport
	}
}

func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *config) {
		c.timeout = timeout
	}
}

func WithThreshold(threshold int) ConfigOption {
	return func(c *config) {
		c.threshold = threshold
	}
}

func WithCooldown(cooldown time.Duration) ConfigOption {
	return func(c *config) {
		c.cooldown = cooldown
	}
}

func WithRateLimiter(limiter rate.Limiter) ConfigOption {
	return func(c *config) {
		c.limiter = limiter
	}
}

func WithLogger(logger logger.Logger) ConfigOption {
	return func(c *config) {
		c.logger = logger
	}
}
