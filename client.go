package inaturalist_go

import (
	"context"
	"net/http"
	"time"

	"github.com/block/inaturalist-go/api"
	"github.com/block/inaturalist-go/auth"
	"github.com/block/inaturalist-go/parsers"
	"github.com/block/inaturalist-go/rate"
	"github.com/block/inaturalist-go/scheduler"
	"github.com/block/inaturalist-go/types"
)

// Client queues every request through a single FIFO scheduler and
// dispatches them one at a time against the iNaturalist API.
//
// Usage Example:
//
//	client := inaturalist_go.NewClient()
//	err := client.QueueRequest(types.Request{
//	    Method:     http.MethodGet,
//	    ApiVersion: types.V2,
//	    Endpoint:   "observations",
//	    Params:     map[string]any{"taxon_id": 47126},
//	    Fields:     "id,uuid",
//	    OnSuccess:  func(res *types.Response) { ... },
//	    OnError:    func(err *errors.ApiError) { ... },
//	})
type Client struct {
	httpClient *http.Client
	headers    *types.Headers
	scheduler  *scheduler.Scheduler
	auth       *auth.Manager

	users        *api.Users
	observations *api.Observations
	taxa         *api.Taxa
	places       *api.Places
}

func NewClient(opts ...ConfigOption) *Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := &http.Client{}
	httpClient.Transport = cfg.transport
	httpClient.Timeout = cfg.timeout

	headers := types.NewHeaders()
	sender := api.NewSender(cfg.baseUrl, httpClient, cfg.limiter, cfg.logger)
	sched := scheduler.New(sender, rate.NewThrottle(cfg.threshold, cfg.cooldown), cfg.logger)

	return &Client{
		httpClient:   httpClient,
		headers:      headers,
		scheduler:    sched,
		auth:         auth.NewManager(sched, headers, cfg.logger),
		users:        api.NewUsersApi(sched, headers),
		observations: api.NewObservationsApi(sched, headers),
		taxa:         api.NewTaxaApi(sched, headers),
		places:       api.NewPlacesApi(sched, headers),
	}
}

// QueueRequest appends req to the dispatch queue. The outcome is
// delivered to req.OnSuccess or req.OnError. A request missing its
// method, version, endpoint or callbacks is rejected here.
//
// Leave req.Headers nil to send the client's shared headers, which
// carry the credential installed by VerifyAuthentication.
func (c *Client) QueueRequest(req types.Request) error {
	if req.Headers == nil {
		req.Headers = c.headers
	}
	return c.scheduler.QueueRequest(req)
}

// Do queues req and waits for its outcome. Callbacks are optional.
func (c *Client) Do(ctx context.Context, req types.Request) (*types.Response, error) {
	if req.Headers == nil {
		req.Headers = c.headers
	}
	return c.scheduler.Do(ctx, req)
}

// CheckQueueActive calls cb(true) every interval while requests are
// pending, and cb(false) once when the queue has drained.
func (c *Client) CheckQueueActive(interval time.Duration, cb func(active bool)) {
	c.scheduler.CheckQueueActive(interval, cb)
}

// Wait blocks until the queue has drained or ctx is done.
func (c *Client) Wait(ctx context.Context) error {
	return c.scheduler.Wait(ctx)
}

// VerifyAuthentication installs token on the shared headers and
// confirms it against users/me. See auth.Manager.Verify.
func (c *Client) VerifyAuthentication(token string, cb auth.VerifyCallback) {
	c.auth.Verify(token, cb)
}

func (c *Client) Status() scheduler.Status {
	return c.scheduler.Status()
}

// Headers returns the headers shared by every request queued without
// its own. Changes apply to requests that have not been sent yet.
func (c *Client) Headers() *types.Headers {
	return c.headers
}

func (c *Client) Auth() *auth.Manager {
	return c.auth
}

func (c *Client) Users() *api.Users {
	return c.users
}

func (c *Client) Observations() *api.Observations {
	return c.observations
}

func (c *Client) Taxa() *api.Taxa {
	return c.taxa
}

func (c *Client) Places() *api.Places {
	return c.places
}

// EncodeStructuredParams encodes value in the compact notation used by
// the v2 fields parameter, e.g. "id,login" becomes "(id:!t,login:!t)".
func EncodeStructuredParams(value any) (string, error) {
	return parsers.EncodeStructured(value)
}

// ParseURLParams splits a query string into its key/value pairs.
func ParseURLParams(raw string) *parsers.Params {
	return parsers.ParseURLParams(raw)
}

// ParseURLParam returns the value of key in a query string.
func ParseURLParam(raw string, key string) (string, bool) {
	return parsers.ParseURLParam(raw, key)
}
