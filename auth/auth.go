// Package auth verifies and holds the bearer credential shared by every
// request of a client.
//
// Verification goes through the client's request queue like any other
// request, so it is ordered and rate-limited with the rest of the traffic.
package auth

import (
	"fmt"
	"sync"

	"github.com/block/inaturalist-go/api"
	"github.com/block/inaturalist-go/errors"
	"github.com/block/inaturalist-go/logger"
	"github.com/block/inaturalist-go/types"
)

// Queue accepts requests for dispatch. scheduler.Scheduler implements it.
type Queue interface {
	QueueRequest(req types.Request) error
}

// VerifyCallback receives the outcome of Verify. On success res is the
// full probe response. On failure err describes why; res is nil.
type VerifyCallback func(ok bool, res *types.Response, err error)

type Manager struct {
	queue   Queue
	headers *types.Headers
	logger  logger.Logger

	mu       sync.RWMutex
	identity string
}

func NewManager(queue Queue, headers *types.Headers, logger logger.Logger) *Manager {
	return &Manager{
		queue:   queue,
		headers: headers,
		logger:  logger,
	}
}

// Verify installs token as the shared Authorization header and probes
// the API for the identity it belongs to.
//
// An empty token is rejected synchronously. Any failure, including an
// empty token, clears both the header and the identity.
func (m *Manager) Verify(token string, cb VerifyCallback) {
	if token == "" {
		m.Clear()
		cb(false, nil, errors.ErrUnauthenticated)
		return
	}

	m.headers.Set(types.HeaderAuthorization, token)

	req := api.MeRequest(m.headers)
	req.OnSuccess = func(res *types.Response) {
		identity, err := identityFrom(res)
		if err != nil {
			m.Clear()
			cb(false, nil, err)
			return
		}
		m.mu.Lock()
		m.identity = identity
		m.mu.Unlock()
		m.logger.Infof("auth: verified credential for %s", identity)
		cb(true, res, nil)
	}
	req.OnError = func(err *errors.ApiError) {
		m.Clear()
		m.logger.Infof("auth: credential rejected: %v", err)
		cb(false, nil, err)
	}

	if err := m.queue.QueueRequest(req); err != nil {
		m.Clear()
		cb(false, nil, err)
	}
}

// Token returns the credential currently installed on the shared headers.
func (m *Manager) Token() string {
	return m.headers.Get(types.HeaderAuthorization)
}

// Identity returns the login of the last successfully verified credential.
func (m *Manager) Identity() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.identity == "" || m.Token() == "" {
		return "", false
	}
	return m.identity, true
}

func (m *Manager) Authorized() bool {
	_, ok := m.Identity()
	return ok
}

// Clear drops the credential and the identity.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.headers.Del(types.HeaderAuthorization)
	m.identity = ""
}

func identityFrom(res *types.Response) (string, error) {
	var users types.Results[types.User]
	if err := res.Decode(&users); err != nil {
		return "", &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_JSON_PARSE,
			SourceErr:      err,
			Body:           res.Body,
			HttpStatusCode: res.StatusCode,
			Status:         res.Status,
		}
	}
	user, ok := users.First()
	if !ok || user.Login == "" {
		return "", &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_UNAUTHENTICATED,
			SourceErr:      fmt.Errorf("%w: probe returned no identity", errors.ErrUnauthenticated),
			Body:           res.Body,
			HttpStatusCode: res.StatusCode,
			Status:         res.Status,
		}
	}
	return user.Login, nil
}
