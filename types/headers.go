package types

import (
	"net/http"
	"sync"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderAccept        = "Accept"
	HeaderContentType   = "Content-Type"
)

// Headers is a goroutine-safe header mapping shared between requests.
// The zero value is ready to use.
type Headers struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewHeaders() *Headers {
	return &Headers{values: map[string]string{}}
}

func (h *Headers) Set(key, value string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.values == nil {
		h.values = map[string]string{}
	}
	h.values[http.CanonicalHeaderKey(key)] = value
}

func (h *Headers) Get(key string) string {
	if h == nil {
		return ""
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.values[http.CanonicalHeaderKey(key)]
}

func (h *Headers) Del(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.values, http.CanonicalHeaderKey(key))
}

// Clone returns a copy of the current values.
// A nil *Headers clones to an empty map.
func (h *Headers) Clone() map[string]string {
	out := map[string]string{}
	if h == nil {
		return out
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for k, v := range h.values {
		out[k] = v
	}
	return out
}
