package types

import (
	"net/http"
	"strings"

	"github.com/block/inaturalist-go/errors"
)

type ApiVersion string

const (
	V1 ApiVersion = "v1"
	V2 ApiVersion = "v2"
)

func (v ApiVersion) Valid() bool {
	return v == V1 || v == V2
}

// Request describes a single outbound API call and its completion callbacks.
//
// Exactly one of OnSuccess or OnError is invoked, exactly once, after the
// request has been dispatched. A Request is never retried.
type Request struct {
	// ID is assigned by the scheduler when the request is enqueued.
	ID string

	Method     string
	ApiVersion ApiVersion

	// Endpoint is the path relative to the version prefix, ex. "observations".
	Endpoint string

	// Params is encoded into the query string. Values may be
	// scalars, slices (comma-joined) or nested maps.
	Params map[string]any

	// Fields selects response fields. Only honored for V2, where it is
	// encoded with the structured parameter encoder, ex. "id,login".
	Fields string

	// Data is JSON-encoded into the request body when not nil.
	Data any

	// Headers is read when the request is dispatched, not when it is
	// enqueued, so credential changes affect requests still in the queue.
	Headers *Headers

	OnSuccess func(res *Response)
	OnError   func(err *errors.ApiError)
}

var knownMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
}

// Validate checks the fields every request must carry.
func (r *Request) Validate() *errors.ApiError {
	switch {
	case r.Method == "":
		return errors.NewValidationError("method is required")
	case !knownMethods[strings.ToUpper(r.Method)]:
		return errors.NewValidationError("unknown method %q", r.Method)
	case r.ApiVersion == "":
		return errors.NewValidationError("api version is required")
	case !r.ApiVersion.Valid():
		return errors.NewValidationError("unknown api version %q", r.ApiVersion)
	case strings.TrimSpace(r.Endpoint) == "":
		return errors.NewValidationError("endpoint is required")
	case r.OnSuccess == nil:
		return errors.NewValidationError("success callback is required")
	case r.OnError == nil:
		return errors.NewValidationError("error callback is required")
	}
	return nil
}
