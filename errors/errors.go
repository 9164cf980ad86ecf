package errors

import (
	"errors"
	"fmt"
)

const (
	STAGE_BEFORE_REQUEST = "before-request"
	STAGE_REQUEST        = "request"
	STAGE_AFTER_REQUEST  = "after-request"

	TYPE_UNKNOWN                = "unknown"
	TYPE_JSON_PARSE             = "json"
	TYPE_REQUEST_PREP           = "request-prep"
	TYPE_IO                     = "io"
	TYPE_HTTP_STATUS            = "not-ok-http-status"
	TYPE_INVALID_DATA           = "invalid-data"
	TYPE_ENCODING_NOT_SUPPORTED = "encoding-not-supported"
	TYPE_UNAUTHENTICATED        = "unauthenticated"
	TYPE_CALLBACK_PANIC         = "callback-panic"
)

var (
	// ErrInvalidRequest is wrapped by every validation failure
	// returned when a request descriptor is enqueued.
	ErrInvalidRequest = errors.New("invalid request descriptor")

	// ErrEncodingNotSupported is returned by the structured
	// parameter encoder for values it has no encoding for.
	ErrEncodingNotSupported = errors.New("encoding not supported")

	// ErrUnauthenticated is reported when a credential is missing
	// or the identity probe did not return an identity.
	ErrUnauthenticated = errors.New("unauthenticated")
)

type ApiError struct {
	Stage          string
	Type           string
	SourceErr      error
	Body           []byte
	HttpStatusCode int

	// Status is the status text of the http response, ex. "404 Not Found".
	Status string

	// RequestId is the id assigned to the request when it was enqueued.
	RequestId string
}

var _ error = &ApiError{}

func (e *ApiError) Error() string {
	var err string
	if e.SourceErr != nil {
		err = e.SourceErr.Error()
	} else {
		err = string(e.Body)
	}
	return fmt.Sprintf(
		"request %s to iNaturalist failed during '%s' stage with error type '%s', httpStatus: '%d'; original err: %v",
		e.RequestId, e.Stage, e.Type, e.HttpStatusCode, err,
	)
}

// Is method is required by errors.Is() to properly distinguish between
// different types -vs- same pointer to the same type.
// Without it, errors.Is(err, &ApiError{}) returns false for
// a different *ApiError value.
func (e *ApiError) Is(other error) bool {
	var err *ApiError
	return errors.As(other, &err) && err != nil
}

// Unwrap exposes SourceErr so sentinels like ErrInvalidRequest
// can be matched with errors.Is.
func (e *ApiError) Unwrap() error {
	return e.SourceErr
}

func NewValidationError(format string, args ...any) *ApiError {
	return &ApiError{
		Stage:     STAGE_BEFORE_REQUEST,
		Type:      TYPE_INVALID_DATA,
		SourceErr: fmt.Errorf("%w: "+format, append([]any{ErrInvalidRequest}, args...)...),
	}
}

func NewEncodingError(value any) *ApiError {
	return &ApiError{
		Stage:     STAGE_BEFORE_REQUEST,
		Type:      TYPE_ENCODING_NOT_SUPPORTED,
		SourceErr: fmt.Errorf("%w: %T", ErrEncodingNotSupported, value),
	}
}
