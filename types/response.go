package types

import (
	"encoding/json"
	"net/http"
)

// Response is handed to a request's success callback.
// Data holds the generically decoded JSON body (nil for an empty body).
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
	Data       any
}

// Decode unmarshals the raw body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Results is the paginated envelope returned by most endpoints.
type Results[T any] struct {
	TotalResults int `json:"total_results"`
	Page         int `json:"page"`
	PerPage      int `json:"per_page"`
	Results      []T `json:"results"`
}

// First returns the first result, if any.
func (r Results[T]) First() (T, bool) {
	if len(r.Results) == 0 {
		var empty T
		return empty, false
	}
	return r.Results[0], true
}
