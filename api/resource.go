package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/block/inaturalist-go/errors"
	"github.com/block/inaturalist-go/types"
)

// Doer queues a request and waits for its outcome.
// The scheduler implements it.
type Doer interface {
	Do(ctx context.Context, req types.Request) (*types.Response, error)
}

// resource is the shared base of every API group. All calls go
// through the scheduler queue and carry the client's shared headers.
type resource struct {
	doer    Doer
	headers *types.Headers
}

func newResource(doer Doer, headers *types.Headers) resource {
	return resource{doer: doer, headers: headers}
}

func (r resource) getJson(
	ctx context.Context,
	version types.ApiVersion,
	endpoint string,
	params map[string]any,
	fields string,
	resData any,
) error {
	res, err := r.doer.Do(ctx, types.Request{
		Method:     http.MethodGet,
		ApiVersion: version,
		Endpoint:   endpoint,
		Params:     params,
		Fields:     fields,
		Headers:    r.headers,
	})
	if err != nil {
		return err
	}
	return res.Decode(resData)
}

// idsPath fills the {ids} segment of pattern. At least one id is required.
func idsPath(pattern string, ids []int) (string, error) {
	if len(ids) == 0 {
		return "", errors.NewValidationError("at least one id is required for %s", pattern)
	}
	return strings.Replace(pattern, "{ids}", joinIds(ids), 1), nil
}

func joinIds(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ",")
}
