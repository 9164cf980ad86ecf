package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/block/inaturalist-go/types"
)

const (
	pathUsersMe   = "users/me"
	pathUsersById = "users/{id}"

	fieldsUser = "id,login,name,icon_url,observations_count"
)

// FieldsUserLogin is the field selection used by the identity probe.
const FieldsUserLogin = "login"

// Users implements a set of /users API methods,
// See: https://api.inaturalist.org/v2/docs/#/Users
type Users struct {
	resource
}

func NewUsersApi(doer Doer, headers *types.Headers) *Users {
	return &Users{newResource(doer, headers)}
}

// MeRequest builds the identity probe request. Callbacks are left to the caller.
func MeRequest(headers *types.Headers) types.Request {
	return types.Request{
		Method:     http.MethodGet,
		ApiVersion: types.V2,
		Endpoint:   pathUsersMe,
		Fields:     FieldsUserLogin,
		Headers:    headers,
	}
}

// Me returns the user owning the current credential.
func (u *Users) Me(ctx context.Context) (*types.User, bool, error) {
	return u.getUser(ctx, pathUsersMe)
}

func (u *Users) Get(ctx context.Context, id int) (*types.User, bool, error) {
	return u.getUser(ctx, strings.Replace(pathUsersById, "{id}", strconv.Itoa(id), 1))
}

func (u *Users) getUser(ctx context.Context, path string) (*types.User, bool, error) {
	var res types.Results[types.User]
	if err := u.getJson(ctx, types.V2, path, nil, fieldsUser, &res); err != nil {
		return nil, false, err
	}
	user, ok := res.First()
	if !ok {
		return nil, false, nil
	}
	return &user, true, nil
}
