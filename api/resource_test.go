package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/block/inaturalist-go/errors"
	"github.com/block/inaturalist-go/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDoer struct {
	requests []types.Request
	body     string
	err      error
}

func (f *fakeDoer) Do(_ context.Context, req types.Request) (*types.Response, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &types.Response{StatusCode: 200, Body: []byte(f.body)}, nil
}

func (f *fakeDoer) last() types.Request {
	return f.requests[len(f.requests)-1]
}

func Test_Users_Me(t *testing.T) {
	doer := &fakeDoer{body: `{"total_results":1,"results":[{"id":477,"login":"kueda","name":"Ken-ichi"}]}`}
	headers := types.NewHeaders()
	users := NewUsersApi(doer, headers)

	user, found, err := users.Me(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, &types.User{Id: 477, Login: "kueda", Name: "Ken-ichi"}, user)

	req := doer.last()
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, types.V2, req.ApiVersion)
	assert.Equal(t, "users/me", req.Endpoint)
	assert.Equal(t, fieldsUser, req.Fields)
	assert.Same(t, headers, req.Headers)
}

func Test_Users_Get(t *testing.T) {
	testCases := []struct {
		name        string
		body        string
		err         error
		expectFound bool
		expectErr   bool
	}{
		{
			name:        "found",
			body:        `{"results":[{"id":1,"login":"a"}]}`,
			expectFound: true,
		},
		{
			name: "not found",
			body: `{"results":[]}`,
		},
		{
			name:      "error",
			err:       &errors.ApiError{Type: errors.TYPE_HTTP_STATUS, HttpStatusCode: 500},
			expectErr: true,
		},
		{
			name:      "malformed",
			body:      `{"results":`,
			expectErr: true,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			doer := &fakeDoer{body: tt.body, err: tt.err}
			user, found, err := NewUsersApi(doer, nil).Get(context.Background(), 1)
			assert.Equal(t, "users/1", doer.last().Endpoint)
			assert.Equal(t, tt.expectFound, found)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_MeRequest(t *testing.T) {
	headers := types.NewHeaders()
	req := MeRequest(headers)

	u, err := BuildUrl(DefaultBaseUrl, &req)
	require.Nil(t, err)
	assert.Equal(t, "https://api.inaturalist.org/v2/users/me?fields=(login:!t)", u)
	assert.Same(t, headers, req.Headers)
}

func Test_Observations(t *testing.T) {
	doer := &fakeDoer{body: `{"total_results":2,"page":1,"per_page":2,"results":[{"id":1,"uuid":"u-1"},{"id":2,"taxon":{"id":3,"name":"Quercus"}}]}`}
	obs := NewObservationsApi(doer, nil)

	res, err := obs.Search(context.Background(), map[string]any{"taxon_id": 3}, "")
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalResults)
	require.Len(t, res.Results, 2)
	assert.Equal(t, "Quercus", res.Results[1].Taxon.Name)
	assert.Equal(t, fieldsObservation, doer.last().Fields)
	assert.Equal(t, map[string]any{"taxon_id": 3}, doer.last().Params)

	_, err = obs.Search(context.Background(), nil, "id")
	require.NoError(t, err)
	assert.Equal(t, "id", doer.last().Fields)

	list, err := obs.Get(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, "observations/1,2", doer.last().Endpoint)
}

func Test_Taxa(t *testing.T) {
	doer := &fakeDoer{body: `{"results":[{"id":47126,"name":"Plantae","rank":"kingdom"}]}`}
	taxa := NewTaxaApi(doer, nil)

	list, err := taxa.Autocomplete(context.Background(), "plant")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "kingdom", list[0].Rank)
	assert.Equal(t, types.V1, doer.last().ApiVersion)
	assert.Equal(t, "taxa/autocomplete", doer.last().Endpoint)
	assert.Equal(t, map[string]any{"q": "plant"}, doer.last().Params)

	list, err = taxa.Get(context.Background(), 47126)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "taxa/47126", doer.last().Endpoint)

	res, err := taxa.Search(context.Background(), map[string]any{"q": "oak"}, "")
	require.NoError(t, err)
	assert.Equal(t, 1, len(res.Results))
	assert.Equal(t, fieldsTaxon, doer.last().Fields)
}

func Test_Places(t *testing.T) {
	doer := &fakeDoer{body: `{"results":[{"id":1,"name":"United States","place_type":12}]}`}
	places := NewPlacesApi(doer, nil)

	list, err := places.Get(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	name, ok := list[0].PlaceTypeName()
	assert.True(t, ok)
	assert.Equal(t, "Country", name)
	assert.Equal(t, "places/1", doer.last().Endpoint)

	doer.err = fmt.Errorf("queue closed")
	_, err = places.Autocomplete(context.Background(), "united")
	assert.Error(t, err)
	assert.Equal(t, "places/autocomplete", doer.last().Endpoint)
}

func Test_GetByIds_requiresIds(t *testing.T) {
	testCases := []struct {
		name string
		get  func(doer Doer) error
	}{
		{
			name: "observations",
			get: func(doer Doer) error {
				_, err := NewObservationsApi(doer, nil).Get(context.Background())
				return err
			},
		},
		{
			name: "taxa",
			get: func(doer Doer) error {
				_, err := NewTaxaApi(doer, nil).Get(context.Background())
				return err
			},
		},
		{
			name: "places",
			get: func(doer Doer) error {
				_, err := NewPlacesApi(doer, nil).Get(context.Background())
				return err
			},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			doer := &fakeDoer{body: `{"results":[]}`}
			err := tt.get(doer)
			assert.ErrorIs(t, err, errors.ErrInvalidRequest)
			assert.Empty(t, doer.requests)
		})
	}
}
