package api

import (
	"context"

	"github.com/block/inaturalist-go/types"
)

const (
	pathPlacesByIds        = "places/{ids}"
	pathPlacesAutocomplete = "places/autocomplete"

	fieldsPlace = "id,name,display_name,place_type,admin_level,slug"
)

// Places implements a set of /places API methods,
// See: https://api.inaturalist.org/v2/docs/#/Places
type Places struct {
	resource
}

func NewPlacesApi(doer Doer, headers *types.Headers) *Places {
	return &Places{newResource(doer, headers)}
}

func (p *Places) Get(ctx context.Context, ids ...int) ([]types.Place, error) {
	path, err := idsPath(pathPlacesByIds, ids)
	if err != nil {
		return nil, err
	}
	var res types.Results[types.Place]
	err = p.getJson(ctx, types.V2, path, nil, fieldsPlace, &res)
	return res.Results, err
}

// Autocomplete uses the v1 endpoint, which ignores field selection.
func (p *Places) Autocomplete(ctx context.Context, q string) ([]types.Place, error) {
	var res types.Results[types.Place]
	err := p.getJson(ctx, types.V1, pathPlacesAutocomplete, map[string]any{"q": q}, "", &res)
	return res.Results, err
}
