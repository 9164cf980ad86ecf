package api

import (
	"context"

	"github.com/block/inaturalist-go/types"
)

const (
	pathTaxa             = "taxa"
	pathTaxaByIds        = "taxa/{ids}"
	pathTaxaAutocomplete = "taxa/autocomplete"

	fieldsTaxon = "id,name,rank,rank_level,preferred_common_name,iconic_taxon_name,parent_id,is_active"
)

// Taxa implements a set of /taxa API methods,
// See: https://api.inaturalist.org/v2/docs/#/Taxa
type Taxa struct {
	resource
}

func NewTaxaApi(doer Doer, headers *types.Headers) *Taxa {
	return &Taxa{newResource(doer, headers)}
}

func (t *Taxa) Search(
	ctx context.Context,
	params map[string]any,
	fields string,
) (*types.Results[types.Taxon], error) {
	if fields == "" {
		fields = fieldsTaxon
	}
	var res types.Results[types.Taxon]
	if err := t.getJson(ctx, types.V2, pathTaxa, params, fields, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (t *Taxa) Get(ctx context.Context, ids ...int) ([]types.Taxon, error) {
	path, err := idsPath(pathTaxaByIds, ids)
	if err != nil {
		return nil, err
	}
	var res types.Results[types.Taxon]
	err = t.getJson(ctx, types.V2, path, nil, fieldsTaxon, &res)
	return res.Results, err
}

// Autocomplete uses the v1 endpoint, which ignores field selection.
func (t *Taxa) Autocomplete(ctx context.Context, q string) ([]types.Taxon, error) {
	var res types.Results[types.Taxon]
	err := t.getJson(ctx, types.V1, pathTaxaAutocomplete, map[string]any{"q": q}, "", &res)
	return res.Results, err
}
