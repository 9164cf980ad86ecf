package api

import (
	"context"

	"github.com/block/inaturalist-go/types"
)

const (
	pathObservations      = "observations"
	pathObservationsByIds = "observations/{ids}"

	fieldsObservation = "id,uuid,species_guess,observed_on,place_guess,quality_grade"
)

// Observations implements a set of /observations API methods,
// See: https://api.inaturalist.org/v2/docs/#/Observations
type Observations struct {
	resource
}

func NewObservationsApi(doer Doer, headers *types.Headers) *Observations {
	return &Observations{newResource(doer, headers)}
}

// Search queries observations. An empty fields selects the default set.
func (o *Observations) Search(
	ctx context.Context,
	params map[string]any,
	fields string,
) (*types.Results[types.Observation], error) {
	if fields == "" {
		fields = fieldsObservation
	}
	var res types.Results[types.Observation]
	if err := o.getJson(ctx, types.V2, pathObservations, params, fields, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (o *Observations) Get(ctx context.Context, ids ...int) ([]types.Observation, error) {
	path, err := idsPath(pathObservationsByIds, ids)
	if err != nil {
		return nil, err
	}
	var res types.Results[types.Observation]
	err = o.getJson(ctx, types.V2, path, nil, fieldsObservation, &res)
	return res.Results, err
}
