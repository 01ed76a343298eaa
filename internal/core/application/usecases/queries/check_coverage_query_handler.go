package queries

import (
	"context"

	"ecofleet/internal/core/domain/services"
)

// CheckCoverageQueryHandler loads the current area set into a GeofenceIndex
// for every query; the set is small and a linear scan is enough.
type CheckCoverageQueryHandler struct {
	areas AreaReader
}

func NewCheckCoverageQueryHandler(areas AreaReader) CheckCoverageQueryHandler {
	return CheckCoverageQueryHandler{areas: areas}
}

func (h CheckCoverageQueryHandler) Handle(
	ctx context.Context,
	query CheckCoverageQuery,
) (CheckCoverageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckCoverageQueryResponse{}, err
	}

	stored, err := h.areas.List(ctx)
	if err != nil {
		return CheckCoverageQueryResponse{}, err
	}

	matches := services.NewGeofenceIndex(stored).Query(query.Point())

	resp := CheckCoverageQueryResponse{
		Covered: len(matches) > 0,
		Areas:   make([]CoveringArea, 0, len(matches)),
	}
	for _, a := range matches {
		resp.Areas = append(resp.Areas, CoveringArea{ID: a.ID(), Name: a.Name()})
	}

	return resp, nil
}
