package queries

import (
	"context"

	"ecofleet/internal/core/domain/services"
)

type ListDeliveryAreasQueryHandler struct {
	areas   AreaReader
	builder services.AreaBuilder
}

func NewListDeliveryAreasQueryHandler(areas AreaReader) ListDeliveryAreasQueryHandler {
	return ListDeliveryAreasQueryHandler{
		areas:   areas,
		builder: services.NewAreaBuilder(),
	}
}

func (h ListDeliveryAreasQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveryAreasQuery,
) ([]DeliveryAreaResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stored, err := h.areas.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]DeliveryAreaResponse, 0, len(stored))
	for _, a := range stored {
		polygon := a.Polygon()
		resp = append(resp, DeliveryAreaResponse{
			ID:        a.ID(),
			Name:      a.Name(),
			Polygon:   polygon,
			Summary:   h.builder.Summarize(polygon),
			CreatedAt: a.CreatedAt(),
			UpdatedAt: a.UpdatedAt(),
		})
	}

	return resp, nil
}
