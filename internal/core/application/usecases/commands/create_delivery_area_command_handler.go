package commands

import (
	"context"

	"ecofleet/internal/core/domain/model/area"
	"ecofleet/internal/core/domain/services"
)

// CreateDeliveryAreaResult is the stored area with its derived measurements.
type CreateDeliveryAreaResult struct {
	Area    *area.DeliveryArea
	Summary services.AreaSummary
}

type CreateDeliveryAreaCommandHandler struct {
	uowFactory AreaUoWFactory
	builder    services.AreaBuilder
}

func NewCreateDeliveryAreaCommandHandler(uowFactory AreaUoWFactory) CreateDeliveryAreaCommandHandler {
	return CreateDeliveryAreaCommandHandler{
		uowFactory: uowFactory,
		builder:    services.NewAreaBuilder(),
	}
}

// Handle builds the polygon in circle mode, persists the area and reports its
// centroid and estimated radius.
func (h *CreateDeliveryAreaCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDeliveryAreaCommand,
) (CreateDeliveryAreaResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateDeliveryAreaResult{}, err
	}

	polygon := cmd.Polygon()
	if cmd.IsCircle() {
		var err error
		polygon, err = h.builder.BuildCircle(cmd.Center(), cmd.RadiusKm())
		if err != nil {
			return CreateDeliveryAreaResult{}, err
		}
	}

	a, err := area.NewDeliveryArea(cmd.AreaID(), cmd.Name(), polygon)
	if err != nil {
		return CreateDeliveryAreaResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateDeliveryAreaResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AreaRepository().Add(ctx, a); err != nil {
		return CreateDeliveryAreaResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateDeliveryAreaResult{}, err
	}

	return CreateDeliveryAreaResult{
		Area:    a,
		Summary: h.builder.Summarize(a.Polygon()),
	}, nil
}
