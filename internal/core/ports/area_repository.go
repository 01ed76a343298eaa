package ports

import (
	"context"

	"ecofleet/internal/core/domain/model/area"
	"ecofleet/internal/core/domain/model/kernel"
)

// AreaRepository defines the persistence contract for delivery areas.
type AreaRepository interface {
	Add(ctx context.Context, aggregate *area.DeliveryArea) error
	Get(ctx context.Context, id kernel.UUID) (*area.DeliveryArea, error)
	// List returns every area ordered by name.
	List(ctx context.Context) ([]*area.DeliveryArea, error)
}
