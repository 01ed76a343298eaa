package queries

import (
	"errors"
	"time"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/domain/services"
	"ecofleet/internal/pkg/guard"

	"github.com/paulmach/orb"
)

var ErrListDeliveryAreasQueryIsNotConstructed = errors.New(
	"ListDeliveryAreasQuery must be created via NewListDeliveryAreasQuery constructor",
)

type ListDeliveryAreasQuery struct {
	guard guard.ConstructorGuard
}

func NewListDeliveryAreasQuery() ListDeliveryAreasQuery {
	return ListDeliveryAreasQuery{guard: guard.NewConstructorGuard()}
}

func (q ListDeliveryAreasQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveryAreasQueryIsNotConstructed)
}

// DeliveryAreaResponse is an area with its derived centroid and radius.
type DeliveryAreaResponse struct {
	ID        kernel.UUID
	Name      string
	Polygon   orb.Polygon
	Summary   services.AreaSummary
	CreatedAt time.Time
	UpdatedAt time.Time
}
