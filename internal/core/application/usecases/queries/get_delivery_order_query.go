package queries

import (
	"errors"
	"time"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/domain/model/order"
	"ecofleet/internal/pkg/guard"
)

var ErrGetDeliveryOrderQueryIsNotConstructed = errors.New(
	"GetDeliveryOrderQuery must be created via NewGetDeliveryOrderQuery constructor",
)

type GetDeliveryOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDeliveryOrderQuery(orderID kernel.UUID) (GetDeliveryOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDeliveryOrderQuery{}, err
	}

	return GetDeliveryOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetDeliveryOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryOrderQueryIsNotConstructed)
}

func (q GetDeliveryOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetDeliveryOrderQueryResponse is the read model of a single order.
type GetDeliveryOrderQueryResponse struct {
	ID         kernel.UUID
	ClientName string
	DriverID   *kernel.UUID
	VehicleID  *kernel.UUID
	Pickup     kernel.GeoPoint
	Dropoff    kernel.GeoPoint
	Status     order.Status
	Deadline   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
