// Package orderrepo maps delivery orders to the delivery_orders table.
package orderrepo

import (
	"errors"
	"time"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row of a delivery order. Pickup and dropoff are stored as
// embedded latitude/longitude pairs.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientName string     `gorm:"type:varchar(255);not null"`
	DriverID   *uuid.UUID `gorm:"type:uuid;index"`
	VehicleID  *uuid.UUID `gorm:"type:uuid"`
	Pickup     PointDTO   `gorm:"embedded;embeddedPrefix:pickup_"`
	Dropoff    PointDTO   `gorm:"embedded;embeddedPrefix:dropoff_"`
	Status     string     `gorm:"type:varchar(20);not null;index"`
	Deadline   time.Time  `gorm:"not null"`
	CreatedAt  time.Time  `gorm:"not null"`
	UpdatedAt  time.Time  `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "delivery_orders"
}

// PointDTO is a WGS84 position in degrees.
type PointDTO struct {
	Lat float64 `gorm:"type:double precision;not null"`
	Lon float64 `gorm:"type:double precision;not null"`
}

func fromDomain(o *order.DeliveryOrder) OrderDTO {
	return OrderDTO{
		ID:         o.ID().Bytes(),
		ClientName: o.ClientName(),
		DriverID:   kernel.OptionalBytes(o.DriverID()),
		VehicleID:  kernel.OptionalBytes(o.VehicleID()),
		Pickup:     PointDTO{Lat: o.Pickup().Lat(), Lon: o.Pickup().Lon()},
		Dropoff:    PointDTO{Lat: o.Dropoff().Lat(), Lon: o.Dropoff().Lon()},
		Status:     o.Status().String(),
		Deadline:   o.Deadline(),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
}

// toDomain restores the aggregate through RestoreDeliveryOrder, so a corrupted
// row fails with the same validation errors as user input.
func toDomain(dto OrderDTO) (*order.DeliveryOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.OptionalUUIDFrom(dto.DriverID)
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.OptionalUUIDFrom(dto.VehicleID)
	if err != nil {
		return nil, err
	}

	pickup, pickupErr := kernel.NewGeoPoint(dto.Pickup.Lat, dto.Pickup.Lon)
	dropoff, dropoffErr := kernel.NewGeoPoint(dto.Dropoff.Lat, dto.Dropoff.Lon)
	if err = errors.Join(pickupErr, dropoffErr); err != nil {
		return nil, err
	}

	return order.RestoreDeliveryOrder(
		id,
		dto.ClientName,
		pickup,
		dropoff,
		order.Status(dto.Status),
		dto.Deadline,
		driverID,
		vehicleID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
