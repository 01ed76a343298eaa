package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/domain/model/order"
	"ecofleet/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetDeliveryOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryOrderQueryHandler(db *gorm.DB) GetDeliveryOrderQueryHandler {
	return GetDeliveryOrderQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for an unknown order.
func (h GetDeliveryOrderQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryOrderQuery,
) (GetDeliveryOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryOrderQueryResponse{}, err
	}

	var (
		id                     uuid.UUID
		driverID, vehicleID    *uuid.UUID
		clientName, status     string
		pickupLat, pickupLon   float64
		dropoffLat, dropoffLon float64
		deadline               time.Time
		createdAt, updatedAt   time.Time
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_name,
			driver_id,
			vehicle_id,
			pickup_lat,
			pickup_lon,
			dropoff_lat,
			dropoff_lon,
			status,
			deadline,
			created_at,
			updated_at
		FROM delivery_orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id, &clientName, &driverID, &vehicleID,
		&pickupLat, &pickupLon, &dropoffLat, &dropoffLon,
		&status, &deadline, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetDeliveryOrderQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
				"order", query.OrderID().String(), err)
		}
		return GetDeliveryOrderQueryResponse{}, err
	}

	resp := GetDeliveryOrderQueryResponse{
		ClientName: clientName,
		Deadline:   deadline,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetDeliveryOrderQueryResponse{}, err
	}
	if resp.DriverID, err = kernel.OptionalUUIDFrom(driverID); err != nil {
		return GetDeliveryOrderQueryResponse{}, err
	}
	if resp.VehicleID, err = kernel.OptionalUUIDFrom(vehicleID); err != nil {
		return GetDeliveryOrderQueryResponse{}, err
	}
	if resp.Pickup, err = kernel.NewGeoPoint(pickupLat, pickupLon); err != nil {
		return GetDeliveryOrderQueryResponse{}, err
	}
	if resp.Dropoff, err = kernel.NewGeoPoint(dropoffLat, dropoffLon); err != nil {
		return GetDeliveryOrderQueryResponse{}, err
	}
	if resp.Status, err = order.ParseStatus(status); err != nil {
		return GetDeliveryOrderQueryResponse{}, err
	}

	return resp, nil
}
