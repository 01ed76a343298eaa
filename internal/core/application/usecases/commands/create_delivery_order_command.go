package commands

import (
	"errors"
	"strings"
	"time"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/domain/model/order"
	"ecofleet/internal/pkg/errs"
	"ecofleet/internal/pkg/guard"
)

var ErrCreateDeliveryOrderCommandIsNotConstructed = errors.New(
	"CreateDeliveryOrderCommand must be created via NewCreateDeliveryOrderCommand constructor",
)

// CreateDeliveryOrderCommand registers a new delivery order. Status defaults
// to pending; driver and vehicle are optional.
//
// Example:
//
//	cmd, err := NewCreateDeliveryOrderCommand(kernel.NewUUID(), "Mercado Bom Preco",
//	    pickup, dropoff, deadline, "", &driverID, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateDeliveryOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	clientName string
	pickup     kernel.GeoPoint
	dropoff    kernel.GeoPoint
	deadline   time.Time
	status     order.Status
	driverID   *kernel.UUID
	vehicleID  *kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateDeliveryOrderCommand(
	orderID kernel.UUID,
	clientName string,
	pickup kernel.GeoPoint,
	dropoff kernel.GeoPoint,
	deadline time.Time,
	status string,
	driverID *kernel.UUID,
	vehicleID *kernel.UUID,
) (CreateDeliveryOrderCommand, error) {
	cmd := CreateDeliveryOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientName(clientName),
		cmd.setPickup(pickup),
		cmd.setDropoff(dropoff),
		cmd.setDeadline(deadline),
		cmd.setStatus(status),
		cmd.setDriverID(driverID),
		cmd.setVehicleID(vehicleID),
	); err != nil {
		return CreateDeliveryOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateDeliveryOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryOrderCommandIsNotConstructed)
}

func (c CreateDeliveryOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateDeliveryOrderCommand) ClientName() string {
	return c.clientName
}

func (c CreateDeliveryOrderCommand) Pickup() kernel.GeoPoint {
	return c.pickup
}

func (c CreateDeliveryOrderCommand) Dropoff() kernel.GeoPoint {
	return c.dropoff
}

func (c CreateDeliveryOrderCommand) Deadline() time.Time {
	return c.deadline
}

func (c CreateDeliveryOrderCommand) Status() order.Status {
	return c.status
}

func (c CreateDeliveryOrderCommand) DriverID() *kernel.UUID {
	return c.driverID
}

func (c CreateDeliveryOrderCommand) VehicleID() *kernel.UUID {
	return c.vehicleID
}

func (c *CreateDeliveryOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateDeliveryOrderCommand) setClientName(clientName string) error {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return errs.NewValueIsRequiredError("client_name")
	}
	c.clientName = clientName
	return nil
}

func (c *CreateDeliveryOrderCommand) setPickup(p kernel.GeoPoint) error {
	if err := p.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup_location", err)
	}
	c.pickup = p
	return nil
}

func (c *CreateDeliveryOrderCommand) setDropoff(p kernel.GeoPoint) error {
	if err := p.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("dropoff_location", err)
	}
	c.dropoff = p
	return nil
}

func (c *CreateDeliveryOrderCommand) setDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return errs.NewValueIsRequiredError("deadline")
	}
	c.deadline = deadline
	return nil
}

func (c *CreateDeliveryOrderCommand) setStatus(raw string) error {
	if raw == "" {
		c.status = order.Pending
		return nil
	}
	status, err := order.ParseStatus(raw)
	if err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *CreateDeliveryOrderCommand) setDriverID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("driver", err)
	}
	v := *id
	c.driverID = &v
	return nil
}

func (c *CreateDeliveryOrderCommand) setVehicleID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("vehicle", err)
	}
	v := *id
	c.vehicleID = &v
	return nil
}
