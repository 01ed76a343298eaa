package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/domain/model/order"
	"ecofleet/internal/pkg/errs"
	"ecofleet/internal/pkg/guard"
)

var (
	ErrUpdateDeliveryOrderCommandIsNotConstructed = errors.New(
		"UpdateDeliveryOrderCommand must be created via NewUpdateDeliveryOrderCommand constructor",
	)
	ErrNotADriver               = fmt.Errorf("%w: only drivers can update orders", errs.ErrPermissionDenied)
	ErrOrderNotAssignedToCaller = fmt.Errorf("%w: order is not assigned to you", errs.ErrPermissionDenied)
)

// Actor is the authenticated caller of a command.
type Actor struct {
	UserID  kernel.UUID
	IsStaff bool
}

// OrderChanges lists the fields a partial update touches. Nil pointers are
// left untouched; the Change flags allow clearing driver and vehicle.
type OrderChanges struct {
	ClientName *string
	Pickup     *kernel.GeoPoint
	Dropoff    *kernel.GeoPoint
	Status     *string
	Deadline   *time.Time

	ChangeDriver  bool
	DriverID      *kernel.UUID
	ChangeVehicle bool
	VehicleID     *kernel.UUID
}

// UpdateDeliveryOrderCommand applies a partial update on behalf of an actor.
// Staff may change every field. Any other caller may only change the status
// of an order assigned to their own driver profile; other fields are dropped.
type UpdateDeliveryOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   Actor
	changes OrderChanges
	status  *order.Status

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryOrderCommand(
	orderID kernel.UUID,
	actor Actor,
	changes OrderChanges,
) (UpdateDeliveryOrderCommand, error) {
	cmd := UpdateDeliveryOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setChanges(actor, changes),
	); err != nil {
		return UpdateDeliveryOrderCommand{}, err
	}

	return cmd, nil
}

func (c UpdateDeliveryOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryOrderCommandIsNotConstructed)
}

func (c UpdateDeliveryOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateDeliveryOrderCommand) Actor() Actor {
	return c.actor
}

func (c UpdateDeliveryOrderCommand) Changes() OrderChanges {
	return c.changes
}

// Status returns the parsed target status of a staff update, or nil when unchanged.
func (c UpdateDeliveryOrderCommand) Status() *order.Status {
	return c.status
}

func (c *UpdateDeliveryOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateDeliveryOrderCommand) setActor(actor Actor) error {
	if err := actor.UserID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	c.actor = actor
	return nil
}

// setChanges validates staff input only. A driver's status is checked by the
// handler once the order is known to be theirs.
func (c *UpdateDeliveryOrderCommand) setChanges(actor Actor, changes OrderChanges) error {
	if !actor.IsStaff {
		c.changes = OrderChanges{Status: changes.Status}
		return nil
	}

	if changes.Status != nil {
		status, err := order.ParseStatus(*changes.Status)
		if err != nil {
			return err
		}
		c.status = &status
	}
	if changes.ClientName != nil && strings.TrimSpace(*changes.ClientName) == "" {
		return errs.NewValueIsRequiredError("client_name")
	}

	c.changes = changes
	return nil
}
