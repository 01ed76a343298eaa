package order

import (
	"errors"
	"strings"
	"time"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when a DeliveryOrder was not created through
	// NewDeliveryOrder or RestoreDeliveryOrder.
	ErrOrderIsNotConstructed = errors.New("DeliveryOrder must be created via NewDeliveryOrder constructor")
)

// DeliveryOrder is the aggregate root for a single pickup-to-dropoff delivery.
//
// DeliveryOrder follows these invariants:
//   - Must have a valid unique identifier
//   - Client name is not blank
//   - Pickup and dropoff are valid WGS84 points
//   - Status is one of the known statuses; any status may follow any other
//
// Driver and vehicle references are optional and may be cleared.
type DeliveryOrder struct {
	id         kernel.UUID
	clientName string
	driverID   *kernel.UUID
	vehicleID  *kernel.UUID
	pickup     kernel.GeoPoint
	dropoff    kernel.GeoPoint
	status     Status
	deadline   time.Time
	createdAt  time.Time
	updatedAt  time.Time

	isConstructed bool
}

// NewDeliveryOrder creates a pending order without driver or vehicle.
//
// Example:
//
//	pickup, _ := kernel.NewGeoPoint(-23.5505, -46.5742)
//	dropoff, _ := kernel.NewGeoPoint(-23.5405, -46.5742)
//	o, err := order.NewDeliveryOrder(kernel.NewUUID(), "Cliente X", pickup, dropoff, time.Now().Add(24*time.Hour))
func NewDeliveryOrder(
	id kernel.UUID,
	clientName string,
	pickup kernel.GeoPoint,
	dropoff kernel.GeoPoint,
	deadline time.Time,
) (*DeliveryOrder, error) {
	now := time.Now().UTC()
	o := &DeliveryOrder{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientName(clientName),
		o.setPickup(pickup),
		o.setDropoff(dropoff),
		o.setDeadline(deadline),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreDeliveryOrder rebuilds an order from persisted state. It runs the same
// validation as NewDeliveryOrder so corrupted rows are rejected.
func RestoreDeliveryOrder(
	id kernel.UUID,
	clientName string,
	pickup kernel.GeoPoint,
	dropoff kernel.GeoPoint,
	status Status,
	deadline time.Time,
	driverID *kernel.UUID,
	vehicleID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) (*DeliveryOrder, error) {
	o := &DeliveryOrder{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientName(clientName),
		o.setPickup(pickup),
		o.setDropoff(dropoff),
		o.setDeadline(deadline),
		o.ChangeStatus(status),
		o.AssignDriver(driverID),
		o.AssignVehicle(vehicleID),
	); err != nil {
		return nil, err
	}
	o.updatedAt = updatedAt

	return o, nil
}

// Validate ensures the order was built through a constructor.
func (o *DeliveryOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *DeliveryOrder) ID() kernel.UUID {
	return o.id
}

func (o *DeliveryOrder) ClientName() string {
	return o.clientName
}

// DriverID returns the assigned driver, or nil when unassigned.
func (o *DeliveryOrder) DriverID() *kernel.UUID {
	return o.driverID
}

// VehicleID returns the assigned vehicle, or nil when unassigned.
func (o *DeliveryOrder) VehicleID() *kernel.UUID {
	return o.vehicleID
}

func (o *DeliveryOrder) Pickup() kernel.GeoPoint {
	return o.pickup
}

func (o *DeliveryOrder) Dropoff() kernel.GeoPoint {
	return o.dropoff
}

func (o *DeliveryOrder) Status() Status {
	return o.status
}

func (o *DeliveryOrder) Deadline() time.Time {
	return o.deadline
}

func (o *DeliveryOrder) CreatedAt() time.Time {
	return o.createdAt
}

func (o *DeliveryOrder) UpdatedAt() time.Time {
	return o.updatedAt
}

// Snapshot captures the fields watched by the dispatch flow.
func (o *DeliveryOrder) Snapshot() Snapshot {
	s := Snapshot{exists: true, status: o.status}
	if o.driverID != nil {
		id := *o.driverID
		s.driverID = &id
	}
	return s
}

// ChangeStatus sets any valid status. No transition graph is enforced.
func (o *DeliveryOrder) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	o.touch()
	return nil
}

// AssignDriver sets the driver reference; nil unassigns.
func (o *DeliveryOrder) AssignDriver(driverID *kernel.UUID) error {
	if driverID == nil {
		o.driverID = nil
		o.touch()
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("driver", err)
	}
	id := *driverID
	o.driverID = &id
	o.touch()
	return nil
}

// AssignVehicle sets the vehicle reference; nil unassigns.
func (o *DeliveryOrder) AssignVehicle(vehicleID *kernel.UUID) error {
	if vehicleID == nil {
		o.vehicleID = nil
		o.touch()
		return nil
	}
	if err := vehicleID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("vehicle", err)
	}
	id := *vehicleID
	o.vehicleID = &id
	o.touch()
	return nil
}

func (o *DeliveryOrder) RenameClient(clientName string) error {
	if err := o.setClientName(clientName); err != nil {
		return err
	}
	o.touch()
	return nil
}

func (o *DeliveryOrder) MovePickup(p kernel.GeoPoint) error {
	if err := o.setPickup(p); err != nil {
		return err
	}
	o.touch()
	return nil
}

func (o *DeliveryOrder) MoveDropoff(p kernel.GeoPoint) error {
	if err := o.setDropoff(p); err != nil {
		return err
	}
	o.touch()
	return nil
}

func (o *DeliveryOrder) Reschedule(deadline time.Time) error {
	if err := o.setDeadline(deadline); err != nil {
		return err
	}
	o.touch()
	return nil
}

func (o *DeliveryOrder) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *DeliveryOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *DeliveryOrder) setClientName(clientName string) error {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return errs.NewValueIsRequiredError("client_name")
	}
	o.clientName = clientName
	return nil
}

func (o *DeliveryOrder) setPickup(p kernel.GeoPoint) error {
	if err := p.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup_location", err)
	}
	o.pickup = p
	return nil
}

func (o *DeliveryOrder) setDropoff(p kernel.GeoPoint) error {
	if err := p.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("dropoff_location", err)
	}
	o.dropoff = p
	return nil
}

func (o *DeliveryOrder) setDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return errs.NewValueIsRequiredError("deadline")
	}
	o.deadline = deadline
	return nil
}
