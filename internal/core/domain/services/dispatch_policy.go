package services

import (
	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/domain/model/order"
)

// DispatchDecision lists the side effects one order save must trigger.
// Both, one or neither may be set; they are evaluated independently.
type DispatchDecision struct {
	// NotifyDriver is set when a driver was newly assigned by this save.
	NotifyDriver bool
	// DriverID is the driver to notify; nil unless NotifyDriver is set.
	DriverID *kernel.UUID
	// SendStatusEmail is set when an existing order moved into in_transit.
	SendStatusEmail bool
}

// IsEmpty reports whether the save triggers nothing.
func (d DispatchDecision) IsEmpty() bool {
	return !d.NotifyDriver && !d.SendStatusEmail
}

// DispatchPolicy compares the state of an order before and after a save.
//
// Rules:
//   - Driver notification: the order has a driver and it was either just created
//     or the driver differs from the one in the snapshot
//   - Status email: the order already existed, its status changed and the new
//     status is in_transit
//
// Example:
//
//	prev := order.NoPriorState()
//	decision := services.NewDispatchPolicy().Decide(prev, o, true)
//	if decision.NotifyDriver {
//	    // notify the user behind decision.DriverID
//	}
type DispatchPolicy struct{}

func NewDispatchPolicy() DispatchPolicy {
	return DispatchPolicy{}
}

// Decide never fails. A nil or unconstructed order yields an empty decision.
func (DispatchPolicy) Decide(prev order.Snapshot, current *order.DeliveryOrder, created bool) DispatchDecision {
	var decision DispatchDecision
	if current.Validate() != nil {
		return decision
	}

	driverID := current.DriverID()
	if driverID != nil && (created || !kernel.SameOptionalUUID(prev.DriverID(), driverID)) {
		id := *driverID
		decision.NotifyDriver = true
		decision.DriverID = &id
	}

	if !created && prev.Status() != current.Status() && current.Status() == order.InTransit {
		decision.SendStatusEmail = true
	}

	return decision
}
