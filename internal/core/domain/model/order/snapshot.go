package order

import "ecofleet/internal/core/domain/model/kernel"

// Snapshot is the persisted (status, driver) pair of an order as it was
// immediately before a save. The zero value is the "no prior state" sentinel.
type Snapshot struct {
	exists   bool
	status   Status
	driverID *kernel.UUID
}

// NoPriorState is returned for orders that are being created or could not be read.
func NoPriorState() Snapshot {
	return Snapshot{}
}

// Exists is false for the NoPriorState sentinel.
func (s Snapshot) Exists() bool {
	return s.exists
}

// Status is empty when the snapshot has no prior state.
func (s Snapshot) Status() Status {
	return s.status
}

// DriverID is nil when no driver was assigned or there is no prior state.
func (s Snapshot) DriverID() *kernel.UUID {
	if s.driverID == nil {
		return nil
	}
	id := *s.driverID
	return &id
}
