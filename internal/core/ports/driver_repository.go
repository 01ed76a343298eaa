package ports

import (
	"context"

	"ecofleet/internal/core/domain/model/driver"
	"ecofleet/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver profiles.
type DriverRepository interface {
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Get returns errs.ErrObjectNotFound for an unknown driver.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetByUserID returns the driver profile of a user account, or
	// errs.ErrObjectNotFound when the user is not a driver.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*driver.Driver, error)
}
