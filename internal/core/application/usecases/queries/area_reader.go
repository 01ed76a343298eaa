// Package queries contains read-only operations. Handlers either scan rows
// with raw SQL through gorm or read aggregates through a narrow reader port.
package queries

import (
	"context"

	"ecofleet/internal/core/domain/model/area"
)

// AreaReader lists the stored delivery areas ordered by name.
// ports.AreaRepository satisfies it.
type AreaReader interface {
	List(ctx context.Context) ([]*area.DeliveryArea, error)
}
