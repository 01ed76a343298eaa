// Package ports defines the contracts between the application core and its
// adapters: persistence, push delivery, mail transport and the task queue.
package ports

import (
	"context"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for delivery orders.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.DeliveryOrder) error

	// Update persists changes to an existing order.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Update(ctx context.Context, aggregate *order.DeliveryOrder) error

	// Get retrieves an order by identifier.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.DeliveryOrder, error)
}
