package dispatch

import (
	"context"
	"errors"
	"log/slog"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/domain/model/order"
	"ecofleet/internal/core/ports"
	"ecofleet/internal/pkg/errs"
)

// OrderLifecycleTracker reads the persisted (status, driver) pair of an order
// that is about to be written.
type OrderLifecycleTracker struct {
	logger *slog.Logger
}

func NewOrderLifecycleTracker(logger *slog.Logger) OrderLifecycleTracker {
	return OrderLifecycleTracker{logger: logger.With("component", "order_lifecycle_tracker")}
}

// Capture must run before the new values are written. A nil id (creation) or
// any lookup failure yields order.NoPriorState.
func (t OrderLifecycleTracker) Capture(ctx context.Context, repo ports.OrderRepository, id *kernel.UUID) order.Snapshot {
	if id == nil {
		return order.NoPriorState()
	}

	current, err := repo.Get(ctx, *id)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			t.logger.WarnContext(ctx, "Failed to read order state before save", "order_id", id.String(), "error", err)
		}
		return order.NoPriorState()
	}

	return current.Snapshot()
}
