package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/domain/model/notification"
	"ecofleet/internal/core/domain/model/order"
	"ecofleet/internal/core/domain/services"
	"ecofleet/internal/core/ports"
	"ecofleet/internal/pkg/metrics"
)

const (
	// AssignmentTitle is the title of the driver assignment notification.
	AssignmentTitle   = "Nova ordem atribuida"
	assignmentBodyFmt = "OS #%s atribuida para voce (cliente: %s)."
)

// Notifier is implemented by NotificationDispatcher.
type Notifier interface {
	Dispatch(
		ctx context.Context,
		userID *kernel.UUID,
		title, body string,
		orderID *kernel.UUID,
	) (*notification.Notification, error)
}

// DispatchCoordinator runs after an order save has committed.
type DispatchCoordinator struct {
	policy   services.DispatchPolicy
	drivers  ports.DriverRepository
	notifier Notifier
	queue    ports.TaskQueue
	metrics  *metrics.Recorder
	logger   *slog.Logger
}

func NewDispatchCoordinator(
	drivers ports.DriverRepository,
	notifier Notifier,
	queue ports.TaskQueue,
	recorder *metrics.Recorder,
	logger *slog.Logger,
) *DispatchCoordinator {
	return &DispatchCoordinator{
		policy:   services.NewDispatchPolicy(),
		drivers:  drivers,
		notifier: notifier,
		queue:    queue,
		metrics:  recorder,
		logger:   logger.With("component", "dispatch_coordinator"),
	}
}

// AssignmentBody formats the driver assignment notification body.
func AssignmentBody(o *order.DeliveryOrder) string {
	return fmt.Sprintf(assignmentBodyFmt, o.ID().String(), o.ClientName())
}

// OnOrderSaved triggers the side effects of one save and returns the decision
// that was applied. It never fails; problems are logged.
// The save has already committed, so the effects run even if the caller's ctx is cancelled.
func (c *DispatchCoordinator) OnOrderSaved(
	ctx context.Context,
	prev order.Snapshot,
	saved *order.DeliveryOrder,
	created bool,
) services.DispatchDecision {
	ctx = context.WithoutCancel(ctx)

	decision := c.policy.Decide(prev, saved, created)
	if decision.IsEmpty() {
		return decision
	}

	if decision.NotifyDriver {
		c.notifyDriver(ctx, saved, *decision.DriverID)
	}

	if decision.SendStatusEmail {
		c.metrics.SideEffect(metrics.EffectStatusEmail)
		if err := c.queue.EnqueueStatusEmail(ctx, saved.ID()); err != nil {
			c.logger.ErrorContext(ctx, "Failed to enqueue delivery status email",
				"order_id", saved.ID().String(), "error", err)
		}
	}

	return decision
}

func (c *DispatchCoordinator) notifyDriver(ctx context.Context, saved *order.DeliveryOrder, driverID kernel.UUID) {
	d, err := c.drivers.Get(ctx, driverID)
	if err != nil {
		c.logger.WarnContext(ctx, "Assigned driver could not be resolved to a user",
			"order_id", saved.ID().String(), "driver_id", driverID.String(), "error", err)
		return
	}

	c.metrics.SideEffect(metrics.EffectDriverNotification)

	userID := d.UserID()
	orderID := saved.ID()
	if _, err = c.notifier.Dispatch(ctx, &userID, AssignmentTitle, AssignmentBody(saved), &orderID); err != nil {
		c.logger.ErrorContext(ctx, "Failed to notify driver",
			"order_id", orderID.String(), "driver_id", driverID.String(), "error", err)
	}
}
