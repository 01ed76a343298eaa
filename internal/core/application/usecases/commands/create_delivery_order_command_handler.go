package commands

import (
	"context"
	"errors"

	"ecofleet/internal/core/domain/model/order"
	"ecofleet/internal/core/ports"
	"ecofleet/internal/pkg/errs"
)

// CreateDeliveryOrderCommandHandler persists a new order and hands the saved
// state to the SaveObserver once the transaction committed.
type CreateDeliveryOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	tracker    LifecycleTracker
	observer   SaveObserver
}

func NewCreateDeliveryOrderCommandHandler(
	uowFactory OrderUoWFactory,
	tracker LifecycleTracker,
	observer SaveObserver,
) CreateDeliveryOrderCommandHandler {
	return CreateDeliveryOrderCommandHandler{
		uowFactory: uowFactory,
		tracker:    tracker,
		observer:   observer,
	}
}

func (h *CreateDeliveryOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDeliveryOrderCommand,
) (*order.DeliveryOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := order.NewDeliveryOrder(cmd.OrderID(), cmd.ClientName(), cmd.Pickup(), cmd.Dropoff(), cmd.Deadline())
	if err != nil {
		return nil, err
	}
	if err = errors.Join(
		o.ChangeStatus(cmd.Status()),
		o.AssignDriver(cmd.DriverID()),
		o.AssignVehicle(cmd.VehicleID()),
	); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	prev := h.tracker.Capture(ctx, orderRepo, nil)

	if err = ensureDriverExists(ctx, uow.DriverRepository(), o); err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.observer.OnOrderSaved(ctx, prev, o, true)
	return o, nil
}

// ensureDriverExists turns a dangling driver reference into a validation error
// scoped to the driver field.
func ensureDriverExists(ctx context.Context, drivers ports.DriverRepository, o *order.DeliveryOrder) error {
	driverID := o.DriverID()
	if driverID == nil {
		return nil
	}
	if _, err := drivers.Get(ctx, *driverID); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewValueIsInvalidErrorWithCause("driver", err)
		}
		return err
	}
	return nil
}
