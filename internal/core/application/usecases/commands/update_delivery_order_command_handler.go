package commands

import (
	"context"
	"errors"

	"ecofleet/internal/core/domain/model/driver"
	"ecofleet/internal/core/domain/model/order"
	"ecofleet/internal/pkg/errs"
)

// UpdateDeliveryOrderCommandHandler is the order save path for existing
// orders: the prior state is captured before the write and the coordinator
// is called after the commit.
type UpdateDeliveryOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	tracker    LifecycleTracker
	observer   SaveObserver
}

func NewUpdateDeliveryOrderCommandHandler(
	uowFactory OrderUoWFactory,
	tracker LifecycleTracker,
	observer SaveObserver,
) UpdateDeliveryOrderCommandHandler {
	return UpdateDeliveryOrderCommandHandler{
		uowFactory: uowFactory,
		tracker:    tracker,
		observer:   observer,
	}
}

func (h *UpdateDeliveryOrderCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDeliveryOrderCommand,
) (*order.DeliveryOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orderID := cmd.OrderID()
	prev := h.tracker.Capture(ctx, orderRepo, &orderID)

	var profile *driver.Driver
	if !cmd.Actor().IsStaff {
		var err error
		if profile, err = driverProfile(ctx, uow, cmd.Actor()); err != nil {
			return nil, err
		}
	}

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	status := cmd.Status()
	if profile != nil {
		if o.DriverID() == nil || !o.DriverID().IsEqual(profile.ID()) {
			return nil, ErrOrderNotAssignedToCaller
		}
		if status, err = requiredStatus(cmd.Changes().Status); err != nil {
			return nil, err
		}
	}

	if err = applyChanges(o, cmd.Changes(), status); err != nil {
		return nil, err
	}
	if cmd.Changes().ChangeDriver {
		if err = ensureDriverExists(ctx, uow.DriverRepository(), o); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.observer.OnOrderSaved(ctx, prev, o, false)
	return o, nil
}

func driverProfile(ctx context.Context, uow OrderUoW, actor Actor) (*driver.Driver, error) {
	profile, err := uow.DriverRepository().GetByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrNotADriver
		}
		return nil, err
	}
	return profile, nil
}

// requiredStatus parses the one member a driver may send.
func requiredStatus(raw *string) (*order.Status, error) {
	if raw == nil {
		return nil, errs.NewValueIsRequiredError("status")
	}
	status, err := order.ParseStatus(*raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func applyChanges(o *order.DeliveryOrder, changes OrderChanges, status *order.Status) error {
	var errList []error

	if changes.ClientName != nil {
		errList = append(errList, o.RenameClient(*changes.ClientName))
	}
	if changes.Pickup != nil {
		errList = append(errList, o.MovePickup(*changes.Pickup))
	}
	if changes.Dropoff != nil {
		errList = append(errList, o.MoveDropoff(*changes.Dropoff))
	}
	if changes.Deadline != nil {
		errList = append(errList, o.Reschedule(*changes.Deadline))
	}
	if status != nil {
		errList = append(errList, o.ChangeStatus(*status))
	}
	if changes.ChangeDriver {
		errList = append(errList, o.AssignDriver(changes.DriverID))
	}
	if changes.ChangeVehicle {
		errList = append(errList, o.AssignVehicle(changes.VehicleID))
	}

	return errors.Join(errList...)
}
