// Package commands contains business operations that modify system state.
// Every handler validates its command, runs its writes inside a unit of work
// and triggers side effects only after the commit succeeded.
package commands

import (
	"context"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/domain/model/order"
	"ecofleet/internal/core/domain/services"
	"ecofleet/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	AreaRepoFactory interface {
		AreaRepository() ports.AreaRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	SubscriptionRepoFactory interface {
		PushSubscriptionRepository() ports.PushSubscriptionRepository
	}

	// OrderUoW covers order saves. Drivers are read to check assignments and
	// the caller's own driver profile.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   prev := tracker.Capture(ctx, uow.OrderRepository(), &id)
	//   // ... mutate and Update
	//
	//   err = uow.Commit(ctx)
	//   coordinator.OnOrderSaved(ctx, prev, saved, false)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	AreaUoW interface {
		TxManager
		AreaRepoFactory
	}

	AreaUoWFactory interface {
		Create() AreaUoW
	}

	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	SubscriptionUoW interface {
		TxManager
		SubscriptionRepoFactory
	}

	SubscriptionUoWFactory interface {
		Create() SubscriptionUoW
	}
)

// Collaborators of the order save path.
type (
	// LifecycleTracker reads the watched fields of an order before it is written.
	LifecycleTracker interface {
		Capture(ctx context.Context, repo ports.OrderRepository, id *kernel.UUID) order.Snapshot
	}

	// SaveObserver receives every committed order save.
	SaveObserver interface {
		OnOrderSaved(
			ctx context.Context,
			prev order.Snapshot,
			saved *order.DeliveryOrder,
			created bool,
		) services.DispatchDecision
	}
)
