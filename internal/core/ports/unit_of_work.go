package ports

import (
	"context"
)

// UnitOfWorkFactory hands every command its own UnitOfWork.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork groups the repositories touched by one command.
// After Begin they share a transaction; without it each call hits the database directly,
// which is how the dispatcher and the email worker read state.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	// Commit fails when Begin was not called.
	Commit(ctx context.Context) error
	// Rollback errors when nothing is open, so it is safe to defer after Begin.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	DriverRepository() DriverRepository
	NotificationRepository() NotificationRepository
	PushSubscriptionRepository() PushSubscriptionRepository
	AreaRepository() AreaRepository
}
