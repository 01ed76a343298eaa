// Package postgres provides the GORM-based Unit of Work shared by every
// repository. Repositories obtained from a unit of work run inside its
// transaction when one is active, or directly against the database otherwise.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// A unit of work is not meant to be shared between goroutines running
// separate transactions; create one per command.
package postgres

import (
	"context"
	"sync"

	"ecofleet/internal/adapters/out/postgres/arearepo"
	"ecofleet/internal/adapters/out/postgres/driverrepo"
	"ecofleet/internal/adapters/out/postgres/notificationrepo"
	"ecofleet/internal/adapters/out/postgres/orderrepo"
	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/ports"

	"gorm.io/gorm"
)

type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances on one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm is Create without the interface conversion, for callers that
// need GetTrackedAggregates.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction and records the
// aggregates written inside it.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB

	mu                sync.Mutex
	trackedAggregates []trackedAggregate
}

// Begin is a no-op when a transaction is already active.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	uow.tx = tx

	uow.mu.Lock()
	uow.trackedAggregates = nil
	uow.mu.Unlock()
	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction after Commit, which lets
// handlers defer it unconditionally.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil

	uow.mu.Lock()
	uow.trackedAggregates = nil
	uow.mu.Unlock()
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PushSubscriptionRepository() ports.PushSubscriptionRepository {
	return notificationrepo.NewGormSubscriptionRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) AreaRepository() ports.AreaRepository {
	return arearepo.NewGormAreaRepository(uow.conn(), uow)
}

// TrackAggregate is called by repositories after a successful write.
// Writes made outside a transaction are not tracked, so a long-lived
// unit of work used for plain reads does not accumulate aggregates.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	if uow.tx == nil {
		return
	}

	uow.mu.Lock()
	defer uow.mu.Unlock()
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// GetTrackedAggregates returns the aggregates written in the current or
// last committed transaction.
func (uow *GormUnitOfWork) GetTrackedAggregates() []any {
	uow.mu.Lock()
	defer uow.mu.Unlock()

	result := make([]any, 0, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		result = append(result, tracked.Aggregate)
	}
	return result
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
