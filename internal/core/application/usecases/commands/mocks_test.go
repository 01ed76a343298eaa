package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"ecofleet/internal/core/application/usecases/commands"
	"ecofleet/internal/core/domain/model/area"
	"ecofleet/internal/core/domain/model/driver"
	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/domain/model/notification"
	"ecofleet/internal/core/domain/model/order"
	"ecofleet/internal/core/domain/services"
	"ecofleet/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPoints(t *testing.T) (kernel.GeoPoint, kernel.GeoPoint) {
	t.Helper()
	pickup, err := kernel.NewGeoPoint(-23.5414685, -46.5657155)
	require.NoError(t, err)
	dropoff, err := kernel.NewGeoPoint(-23.55, -46.63)
	require.NoError(t, err)
	return pickup, dropoff
}

func newStoredOrder(t *testing.T, status order.Status, driverID *kernel.UUID) *order.DeliveryOrder {
	t.Helper()
	pickup, dropoff := newPoints(t)
	now := time.Now().UTC()
	o, err := order.RestoreDeliveryOrder(
		kernel.NewUUID(), "Mercado Bom Preco", pickup, dropoff, status,
		now.Add(24*time.Hour), driverID, nil, now, now,
	)
	require.NoError(t, err)
	return o
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.DeliveryOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.DeliveryOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.DeliveryOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.DeliveryOrder), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

type MockAreaRepository struct{ mock.Mock }

func (m *MockAreaRepository) Add(ctx context.Context, a *area.DeliveryArea) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAreaRepository) Get(ctx context.Context, id kernel.UUID) (*area.DeliveryArea, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*area.DeliveryArea), args.Error(1)
}

func (m *MockAreaRepository) List(ctx context.Context) ([]*area.DeliveryArea, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*area.DeliveryArea), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListByUser(
	ctx context.Context, userID kernel.UUID,
) ([]*notification.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID kernel.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockSubscriptionRepository struct{ mock.Mock }

func (m *MockSubscriptionRepository) Upsert(
	ctx context.Context, s *notification.PushSubscription,
) (*notification.PushSubscription, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.PushSubscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Get(ctx context.Context, id kernel.UUID) (*notification.PushSubscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.PushSubscription), args.Error(1)
}

func (m *MockSubscriptionRepository) ListByUser(
	ctx context.Context, userID kernel.UUID,
) ([]*notification.PushSubscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.PushSubscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	return m.Called().Get(0).(ports.DriverRepository)
}

func (m *MockUoW) AreaRepository() ports.AreaRepository {
	return m.Called().Get(0).(ports.AreaRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	return m.Called().Get(0).(ports.NotificationRepository)
}

func (m *MockUoW) PushSubscriptionRepository() ports.PushSubscriptionRepository {
	return m.Called().Get(0).(ports.PushSubscriptionRepository)
}

type orderUoWFactory struct{ uow *MockUoW }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type areaUoWFactory struct{ uow *MockUoW }

func (f areaUoWFactory) Create() commands.AreaUoW { return f.uow }

type notificationUoWFactory struct{ uow *MockUoW }

func (f notificationUoWFactory) Create() commands.NotificationUoW { return f.uow }

type subscriptionUoWFactory struct{ uow *MockUoW }

func (f subscriptionUoWFactory) Create() commands.SubscriptionUoW { return f.uow }

type MockSaveObserver struct{ mock.Mock }

func (m *MockSaveObserver) OnOrderSaved(
	ctx context.Context,
	prev order.Snapshot,
	saved *order.DeliveryOrder,
	created bool,
) services.DispatchDecision {
	args := m.Called(ctx, prev, saved, created)
	return args.Get(0).(services.DispatchDecision)
}

type MockLifecycleTracker struct{ mock.Mock }

func (m *MockLifecycleTracker) Capture(
	ctx context.Context, repo ports.OrderRepository, id *kernel.UUID,
) order.Snapshot {
	return m.Called(ctx, repo, id).Get(0).(order.Snapshot)
}

type MockMailer struct{ mock.Mock }

func (m *MockMailer) Send(ctx context.Context, email ports.Email) error {
	return m.Called(ctx, email).Error(0)
}
