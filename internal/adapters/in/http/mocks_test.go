package http_test

import (
	"context"

	"ecofleet/internal/core/application/usecases/commands"
	"ecofleet/internal/core/application/usecases/queries"
	"ecofleet/internal/core/domain/model/notification"
	"ecofleet/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrder struct{ mock.Mock }

func (m *MockCreateOrder) Handle(ctx context.Context, cmd commands.CreateDeliveryOrderCommand) (*order.DeliveryOrder, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.DeliveryOrder), args.Error(1)
}

type MockUpdateOrder struct{ mock.Mock }

func (m *MockUpdateOrder) Handle(ctx context.Context, cmd commands.UpdateDeliveryOrderCommand) (*order.DeliveryOrder, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.DeliveryOrder), args.Error(1)
}

type MockGetOrder struct{ mock.Mock }

func (m *MockGetOrder) Handle(
	ctx context.Context,
	query queries.GetDeliveryOrderQuery,
) (queries.GetDeliveryOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetDeliveryOrderQueryResponse), args.Error(1)
}

type MockCheckCoverage struct{ mock.Mock }

func (m *MockCheckCoverage) Handle(
	ctx context.Context,
	query queries.CheckCoverageQuery,
) (queries.CheckCoverageQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.CheckCoverageQueryResponse), args.Error(1)
}

type MockCreateArea struct{ mock.Mock }

func (m *MockCreateArea) Handle(
	ctx context.Context,
	cmd commands.CreateDeliveryAreaCommand,
) (commands.CreateDeliveryAreaResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreateDeliveryAreaResult), args.Error(1)
}

type MockListAreas struct{ mock.Mock }

func (m *MockListAreas) Handle(
	ctx context.Context,
	query queries.ListDeliveryAreasQuery,
) ([]queries.DeliveryAreaResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.DeliveryAreaResponse), args.Error(1)
}

type MockGetNotifications struct{ mock.Mock }

func (m *MockGetNotifications) Handle(
	ctx context.Context,
	query queries.GetNotificationsQuery,
) ([]queries.GetNotificationsQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetNotificationsQueryResponse), args.Error(1)
}

type MockMarkRead struct{ mock.Mock }

func (m *MockMarkRead) Handle(ctx context.Context, cmd commands.MarkNotificationsReadCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

type MockRegisterSubscription struct{ mock.Mock }

func (m *MockRegisterSubscription) Handle(
	ctx context.Context,
	cmd commands.RegisterPushSubscriptionCommand,
) (*notification.PushSubscription, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.PushSubscription), args.Error(1)
}

type MockDeleteSubscription struct{ mock.Mock }

func (m *MockDeleteSubscription) Handle(ctx context.Context, cmd commands.DeletePushSubscriptionCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDashboard struct{ mock.Mock }

func (m *MockDashboard) Handle(
	ctx context.Context,
	query queries.GetDashboardSummaryQuery,
) (queries.GetDashboardSummaryQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetDashboardSummaryQueryResponse), args.Error(1)
}

type staticKey string

func (k staticKey) PublicKey() string {
	return string(k)
}
