package queries_test

import (
	"context"
	"testing"

	"ecofleet/internal/core/domain/model/area"
	"ecofleet/internal/core/domain/model/kernel"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAreaReader struct {
	mock.Mock
}

func (m *MockAreaReader) List(ctx context.Context) ([]*area.DeliveryArea, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*area.DeliveryArea), args.Error(1)
}

func square(minLon, minLat, maxLon, maxLat float64) orb.Polygon {
	return orb.Polygon{orb.Ring{
		{minLon, minLat}, {maxLon, minLat}, {maxLon, maxLat}, {minLon, maxLat}, {minLon, minLat},
	}}
}

func newArea(t *testing.T, name string, polygon orb.Polygon) *area.DeliveryArea {
	t.Helper()
	a, err := area.NewDeliveryArea(kernel.NewUUID(), name, polygon)
	require.NoError(t, err)
	return a
}
