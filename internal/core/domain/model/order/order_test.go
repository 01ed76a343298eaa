package order_test

import (
	"testing"
	"time"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/domain/model/order"
	"ecofleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPoints(t *testing.T) (kernel.GeoPoint, kernel.GeoPoint) {
	t.Helper()
	pickup, err := kernel.NewGeoPoint(-23.55052, -46.57421)
	require.NoError(t, err)
	dropoff, err := kernel.NewGeoPoint(-23.54052, -46.57421)
	require.NoError(t, err)
	return pickup, dropoff
}

func newTestOrder(t *testing.T) *order.DeliveryOrder {
	t.Helper()
	pickup, dropoff := newPoints(t)
	o, err := order.NewDeliveryOrder(kernel.NewUUID(), "Cliente X", pickup, dropoff, time.Now().Add(24*time.Hour))
	require.NoError(t, err)
	return o
}

func TestNewDeliveryOrder(t *testing.T) {
	t.Run("should create pending order without driver", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "Cliente X", o.ClientName())
		assert.Nil(t, o.DriverID())
		assert.Nil(t, o.VehicleID())
		assert.False(t, o.CreatedAt().IsZero())
	})

	t.Run("should reject blank client and missing points", func(t *testing.T) {
		_, err := order.NewDeliveryOrder(kernel.NewUUID(), "  ", kernel.GeoPoint{}, kernel.GeoPoint{}, time.Time{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		for _, field := range []string{"client_name", "pickup_location", "dropoff_location", "deadline"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("should reject zero id", func(t *testing.T) {
		pickup, dropoff := newPoints(t)
		_, err := order.NewDeliveryOrder(kernel.UUID{}, "Cliente", pickup, dropoff, time.Now())

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestDeliveryOrder_ChangeStatus_AllowsAnyTransition(t *testing.T) {
	o := newTestOrder(t)

	sequence := []order.Status{order.Cancelled, order.Pending, order.Delivered, order.InTransit, order.Pending}
	for _, s := range sequence {
		require.NoError(t, o.ChangeStatus(s))
		assert.Equal(t, s, o.Status())
	}

	err := o.ChangeStatus(order.Status("lost"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.Pending, o.Status())
}

func TestDeliveryOrder_AssignDriver(t *testing.T) {
	o := newTestOrder(t)
	driverID := kernel.NewUUID()

	require.NoError(t, o.AssignDriver(&driverID))
	require.NotNil(t, o.DriverID())
	assert.True(t, o.DriverID().IsEqual(driverID))

	require.NoError(t, o.AssignDriver(nil))
	assert.Nil(t, o.DriverID())

	zero := kernel.UUID{}
	require.ErrorIs(t, o.AssignDriver(&zero), errs.ErrValueIsInvalid)
}

func TestDeliveryOrder_Snapshot(t *testing.T) {
	o := newTestOrder(t)
	driverID := kernel.NewUUID()
	require.NoError(t, o.AssignDriver(&driverID))
	require.NoError(t, o.ChangeStatus(order.InTransit))

	snap := o.Snapshot()

	require.NoError(t, o.AssignDriver(nil))
	require.NoError(t, o.ChangeStatus(order.Delivered))

	assert.True(t, snap.Exists())
	assert.Equal(t, order.InTransit, snap.Status())
	require.NotNil(t, snap.DriverID())
	assert.True(t, snap.DriverID().IsEqual(driverID), "snapshot must not follow later mutations")
}

func TestNoPriorState(t *testing.T) {
	snap := order.NoPriorState()

	assert.False(t, snap.Exists())
	assert.Equal(t, order.Status(""), snap.Status())
	assert.Nil(t, snap.DriverID())
}

func TestRestoreDeliveryOrder(t *testing.T) {
	pickup, dropoff := newPoints(t)
	driverID := kernel.NewUUID()
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	updated := created.Add(time.Hour)

	o, err := order.RestoreDeliveryOrder(
		kernel.NewUUID(), "Cliente", pickup, dropoff, order.InTransit,
		created.Add(48*time.Hour), &driverID, nil, created, updated,
	)

	require.NoError(t, err)
	assert.Equal(t, order.InTransit, o.Status())
	assert.Equal(t, created, o.CreatedAt())
	assert.Equal(t, updated, o.UpdatedAt())
	assert.True(t, o.DriverID().IsEqual(driverID))

	_, err = order.RestoreDeliveryOrder(
		kernel.NewUUID(), "Cliente", pickup, dropoff, order.Status("bogus"),
		created, nil, nil, created, updated,
	)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus(t *testing.T) {
	tests := []struct {
		raw     string
		label   string
		wantErr bool
	}{
		{raw: "pending", label: "Pendente"},
		{raw: "in_transit", label: "Em transito"},
		{raw: "delivered", label: "Entregue"},
		{raw: "cancelled", label: "Cancelado"},
		{raw: "IN_TRANSIT", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			s, err := order.ParseStatus(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				field, _ := errs.FieldOf(err)
				assert.Equal(t, "status", field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.label, s.Label())
			assert.Equal(t, tt.raw, s.String())
		})
	}
}
