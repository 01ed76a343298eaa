package http

import (
	"encoding/json"
	"time"

	"ecofleet/internal/core/application/usecases/queries"
	"ecofleet/internal/core/domain/model/area"
	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/domain/model/order"
	"ecofleet/internal/core/domain/services"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

type CreateDeliveryOrderRequest struct {
	ClientName      string          `json:"client_name"`
	PickupLocation  json.RawMessage `json:"pickup_location"`
	DropoffLocation json.RawMessage `json:"dropoff_location"`
	Status          string          `json:"status"`
	Deadline        json.RawMessage `json:"deadline"`
	Driver          *string         `json:"driver"`
	Vehicle         *string         `json:"vehicle"`
}

// UpdateDeliveryOrderRequest is a partial update. Driver and vehicle set to
// null unassign; omitted members are left unchanged.
type UpdateDeliveryOrderRequest struct {
	ClientName      *string         `json:"client_name"`
	PickupLocation  json.RawMessage `json:"pickup_location"`
	DropoffLocation json.RawMessage `json:"dropoff_location"`
	Status          *string         `json:"status"`
	Deadline        json.RawMessage `json:"deadline"`
	Driver          json.RawMessage `json:"driver"`
	Vehicle         json.RawMessage `json:"vehicle"`
}

type DeliveryOrderResponse struct {
	ID              string            `json:"id"`
	ClientName      string            `json:"client_name"`
	PickupLocation  *geojson.Geometry `json:"pickup_location"`
	DropoffLocation *geojson.Geometry `json:"dropoff_location"`
	Status          string            `json:"status"`
	StatusLabel     string            `json:"status_label"`
	Driver          *string           `json:"driver"`
	Vehicle         *string           `json:"vehicle"`
	Deadline        time.Time         `json:"deadline"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func orderResponse(o *order.DeliveryOrder) DeliveryOrderResponse {
	return DeliveryOrderResponse{
		ID:              o.ID().String(),
		ClientName:      o.ClientName(),
		PickupLocation:  pointGeometry(o.Pickup()),
		DropoffLocation: pointGeometry(o.Dropoff()),
		Status:          o.Status().String(),
		StatusLabel:     o.Status().Label(),
		Driver:          optionalString(o.DriverID()),
		Vehicle:         optionalString(o.VehicleID()),
		Deadline:        o.Deadline(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func orderQueryResponse(o queries.GetDeliveryOrderQueryResponse) DeliveryOrderResponse {
	return DeliveryOrderResponse{
		ID:              o.ID.String(),
		ClientName:      o.ClientName,
		PickupLocation:  pointGeometry(o.Pickup),
		DropoffLocation: pointGeometry(o.Dropoff),
		Status:          o.Status.String(),
		StatusLabel:     o.Status.Label(),
		Driver:          optionalString(o.DriverID),
		Vehicle:         optionalString(o.VehicleID),
		Deadline:        o.Deadline,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

type CoverageCheckRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type AreaRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CoverageCheckResponse struct {
	Covered bool      `json:"covered"`
	Areas   []AreaRef `json:"areas"`
}

type CreateDeliveryAreaRequest struct {
	Name            string          `json:"name"`
	Area            json.RawMessage `json:"area"`
	CenterLatitude  *float64        `json:"center_latitude"`
	CenterLongitude *float64        `json:"center_longitude"`
	RadiusKm        *float64        `json:"radius_km"`
}

type DeliveryAreaResponse struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Area              *geojson.Geometry `json:"area"`
	CentroidLatitude  *float64          `json:"centroid_latitude"`
	CentroidLongitude *float64          `json:"centroid_longitude"`
	EstimatedRadiusKm *float64          `json:"estimated_radius_km"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

func areaResponse(
	id kernel.UUID,
	name string,
	polygon orb.Polygon,
	summary services.AreaSummary,
	createdAt, updatedAt time.Time,
) DeliveryAreaResponse {
	resp := DeliveryAreaResponse{
		ID:                id.String(),
		Name:              name,
		Area:              geojson.NewGeometry(polygon),
		EstimatedRadiusKm: summary.EstimatedRadiusKm,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
	if summary.Centroid != nil {
		lat, lon := summary.Centroid.Lat(), summary.Centroid.Lon()
		resp.CentroidLatitude = &lat
		resp.CentroidLongitude = &lon
	}
	return resp
}

func storedAreaResponse(a *area.DeliveryArea, summary services.AreaSummary) DeliveryAreaResponse {
	return areaResponse(a.ID(), a.Name(), a.Polygon(), summary, a.CreatedAt(), a.UpdatedAt())
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Order     *string   `json:"order"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"is_read"`
	TargetURL string    `json:"target_url"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdatedResponse struct {
	Updated int64 `json:"updated"`
}

type PushSubscriptionKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

type RegisterPushSubscriptionRequest struct {
	Endpoint string               `json:"endpoint"`
	Keys     PushSubscriptionKeys `json:"keys"`
}

type PushSubscriptionResponse struct {
	ID        string    `json:"id"`
	Endpoint  string    `json:"endpoint"`
	CreatedAt time.Time `json:"created_at"`
}

type PublicKeyResponse struct {
	PublicKey string `json:"public_key"`
}

type DashboardSummaryResponse struct {
	Drivers         int64 `json:"drivers"`
	DeliveryOrders  int64 `json:"delivery_orders"`
	InTransitOrders int64 `json:"in_transit_orders"`
	DeliveryAreas   int64 `json:"delivery_areas"`
}

func optionalString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
