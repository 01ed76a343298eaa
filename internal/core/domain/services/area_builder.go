package services

import (
	"fmt"
	"math"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/pkg/errs"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/project"
)

// circleQuadrantSegments is the number of segments per quarter circle,
// so a circle has 32 edges.
const circleQuadrantSegments = 8

// AreaBuilder converts between center+radius and polygon coverage areas.
// Geometry is reprojected to the UTM zone of the shape before measuring, so
// radii and areas are in metres rather than degrees.
//
// Example:
//
//	center, _ := kernel.NewGeoPoint(-23.55, -46.63)
//	poly, _ := services.NewAreaBuilder().BuildCircle(center, 5)
//	radius, ok := services.NewAreaBuilder().EstimateRadiusKm(poly) // ~4.98, true
type AreaBuilder struct {
	segments int
}

func NewAreaBuilder() AreaBuilder {
	return AreaBuilder{segments: 4 * circleQuadrantSegments}
}

// BuildCircle returns a closed polygon approximating a circle of radiusKm
// around center. The vertices lie on the circle.
func (b AreaBuilder) BuildCircle(center kernel.GeoPoint, radiusKm float64) (orb.Polygon, error) {
	if err := center.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("center", err)
	}
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("radius_km",
			fmt.Errorf("radius must be greater than zero, got %v", radiusKm))
	}

	segments := b.segments
	if segments < 4 {
		segments = 4 * circleQuadrantSegments
	}

	zone := utmZoneFor(center.Orb())
	origin := zone.ToPlanar()(center.Orb())
	radius := radiusKm * 1000

	ring := make(orb.Ring, 0, segments+1)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		ring = append(ring, orb.Point{
			origin[0] + radius*math.Cos(angle),
			origin[1] + radius*math.Sin(angle),
		})
	}
	ring = project.Ring(ring, zone.ToWGS84())
	ring = append(ring, ring[0])

	return orb.Polygon{ring}, nil
}

// EstimateRadiusKm returns the radius of the circle with the same planar
// area as polygon. It reports false for empty or zero-area polygons.
func (b AreaBuilder) EstimateRadiusKm(polygon orb.Polygon) (float64, bool) {
	planarPolygon, ok := toPlanar(polygon)
	if !ok {
		return 0, false
	}

	area := math.Abs(planar.Area(planarPolygon))
	if area == 0 || math.IsNaN(area) {
		return 0, false
	}

	return math.Sqrt(area/math.Pi) / 1000, true
}

// Centroid returns the WGS84 position of the planar centroid of polygon.
func (b AreaBuilder) Centroid(polygon orb.Polygon) (kernel.GeoPoint, error) {
	planarPolygon, ok := toPlanar(polygon)
	if !ok {
		return kernel.GeoPoint{}, errs.NewValueIsRequiredError("area")
	}

	centroid, _ := planar.CentroidArea(planarPolygon)
	zone := utmZoneFor(polygon.Bound().Center())

	return kernel.GeoPointFromOrb(zone.ToWGS84()(centroid))
}

func toPlanar(polygon orb.Polygon) (orb.Polygon, bool) {
	if len(polygon) == 0 || len(polygon[0]) == 0 {
		return nil, false
	}
	zone := utmZoneFor(polygon.Bound().Center())
	return project.Polygon(polygon.Clone(), zone.ToPlanar()), true
}

// AreaSummary carries the measurements reported alongside an area. A field is
// nil when it cannot be derived from the polygon.
type AreaSummary struct {
	Centroid          *kernel.GeoPoint
	EstimatedRadiusKm *float64
}

func (b AreaBuilder) Summarize(polygon orb.Polygon) AreaSummary {
	var summary AreaSummary
	if c, err := b.Centroid(polygon); err == nil {
		summary.Centroid = &c
	}
	if r, ok := b.EstimateRadiusKm(polygon); ok {
		summary.EstimatedRadiusKm = &r
	}
	return summary
}
