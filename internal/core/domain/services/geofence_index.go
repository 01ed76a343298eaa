package services

import (
	"ecofleet/internal/core/domain/model/area"
	"ecofleet/internal/core/domain/model/kernel"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// boundaryTolerance is the distance in degrees (about 0.1 mm) under which a
// point counts as lying on a ring edge.
const boundaryTolerance = 1e-9

// GeofenceIndex holds a fixed set of delivery areas and answers containment
// queries by linear scan. Points on an area boundary count as inside.
type GeofenceIndex struct {
	areas    []*area.DeliveryArea
	polygons []orb.Polygon
	bounds   []orb.Bound
}

// NewGeofenceIndex snapshots the given areas; later changes to the slice are
// not observed.
func NewGeofenceIndex(areas []*area.DeliveryArea) GeofenceIndex {
	idx := GeofenceIndex{
		areas:    make([]*area.DeliveryArea, 0, len(areas)),
		polygons: make([]orb.Polygon, 0, len(areas)),
		bounds:   make([]orb.Bound, 0, len(areas)),
	}
	for _, a := range areas {
		if a.Validate() != nil {
			continue
		}
		poly := a.Polygon()
		idx.areas = append(idx.areas, a)
		idx.polygons = append(idx.polygons, poly)
		idx.bounds = append(idx.bounds, poly.Bound().Pad(boundaryTolerance))
	}
	return idx
}

func (g GeofenceIndex) Len() int {
	return len(g.areas)
}

// Query returns every area that contains or covers point, in index order.
// An empty result means the point is not covered.
func (g GeofenceIndex) Query(point kernel.GeoPoint) []*area.DeliveryArea {
	matches := make([]*area.DeliveryArea, 0)
	if point.Validate() != nil {
		return matches
	}

	p := point.Orb()
	for i, poly := range g.polygons {
		if !g.bounds[i].Contains(p) {
			continue
		}
		if polygonCovers(poly, p) {
			matches = append(matches, g.areas[i])
		}
	}
	return matches
}

// polygonCovers treats the exterior ring and the hole rings as closed sets:
// a point on a hole edge still belongs to the polygon.
func polygonCovers(poly orb.Polygon, p orb.Point) bool {
	if len(poly) == 0 {
		return false
	}
	if !onRing(poly[0], p) && !planar.RingContains(poly[0], p) {
		return false
	}
	for _, hole := range poly[1:] {
		if onRing(hole, p) {
			continue
		}
		if planar.RingContains(hole, p) {
			return false
		}
	}
	return true
}

func onRing(r orb.Ring, p orb.Point) bool {
	for i := 0; i+1 < len(r); i++ {
		if planar.DistanceFromSegment(r[i], r[i+1], p) <= boundaryTolerance {
			return true
		}
	}
	return false
}
