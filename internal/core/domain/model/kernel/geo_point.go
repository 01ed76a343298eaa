package kernel

import (
	"errors"
	"fmt"
	"math"

	"ecofleet/internal/pkg/errs"
	"ecofleet/internal/pkg/guard"

	"github.com/paulmach/orb"
)

const (
	// MinLatitude and MaxLatitude bound WGS84 latitudes in degrees.
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrGeoPointIsNotConstructed is returned when a zero GeoPoint is used.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint or GeoPointFromOrb")

// GeoPoint is a WGS84 position. Latitude and longitude are in degrees.
//
// Example:
//
//	p, err := kernel.NewGeoPoint(-23.55, -46.63)
//	if err != nil {
//	    // latitude or longitude out of range
//	}
//	fmt.Println(p) // GeoPoint(-23.550000,-46.630000)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint validates both coordinates and reports every violation at once.
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLat(lat), p.setLon(lon)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// GeoPointFromOrb converts an orb point, whose axis order is (lon, lat).
func GeoPointFromOrb(p orb.Point) (GeoPoint, error) {
	return NewGeoPoint(p.Lat(), p.Lon())
}

func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

func (p GeoPoint) Lat() float64 {
	return p.lat
}

func (p GeoPoint) Lon() float64 {
	return p.lon
}

// Orb returns the point in orb's (lon, lat) order.
func (p GeoPoint) Orb() orb.Point {
	return orb.Point{p.lon, p.lat}
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.lat, p.lon)
}

func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lon == other.lon
}

func (p *GeoPoint) setLat(lat float64) error {
	if math.IsNaN(lat) || lat < MinLatitude || lat > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", lat, MinLatitude, MaxLatitude)
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLon(lon float64) error {
	if math.IsNaN(lon) || lon < MinLongitude || lon > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", lon, MinLongitude, MaxLongitude)
	}
	p.lon = lon
	return nil
}
