package services

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestUTMZoneFor(t *testing.T) {
	tests := []struct {
		point  orb.Point
		number int
		south  bool
	}{
		{point: orb.Point{-46.63, -23.55}, number: 23, south: true},
		{point: orb.Point{-180, 10}, number: 1},
		{point: orb.Point{180, 10}, number: 1},
		{point: orb.Point{179.99, 10}, number: 60},
		{point: orb.Point{3, 0}, number: 31},
	}

	for _, tt := range tests {
		zone := utmZoneFor(tt.point)
		assert.Equal(t, tt.number, zone.number, "zone of %v", tt.point)
		assert.Equal(t, tt.south, zone.south, "hemisphere of %v", tt.point)
	}
}

func TestUTMZone_CentralMeridianAtEquator(t *testing.T) {
	zone := utmZone{number: 23}

	p := zone.ToPlanar()(orb.Point{-45, 0})

	assert.InDelta(t, utmFalseEasting, p[0], 1e-6)
	assert.InDelta(t, 0, p[1], 1e-6)
}

func TestUTMZone_RoundTrip(t *testing.T) {
	points := []orb.Point{
		{-46.63, -23.55},
		{-43.17, -22.90},
		{-47.99, -15.78},
		{13.40, 52.52},
	}

	for _, p := range points {
		zone := utmZoneFor(p)
		back := zone.ToWGS84()(zone.ToPlanar()(p))

		assert.InDelta(t, p.Lon(), back.Lon(), 1e-7)
		assert.InDelta(t, p.Lat(), back.Lat(), 1e-7)
	}
}

func TestUTMZone_SouthernFalseNorthing(t *testing.T) {
	zone := utmZoneFor(orb.Point{-46.63, -23.55})

	p := zone.ToPlanar()(orb.Point{-46.63, -23.55})

	// São Paulo lies around 333 km E, 7395 km N in zone 23S.
	assert.InDelta(t, 333000, p[0], 2000)
	assert.InDelta(t, 7395000, p[1], 2000)
}
