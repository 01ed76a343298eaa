package services

import (
	"math"

	"github.com/paulmach/orb"
)

// WGS84 ellipsoid and UTM grid constants.
const (
	wgs84SemiMajorAxis = 6378137.0
	wgs84Flattening    = 1 / 298.257223563
	utmScaleFactor     = 0.9996
	utmFalseEasting    = 500000.0
	utmFalseNorthing   = 10000000.0
	utmZoneWidth       = 6.0
)

// utmZone is one transverse Mercator strip. Distances inside the strip are
// true to within 0.1%, unlike Web Mercator whose scale grows with sec(lat).
type utmZone struct {
	number int
	south  bool
}

// utmZoneFor picks the zone containing p (lon, lat). Zone exceptions around
// Norway and Svalbard are ignored; the projection stays accurate a few
// degrees past a zone edge.
func utmZoneFor(p orb.Point) utmZone {
	lon := p.Lon()
	if lon >= 180 {
		lon -= 360
	}
	number := int(math.Floor((lon+180)/utmZoneWidth)) + 1
	if number < 1 {
		number = 1
	}
	if number > 60 {
		number = 60
	}
	return utmZone{number: number, south: p.Lat() < 0}
}

func (z utmZone) centralMeridian() float64 {
	return deg2rad(float64(z.number-1)*utmZoneWidth - 180 + utmZoneWidth/2)
}

// ToPlanar projects WGS84 (lon, lat) degrees to (easting, northing) metres.
func (z utmZone) ToPlanar() orb.Projection {
	return func(p orb.Point) orb.Point {
		e2 := wgs84Flattening * (2 - wgs84Flattening)
		ep2 := e2 / (1 - e2)

		phi := deg2rad(p.Lat())
		sinPhi, cosPhi := math.Sincos(phi)
		tanPhi := math.Tan(phi)

		n := wgs84SemiMajorAxis / math.Sqrt(1-e2*sinPhi*sinPhi)
		t := tanPhi * tanPhi
		c := ep2 * cosPhi * cosPhi
		a := (deg2rad(p.Lon()) - z.centralMeridian()) * cosPhi
		m := meridianArc(phi, e2)

		a2 := a * a
		a3 := a2 * a
		a4 := a3 * a
		a5 := a4 * a
		a6 := a5 * a

		x := utmScaleFactor * n * (a +
			(1-t+c)*a3/6 +
			(5-18*t+t*t+72*c-58*ep2)*a5/120)
		y := utmScaleFactor * (m + n*tanPhi*(a2/2+
			(5-t+9*c+4*c*c)*a4/24+
			(61-58*t+t*t+600*c-330*ep2)*a6/720))

		x += utmFalseEasting
		if z.south {
			y += utmFalseNorthing
		}
		return orb.Point{x, y}
	}
}

// ToWGS84 is the inverse of ToPlanar.
func (z utmZone) ToWGS84() orb.Projection {
	return func(p orb.Point) orb.Point {
		e2 := wgs84Flattening * (2 - wgs84Flattening)
		ep2 := e2 / (1 - e2)
		e1 := (1 - math.Sqrt(1-e2)) / (1 + math.Sqrt(1-e2))

		x := p[0] - utmFalseEasting
		y := p[1]
		if z.south {
			y -= utmFalseNorthing
		}

		m := y / utmScaleFactor
		mu := m / (wgs84SemiMajorAxis * (1 - e2/4 - 3*e2*e2/64 - 5*e2*e2*e2/256))

		phi1 := mu +
			(3*e1/2-27*math.Pow(e1, 3)/32)*math.Sin(2*mu) +
			(21*e1*e1/16-55*math.Pow(e1, 4)/32)*math.Sin(4*mu) +
			(151*math.Pow(e1, 3)/96)*math.Sin(6*mu) +
			(1097*math.Pow(e1, 4)/512)*math.Sin(8*mu)

		sinPhi1, cosPhi1 := math.Sincos(phi1)
		tanPhi1 := math.Tan(phi1)
		c1 := ep2 * cosPhi1 * cosPhi1
		t1 := tanPhi1 * tanPhi1
		w := 1 - e2*sinPhi1*sinPhi1
		n1 := wgs84SemiMajorAxis / math.Sqrt(w)
		r1 := wgs84SemiMajorAxis * (1 - e2) / math.Pow(w, 1.5)
		d := x / (n1 * utmScaleFactor)

		d2 := d * d
		d3 := d2 * d
		d4 := d3 * d
		d5 := d4 * d
		d6 := d5 * d

		phi := phi1 - (n1*tanPhi1/r1)*(d2/2-
			(5+3*t1+10*c1-4*c1*c1-9*ep2)*d4/24+
			(61+90*t1+298*c1+45*t1*t1-252*ep2-3*c1*c1)*d6/720)
		lambda := z.centralMeridian() + (d-
			(1+2*t1+c1)*d3/6+
			(5-2*c1+28*t1-3*c1*c1+8*ep2+24*t1*t1)*d5/120)/cosPhi1

		return orb.Point{rad2deg(lambda), rad2deg(phi)}
	}
}

// meridianArc is the distance along the central meridian from the equator to phi.
func meridianArc(phi, e2 float64) float64 {
	e4 := e2 * e2
	e6 := e4 * e2
	return wgs84SemiMajorAxis * ((1-e2/4-3*e4/64-5*e6/256)*phi -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*phi) +
		(15*e4/256+45*e6/1024)*math.Sin(4*phi) -
		(35*e6/3072)*math.Sin(6*phi))
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}

func rad2deg(r float64) float64 {
	return r * 180 / math.Pi
}
