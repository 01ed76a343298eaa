// Package area provides DeliveryArea, a named coverage polygon in WGS84
// coordinates. Rings follow orb's (lon, lat) axis order; the first ring is the
// exterior and any further rings are holes.
package area
