package area

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/pkg/errs"

	"github.com/paulmach/orb"
)

const (
	maxNameLength = 100
	minRingPoints = 4
)

var ErrAreaIsNotConstructed = errors.New("DeliveryArea must be created via NewDeliveryArea constructor")

// DeliveryArea is a named coverage polygon.
type DeliveryArea struct {
	id        kernel.UUID
	name      string
	polygon   orb.Polygon
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

func NewDeliveryArea(id kernel.UUID, name string, polygon orb.Polygon) (*DeliveryArea, error) {
	now := time.Now().UTC()
	return RestoreDeliveryArea(id, name, polygon, now, now)
}

func RestoreDeliveryArea(
	id kernel.UUID,
	name string,
	polygon orb.Polygon,
	createdAt, updatedAt time.Time,
) (*DeliveryArea, error) {
	a := &DeliveryArea{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setPolygon(polygon),
	); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *DeliveryArea) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAreaIsNotConstructed
	}
	return nil
}

func (a *DeliveryArea) ID() kernel.UUID {
	return a.id
}

func (a *DeliveryArea) Name() string {
	return a.name
}

// Polygon returns a copy, so callers cannot reshape the stored area.
func (a *DeliveryArea) Polygon() orb.Polygon {
	return a.polygon.Clone()
}

func (a *DeliveryArea) Bound() orb.Bound {
	return a.polygon.Bound()
}

func (a *DeliveryArea) CreatedAt() time.Time {
	return a.createdAt
}

func (a *DeliveryArea) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *DeliveryArea) Rename(name string) error {
	if err := a.setName(name); err != nil {
		return err
	}
	a.updatedAt = time.Now().UTC()
	return nil
}

func (a *DeliveryArea) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *DeliveryArea) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name", len(name), 1, maxNameLength)
	}
	a.name = name
	return nil
}

func (a *DeliveryArea) setPolygon(polygon orb.Polygon) error {
	if err := ValidatePolygon(polygon); err != nil {
		return err
	}
	a.polygon = polygon.Clone()
	return nil
}

// ValidatePolygon checks that every ring is closed, has at least four
// positions and stays within WGS84 bounds.
func ValidatePolygon(polygon orb.Polygon) error {
	if len(polygon) == 0 {
		return errs.NewValueIsRequiredError("area")
	}

	for i, ring := range polygon {
		if len(ring) < minRingPoints {
			return errs.NewValueIsInvalidErrorWithCause("area",
				fmt.Errorf("ring %d has %d positions, at least %d required", i, len(ring), minRingPoints))
		}
		if !ring.Closed() {
			return errs.NewValueIsInvalidErrorWithCause("area", fmt.Errorf("ring %d is not closed", i))
		}
		for _, p := range ring {
			if !validPosition(p) {
				return errs.NewValueIsInvalidErrorWithCause("area",
					fmt.Errorf("position %v is outside WGS84 bounds", p))
			}
		}
	}

	return nil
}

func validPosition(p orb.Point) bool {
	lon, lat := p.Lon(), p.Lat()
	if math.IsNaN(lon) || math.IsNaN(lat) {
		return false
	}
	return lon >= kernel.MinLongitude && lon <= kernel.MaxLongitude &&
		lat >= kernel.MinLatitude && lat <= kernel.MaxLatitude
}
