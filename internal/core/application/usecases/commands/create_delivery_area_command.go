package commands

import (
	"errors"
	"strings"

	"ecofleet/internal/core/domain/model/area"
	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/pkg/errs"
	"ecofleet/internal/pkg/guard"

	"github.com/paulmach/orb"
)

var (
	ErrCreateDeliveryAreaCommandIsNotConstructed = errors.New(
		"CreateDeliveryAreaCommand must be created via NewCreateDeliveryAreaCommand constructor",
	)
	ErrRadiusMustBePositive = errors.New("radius must be greater than zero")
)

// CircleInput is the center+radius form of an area. The three values are
// mandatory together.
type CircleInput struct {
	CenterLatitude  *float64
	CenterLongitude *float64
	RadiusKm        *float64
}

// IsSet reports whether any circle field was supplied.
func (c CircleInput) IsSet() bool {
	return c.CenterLatitude != nil || c.CenterLongitude != nil || c.RadiusKm != nil
}

// CreateDeliveryAreaCommand creates an area from an explicit polygon or, when
// any circle field is present, from a center and radius.
//
// Example:
//
//	lat, lon, r := -23.55, -46.63, 5.0
//	cmd, err := NewCreateDeliveryAreaCommand(kernel.NewUUID(), "Area raio 5km", nil,
//	    CircleInput{CenterLatitude: &lat, CenterLongitude: &lon, RadiusKm: &r})
type CreateDeliveryAreaCommand struct { //nolint:recvcheck //using for validation
	areaID   kernel.UUID
	name     string
	polygon  orb.Polygon
	center   kernel.GeoPoint
	radiusKm float64
	isCircle bool

	guard guard.ConstructorGuard
}

func NewCreateDeliveryAreaCommand(
	areaID kernel.UUID,
	name string,
	polygon orb.Polygon,
	circle CircleInput,
) (CreateDeliveryAreaCommand, error) {
	cmd := CreateDeliveryAreaCommand{
		guard: guard.NewConstructorGuard(),
	}

	shape := cmd.setPolygon(polygon)
	if circle.IsSet() {
		shape = cmd.setCircle(circle)
	}

	if err := errors.Join(
		cmd.setAreaID(areaID),
		cmd.setName(name),
		shape,
	); err != nil {
		return CreateDeliveryAreaCommand{}, err
	}

	return cmd, nil
}

func (c CreateDeliveryAreaCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryAreaCommandIsNotConstructed)
}

func (c CreateDeliveryAreaCommand) AreaID() kernel.UUID {
	return c.areaID
}

func (c CreateDeliveryAreaCommand) Name() string {
	return c.name
}

// Polygon is nil in circle mode.
func (c CreateDeliveryAreaCommand) Polygon() orb.Polygon {
	return c.polygon
}

func (c CreateDeliveryAreaCommand) IsCircle() bool {
	return c.isCircle
}

func (c CreateDeliveryAreaCommand) Center() kernel.GeoPoint {
	return c.center
}

func (c CreateDeliveryAreaCommand) RadiusKm() float64 {
	return c.radiusKm
}

func (c *CreateDeliveryAreaCommand) setAreaID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.areaID = id
	return nil
}

func (c *CreateDeliveryAreaCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateDeliveryAreaCommand) setPolygon(polygon orb.Polygon) error {
	if err := area.ValidatePolygon(polygon); err != nil {
		return err
	}
	c.polygon = polygon.Clone()
	return nil
}

func (c *CreateDeliveryAreaCommand) setCircle(circle CircleInput) error {
	var missing []error
	if circle.CenterLatitude == nil {
		missing = append(missing, errs.NewValueIsRequiredError("center_latitude"))
	}
	if circle.CenterLongitude == nil {
		missing = append(missing, errs.NewValueIsRequiredError("center_longitude"))
	}
	if circle.RadiusKm == nil {
		missing = append(missing, errs.NewValueIsRequiredError("radius_km"))
	}
	if len(missing) > 0 {
		return errors.Join(missing...)
	}

	if *circle.RadiusKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("radius_km", ErrRadiusMustBePositive)
	}

	center, err := kernel.NewGeoPoint(*circle.CenterLatitude, *circle.CenterLongitude)
	if err != nil {
		return err
	}

	c.center = center
	c.radiusKm = *circle.RadiusKm
	c.isCircle = true
	return nil
}
