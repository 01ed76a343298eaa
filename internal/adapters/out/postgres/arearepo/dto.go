package arearepo

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"ecofleet/internal/core/domain/model/area"
	"ecofleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

var ErrNotAPolygon = errors.New("stored area is not a GeoJSON Polygon")

type AreaDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Area      Geometry  `gorm:"type:jsonb;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (AreaDTO) TableName() string {
	return "delivery_areas"
}

// Geometry stores a polygon as a GeoJSON geometry object.
type Geometry struct {
	Polygon orb.Polygon
}

func (g Geometry) Value() (driver.Value, error) {
	raw, err := geojson.NewGeometry(g.Polygon).MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (g *Geometry) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Geometry", src)
	}

	geometry, err := geojson.UnmarshalGeometry(raw)
	if err != nil {
		return err
	}
	polygon, ok := geometry.Geometry().(orb.Polygon)
	if !ok {
		return ErrNotAPolygon
	}
	g.Polygon = polygon
	return nil
}

func fromDomain(a *area.DeliveryArea) AreaDTO {
	return AreaDTO{
		ID:        a.ID().Bytes(),
		Name:      a.Name(),
		Area:      Geometry{Polygon: a.Polygon()},
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}

func toDomain(dto AreaDTO) (*area.DeliveryArea, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return area.RestoreDeliveryArea(id, dto.Name, dto.Area.Polygon, dto.CreatedAt, dto.UpdatedAt)
}
