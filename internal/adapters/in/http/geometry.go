package http

import (
	"bytes"
	"encoding/json"
	"fmt"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/pkg/errs"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// isAbsent reports a missing or null JSON member.
func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// parsePoint accepts a GeoJSON Point or a bare [longitude, latitude] pair.
func parsePoint(field string, raw json.RawMessage) (kernel.GeoPoint, error) {
	if isAbsent(raw) {
		return kernel.GeoPoint{}, errs.NewValueIsRequiredError(field)
	}

	var p orb.Point
	trimmed := bytes.TrimSpace(raw)
	if trimmed[0] == '[' {
		var pair []float64
		if err := json.Unmarshal(trimmed, &pair); err != nil {
			return kernel.GeoPoint{}, errs.NewValueIsInvalidErrorWithCause(field, err)
		}
		if len(pair) != 2 {
			return kernel.GeoPoint{}, errs.NewValueIsInvalidErrorWithCause(field,
				fmt.Errorf("expected [longitude, latitude], got %d numbers", len(pair)))
		}
		p = orb.Point{pair[0], pair[1]}
	} else {
		geometry, err := geojson.UnmarshalGeometry(trimmed)
		if err != nil {
			return kernel.GeoPoint{}, errs.NewValueIsInvalidErrorWithCause(field, err)
		}
		point, ok := geometry.Geometry().(orb.Point)
		if !ok {
			return kernel.GeoPoint{}, errs.NewValueIsInvalidErrorWithCause(field,
				fmt.Errorf("expected a Point geometry, got %s", geometry.Type))
		}
		p = point
	}

	gp, err := kernel.GeoPointFromOrb(p)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return gp, nil
}

// parsePolygon returns nil for an absent member so the command reports it.
func parsePolygon(field string, raw json.RawMessage) (orb.Polygon, error) {
	if isAbsent(raw) {
		return nil, nil
	}

	geometry, err := geojson.UnmarshalGeometry(bytes.TrimSpace(raw))
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	polygon, ok := geometry.Geometry().(orb.Polygon)
	if !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause(field,
			fmt.Errorf("expected a Polygon geometry, got %s", geometry.Type))
	}
	return polygon, nil
}

func parseOptionalUUID(field string, raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return &id, nil
}

func pointGeometry(p kernel.GeoPoint) *geojson.Geometry {
	return geojson.NewGeometry(p.Orb())
}
