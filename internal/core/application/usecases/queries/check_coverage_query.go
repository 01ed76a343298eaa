package queries

import (
	"errors"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/pkg/guard"
)

var ErrCheckCoverageQueryIsNotConstructed = errors.New(
	"CheckCoverageQuery must be created via NewCheckCoverageQuery constructor",
)

// CheckCoverageQuery asks which delivery areas cover a point.
//
// Example:
//
//	query, err := NewCheckCoverageQuery(-23.55, -46.55)
//	resp, err := handler.Handle(ctx, query)
//	fmt.Println(resp.Covered, len(resp.Areas))
type CheckCoverageQuery struct {
	point kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewCheckCoverageQuery(latitude, longitude float64) (CheckCoverageQuery, error) {
	point, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return CheckCoverageQuery{}, err
	}

	return CheckCoverageQuery{
		point: point,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q CheckCoverageQuery) Validate() error {
	return q.guard.Validate(ErrCheckCoverageQueryIsNotConstructed)
}

func (q CheckCoverageQuery) Point() kernel.GeoPoint {
	return q.point
}

// CoveringArea is the short form of an area listed in a coverage answer.
type CoveringArea struct {
	ID   kernel.UUID
	Name string
}

// CheckCoverageQueryResponse lists every covering area. Covered is false
// exactly when Areas is empty.
type CheckCoverageQueryResponse struct {
	Covered bool
	Areas   []CoveringArea
}
