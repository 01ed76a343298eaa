package queries

import (
	"errors"

	"ecofleet/internal/pkg/guard"
)

var ErrGetDashboardSummaryQueryIsNotConstructed = errors.New(
	"GetDashboardSummaryQuery must be created via NewGetDashboardSummaryQuery constructor",
)

type GetDashboardSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDashboardSummaryQuery() GetDashboardSummaryQuery {
	return GetDashboardSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDashboardSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardSummaryQueryIsNotConstructed)
}

// GetDashboardSummaryQueryResponse holds the headline counters of the fleet.
type GetDashboardSummaryQueryResponse struct {
	Drivers         int64
	DeliveryOrders  int64
	InTransitOrders int64
	DeliveryAreas   int64
}
