package queries

import (
	"context"

	"ecofleet/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetDashboardSummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetDashboardSummaryQueryHandler(db *gorm.DB) GetDashboardSummaryQueryHandler {
	return GetDashboardSummaryQueryHandler{db: db}
}

func (h GetDashboardSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardSummaryQuery,
) (GetDashboardSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}

	var resp GetDashboardSummaryQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM drivers),
			(SELECT COUNT(*) FROM delivery_orders),
			(SELECT COUNT(*) FROM delivery_orders WHERE status = ?),
			(SELECT COUNT(*) FROM delivery_areas)
	`, order.InTransit.String()).Row()

	if err := row.Scan(&resp.Drivers, &resp.DeliveryOrders, &resp.InTransitOrders, &resp.DeliveryAreas); err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}

	return resp, nil
}
