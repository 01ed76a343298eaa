package http

import (
	"net/http"

	"ecofleet/internal/core/application/usecases/commands"
	"ecofleet/internal/core/application/usecases/queries"
	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CheckCoverage handles POST /api/coverage-check. It is open to anonymous callers.
func (s *Server) CheckCoverage(ctx echo.Context) error {
	var req CoverageCheckRequest
	if err := ctx.Bind(&req); err != nil {
		return s.failBind(ctx, err)
	}
	if req.Latitude == nil {
		return s.fail(ctx, errs.NewValueIsRequiredError("latitude"))
	}
	if req.Longitude == nil {
		return s.fail(ctx, errs.NewValueIsRequiredError("longitude"))
	}

	query, err := queries.NewCheckCoverageQuery(*req.Latitude, *req.Longitude)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.handlers.CheckCoverage.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	body := CoverageCheckResponse{
		Covered: resp.Covered,
		Areas:   make([]AreaRef, 0, len(resp.Areas)),
	}
	for _, a := range resp.Areas {
		body.Areas = append(body.Areas, AreaRef{ID: a.ID.String(), Name: a.Name})
	}

	return ctx.JSON(http.StatusOK, body)
}

// CreateDeliveryArea handles POST /api/delivery-areas. Circle fields take
// precedence over an explicit polygon.
func (s *Server) CreateDeliveryArea(ctx echo.Context) error {
	var req CreateDeliveryAreaRequest
	if err := ctx.Bind(&req); err != nil {
		return s.failBind(ctx, err)
	}

	circle := commands.CircleInput{
		CenterLatitude:  req.CenterLatitude,
		CenterLongitude: req.CenterLongitude,
		RadiusKm:        req.RadiusKm,
	}

	polygon, err := parsePolygon("area", req.Area)
	if err != nil && !circle.IsSet() {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateDeliveryAreaCommand(kernel.NewUUID(), req.Name, polygon, circle)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.CreateDeliveryArea.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, storedAreaResponse(result.Area, result.Summary))
}

// ListDeliveryAreas handles GET /api/delivery-areas.
func (s *Server) ListDeliveryAreas(ctx echo.Context) error {
	areas, err := s.handlers.ListDeliveryAreas.Handle(ctx.Request().Context(), queries.NewListDeliveryAreasQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	resp := make([]DeliveryAreaResponse, 0, len(areas))
	for _, a := range areas {
		resp = append(resp, areaResponse(a.ID, a.Name, a.Polygon, a.Summary, a.CreatedAt, a.UpdatedAt))
	}

	return ctx.JSON(http.StatusOK, resp)
}
