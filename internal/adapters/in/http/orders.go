package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ecofleet/internal/core/application/usecases/commands"
	"ecofleet/internal/core/application/usecases/queries"
	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateDeliveryOrder handles POST /api/delivery-orders.
func (s *Server) CreateDeliveryOrder(ctx echo.Context) error {
	var req CreateDeliveryOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.failBind(ctx, err)
	}

	pickup, pickupErr := parsePoint("pickup_location", req.PickupLocation)
	dropoff, dropoffErr := parsePoint("dropoff_location", req.DropoffLocation)
	deadline, deadlineErr := parseDeadline("deadline", req.Deadline)
	driverID, driverErr := parseOptionalUUID("driver", req.Driver)
	vehicleID, vehicleErr := parseOptionalUUID("vehicle", req.Vehicle)
	if err := errors.Join(pickupErr, dropoffErr, deadlineErr, driverErr, vehicleErr); err != nil {
		return s.fail(ctx, err)
	}

	var deadlineAt time.Time
	if deadline != nil {
		deadlineAt = *deadline
	}

	cmd, err := commands.NewCreateDeliveryOrderCommand(
		kernel.NewUUID(),
		req.ClientName,
		pickup,
		dropoff,
		deadlineAt,
		req.Status,
		driverID,
		vehicleID,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.handlers.CreateDeliveryOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponse(created))
}

// GetDeliveryOrder handles GET /api/delivery-orders/:id.
func (s *Server) GetDeliveryOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetDeliveryOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.handlers.GetDeliveryOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderQueryResponse(resp))
}

// UpdateDeliveryOrder handles PATCH /api/delivery-orders/:id. Staff may
// change any field; a driver may only change the status of an order
// assigned to them, and other members are ignored.
func (s *Server) UpdateDeliveryOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req UpdateDeliveryOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return s.failBind(ctx, err)
	}

	caller, _ := callerOf(ctx)
	actor := commands.Actor{UserID: caller.UserID, IsStaff: caller.IsStaff}

	changes, err := orderChanges(req, actor.IsStaff)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryOrderCommand(orderID, actor, changes)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.UpdateDeliveryOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(updated))
}

// orderChanges skips parsing for non-staff callers, whose non-status
// members are dropped anyway.
func orderChanges(req UpdateDeliveryOrderRequest, staff bool) (commands.OrderChanges, error) {
	changes := commands.OrderChanges{Status: req.Status}
	if !staff {
		return changes, nil
	}

	changes.ClientName = req.ClientName

	var errList []error
	if req.Deadline != nil {
		deadline, err := parseDeadline("deadline", req.Deadline)
		errList = append(errList, err)
		changes.Deadline = deadline
	}
	if req.PickupLocation != nil {
		p, err := parsePoint("pickup_location", req.PickupLocation)
		errList = append(errList, err)
		changes.Pickup = &p
	}
	if req.DropoffLocation != nil {
		p, err := parsePoint("dropoff_location", req.DropoffLocation)
		errList = append(errList, err)
		changes.Dropoff = &p
	}
	if req.Driver != nil {
		id, err := parseNullableUUID("driver", req.Driver)
		errList = append(errList, err)
		changes.ChangeDriver = true
		changes.DriverID = id
	}
	if req.Vehicle != nil {
		id, err := parseNullableUUID("vehicle", req.Vehicle)
		errList = append(errList, err)
		changes.ChangeVehicle = true
		changes.VehicleID = id
	}

	if err := errors.Join(errList...); err != nil {
		return commands.OrderChanges{}, err
	}
	return changes, nil
}

func parseNullableUUID(field string, raw []byte) (*kernel.UUID, error) {
	if isAbsent(raw) {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return parseOptionalUUID(field, &s)
}

// parseDeadline returns nil for an absent or null member.
func parseDeadline(field string, raw json.RawMessage) (*time.Time, error) {
	if isAbsent(raw) {
		return nil, nil
	}
	var t time.Time
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return &t, nil
}

func pathUUID(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}
