package http

import (
	"net/http"

	"ecofleet/internal/core/application/usecases/commands"
	"ecofleet/internal/core/application/usecases/queries"
	"ecofleet/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetNotifications handles GET /api/notifications.
func (s *Server) GetNotifications(ctx echo.Context) error {
	caller, _ := callerOf(ctx)

	query, err := queries.NewGetNotificationsQuery(caller.UserID)
	if err != nil {
		return s.fail(ctx, err)
	}

	list, err := s.handlers.GetNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		resp = append(resp, NotificationResponse{
			ID:        n.ID.String(),
			Order:     optionalString(n.OrderID),
			Title:     n.Title,
			Body:      n.Body,
			IsRead:    n.IsRead,
			TargetURL: n.TargetURL,
			CreatedAt: n.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

// MarkAllNotificationsRead handles POST /api/notifications/mark-all-read.
func (s *Server) MarkAllNotificationsRead(ctx echo.Context) error {
	return s.markRead(ctx, nil)
}

// MarkNotificationRead handles POST /api/notifications/:id/read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.markRead(ctx, &id)
}

func (s *Server) markRead(ctx echo.Context, notificationID *kernel.UUID) error {
	caller, _ := callerOf(ctx)

	cmd, err := commands.NewMarkNotificationsReadCommand(caller.UserID, notificationID)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.MarkNotificationsRead.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, UpdatedResponse{Updated: updated})
}

// GetPushPublicKey handles GET /api/push-subscriptions/public-key. The key is
// empty when push delivery is disabled.
func (s *Server) GetPushPublicKey(ctx echo.Context) error {
	key := ""
	if s.push != nil {
		key = s.push.PublicKey()
	}
	return ctx.JSON(http.StatusOK, PublicKeyResponse{PublicKey: key})
}

// RegisterPushSubscription handles POST /api/push-subscriptions.
func (s *Server) RegisterPushSubscription(ctx echo.Context) error {
	var req RegisterPushSubscriptionRequest
	if err := ctx.Bind(&req); err != nil {
		return s.failBind(ctx, err)
	}

	caller, _ := callerOf(ctx)
	cmd, err := commands.NewRegisterPushSubscriptionCommand(
		kernel.NewUUID(),
		caller.UserID,
		req.Endpoint,
		req.Keys.P256dh,
		req.Keys.Auth,
		ctx.Request().UserAgent(),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	stored, err := s.handlers.RegisterPushSubscription.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PushSubscriptionResponse{
		ID:        stored.ID().String(),
		Endpoint:  stored.Endpoint(),
		CreatedAt: stored.CreatedAt(),
	})
}

// DeletePushSubscription handles DELETE /api/push-subscriptions/:id.
func (s *Server) DeletePushSubscription(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	caller, _ := callerOf(ctx)
	cmd, err := commands.NewDeletePushSubscriptionCommand(id, caller.UserID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeletePushSubscription.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
