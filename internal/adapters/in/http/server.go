package http

import (
	"context"
	"log/slog"
	"net/http"

	"ecofleet/internal/core/application/usecases/commands"
	"ecofleet/internal/core/application/usecases/queries"
	"ecofleet/internal/core/domain/model/notification"
	"ecofleet/internal/core/domain/model/order"
	"ecofleet/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Use case contracts consumed by the HTTP layer.
type (
	CreateDeliveryOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateDeliveryOrderCommand) (*order.DeliveryOrder, error)
	}

	UpdateDeliveryOrderHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateDeliveryOrderCommand) (*order.DeliveryOrder, error)
	}

	GetDeliveryOrderHandler interface {
		Handle(ctx context.Context, query queries.GetDeliveryOrderQuery) (queries.GetDeliveryOrderQueryResponse, error)
	}

	CheckCoverageHandler interface {
		Handle(ctx context.Context, query queries.CheckCoverageQuery) (queries.CheckCoverageQueryResponse, error)
	}

	CreateDeliveryAreaHandler interface {
		Handle(ctx context.Context, cmd commands.CreateDeliveryAreaCommand) (commands.CreateDeliveryAreaResult, error)
	}

	ListDeliveryAreasHandler interface {
		Handle(ctx context.Context, query queries.ListDeliveryAreasQuery) ([]queries.DeliveryAreaResponse, error)
	}

	GetNotificationsHandler interface {
		Handle(ctx context.Context, query queries.GetNotificationsQuery) ([]queries.GetNotificationsQueryResponse, error)
	}

	MarkNotificationsReadHandler interface {
		Handle(ctx context.Context, cmd commands.MarkNotificationsReadCommand) (int64, error)
	}

	RegisterPushSubscriptionHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterPushSubscriptionCommand) (*notification.PushSubscription, error)
	}

	DeletePushSubscriptionHandler interface {
		Handle(ctx context.Context, cmd commands.DeletePushSubscriptionCommand) error
	}

	GetDashboardSummaryHandler interface {
		Handle(
			ctx context.Context,
			query queries.GetDashboardSummaryQuery,
		) (queries.GetDashboardSummaryQueryResponse, error)
	}

	// PublicKeyProvider exposes the VAPID application server key.
	PublicKeyProvider interface {
		PublicKey() string
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateDeliveryOrder      CreateDeliveryOrderHandler
	UpdateDeliveryOrder      UpdateDeliveryOrderHandler
	GetDeliveryOrder         GetDeliveryOrderHandler
	CheckCoverage            CheckCoverageHandler
	CreateDeliveryArea       CreateDeliveryAreaHandler
	ListDeliveryAreas        ListDeliveryAreasHandler
	GetNotifications         GetNotificationsHandler
	MarkNotificationsRead    MarkNotificationsReadHandler
	RegisterPushSubscription RegisterPushSubscriptionHandler
	DeletePushSubscription   DeletePushSubscriptionHandler
	GetDashboardSummary      GetDashboardSummaryHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	push     PublicKeyProvider
	metrics  *metrics.Recorder
	logger   *slog.Logger
}

func NewServer(handlers Handlers, push PublicKeyProvider, recorder *metrics.Recorder, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		push:     push,
		metrics:  recorder,
		logger:   logger.With("component", "http_server"),
	}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.Use(middleware.Recover())
	e.Use(Metrics(s.metrics))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if s.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	}

	api := e.Group("/api", Identity)

	api.POST("/coverage-check", s.CheckCoverage)
	api.GET("/delivery-areas", s.ListDeliveryAreas)
	api.POST("/delivery-areas", s.CreateDeliveryArea, RequireStaff)

	api.POST("/delivery-orders", s.CreateDeliveryOrder, RequireStaff)
	api.GET("/delivery-orders/:id", s.GetDeliveryOrder, RequireUser)
	api.PATCH("/delivery-orders/:id", s.UpdateDeliveryOrder, RequireUser)

	api.GET("/notifications", s.GetNotifications, RequireUser)
	api.POST("/notifications/mark-all-read", s.MarkAllNotificationsRead, RequireUser)
	api.POST("/notifications/:id/read", s.MarkNotificationRead, RequireUser)

	api.GET("/push-subscriptions/public-key", s.GetPushPublicKey, RequireUser)
	api.POST("/push-subscriptions", s.RegisterPushSubscription, RequireUser)
	api.DELETE("/push-subscriptions/:id", s.DeletePushSubscription, RequireUser)

	api.GET("/dashboard/summary", s.GetDashboardSummary, RequireUser)
}

// GetDashboardSummary handles GET /api/dashboard/summary.
func (s *Server) GetDashboardSummary(ctx echo.Context) error {
	resp, err := s.handlers.GetDashboardSummary.Handle(ctx.Request().Context(), queries.NewGetDashboardSummaryQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DashboardSummaryResponse{
		Drivers:         resp.Drivers,
		DeliveryOrders:  resp.DeliveryOrders,
		InTransitOrders: resp.InTransitOrders,
		DeliveryAreas:   resp.DeliveryAreas,
	})
}
