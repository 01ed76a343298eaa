package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Identity headers are set by the authentication proxy in front of the service.
const (
	HeaderUserID = "X-User-ID"
	HeaderStaff  = "X-User-Staff"

	callerKey = "caller"
)

// Caller is the authenticated user of a request.
type Caller struct {
	UserID  kernel.UUID
	IsStaff bool
}

// Identity reads the caller headers. Requests without a valid user id pass
// through anonymously; RequireUser and RequireStaff reject them.
func Identity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		raw := strings.TrimSpace(ctx.Request().Header.Get(HeaderUserID))
		if raw != "" {
			userID, err := kernel.UUIDFromString(raw)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid " + HeaderUserID + " header",
				})
			}
			staff, _ := strconv.ParseBool(ctx.Request().Header.Get(HeaderStaff))
			ctx.Set(callerKey, Caller{UserID: userID, IsStaff: staff})
		}
		return next(ctx)
	}
}

func callerOf(ctx echo.Context) (Caller, bool) {
	caller, ok := ctx.Get(callerKey).(Caller)
	return caller, ok
}

func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if _, ok := callerOf(ctx); !ok {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Authentication required",
			})
		}
		return next(ctx)
	}
}

func RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return RequireUser(func(ctx echo.Context) error {
		if caller, _ := callerOf(ctx); !caller.IsStaff {
			return ctx.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "Staff permission required",
			})
		}
		return next(ctx)
	})
}

// Metrics records http_requests_total and http_request_duration_seconds
// labelled with the route template, not the raw path.
func Metrics(recorder *metrics.Recorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			path := ctx.Path()
			if path == "" {
				path = "unmatched"
			}
			recorder.ObserveHTTP(
				ctx.Request().Method,
				path,
				strconv.Itoa(ctx.Response().Status),
				time.Since(start),
			)
			return nil
		}
	}
}
