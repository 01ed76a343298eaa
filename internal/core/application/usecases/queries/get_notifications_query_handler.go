package queries

import (
	"context"
	"time"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle returns the user's notifications ordered by creation time, newest first.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) ([]GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	result := make([]GetNotificationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			title,
			body,
			is_read,
			created_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			orderID   *uuid.UUID
			title     string
			body      string
			isRead    bool
			createdAt time.Time
		)
		if err = rows.Scan(&id, &orderID, &title, &body, &isRead, &createdAt); err != nil {
			return nil, err
		}

		nID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		oID, idErr := kernel.OptionalUUIDFrom(orderID)
		if idErr != nil {
			return nil, idErr
		}

		n, restoreErr := notification.RestoreNotification(nID, query.UserID(), oID, title, body, isRead, createdAt)
		if restoreErr != nil {
			return nil, restoreErr
		}

		result = append(result, GetNotificationsQueryResponse{
			ID:        n.ID(),
			OrderID:   n.OrderID(),
			Title:     n.Title(),
			Body:      n.Body(),
			IsRead:    n.IsRead(),
			TargetURL: n.TargetURL(),
			CreatedAt: n.CreatedAt(),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
