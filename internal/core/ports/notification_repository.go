package ports

import (
	"context"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notifications.
type NotificationRepository interface {
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists the read flag; title and body are never rewritten.
	Update(ctx context.Context, aggregate *notification.Notification) error

	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// ListByUser returns the user's notifications, newest first.
	ListByUser(ctx context.Context, userID kernel.UUID) ([]*notification.Notification, error)

	// MarkAllRead flags every unread notification of the user and returns how many changed.
	MarkAllRead(ctx context.Context, userID kernel.UUID) (int64, error)
}

// PushSubscriptionRepository defines the persistence contract for push subscriptions.
type PushSubscriptionRepository interface {
	// Upsert inserts the subscription, or refreshes keys and user agent of the
	// existing row with the same (user, endpoint) pair. It returns the stored row.
	Upsert(ctx context.Context, aggregate *notification.PushSubscription) (*notification.PushSubscription, error)

	Get(ctx context.Context, id kernel.UUID) (*notification.PushSubscription, error)

	// ListByUser returns the user's subscriptions in insertion order.
	ListByUser(ctx context.Context, userID kernel.UUID) ([]*notification.PushSubscription, error)

	// Delete removes the subscription. Deleting a missing row is not an error.
	Delete(ctx context.Context, id kernel.UUID) error
}
