package dispatch

import (
	"context"
	"log/slog"
	"time"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/domain/model/notification"
	"ecofleet/internal/core/ports"
	"ecofleet/internal/pkg/metrics"
)

// NotificationDispatcher persists a notification and pushes it to every
// subscription of its user. Each subscription is attempted independently:
// a gone endpoint is deleted, any other failure is logged and skipped.
//
// Example:
//
//	d := dispatch.NewNotificationDispatcher(notifications, subscriptions, channel, recorder, logger)
//	n, err := d.Dispatch(ctx, &userID, "Nova ordem atribuida", body, &orderID)
type NotificationDispatcher struct {
	notifications ports.NotificationRepository
	subscriptions ports.PushSubscriptionRepository
	channel       ports.PushChannel
	metrics       *metrics.Recorder
	logger        *slog.Logger
}

func NewNotificationDispatcher(
	notifications ports.NotificationRepository,
	subscriptions ports.PushSubscriptionRepository,
	channel ports.PushChannel,
	recorder *metrics.Recorder,
	logger *slog.Logger,
) *NotificationDispatcher {
	return &NotificationDispatcher{
		notifications: notifications,
		subscriptions: subscriptions,
		channel:       channel,
		metrics:       recorder,
		logger:        logger.With("component", "notification_dispatcher"),
	}
}

// Dispatch returns (nil, nil) when userID is nil. The returned error only
// reports a failure to persist the notification; push failures never surface.
func (d *NotificationDispatcher) Dispatch(
	ctx context.Context,
	userID *kernel.UUID,
	title, body string,
	orderID *kernel.UUID,
) (*notification.Notification, error) {
	if userID == nil {
		return nil, nil
	}

	n, err := notification.NewNotification(kernel.NewUUID(), *userID, orderID, title, body)
	if err != nil {
		return nil, err
	}
	if err = d.notifications.Add(ctx, n); err != nil {
		return nil, err
	}

	d.push(ctx, n)
	return n, nil
}

func (d *NotificationDispatcher) push(ctx context.Context, n *notification.Notification) {
	if d.channel == nil || !d.channel.Enabled() {
		d.metrics.ObservePush(metrics.PushDisabled, 0)
		return
	}

	payload, err := notification.PayloadFor(n).Encode()
	if err != nil {
		d.logger.ErrorContext(ctx, "Failed to encode push payload", "notification_id", n.ID().String(), "error", err)
		return
	}

	subs, err := d.subscriptions.ListByUser(ctx, n.UserID())
	if err != nil {
		d.logger.WarnContext(ctx, "Failed to list push subscriptions",
			"notification_id", n.ID().String(), "user_id", n.UserID().String(), "error", err)
		return
	}

	for _, sub := range subs {
		started := time.Now()
		outcome := d.channel.Send(ctx, sub, payload)

		switch outcome {
		case notification.Delivered:
			d.metrics.ObservePush(metrics.PushDelivered, time.Since(started))
		case notification.Gone:
			d.metrics.ObservePush(metrics.PushGone, time.Since(started))
			d.logger.InfoContext(ctx, "Removing expired push subscription",
				"subscription_id", sub.ID().String(), "user_id", sub.UserID().String())
			if delErr := d.subscriptions.Delete(ctx, sub.ID()); delErr != nil {
				d.logger.WarnContext(ctx, "Failed to delete expired push subscription",
					"subscription_id", sub.ID().String(), "error", delErr)
			}
		default:
			d.metrics.ObservePush(metrics.PushTransient, time.Since(started))
			d.logger.WarnContext(ctx, "Push delivery failed",
				"subscription_id", sub.ID().String(), "notification_id", n.ID().String())
		}
	}
}
