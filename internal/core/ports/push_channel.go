package ports

import (
	"context"

	"ecofleet/internal/core/domain/model/notification"
)

// PushChannel delivers one payload to one browser subscription.
type PushChannel interface {
	// Enabled is false when no VAPID key pair is configured; the whole push
	// step is then skipped.
	Enabled() bool

	// PublicKey is the VAPID application server key handed to browsers.
	// It is empty when the channel is disabled.
	PublicKey() string

	// Send never returns an error: every failure is folded into the outcome.
	Send(ctx context.Context, sub *notification.PushSubscription, payload []byte) notification.DeliveryOutcome
}
