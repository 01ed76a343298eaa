// Package webpush delivers notifications to browsers through the Web Push
// protocol with VAPID authentication.
package webpush

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ecofleet/internal/core/domain/model/notification"

	webpush "github.com/SherClockHolmes/webpush-go"
)

const DefaultTTL = 60 * time.Second

type Config struct {
	PublicKey  string
	PrivateKey string
	// Subscriber is the contact address sent in the VAPID claims.
	Subscriber string
	TTL        time.Duration
	HTTPClient *http.Client
}

// Channel implements ports.PushChannel.
type Channel struct {
	cfg    Config
	logger *slog.Logger
}

func NewChannel(cfg Config, logger *slog.Logger) *Channel {
	cfg.PublicKey = strings.TrimSpace(cfg.PublicKey)
	cfg.PrivateKey = strings.TrimSpace(cfg.PrivateKey)
	// the library adds the mailto: scheme itself
	cfg.Subscriber = strings.TrimPrefix(cfg.Subscriber, "mailto:")
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Channel{
		cfg:    cfg,
		logger: logger.With("component", "webpush_channel"),
	}
}

// Enabled needs both halves of the VAPID key pair.
func (c *Channel) Enabled() bool {
	return c.cfg.PublicKey != "" && c.cfg.PrivateKey != ""
}

func (c *Channel) PublicKey() string {
	if !c.Enabled() {
		return ""
	}
	return c.cfg.PublicKey
}

func (c *Channel) Send(
	ctx context.Context,
	sub *notification.PushSubscription,
	payload []byte,
) notification.DeliveryOutcome {
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint(),
		Keys: webpush.Keys{
			P256dh: sub.P256dh(),
			Auth:   sub.Auth(),
		},
	}, &webpush.Options{
		HTTPClient:      c.cfg.HTTPClient,
		Subscriber:      c.cfg.Subscriber,
		VAPIDPublicKey:  c.cfg.PublicKey,
		VAPIDPrivateKey: c.cfg.PrivateKey,
		TTL:             int(c.cfg.TTL / time.Second),
	})
	if err != nil {
		c.logger.WarnContext(ctx, "Push request failed",
			"subscription_id", sub.ID().String(), "error", err)
		return notification.TransientFailure
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return Classify(resp.StatusCode)
}

// Classify maps a push service response status to a delivery outcome.
func Classify(status int) notification.DeliveryOutcome {
	switch {
	case status >= 200 && status < 300:
		return notification.Delivered
	case status == http.StatusNotFound || status == http.StatusGone:
		return notification.Gone
	default:
		return notification.TransientFailure
	}
}
