package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ecofleet/internal/core/domain/model/order"
	"ecofleet/internal/core/ports"
	"ecofleet/internal/pkg/errs"
	"ecofleet/internal/pkg/metrics"
)

const (
	StatusEmailSubject = "Atualizacao de entrega"
	statusEmailBodyFmt = "Pedido #%s para %s mudou para status: %s."
)

// EmailResult is the outcome of one status email task.
type EmailResult string

const (
	EmailSent     EmailResult = metrics.EmailSent
	EmailNotFound EmailResult = metrics.EmailNotFound
	EmailFailed   EmailResult = metrics.EmailFailed
)

// StatusEmailBody formats the delivery status email from the current order state.
func StatusEmailBody(o *order.DeliveryOrder) string {
	return fmt.Sprintf(statusEmailBodyFmt, o.ID().String(), o.ClientName(), o.Status().Label())
}

// SendDeliveryStatusEmailCommandHandler runs the email side effect of an
// order moving to in transit. The order is re-fetched so a task consumed
// twice sends the current state; a vanished order is not an error.
//
// Transport failures are logged and never retried. Only storage errors are
// returned, leaving the task unacknowledged so the queue redelivers it.
type SendDeliveryStatusEmailCommandHandler struct {
	orders    ports.OrderRepository
	mailer    ports.Mailer
	recipient string
	metrics   *metrics.Recorder
	logger    *slog.Logger
}

func NewSendDeliveryStatusEmailCommandHandler(
	orders ports.OrderRepository,
	mailer ports.Mailer,
	recipient string,
	recorder *metrics.Recorder,
	logger *slog.Logger,
) SendDeliveryStatusEmailCommandHandler {
	return SendDeliveryStatusEmailCommandHandler{
		orders:    orders,
		mailer:    mailer,
		recipient: recipient,
		metrics:   recorder,
		logger:    logger.With("component", "delivery_status_email"),
	}
}

func (h *SendDeliveryStatusEmailCommandHandler) Handle(
	ctx context.Context,
	cmd SendDeliveryStatusEmailCommand,
) (EmailResult, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	o, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.InfoContext(ctx, "Order not found, skipping status email", "order_id", cmd.OrderID().String())
			h.metrics.EmailTask(metrics.EmailNotFound)
			return EmailNotFound, nil
		}
		return "", err
	}

	email := ports.Email{
		To:      []string{h.recipient},
		Subject: StatusEmailSubject,
		Body:    StatusEmailBody(o),
	}
	if err = h.mailer.Send(ctx, email); err != nil {
		h.logger.WarnContext(ctx, "Failed to send status email", "order_id", o.ID().String(), "error", err)
		h.metrics.EmailTask(metrics.EmailFailed)
		return EmailFailed, nil
	}

	h.metrics.EmailTask(metrics.EmailSent)
	return EmailSent, nil
}
