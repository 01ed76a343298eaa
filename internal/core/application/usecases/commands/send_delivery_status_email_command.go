package commands

import (
	"errors"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/pkg/guard"
)

var ErrSendDeliveryStatusEmailCommandIsNotConstructed = errors.New(
	"SendDeliveryStatusEmailCommand must be created via NewSendDeliveryStatusEmailCommand constructor",
)

// SendDeliveryStatusEmailCommand is the payload of a queued email task. It
// only carries the order id; everything else is re-read when it runs.
type SendDeliveryStatusEmailCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSendDeliveryStatusEmailCommand(orderID kernel.UUID) (SendDeliveryStatusEmailCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SendDeliveryStatusEmailCommand{}, err
	}

	return SendDeliveryStatusEmailCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SendDeliveryStatusEmailCommand) Validate() error {
	return c.guard.Validate(ErrSendDeliveryStatusEmailCommandIsNotConstructed)
}

func (c SendDeliveryStatusEmailCommand) OrderID() kernel.UUID {
	return c.orderID
}
