package commands

import (
	"context"

	"ecofleet/internal/core/domain/model/notification"
)

type RegisterPushSubscriptionCommandHandler struct {
	uowFactory SubscriptionUoWFactory
}

func NewRegisterPushSubscriptionCommandHandler(
	uowFactory SubscriptionUoWFactory,
) RegisterPushSubscriptionCommandHandler {
	return RegisterPushSubscriptionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the stored subscription. On re-registration that is the
// existing row with refreshed keys, not a new one.
func (h *RegisterPushSubscriptionCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterPushSubscriptionCommand,
) (*notification.PushSubscription, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	sub, err := notification.NewPushSubscription(
		cmd.SubscriptionID(), cmd.UserID(), cmd.Endpoint(), cmd.P256dh(), cmd.Auth(), cmd.UserAgent(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stored, err := uow.PushSubscriptionRepository().Upsert(ctx, sub)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
