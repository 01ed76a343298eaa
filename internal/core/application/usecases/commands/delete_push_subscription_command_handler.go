package commands

import (
	"context"

	"ecofleet/internal/pkg/errs"
)

type DeletePushSubscriptionCommandHandler struct {
	uowFactory SubscriptionUoWFactory
}

func NewDeletePushSubscriptionCommandHandler(
	uowFactory SubscriptionUoWFactory,
) DeletePushSubscriptionCommandHandler {
	return DeletePushSubscriptionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reports a subscription owned by someone else as not found.
func (h *DeletePushSubscriptionCommandHandler) Handle(ctx context.Context, cmd DeletePushSubscriptionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PushSubscriptionRepository()
	sub, err := repo.Get(ctx, cmd.SubscriptionID())
	if err != nil {
		return err
	}
	if !sub.BelongsTo(cmd.UserID()) {
		return errs.NewObjectNotFoundError("push_subscription", cmd.SubscriptionID().String())
	}

	if err = repo.Delete(ctx, sub.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
