package commands

import (
	"context"

	"ecofleet/internal/pkg/errs"
)

type MarkNotificationsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewMarkNotificationsReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationsReadCommandHandler {
	return MarkNotificationsReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns how many notifications changed from unread to read.
func (h *MarkNotificationsReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationsReadCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()

	var updated int64
	if cmd.NotificationID() == nil {
		n, err := repo.MarkAllRead(ctx, cmd.UserID())
		if err != nil {
			return 0, err
		}
		updated = n
	} else {
		n, err := repo.Get(ctx, *cmd.NotificationID())
		if err != nil {
			return 0, err
		}
		if !n.UserID().IsEqual(cmd.UserID()) {
			return 0, errs.NewObjectNotFoundError("notification", cmd.NotificationID().String())
		}
		if n.MarkRead() {
			if err = repo.Update(ctx, n); err != nil {
				return 0, err
			}
			updated = 1
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return updated, nil
}
