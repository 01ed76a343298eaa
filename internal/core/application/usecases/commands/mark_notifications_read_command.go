package commands

import (
	"errors"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/pkg/errs"
	"ecofleet/internal/pkg/guard"
)

var ErrMarkNotificationsReadCommandIsNotConstructed = errors.New(
	"MarkNotificationsReadCommand must be created via NewMarkNotificationsReadCommand constructor",
)

// MarkNotificationsReadCommand flags one notification, or every unread one
// when notificationID is nil, as read.
type MarkNotificationsReadCommand struct { //nolint:recvcheck //using for validation
	userID         kernel.UUID
	notificationID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkNotificationsReadCommand(
	userID kernel.UUID,
	notificationID *kernel.UUID,
) (MarkNotificationsReadCommand, error) {
	cmd := MarkNotificationsReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := userID.Validate(); err != nil {
		return MarkNotificationsReadCommand{}, errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	cmd.userID = userID

	if notificationID != nil {
		if err := notificationID.Validate(); err != nil {
			return MarkNotificationsReadCommand{}, errs.NewValueIsInvalidErrorWithCause("id", err)
		}
		id := *notificationID
		cmd.notificationID = &id
	}

	return cmd, nil
}

func (c MarkNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationsReadCommandIsNotConstructed)
}

func (c MarkNotificationsReadCommand) UserID() kernel.UUID {
	return c.userID
}

func (c MarkNotificationsReadCommand) NotificationID() *kernel.UUID {
	return c.notificationID
}
