package commands

import (
	"errors"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/pkg/errs"
	"ecofleet/internal/pkg/guard"
)

var ErrDeletePushSubscriptionCommandIsNotConstructed = errors.New(
	"DeletePushSubscriptionCommand must be created via NewDeletePushSubscriptionCommand constructor",
)

// DeletePushSubscriptionCommand removes one of the caller's own subscriptions.
type DeletePushSubscriptionCommand struct { //nolint:recvcheck //using for validation
	subscriptionID kernel.UUID
	userID         kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeletePushSubscriptionCommand(subscriptionID, userID kernel.UUID) (DeletePushSubscriptionCommand, error) {
	cmd := DeletePushSubscriptionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := subscriptionID.Validate(); err != nil {
		return DeletePushSubscriptionCommand{}, errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	if err := userID.Validate(); err != nil {
		return DeletePushSubscriptionCommand{}, errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	cmd.subscriptionID = subscriptionID
	cmd.userID = userID

	return cmd, nil
}

func (c DeletePushSubscriptionCommand) Validate() error {
	return c.guard.Validate(ErrDeletePushSubscriptionCommandIsNotConstructed)
}

func (c DeletePushSubscriptionCommand) SubscriptionID() kernel.UUID {
	return c.subscriptionID
}

func (c DeletePushSubscriptionCommand) UserID() kernel.UUID {
	return c.userID
}
