package commands

import (
	"errors"
	"strings"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/pkg/errs"
	"ecofleet/internal/pkg/guard"
)

var ErrRegisterPushSubscriptionCommandIsNotConstructed = errors.New(
	"RegisterPushSubscriptionCommand must be created via NewRegisterPushSubscriptionCommand constructor",
)

// RegisterPushSubscriptionCommand stores a browser endpoint for the caller.
// Registering the same endpoint again refreshes its keys.
type RegisterPushSubscriptionCommand struct { //nolint:recvcheck //using for validation
	subscriptionID kernel.UUID
	userID         kernel.UUID
	endpoint       string
	p256dh         string
	auth           string
	userAgent      string

	guard guard.ConstructorGuard
}

func NewRegisterPushSubscriptionCommand(
	subscriptionID kernel.UUID,
	userID kernel.UUID,
	endpoint, p256dh, auth, userAgent string,
) (RegisterPushSubscriptionCommand, error) {
	cmd := RegisterPushSubscriptionCommand{
		userAgent: userAgent,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSubscriptionID(subscriptionID),
		cmd.setUserID(userID),
		cmd.setEndpoint(endpoint),
		cmd.setKeys(p256dh, auth),
	); err != nil {
		return RegisterPushSubscriptionCommand{}, err
	}

	return cmd, nil
}

func (c RegisterPushSubscriptionCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPushSubscriptionCommandIsNotConstructed)
}

func (c RegisterPushSubscriptionCommand) SubscriptionID() kernel.UUID {
	return c.subscriptionID
}

func (c RegisterPushSubscriptionCommand) UserID() kernel.UUID {
	return c.userID
}

func (c RegisterPushSubscriptionCommand) Endpoint() string {
	return c.endpoint
}

func (c RegisterPushSubscriptionCommand) P256dh() string {
	return c.p256dh
}

func (c RegisterPushSubscriptionCommand) Auth() string {
	return c.auth
}

func (c RegisterPushSubscriptionCommand) UserAgent() string {
	return c.userAgent
}

func (c *RegisterPushSubscriptionCommand) setSubscriptionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.subscriptionID = id
	return nil
}

func (c *RegisterPushSubscriptionCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	c.userID = id
	return nil
}

func (c *RegisterPushSubscriptionCommand) setEndpoint(endpoint string) error {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return errs.NewValueIsRequiredError("endpoint")
	}
	c.endpoint = endpoint
	return nil
}

func (c *RegisterPushSubscriptionCommand) setKeys(p256dh, auth string) error {
	var errList []error
	if strings.TrimSpace(p256dh) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("keys.p256dh"))
	}
	if strings.TrimSpace(auth) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("keys.auth"))
	}
	if len(errList) > 0 {
		return errors.Join(errList...)
	}
	c.p256dh = p256dh
	c.auth = auth
	return nil
}
