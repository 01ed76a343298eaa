package queries

import (
	"errors"
	"time"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/pkg/errs"
	"ecofleet/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery lists the notifications of one user, newest first.
type GetNotificationsQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetNotificationsQuery(userID kernel.UUID) (GetNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetNotificationsQuery{}, errs.NewValueIsRequiredErrorWithCause("user", err)
	}

	return GetNotificationsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

func (q GetNotificationsQuery) UserID() kernel.UUID {
	return q.userID
}

type GetNotificationsQueryResponse struct {
	ID        kernel.UUID
	OrderID   *kernel.UUID
	Title     string
	Body      string
	IsRead    bool
	TargetURL string
	CreatedAt time.Time
}
