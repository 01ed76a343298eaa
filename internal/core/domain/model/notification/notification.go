package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/pkg/errs"
)

const (
	maxTitleLength = 200

	// DefaultTargetURL is opened for notifications that are not linked to an order.
	DefaultTargetURL = "/dashboard"
	orderTargetURL   = "/driver/orders/%s"
)

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// Notification is a message addressed to one user, optionally about one order.
type Notification struct {
	id        kernel.UUID
	userID    kernel.UUID
	orderID   *kernel.UUID
	title     string
	body      string
	isRead    bool
	createdAt time.Time

	isConstructed bool
}

// NewNotification creates an unread notification.
func NewNotification(id, userID kernel.UUID, orderID *kernel.UUID, title, body string) (*Notification, error) {
	return RestoreNotification(id, userID, orderID, title, body, false, time.Now().UTC())
}

// RestoreNotification rebuilds a notification from storage.
func RestoreNotification(
	id, userID kernel.UUID,
	orderID *kernel.UUID,
	title, body string,
	isRead bool,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		isRead:        isRead,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setUserID(userID),
		n.setOrderID(orderID),
		n.setTitle(title),
		n.setBody(body),
	); err != nil {
		return nil, err
	}

	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID {
	return n.id
}

func (n *Notification) UserID() kernel.UUID {
	return n.userID
}

// OrderID is nil for notifications that are not about an order.
func (n *Notification) OrderID() *kernel.UUID {
	return n.orderID
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Body() string {
	return n.body
}

func (n *Notification) IsRead() bool {
	return n.isRead
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// TargetURL is the client route opened when the notification is clicked.
func (n *Notification) TargetURL() string {
	if n.orderID == nil {
		return DefaultTargetURL
	}
	return fmt.Sprintf(orderTargetURL, n.orderID.String())
}

// Tag lets the push client collapse repeated deliveries of the same notification.
func (n *Notification) Tag() string {
	return "notification-" + n.id.String()
}

// MarkRead reports whether the flag changed.
func (n *Notification) MarkRead() bool {
	if n.isRead {
		return false
	}
	n.isRead = true
	return true
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	n.userID = userID
	return nil
}

func (n *Notification) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order", err)
	}
	id := *orderID
	n.orderID = &id
	return nil
}

func (n *Notification) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if len(title) > maxTitleLength {
		return errs.NewValueIsOutOfRangeError("title", len(title), 1, maxTitleLength)
	}
	n.title = title
	return nil
}

func (n *Notification) setBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return errs.NewValueIsRequiredError("body")
	}
	n.body = body
	return nil
}
