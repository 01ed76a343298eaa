package notification

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/pkg/errs"
)

const (
	maxEndpointLength  = 500
	maxKeyLength       = 255
	maxUserAgentLength = 255
)

var ErrSubscriptionIsNotConstructed = errors.New("PushSubscription must be created via NewPushSubscription constructor")

// PushSubscription is one browser endpoint registered by a user.
// p256dh and auth are opaque to the domain and handed to the push channel as-is.
type PushSubscription struct {
	id        kernel.UUID
	userID    kernel.UUID
	endpoint  string
	p256dh    string
	auth      string
	userAgent string
	createdAt time.Time

	isConstructed bool
}

func NewPushSubscription(id, userID kernel.UUID, endpoint, p256dh, auth, userAgent string) (*PushSubscription, error) {
	return RestorePushSubscription(id, userID, endpoint, p256dh, auth, userAgent, time.Now().UTC())
}

func RestorePushSubscription(
	id, userID kernel.UUID,
	endpoint, p256dh, auth, userAgent string,
	createdAt time.Time,
) (*PushSubscription, error) {
	s := &PushSubscription{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setUserID(userID),
		s.setEndpoint(endpoint),
		s.setKeys(p256dh, auth),
	); err != nil {
		return nil, err
	}
	s.setUserAgent(userAgent)

	return s, nil
}

func (s *PushSubscription) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSubscriptionIsNotConstructed
	}
	return nil
}

func (s *PushSubscription) ID() kernel.UUID {
	return s.id
}

func (s *PushSubscription) UserID() kernel.UUID {
	return s.userID
}

func (s *PushSubscription) Endpoint() string {
	return s.endpoint
}

func (s *PushSubscription) P256dh() string {
	return s.p256dh
}

func (s *PushSubscription) Auth() string {
	return s.auth
}

func (s *PushSubscription) UserAgent() string {
	return s.userAgent
}

func (s *PushSubscription) CreatedAt() time.Time {
	return s.createdAt
}

// BelongsTo reports whether the subscription was registered by userID.
func (s *PushSubscription) BelongsTo(userID kernel.UUID) bool {
	return s.userID.IsEqual(userID)
}

// RefreshKeys replaces the keys and user agent when a browser re-registers the same endpoint.
func (s *PushSubscription) RefreshKeys(p256dh, auth, userAgent string) error {
	if err := s.setKeys(p256dh, auth); err != nil {
		return err
	}
	s.setUserAgent(userAgent)
	return nil
}

func (s *PushSubscription) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *PushSubscription) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	s.userID = userID
	return nil
}

func (s *PushSubscription) setEndpoint(endpoint string) error {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return errs.NewValueIsRequiredError("endpoint")
	}
	if len(endpoint) > maxEndpointLength {
		return errs.NewValueIsOutOfRangeError("endpoint", len(endpoint), 1, maxEndpointLength)
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("endpoint", err)
	}
	if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return errs.NewValueIsInvalidError("endpoint")
	}
	s.endpoint = endpoint
	return nil
}

func (s *PushSubscription) setKeys(p256dh, auth string) error {
	var errList []error
	p256dh = strings.TrimSpace(p256dh)
	auth = strings.TrimSpace(auth)

	switch {
	case p256dh == "":
		errList = append(errList, errs.NewValueIsRequiredError("keys.p256dh"))
	case len(p256dh) > maxKeyLength:
		errList = append(errList, errs.NewValueIsOutOfRangeError("keys.p256dh", len(p256dh), 1, maxKeyLength))
	}
	switch {
	case auth == "":
		errList = append(errList, errs.NewValueIsRequiredError("keys.auth"))
	case len(auth) > maxKeyLength:
		errList = append(errList, errs.NewValueIsOutOfRangeError("keys.auth", len(auth), 1, maxKeyLength))
	}
	if len(errList) > 0 {
		return errors.Join(errList...)
	}

	s.p256dh = p256dh
	s.auth = auth
	return nil
}

func (s *PushSubscription) setUserAgent(userAgent string) {
	if len(userAgent) > maxUserAgentLength {
		userAgent = userAgent[:maxUserAgentLength]
	}
	s.userAgent = userAgent
}
