package driver

import (
	"fmt"

	"ecofleet/internal/pkg/errs"
)

// Status is the availability of a driver.
type Status string

const (
	Available   Status = "available"
	OnRoute     Status = "on_route"
	Unavailable Status = "unavailable"
)

// ParseStatus converts a stored value into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

func (s Status) Validate() error {
	switch s {
	case Available, OnRoute, Unavailable:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("current_status", fmt.Errorf("%q is not a valid driver status", string(s)))
}

func (s Status) String() string {
	return string(s)
}
