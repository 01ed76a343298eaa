package order

import (
	"fmt"

	"ecofleet/internal/pkg/errs"
)

// Status is the delivery state of an order, stored and transported as its string value.
type Status string

const (
	// Pending is the initial status of a new order.
	Pending Status = "pending"
	// InTransit means a driver has picked the order up.
	InTransit Status = "in_transit"
	// Delivered means the dropoff was completed.
	Delivered Status = "delivered"
	// Cancelled means the order will not be delivered.
	Cancelled Status = "cancelled"
)

func getStatusLabels() map[Status]string {
	return map[Status]string{
		Pending:   "Pendente",
		InTransit: "Em transito",
		Delivered: "Entregue",
		Cancelled: "Cancelado",
	}
}

// ParseStatus converts a transport value into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

func (s Status) Validate() error {
	if _, ok := getStatusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// Label is the human readable name used in notification and email texts.
func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return string(s)
}
