package driver

import (
	"errors"
	"strings"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/pkg/errs"
)

const maxLicenseNumberLength = 20

var (
	// ErrLicenseNumberIsRequired is returned for a blank license number.
	ErrLicenseNumberIsRequired = errs.NewValueIsRequiredError("license_number")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver is the delivery profile of a user.
//
// Business rules:
//   - Driver and user identifiers are valid UUIDs
//   - License number is required and at most 20 characters
//   - A new driver starts Available
type Driver struct {
	id            kernel.UUID
	userID        kernel.UUID
	licenseNumber string
	status        Status

	isConstructed bool
}

// NewDriver creates an available driver for the given user.
func NewDriver(id kernel.UUID, userID kernel.UUID, licenseNumber string) (*Driver, error) {
	d := &Driver{
		status:        Available,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setUserID(userID),
		d.setLicenseNumber(licenseNumber),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver rebuilds a driver from storage.
func RestoreDriver(id kernel.UUID, userID kernel.UUID, licenseNumber string, status Status) (*Driver, error) {
	d, err := NewDriver(id, userID, licenseNumber)
	if err != nil {
		return nil, err
	}
	if err = d.ChangeStatus(status); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

func (d *Driver) ID() kernel.UUID {
	return d.id
}

// UserID is the account that receives notifications for this driver.
func (d *Driver) UserID() kernel.UUID {
	return d.userID
}

func (d *Driver) LicenseNumber() string {
	return d.licenseNumber
}

func (d *Driver) Status() Status {
	return d.status
}

func (d *Driver) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	d.userID = userID
	return nil
}

func (d *Driver) setLicenseNumber(licenseNumber string) error {
	licenseNumber = strings.TrimSpace(licenseNumber)
	if licenseNumber == "" {
		return ErrLicenseNumberIsRequired
	}
	if len(licenseNumber) > maxLicenseNumberLength {
		return errs.NewValueIsOutOfRangeError("license_number", len(licenseNumber), 1, maxLicenseNumberLength)
	}
	d.licenseNumber = licenseNumber
	return nil
}
