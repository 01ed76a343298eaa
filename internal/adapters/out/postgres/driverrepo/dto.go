package driverrepo

import (
	"ecofleet/internal/core/domain/model/driver"
	"ecofleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DriverDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	LicenseNumber string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	CurrentStatus string    `gorm:"type:varchar(20);not null"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:            d.ID().Bytes(),
		UserID:        d.UserID().Bytes(),
		LicenseNumber: d.LicenseNumber(),
		CurrentStatus: d.Status().String(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	return driver.RestoreDriver(id, userID, dto.LicenseNumber, driver.Status(dto.CurrentStatus))
}
