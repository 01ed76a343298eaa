// Package arearepo stores delivery areas as GeoJSON in a jsonb column.
package arearepo

import (
	"context"
	"errors"

	"ecofleet/internal/core/domain/model/area"
	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

type GormAreaRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormAreaRepository(db *gorm.DB, tracker aggregateTracker) *GormAreaRepository {
	return &GormAreaRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormAreaRepository) Add(ctx context.Context, aggregate *area.DeliveryArea) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormAreaRepository) Get(ctx context.Context, id kernel.UUID) (*area.DeliveryArea, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AreaDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("delivery_area", id.String(), err)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormAreaRepository) List(ctx context.Context) ([]*area.DeliveryArea, error) {
	var dtos []AreaDTO
	if err := r.db.WithContext(ctx).Order("name").Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	result := make([]*area.DeliveryArea, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, nil
}
