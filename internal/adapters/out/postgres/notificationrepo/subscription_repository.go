package notificationrepo

import (
	"context"
	"errors"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/domain/model/notification"
	"ecofleet/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormSubscriptionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormSubscriptionRepository(db *gorm.DB, tracker aggregateTracker) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert keeps the id and created_at of an existing (user, endpoint) row.
func (r *GormSubscriptionRepository) Upsert(
	ctx context.Context,
	aggregate *notification.PushSubscription,
) (*notification.PushSubscription, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := subscriptionFromDomain(aggregate)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"p256dh", "auth", "user_agent"}),
	}).Create(&dto).Error
	if err != nil {
		return nil, err
	}

	var stored SubscriptionDTO
	err = r.db.WithContext(ctx).
		Where("user_id = ? AND endpoint = ?", dto.UserID, dto.Endpoint).
		First(&stored).Error
	if err != nil {
		return nil, err
	}

	result, err := subscriptionToDomain(stored)
	if err != nil {
		return nil, err
	}
	r.tracker.TrackAggregate(result.ID(), result)
	return result, nil
}

func (r *GormSubscriptionRepository) Get(ctx context.Context, id kernel.UUID) (*notification.PushSubscription, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SubscriptionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("push_subscription", id.String(), err)
		}
		return nil, err
	}

	return subscriptionToDomain(dto)
}

func (r *GormSubscriptionRepository) ListByUser(
	ctx context.Context,
	userID kernel.UUID,
) ([]*notification.PushSubscription, error) {
	var dtos []SubscriptionDTO
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.Bytes()).
		Order("created_at").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	result := make([]*notification.PushSubscription, 0, len(dtos))
	for _, dto := range dtos {
		s, err := subscriptionToDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

func (r *GormSubscriptionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return r.db.WithContext(ctx).Delete(&SubscriptionDTO{}, "id = ?", id.Bytes()).Error
}
