package notificationrepo

import (
	"time"

	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

type NotificationDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID   *uuid.UUID `gorm:"type:uuid"`
	Title     string     `gorm:"type:varchar(200);not null"`
	Body      string     `gorm:"type:text;not null"`
	IsRead    bool       `gorm:"not null;default:false"`
	CreatedAt time.Time  `gorm:"not null"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

// SubscriptionDTO is keyed by id and unique per (user_id, endpoint).
type SubscriptionDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_push_subscriptions_user_endpoint"`
	Endpoint  string    `gorm:"type:varchar(500);not null;uniqueIndex:idx_push_subscriptions_user_endpoint"`
	P256dh    string    `gorm:"column:p256dh;type:varchar(255);not null"`
	Auth      string    `gorm:"type:varchar(255);not null"`
	UserAgent string    `gorm:"type:varchar(255);not null;default:''"`
	CreatedAt time.Time `gorm:"not null"`
}

func (SubscriptionDTO) TableName() string {
	return "push_subscriptions"
}

func notificationFromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID().Bytes(),
		UserID:    n.UserID().Bytes(),
		OrderID:   kernel.OptionalBytes(n.OrderID()),
		Title:     n.Title(),
		Body:      n.Body(),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}
}

func notificationToDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.OptionalUUIDFrom(dto.OrderID)
	if err != nil {
		return nil, err
	}
	return notification.RestoreNotification(id, userID, orderID, dto.Title, dto.Body, dto.IsRead, dto.CreatedAt)
}

func subscriptionFromDomain(s *notification.PushSubscription) SubscriptionDTO {
	return SubscriptionDTO{
		ID:        s.ID().Bytes(),
		UserID:    s.UserID().Bytes(),
		Endpoint:  s.Endpoint(),
		P256dh:    s.P256dh(),
		Auth:      s.Auth(),
		UserAgent: s.UserAgent(),
		CreatedAt: s.CreatedAt(),
	}
}

func subscriptionToDomain(dto SubscriptionDTO) (*notification.PushSubscription, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	return notification.RestorePushSubscription(id, userID, dto.Endpoint, dto.P256dh, dto.Auth, dto.UserAgent, dto.CreatedAt)
}
