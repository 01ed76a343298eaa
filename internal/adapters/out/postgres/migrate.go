package postgres

import (
	"context"
	"fmt"

	"ecofleet/internal/adapters/out/postgres/arearepo"
	"ecofleet/internal/adapters/out/postgres/driverrepo"
	"ecofleet/internal/adapters/out/postgres/notificationrepo"
	"ecofleet/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the service, in creation order.
func Models() []any {
	return []any{
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
		&notificationrepo.NotificationDTO{},
		&notificationrepo.SubscriptionDTO{},
		&arearepo.AreaDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
