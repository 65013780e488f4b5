package postgres

import (
	"context"

	"orders/internal/adapters/out/postgres/catalogrepo"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/out/postgres/statusrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the order schema. Reference tables come
// first so the foreign keys of orders and items can be created.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&statusrepo.StatusDTO{},
		&catalogrepo.ServiceDTO{},
		&catalogrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
}
