// Package ports defines the contracts between the order engine and its
// storage and messaging adapters. Every adapter (postgres, in-memory, kafka)
// implements these interfaces, so the engine never depends on a backend.
package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository is the write side of the Order Store.
type OrderRepository interface {
	// Add inserts the order header and all of its items as one write.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the only mutable field of an order, its status id.
	// Returns an error matching errs.ErrObjectNotFound when no row matches.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its items. Returns an error matching
	// errs.ErrObjectNotFound when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
