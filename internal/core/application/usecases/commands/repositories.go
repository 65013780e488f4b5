// Package commands contains the operations that change order state:
// creating an order and moving it to another status. Each handler runs its
// work inside one unit of work so the change is atomic.
package commands

import (
	"context"

	"orders/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle of a unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	StatusRepoFactory interface {
		StatusRepository() ports.StatusRepository
	}

	// CreateOrderUoW is what order creation needs: the catalog to price the
	// items, the status directory for the initial status and the order store.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		CatalogRepoFactory
		StatusRepoFactory
	}

	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// StatusUoW is what a status transition needs.
	StatusUoW interface {
		TxManager
		OrderRepoFactory
		StatusRepoFactory
	}

	StatusUoWFactory interface {
		Create() StatusUoW
	}
)
