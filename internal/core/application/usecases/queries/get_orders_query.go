// Package queries holds the read-only operations over orders. Handlers
// depend on ports.OrderReader and never open a unit of work.
package queries

import (
	"errors"

	"orders/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists every order with its totals, newest first.
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}
