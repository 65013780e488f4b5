package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/status"
	"orders/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery lists the orders currently in one status, addressed
// by name or by id.
//
// Example:
//
//	q := NewGetOrdersByStatusQuery(status.NewRef(r.URL.Query().Get("statusName"), parsedID))
//	orders, err := handler.Handle(ctx, q) // [] for an empty reference
type GetOrdersByStatusQuery struct {
	ref status.Ref

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery accepts any reference, including an empty one.
func NewGetOrdersByStatusQuery(ref status.Ref) GetOrdersByStatusQuery {
	return GetOrdersByStatusQuery{ref: ref, guard: guard.NewConstructorGuard()}
}

func NewGetOrdersByStatusNameQuery(name string) GetOrdersByStatusQuery {
	return NewGetOrdersByStatusQuery(status.ByName(name))
}

func NewGetOrdersByStatusIDQuery(id kernel.UUID) GetOrdersByStatusQuery {
	return NewGetOrdersByStatusQuery(status.ByID(id))
}

func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

func (q GetOrdersByStatusQuery) Ref() status.Ref {
	return q.ref
}
