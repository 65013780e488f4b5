package queries

import (
	"errors"

	"orders/internal/pkg/guard"
)

var ErrGetMonthlyProfitQueryIsNotConstructed = errors.New(
	"GetMonthlyProfitQuery must be created via NewGetMonthlyProfitQuery constructor",
)

// GetMonthlyProfitQuery asks for the profit of completed orders created
// during the trailing month, from the same instant one month back up to now.
type GetMonthlyProfitQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMonthlyProfitQuery() GetMonthlyProfitQuery {
	return GetMonthlyProfitQuery{guard: guard.NewConstructorGuard()}
}

func (q GetMonthlyProfitQuery) Validate() error {
	return q.guard.Validate(ErrGetMonthlyProfitQueryIsNotConstructed)
}
