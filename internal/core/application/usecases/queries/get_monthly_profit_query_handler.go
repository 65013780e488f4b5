package queries

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"

	"github.com/shopspring/decimal"
)

// GetMonthlyProfitQueryHandler sums price minus cost over every item of
// every "Completed" order created in [now - 1 month, now]. Both ends are
// inclusive and prices are read from the live catalog.
//
// Example:
//
//	handler := NewGetMonthlyProfitQueryHandler(reader, time.Now)
//	profit, err := handler.Handle(ctx, NewGetMonthlyProfitQuery())
//	fmt.Println(profit.StringFixed(2))
type GetMonthlyProfitQueryHandler struct {
	reader ports.OrderReader
	now    func() time.Time
}

// NewGetMonthlyProfitQueryHandler uses time.Now when now is nil.
func NewGetMonthlyProfitQueryHandler(reader ports.OrderReader, now func() time.Time) GetMonthlyProfitQueryHandler {
	if now == nil {
		now = time.Now
	}
	return GetMonthlyProfitQueryHandler{reader: reader, now: now}
}

func (h GetMonthlyProfitQueryHandler) Handle(ctx context.Context, query GetMonthlyProfitQuery) (decimal.Decimal, error) {
	if err := query.Validate(); err != nil {
		return decimal.Zero, err
	}

	to := h.now().UTC()
	from := kernel.MonthsBefore(to, 1)

	return h.reader.SumCompletedProfit(ctx, from, to)
}
