package queries

import (
	"context"

	"orders/internal/core/ports"
)

type GetOrdersQueryHandler struct {
	reader ports.OrderReader
}

func NewGetOrdersQueryHandler(reader ports.OrderReader) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{reader: reader}
}

// Handle returns all order summaries. An empty store yields an empty,
// non-nil slice.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]ports.OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []ports.OrderSummary{}
	}
	return orders, nil
}
