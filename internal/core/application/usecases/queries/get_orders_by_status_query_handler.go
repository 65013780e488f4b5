package queries

import (
	"context"
	"strings"

	"orders/internal/core/ports"
)

// GetOrdersByStatusQueryHandler filters summaries by status. Unknown names
// and ids simply match nothing; a blank name or empty reference returns an
// empty slice without reading the store.
type GetOrdersByStatusQueryHandler struct {
	reader ports.OrderReader
}

func NewGetOrdersByStatusQueryHandler(reader ports.OrderReader) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{reader: reader}
}

func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]ports.OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		orders []ports.OrderSummary
		err    error
	)

	ref := query.Ref()
	if id, ok := ref.ID(); ok {
		orders, err = h.reader.ListOrdersByStatusID(ctx, id)
	} else if name, ok := ref.Name(); ok && strings.TrimSpace(name) != "" {
		orders, err = h.reader.ListOrdersByStatusName(ctx, name)
	}
	if err != nil {
		return nil, err
	}

	if orders == nil {
		orders = []ports.OrderSummary{}
	}
	return orders, nil
}
