package queries

import (
	"context"

	"orders/internal/core/ports"
)

type GetOrderDetailQueryHandler struct {
	reader ports.OrderReader
}

func NewGetOrderDetailQueryHandler(reader ports.OrderReader) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{reader: reader}
}

// Handle returns the order detail, or an error matching
// errs.ErrObjectNotFound when no order has the requested id.
func (h GetOrderDetailQueryHandler) Handle(ctx context.Context, query GetOrderDetailQuery) (ports.OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return ports.OrderDetail{}, err
	}

	detail, err := h.reader.GetOrderDetail(ctx, query.OrderID())
	if err != nil {
		return ports.OrderDetail{}, err
	}
	if detail.Items == nil {
		detail.Items = []ports.OrderItemDetail{}
	}
	return detail, nil
}
