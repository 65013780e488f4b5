package ports

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// OrderSummary is the listing projection of an order. Totals are computed
// from the current catalog prices every time it is read.
type OrderSummary struct {
	ID         kernel.UUID
	ResellerID kernel.UUID
	CustomerID kernel.UUID
	StatusID   kernel.UUID
	StatusName string
	CreatedAt  time.Time
	ItemCount  int
	TotalCost  decimal.Decimal
	TotalPrice decimal.Decimal
}

// OrderItemDetail is one expanded line of an OrderDetail.
type OrderItemDetail struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	ServiceID   kernel.UUID
	ServiceName string
	Quantity    int
	UnitCost    decimal.Decimal
	UnitPrice   decimal.Decimal
	TotalCost   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// OrderDetail is the full projection of one order.
type OrderDetail struct {
	ID         kernel.UUID
	ResellerID kernel.UUID
	CustomerID kernel.UUID
	StatusID   kernel.UUID
	StatusName string
	CreatedAt  time.Time
	TotalCost  decimal.Decimal
	TotalPrice decimal.Decimal
	Items      []OrderItemDetail
}

// OrderReader is the read side of the Order Store. Listings are ordered by
// creation time, newest first, and are never nil.
type OrderReader interface {
	ListOrders(ctx context.Context) ([]OrderSummary, error)

	// ListOrdersByStatusName returns an empty slice for a blank name
	// without touching storage.
	ListOrdersByStatusName(ctx context.Context, name string) ([]OrderSummary, error)

	ListOrdersByStatusID(ctx context.Context, id kernel.UUID) ([]OrderSummary, error)

	// GetOrderDetail returns an error matching errs.ErrObjectNotFound for an
	// unknown id.
	GetOrderDetail(ctx context.Context, id kernel.UUID) (OrderDetail, error)

	// SumCompletedProfit sums (unitPrice - unitCost) × quantity over the
	// items of orders in status "Completed" created within [from, to].
	// It returns zero when nothing matches.
	SumCompletedProfit(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}
