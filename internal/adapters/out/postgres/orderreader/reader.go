// Package orderreader answers the read side of the order store with plain
// SQL. Totals are aggregated in the database from the current catalog
// prices and are never stored. Every order has at least one item and the
// schema keeps statuses and catalog rows referenced, so all joins are inner.
package orderreader

import (
	"context"
	"errors"
	"strings"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/status"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const summarySQL = `
	SELECT
		o.id,
		o.reseller_id,
		o.customer_id,
		o.status_id,
		s.name AS status_name,
		o.created_at,
		COUNT(i.id) AS item_count,
		SUM(p.unit_cost * i.quantity) AS total_cost,
		SUM(p.unit_price * i.quantity) AS total_price
	FROM orders o
	JOIN order_statuses s ON s.id = o.status_id
	JOIN order_items i ON i.order_id = o.id
	JOIN order_products p ON p.id = i.product_id
	%WHERE%
	GROUP BY o.id, s.name
	ORDER BY o.created_at DESC, o.id`

const itemsSQL = `
	SELECT
		i.id,
		i.order_id,
		i.product_id,
		p.name AS product_name,
		i.service_id,
		sv.name AS service_name,
		i.quantity,
		p.unit_cost,
		p.unit_price,
		p.unit_cost * i.quantity AS total_cost,
		p.unit_price * i.quantity AS total_price
	FROM order_items i
	JOIN order_products p ON p.id = i.product_id
	JOIN order_services sv ON sv.id = i.service_id
	WHERE i.order_id = ?
	ORDER BY i.position`

const profitSQL = `
	SELECT COALESCE(SUM((p.unit_price - p.unit_cost) * i.quantity), 0)
	FROM orders o
	JOIN order_statuses s ON s.id = o.status_id
	JOIN order_items i ON i.order_id = o.id
	JOIN order_products p ON p.id = i.product_id
	WHERE s.name = ? AND o.created_at BETWEEN ? AND ?`

type summaryRow struct {
	ID         uuid.UUID
	ResellerID uuid.UUID
	CustomerID uuid.UUID
	StatusID   uuid.UUID
	StatusName string
	CreatedAt  time.Time
	ItemCount  int
	TotalCost  decimal.Decimal
	TotalPrice decimal.Decimal
}

type itemRow struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	ServiceID   uuid.UUID
	ServiceName string
	Quantity    int
	UnitCost    decimal.Decimal
	UnitPrice   decimal.Decimal
	TotalCost   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// GormOrderReader implements ports.OrderReader.
type GormOrderReader struct {
	db *gorm.DB
}

func NewGormOrderReader(db *gorm.DB) *GormOrderReader {
	return &GormOrderReader{db: db}
}

func (r *GormOrderReader) ListOrders(ctx context.Context) ([]ports.OrderSummary, error) {
	return r.summaries(ctx, "")
}

func (r *GormOrderReader) ListOrdersByStatusName(ctx context.Context, name string) ([]ports.OrderSummary, error) {
	if strings.TrimSpace(name) == "" {
		return []ports.OrderSummary{}, nil
	}
	return r.summaries(ctx, "WHERE s.name = ?", name)
}

func (r *GormOrderReader) ListOrdersByStatusID(ctx context.Context, id kernel.UUID) ([]ports.OrderSummary, error) {
	return r.summaries(ctx, "WHERE o.status_id = ?", id.Value())
}

func (r *GormOrderReader) GetOrderDetail(ctx context.Context, id kernel.UUID) (ports.OrderDetail, error) {
	headers, err := r.summaries(ctx, "WHERE o.id = ?", id.Value())
	if err != nil {
		return ports.OrderDetail{}, err
	}
	if len(headers) == 0 {
		return ports.OrderDetail{}, errs.NewObjectNotFoundError("order", id.String())
	}
	header := headers[0]

	var rows []itemRow
	if err = r.db.WithContext(ctx).Raw(itemsSQL, id.Value()).Scan(&rows).Error; err != nil {
		return ports.OrderDetail{}, err
	}

	items := make([]ports.OrderItemDetail, 0, len(rows))
	for _, row := range rows {
		item, convErr := row.toPort()
		if convErr != nil {
			return ports.OrderDetail{}, convErr
		}
		items = append(items, item)
	}

	return ports.OrderDetail{
		ID:         header.ID,
		ResellerID: header.ResellerID,
		CustomerID: header.CustomerID,
		StatusID:   header.StatusID,
		StatusName: header.StatusName,
		CreatedAt:  header.CreatedAt,
		TotalCost:  header.TotalCost,
		TotalPrice: header.TotalPrice,
		Items:      items,
	}, nil
}

func (r *GormOrderReader) SumCompletedProfit(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var profit decimal.Decimal
	err := r.db.WithContext(ctx).
		Raw(profitSQL, status.Completed, from.UTC(), to.UTC()).
		Row().
		Scan(&profit)
	if err != nil {
		return decimal.Zero, err
	}
	return profit, nil
}

func (r *GormOrderReader) summaries(ctx context.Context, where string, args ...any) ([]ports.OrderSummary, error) {
	var rows []summaryRow
	query := strings.Replace(summarySQL, "%WHERE%", where, 1)
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	summaries := make([]ports.OrderSummary, 0, len(rows))
	for _, row := range rows {
		summary, err := row.toPort()
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (row summaryRow) toPort() (ports.OrderSummary, error) {
	ids, err := identifiers(row.ID, row.ResellerID, row.CustomerID, row.StatusID)
	if err != nil {
		return ports.OrderSummary{}, err
	}
	return ports.OrderSummary{
		ID:         ids[0],
		ResellerID: ids[1],
		CustomerID: ids[2],
		StatusID:   ids[3],
		StatusName: row.StatusName,
		CreatedAt:  row.CreatedAt.UTC(),
		ItemCount:  row.ItemCount,
		TotalCost:  row.TotalCost,
		TotalPrice: row.TotalPrice,
	}, nil
}

func (row itemRow) toPort() (ports.OrderItemDetail, error) {
	ids, err := identifiers(row.ID, row.OrderID, row.ProductID, row.ServiceID)
	if err != nil {
		return ports.OrderItemDetail{}, err
	}
	return ports.OrderItemDetail{
		ID:          ids[0],
		OrderID:     ids[1],
		ProductID:   ids[2],
		ProductName: row.ProductName,
		ServiceID:   ids[3],
		ServiceName: row.ServiceName,
		Quantity:    row.Quantity,
		UnitCost:    row.UnitCost,
		UnitPrice:   row.UnitPrice,
		TotalCost:   row.TotalCost,
		TotalPrice:  row.TotalPrice,
	}, nil
}

func identifiers(raw ...uuid.UUID) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	var convErrs []error
	for _, r := range raw {
		id, err := kernel.UUIDFromBytes(r[:])
		if err != nil {
			convErrs = append(convErrs, err)
			continue
		}
		ids = append(ids, id)
	}
	if err := errors.Join(convErrs...); err != nil {
		return nil, err
	}
	return ids, nil
}
