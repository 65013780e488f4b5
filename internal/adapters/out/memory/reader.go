package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/status"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"

	"github.com/shopspring/decimal"
)

// Reader implements ports.OrderReader over committed store state.
type Reader struct {
	store  *Store
	pricer services.OrderPricer
}

func NewReader(store *Store) *Reader {
	return &Reader{store: store, pricer: services.NewOrderPricer()}
}

func (r *Reader) ListOrders(ctx context.Context) ([]ports.OrderSummary, error) {
	return r.summaries(ctx, func(orderRecord, *status.Status) bool { return true })
}

func (r *Reader) ListOrdersByStatusName(ctx context.Context, name string) ([]ports.OrderSummary, error) {
	if strings.TrimSpace(name) == "" {
		return []ports.OrderSummary{}, nil
	}
	return r.summaries(ctx, func(_ orderRecord, s *status.Status) bool {
		return s != nil && s.Name() == name
	})
}

func (r *Reader) ListOrdersByStatusID(ctx context.Context, id kernel.UUID) ([]ports.OrderSummary, error) {
	return r.summaries(ctx, func(o orderRecord, _ *status.Status) bool {
		return sameID(o.statusID, id)
	})
}

func (r *Reader) GetOrderDetail(ctx context.Context, id kernel.UUID) (ports.OrderDetail, error) {
	if err := ctx.Err(); err != nil {
		return ports.OrderDetail{}, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i := r.store.findOrder(id)
	if i < 0 {
		return ports.OrderDetail{}, errNotFound(id)
	}
	o := r.store.orders[i]

	total := services.ZeroTotals()
	items := make([]ports.OrderItemDetail, 0, len(o.items))
	for _, item := range o.items {
		value, p := r.pricer.Line(item, r.store.findProduct)
		line := ports.OrderItemDetail{
			ID:         item.ID(),
			OrderID:    item.OrderID(),
			ProductID:  item.ProductID(),
			ServiceID:  item.ServiceID(),
			Quantity:   item.Quantity(),
			UnitCost:   decimal.Zero,
			UnitPrice:  decimal.Zero,
			TotalCost:  value.Cost,
			TotalPrice: value.Price,
		}
		if p != nil {
			line.ProductName = p.Name()
			line.UnitCost = p.UnitCost()
			line.UnitPrice = p.UnitPrice()
		}
		if svc := r.store.findService(item.ServiceID()); svc != nil {
			line.ServiceName = svc.Name()
		}

		total = total.Add(value)
		items = append(items, line)
	}

	return ports.OrderDetail{
		ID:         o.id,
		ResellerID: o.resellerID,
		CustomerID: o.customerID,
		StatusID:   o.statusID,
		StatusName: r.statusName(o.statusID),
		CreatedAt:  o.createdAt,
		TotalCost:  total.Cost,
		TotalPrice: total.Price,
		Items:      items,
	}, nil
}

func (r *Reader) SumCompletedProfit(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	profit := decimal.Zero
	for _, o := range r.store.orders {
		if r.statusName(o.statusID) != status.Completed {
			continue
		}
		if o.createdAt.Before(from) || o.createdAt.After(to) {
			continue
		}
		profit = profit.Add(r.pricer.Price(o.items, r.store.findProduct).Profit())
	}
	return profit, nil
}

func (r *Reader) summaries(
	ctx context.Context,
	keep func(orderRecord, *status.Status) bool,
) ([]ports.OrderSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]ports.OrderSummary, 0, len(r.store.orders))
	for _, o := range r.store.orders {
		st := r.store.findStatus(func(s *status.Status) bool { return sameID(s.ID(), o.statusID) })
		if !keep(o, st) {
			continue
		}

		total := r.pricer.Price(o.items, r.store.findProduct)
		summary := ports.OrderSummary{
			ID:         o.id,
			ResellerID: o.resellerID,
			CustomerID: o.customerID,
			StatusID:   o.statusID,
			CreatedAt:  o.createdAt,
			ItemCount:  len(o.items),
			TotalCost:  total.Cost,
			TotalPrice: total.Price,
		}
		if st != nil {
			summary.StatusName = st.Name()
		}
		result = append(result, summary)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result, nil
}

// statusName is called with the read lock held.
func (r *Reader) statusName(id kernel.UUID) string {
	if st := r.store.findStatus(func(s *status.Status) bool { return sameID(s.ID(), id) }); st != nil {
		return st.Name()
	}
	return ""
}
