package services

import (
	"orders/internal/core/domain/model/catalog"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Totals is the cost and price of one or more order lines.
type Totals struct {
	Cost  decimal.Decimal
	Price decimal.Decimal
}

// ZeroTotals is the value of no lines at all.
func ZeroTotals() Totals {
	return Totals{Cost: decimal.Zero, Price: decimal.Zero}
}

func (t Totals) Add(other Totals) Totals {
	return Totals{Cost: t.Cost.Add(other.Cost), Price: t.Price.Add(other.Price)}
}

// Profit is price minus cost.
func (t Totals) Profit() decimal.Decimal {
	return t.Price.Sub(t.Cost)
}

// ProductLookup returns the current product for id, or nil when the catalog
// no longer has it.
type ProductLookup func(id kernel.UUID) *catalog.Product

// OrderPricer values order lines at current catalog prices.
//
// Example usage:
//
//	pricer := NewOrderPricer()
//	totals := pricer.Price(o.Items(), catalogLookup)
//	fmt.Println(totals.Cost, totals.Price, totals.Profit())
type OrderPricer struct{}

func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Line values a single item. A product missing from the catalog values the
// line at zero and is returned as nil.
func (OrderPricer) Line(item order.Item, lookup ProductLookup) (Totals, *catalog.Product) {
	p := lookup(item.ProductID())
	if p == nil {
		return ZeroTotals(), nil
	}
	return Totals{Cost: p.CostOf(item.Quantity()), Price: p.PriceOf(item.Quantity())}, p
}

// Price sums Line over items.
func (op OrderPricer) Price(items []order.Item, lookup ProductLookup) Totals {
	total := ZeroTotals()
	for _, item := range items {
		line, _ := op.Line(item, lookup)
		total = total.Add(line)
	}
	return total
}
