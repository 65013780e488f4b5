package services_test

import (
	"testing"

	"orders/internal/core/domain/model/catalog"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, cost, price string) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(kernel.NewUUID(), "P",
		decimal.RequireFromString(cost), decimal.RequireFromString(price), kernel.NewUUID())
	require.NoError(t, err)
	return p
}

func newItem(t *testing.T, p *catalog.Product, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), p.ID(), p.ServiceID(), quantity)
	require.NoError(t, err)
	return item
}

func lookupOf(products ...*catalog.Product) services.ProductLookup {
	return func(id kernel.UUID) *catalog.Product {
		for _, p := range products {
			if p.ID().IsEqual(id) {
				return p
			}
		}
		return nil
	}
}

func TestOrderPricer_Price(t *testing.T) {
	pricer := services.NewOrderPricer()

	t.Run("should sum quantity times unit values over all lines", func(t *testing.T) {
		a := newProduct(t, "0.80", "0.90")
		b := newProduct(t, "1.20", "5.00")
		items := []order.Item{newItem(t, a, 3), newItem(t, b, 2)}

		totals := pricer.Price(items, lookupOf(a, b))

		assert.True(t, decimal.RequireFromString("4.80").Equal(totals.Cost), totals.Cost.String())
		assert.True(t, decimal.RequireFromString("12.70").Equal(totals.Price), totals.Price.String())
		assert.True(t, decimal.RequireFromString("7.90").Equal(totals.Profit()))
	})

	t.Run("should value no lines at zero", func(t *testing.T) {
		totals := pricer.Price(nil, lookupOf())

		assert.True(t, totals.Cost.IsZero())
		assert.True(t, totals.Price.IsZero())
	})

	t.Run("should value a line whose product left the catalog at zero", func(t *testing.T) {
		gone := newProduct(t, "1", "2")
		kept := newProduct(t, "0.80", "0.90")
		items := []order.Item{newItem(t, gone, 1), newItem(t, kept, 1)}

		totals := pricer.Price(items, lookupOf(kept))

		assert.True(t, decimal.RequireFromString("0.80").Equal(totals.Cost))
	})
}

func TestOrderPricer_Line(t *testing.T) {
	pricer := services.NewOrderPricer()
	p := newProduct(t, "0.80", "0.90")

	totals, product := pricer.Line(newItem(t, p, 2), lookupOf(p))

	require.NotNil(t, product)
	assert.True(t, product.ID().IsEqual(p.ID()))
	assert.True(t, decimal.RequireFromString("1.60").Equal(totals.Cost))
	assert.True(t, decimal.RequireFromString("1.80").Equal(totals.Price))

	_, missing := pricer.Line(newItem(t, p, 1), lookupOf())
	assert.Nil(t, missing)
}
