package catalog_test

import (
	"errors"
	"testing"

	"orders/internal/core/domain/model/catalog"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	id := kernel.NewUUID()
	serviceID := kernel.NewUUID()
	cost := decimal.RequireFromString("0.80")
	price := decimal.RequireFromString("0.90")

	t.Run("should create product with valid parameters", func(t *testing.T) {
		p, err := catalog.NewProduct(id, "100GB Mailbox", cost, price, serviceID)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "100GB Mailbox", p.Name())
		assert.True(t, p.UnitCost().Equal(cost))
		assert.True(t, p.UnitPrice().Equal(price))
		assert.True(t, p.ServiceID().IsEqual(serviceID))
	})

	t.Run("should allow zero amounts", func(t *testing.T) {
		_, err := catalog.NewProduct(id, "Free tier", decimal.Zero, decimal.Zero, serviceID)

		require.NoError(t, err)
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		p, err := catalog.NewProduct(kernel.UUID{}, " ", decimal.NewFromInt(-1), decimal.NewFromInt(-2), kernel.UUID{})

		require.Error(t, err)
		assert.Nil(t, p)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "unit cost")
		assert.Contains(t, err.Error(), "unit price")
	})
}

func TestProduct_CostAndPriceOf(t *testing.T) {
	p, err := catalog.NewProduct(kernel.NewUUID(), "Mailbox",
		decimal.RequireFromString("0.8"), decimal.RequireFromString("0.9"), kernel.NewUUID())
	require.NoError(t, err)

	assert.True(t, p.CostOf(3).Equal(decimal.RequireFromString("2.4")))
	assert.True(t, p.PriceOf(3).Equal(decimal.RequireFromString("2.7")))
}

func TestProduct_ZeroValueIsInvalid(t *testing.T) {
	var p *catalog.Product
	assert.Equal(t, catalog.ErrProductIsNotConstructed, p.Validate())
	assert.Equal(t, catalog.ErrProductIsNotConstructed, (&catalog.Product{}).Validate())
}

func TestProductNotFoundError(t *testing.T) {
	id := kernel.MustUUIDFromString("550e8400-e29b-41d4-a716-446655440000")
	var err error = catalog.NewProductNotFoundError(id)

	assert.Equal(t, "product with ID 550e8400-e29b-41d4-a716-446655440000 not found", err.Error())
	require.ErrorIs(t, err, catalog.ErrProductNotFound)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	var target *catalog.ProductNotFoundError
	require.True(t, errors.As(err, &target))
	assert.True(t, target.ProductID.IsEqual(id))
}

func TestNewService(t *testing.T) {
	id := kernel.NewUUID()

	s, err := catalog.NewService(id, "Email")
	require.NoError(t, err)
	require.NoError(t, s.Validate())
	assert.Equal(t, "Email", s.Name())

	_, err = catalog.NewService(id, "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = catalog.NewService(kernel.UUID{}, "Email")
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
