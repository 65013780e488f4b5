package queries_test

import (
	"errors"
	"testing"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/status"
	"orders/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	require.NoError(t, queries.NewGetOrdersQuery().Validate())
	assert.ErrorIs(t, queries.GetOrdersQuery{}.Validate(), queries.ErrGetOrdersQueryIsNotConstructed)
}

func TestGetOrdersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	summary := ports.OrderSummary{
		ID:         kernel.NewUUID(),
		StatusName: "Created",
		ItemCount:  2,
		TotalCost:  decimal.RequireFromString("5.00"),
		TotalPrice: decimal.RequireFromString("12.50"),
	}

	reader := new(MockOrderReader)
	reader.On("ListOrders", ctx).Return([]ports.OrderSummary{summary}, nil).Once()

	orders, err := queries.NewGetOrdersQueryHandler(reader).Handle(ctx, queries.NewGetOrdersQuery())

	require.NoError(t, err)
	assert.Equal(t, []ports.OrderSummary{summary}, orders)
	reader.AssertExpectations(t)
}

func TestGetOrdersQueryHandler_Handle_EmptyStore(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	reader.On("ListOrders", ctx).Return(nil, nil).Once()

	orders, err := queries.NewGetOrdersQueryHandler(reader).Handle(ctx, queries.NewGetOrdersQuery())

	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestGetOrdersQueryHandler_Handle_ReaderError(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	reader.On("ListOrders", ctx).Return(nil, errors.New("db down")).Once()

	_, err := queries.NewGetOrdersQueryHandler(reader).Handle(ctx, queries.NewGetOrdersQuery())

	require.EqualError(t, err, "db down")
}

func TestGetOrdersByStatusQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	statusID := kernel.NewUUID()
	matching := []ports.OrderSummary{{ID: kernel.NewUUID(), StatusID: statusID, StatusName: "Completed"}}

	t.Run("by name", func(t *testing.T) {
		reader := new(MockOrderReader)
		reader.On("ListOrdersByStatusName", ctx, "Completed").Return(matching, nil).Once()

		orders, err := queries.NewGetOrdersByStatusQueryHandler(reader).
			Handle(ctx, queries.NewGetOrdersByStatusNameQuery("Completed"))

		require.NoError(t, err)
		assert.Equal(t, matching, orders)
		reader.AssertExpectations(t)
	})

	t.Run("by id", func(t *testing.T) {
		reader := new(MockOrderReader)
		reader.On("ListOrdersByStatusID", ctx, statusID).Return(matching, nil).Once()

		orders, err := queries.NewGetOrdersByStatusQueryHandler(reader).
			Handle(ctx, queries.NewGetOrdersByStatusIDQuery(statusID))

		require.NoError(t, err)
		assert.Equal(t, matching, orders)
		reader.AssertExpectations(t)
	})

	t.Run("unknown name matches nothing", func(t *testing.T) {
		reader := new(MockOrderReader)
		reader.On("ListOrdersByStatusName", ctx, "Shipped").Return([]ports.OrderSummary{}, nil).Once()

		orders, err := queries.NewGetOrdersByStatusQueryHandler(reader).
			Handle(ctx, queries.NewGetOrdersByStatusNameQuery("Shipped"))

		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	for name, query := range map[string]queries.GetOrdersByStatusQuery{
		"empty reference skips the reader": queries.NewGetOrdersByStatusQuery(status.NewRef("", nil)),
		"blank name skips the reader":      queries.NewGetOrdersByStatusNameQuery("   "),
	} {
		t.Run(name, func(t *testing.T) {
			reader := new(MockOrderReader)

			orders, err := queries.NewGetOrdersByStatusQueryHandler(reader).Handle(ctx, query)

			require.NoError(t, err)
			assert.NotNil(t, orders)
			assert.Empty(t, orders)
			reader.AssertNotCalled(t, "ListOrdersByStatusName", mock.Anything, mock.Anything)
			reader.AssertNotCalled(t, "ListOrdersByStatusID", mock.Anything, mock.Anything)
		})
	}
}

func TestGetOrdersByStatusQuery_NotConstructedViaConstructor(t *testing.T) {
	reader := new(MockOrderReader)

	_, err := queries.NewGetOrdersByStatusQueryHandler(reader).Handle(t.Context(), queries.GetOrdersByStatusQuery{})

	require.ErrorIs(t, err, queries.ErrGetOrdersByStatusQueryIsNotConstructed)
}
