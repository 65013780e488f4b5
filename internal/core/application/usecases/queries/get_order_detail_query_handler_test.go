package queries_test

import (
	"testing"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderDetailQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetOrderDetailQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrderDetailQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	detail := ports.OrderDetail{
		ID:         orderID,
		StatusName: "In Progress",
		TotalCost:  decimal.RequireFromString("2.00"),
		TotalPrice: decimal.RequireFromString("5.00"),
		Items: []ports.OrderItemDetail{{
			ID:          kernel.NewUUID(),
			OrderID:     orderID,
			ProductName: "Mailbox",
			ServiceName: "Email",
			Quantity:    2,
			UnitCost:    decimal.RequireFromString("1.00"),
			UnitPrice:   decimal.RequireFromString("2.50"),
			TotalCost:   decimal.RequireFromString("2.00"),
			TotalPrice:  decimal.RequireFromString("5.00"),
		}},
	}

	reader := new(MockOrderReader)
	reader.On("GetOrderDetail", ctx, orderID).Return(detail, nil).Once()

	query, err := queries.NewGetOrderDetailQuery(orderID)
	require.NoError(t, err)

	got, err := queries.NewGetOrderDetailQueryHandler(reader).Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, detail, got)
	reader.AssertExpectations(t)
}

func TestGetOrderDetailQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	reader := new(MockOrderReader)
	reader.On("GetOrderDetail", ctx, orderID).
		Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once()

	query, err := queries.NewGetOrderDetailQuery(orderID)
	require.NoError(t, err)

	_, err = queries.NewGetOrderDetailQueryHandler(reader).Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
