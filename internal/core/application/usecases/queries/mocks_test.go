package queries_test

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) ListOrders(ctx context.Context) ([]ports.OrderSummary, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]ports.OrderSummary)
	return orders, args.Error(1)
}

func (m *MockOrderReader) ListOrdersByStatusName(ctx context.Context, name string) ([]ports.OrderSummary, error) {
	args := m.Called(ctx, name)
	orders, _ := args.Get(0).([]ports.OrderSummary)
	return orders, args.Error(1)
}

func (m *MockOrderReader) ListOrdersByStatusID(ctx context.Context, id kernel.UUID) ([]ports.OrderSummary, error) {
	args := m.Called(ctx, id)
	orders, _ := args.Get(0).([]ports.OrderSummary)
	return orders, args.Error(1)
}

func (m *MockOrderReader) GetOrderDetail(ctx context.Context, id kernel.UUID) (ports.OrderDetail, error) {
	args := m.Called(ctx, id)
	detail, _ := args.Get(0).(ports.OrderDetail)
	return detail, args.Error(1)
}

func (m *MockOrderReader) SumCompletedProfit(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
