package queries_test

import (
	"testing"
	"time"

	"orders/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMonthlyProfitQueryHandler_Handle_Window(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		from time.Time
	}{
		{
			name: "mid month",
			now:  time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC),
			from: time.Date(2024, time.May, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "end of march clamps to february",
			now:  time.Date(2024, time.March, 31, 8, 0, 0, 0, time.UTC),
			from: time.Date(2024, time.February, 29, 8, 0, 0, 0, time.UTC),
		},
		{
			name: "january goes back a year",
			now:  time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
			from: time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			reader := new(MockOrderReader)
			reader.On("SumCompletedProfit", ctx, tt.from, tt.now).
				Return(decimal.RequireFromString("6.00"), nil).Once()

			handler := queries.NewGetMonthlyProfitQueryHandler(reader, func() time.Time { return tt.now })
			profit, err := handler.Handle(ctx, queries.NewGetMonthlyProfitQuery())

			require.NoError(t, err)
			assert.True(t, profit.Equal(decimal.RequireFromString("6")))
			reader.AssertExpectations(t)
		})
	}
}

func TestGetMonthlyProfitQuery_NotConstructedViaConstructor(t *testing.T) {
	handler := queries.NewGetMonthlyProfitQueryHandler(new(MockOrderReader), nil)

	profit, err := handler.Handle(t.Context(), queries.GetMonthlyProfitQuery{})

	require.ErrorIs(t, err, queries.ErrGetMonthlyProfitQueryIsNotConstructed)
	assert.True(t, profit.IsZero())
}
