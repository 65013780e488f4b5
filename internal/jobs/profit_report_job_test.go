package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProfitHandler struct {
	mock.Mock
}

func (m *MockProfitHandler) Handle(ctx context.Context, query queries.GetMonthlyProfitQuery) (decimal.Decimal, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestProfitReportJob_RunOnce_SetsGauge(t *testing.T) {
	var logs bytes.Buffer
	handler := &MockProfitHandler{}
	handler.On("Handle", mock.Anything, mock.AnythingOfType("queries.GetMonthlyProfitQuery")).
		Return(decimal.RequireFromString("12.30"), nil).Once()
	m := metrics.NewReportMetrics(prometheus.NewRegistry())

	job := NewProfitReportJob(handler, "", m, newTestLogger(&logs))
	job.RunOnce(t.Context())

	handler.AssertExpectations(t)
	assert.InDelta(t, 12.3, testutil.ToFloat64(m.MonthlyProfit), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Runs.WithLabelValues("ok")), 0)
	assert.Contains(t, logs.String(), "profit=12.30")
	assert.Contains(t, logs.String(), "component=profit_report_job")
}

func TestProfitReportJob_RunOnce_HandlerError(t *testing.T) {
	var logs bytes.Buffer
	handler := &MockProfitHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).
		Return(decimal.Zero, errors.New("db down")).Once()
	m := metrics.NewReportMetrics(prometheus.NewRegistry())
	m.MonthlyProfit.Set(7)

	job := NewProfitReportJob(handler, "", m, newTestLogger(&logs))
	job.RunOnce(t.Context())

	assert.InDelta(t, 7, testutil.ToFloat64(m.MonthlyProfit), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Runs.WithLabelValues("error")), 0)
	assert.Contains(t, logs.String(), "db down")
}

func TestProfitReportJob_RunOnce_WithoutMetrics(t *testing.T) {
	var logs bytes.Buffer
	handler := &MockProfitHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(decimal.Zero, nil).Once()

	job := NewProfitReportJob(handler, "", nil, newTestLogger(&logs))

	assert.NotPanics(t, func() { job.RunOnce(t.Context()) })
}

func TestProfitReportJob_DefaultSchedule(t *testing.T) {
	job := NewProfitReportJob(&MockProfitHandler{}, "", nil, slog.Default())

	assert.Equal(t, DefaultProfitReportSchedule, job.schedule)
}

func TestProfitReportJob_StartRejectsInvalidSchedule(t *testing.T) {
	job := NewProfitReportJob(&MockProfitHandler{}, "not a schedule", nil, slog.Default())

	require.Error(t, job.Start())
}

func TestJobManager_StartAndStop(t *testing.T) {
	jm := NewJobManager(&MockProfitHandler{}, "0 0 0 1 1 *", nil, slog.Default())

	require.NoError(t, jm.StartAll())
	jm.StopAll()
}

func TestJobManager_StartAllWrapsScheduleError(t *testing.T) {
	jm := NewJobManager(&MockProfitHandler{}, "* *", nil, slog.Default())

	err := jm.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "profit report job")
}
