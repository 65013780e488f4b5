package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

// DefaultProfitReportSchedule runs the report at the top of every hour.
const DefaultProfitReportSchedule = "0 0 * * * *"

type profitQueryHandler interface {
	Handle(ctx context.Context, query queries.GetMonthlyProfitQuery) (decimal.Decimal, error)
}

// ProfitReportJob periodically computes the rolling monthly profit of
// completed orders, logs it and publishes it as a gauge.
type ProfitReportJob struct {
	handler  profitQueryHandler
	schedule string
	metrics  *metrics.ReportMetrics
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewProfitReportJob takes a six-field cron expression; an empty schedule
// falls back to DefaultProfitReportSchedule. m may be nil.
func NewProfitReportJob(
	handler profitQueryHandler,
	schedule string,
	m *metrics.ReportMetrics,
	logger *slog.Logger,
) *ProfitReportJob {
	if schedule == "" {
		schedule = DefaultProfitReportSchedule
	}
	return &ProfitReportJob{
		handler:  handler,
		schedule: schedule,
		metrics:  m,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "profit_report_job"),
	}
}

func (j *ProfitReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Profit report job started", "schedule", j.schedule)
	return nil
}

// RunOnce executes a single report run.
func (j *ProfitReportJob) RunOnce(ctx context.Context) {
	profit, err := j.handler.Handle(ctx, queries.NewGetMonthlyProfitQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Profit report job failed", "error", err)
		j.observe("error", nil)
		return
	}

	j.logger.InfoContext(ctx, "Monthly profit of completed orders", "profit", profit.StringFixed(2))
	j.observe("ok", &profit)
}

func (j *ProfitReportJob) observe(outcome string, profit *decimal.Decimal) {
	if j.metrics == nil {
		return
	}
	j.metrics.Runs.WithLabelValues(outcome).Inc()
	if profit != nil {
		j.metrics.MonthlyProfit.Set(profit.InexactFloat64())
	}
}

// Stop waits for a running report to finish.
func (j *ProfitReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Profit report job stopped")
}
