package jobs

import (
	"fmt"
	"log/slog"

	"orders/internal/pkg/metrics"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	profitReportJob *ProfitReportJob
}

func NewJobManager(
	profitHandler profitQueryHandler,
	profitSchedule string,
	reportMetrics *metrics.ReportMetrics,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		profitReportJob: NewProfitReportJob(profitHandler, profitSchedule, reportMetrics, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.profitReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start profit report job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.profitReportJob.Stop()
}
