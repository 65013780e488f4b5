// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are built on github.com/robfig/cron/v3 with the seconds-enabled
// parser, so schedules take six fields.
//
// # Available Jobs
//
// ProfitReportJob runs the rolling monthly profit query, logs the figure
// and sets the orders_report_monthly_profit gauge. The schedule comes from
// PROFIT_REPORT_SCHEDULE and defaults to hourly.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(profitHandler, cfg.ProfitReportSchedule, reportMetrics, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and counted; the next scheduled run proceeds as
// usual. An invalid schedule fails StartAll.
package jobs
