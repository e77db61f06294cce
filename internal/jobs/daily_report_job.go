package jobs

import (
	"context"
	"log/slog"
	"time"

	"pastelstand/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DailyReportJob renders the previous day's sales report to the log right
// after UTC midnight, so volunteers closing up get an operational summary
// without asking the API.
type DailyReportJob struct {
	handler queries.GetDailyReportQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDailyReportJob creates a job that reports on the day that just ended.
func NewDailyReportJob(handler queries.GetDailyReportQueryHandler, logger *slog.Logger) *DailyReportJob {
	return &DailyReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds(), cron.WithLocation(time.UTC)),
		logger:  logger.With("component", "daily_report_job"),
	}
}

// Start schedules the report for five seconds past UTC midnight. The small
// offset keeps orders committed in the final second out of the next day's
// report window.
func (j *DailyReportJob) Start() error {
	_, err := j.cron.AddFunc("5 0 0 * * *", func() {
		ctx := context.Background()
		reportDay := time.Now().UTC().AddDate(0, 0, -1)

		report, err := j.handler.Handle(ctx, queries.NewGetDailyReportQuery(reportDay))
		if err != nil {
			j.logger.ErrorContext(ctx, "Daily report job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Daily report",
			"date", report.Date.Format("2006-01-02"),
			"totalOrders", report.TotalOrders,
			"totalItems", report.TotalItems,
			"totalRevenue", report.TotalRevenue.String(),
			"averageTicket", report.AverageTicket.String(),
		)
		for _, flavor := range report.PopularFlavors {
			j.logger.InfoContext(ctx, "Daily report flavor",
				"flavor", flavor.FlavorName,
				"quantity", flavor.Quantity,
				"revenue", flavor.Revenue.String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily report job started (running at UTC midnight)")
	return nil
}

// Stop stops the daily report job.
func (j *DailyReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily report job stopped")
}
