package jobs

import (
	"fmt"
	"log/slog"

	"pastelstand/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dailyReportJob *DailyReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	dailyReportHandler queries.GetDailyReportQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dailyReportJob: NewDailyReportJob(dailyReportHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dailyReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start daily report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dailyReportJob.Stop()
}
