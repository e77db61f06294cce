// Package jobs provides scheduled background tasks for the pastel stand.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order workflow.
//
// # Available Jobs
//
// 1. DailyReportJob - Runs shortly after UTC midnight to log the previous day's sales report
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dailyReportHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed report run is logged and retried on the next midnight; the job
// never takes the process down.
package jobs
