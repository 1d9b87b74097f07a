// Package jobs provides scheduled background tasks for the dashboard core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the order dashboard requires.
//
// # Available Jobs
//
// 1. NotificationSweeperJob - Runs every second to auto-dismiss toasts and
// the success overlay once their display deadlines pass
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the application controller
//	jobManager := jobs.NewJobManager(appController, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweeper uses the cron expression "* * * * * *" which means it runs
// every second. Notification deadlines are absolute timestamps, so a sweep
// that fires late simply dismisses a little later; nothing is lost.
package jobs
