package jobs

import (
	"fmt"
	"log/slog"

	"opsboard/internal/core/application/controller"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	notificationSweeperJob *NotificationSweeperJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(ctrl *controller.Controller, logger *slog.Logger) *JobManager {
	return &JobManager{
		notificationSweeperJob: NewNotificationSweeperJob(ctrl, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationSweeperJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification sweeper job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationSweeperJob.Stop()
}
