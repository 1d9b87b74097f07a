package jobs

import (
	"context"
	"log/slog"
	"time"

	"opsboard/internal/core/application/controller"

	"github.com/robfig/cron/v3"
)

// NotificationSweeperJob auto-dismisses expired notifications.
// Runs every second to hide toasts and the success overlay whose display
// deadlines have passed.
type NotificationSweeperJob struct {
	ctrl   *controller.Controller
	cron   *cron.Cron
	logger *slog.Logger
}

// NewNotificationSweeperJob creates a new job for sweeping notifications.
// Uses the application controller's deadline-based expiry every second.
func NewNotificationSweeperJob(ctrl *controller.Controller, logger *slog.Logger) *NotificationSweeperJob {
	return &NotificationSweeperJob{
		ctrl:   ctrl,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "notification_sweeper_job"),
	}
}

// Start begins the notification sweeper job to run every second.
func (j *NotificationSweeperJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.ctrl.ExpireNotifications(time.Now())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification sweeper job started (running every second)")
	return nil
}

// Stop stops the notification sweeper job.
func (j *NotificationSweeperJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification sweeper job stopped")
}
