package cmd

import (
	"log/slog"
	"os"
	"time"

	"opsboard/internal/adapters/out/memstore"
	"opsboard/internal/adapters/out/timers"
	"opsboard/internal/core/application/controller"
	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/application/usecases/queries"
	"opsboard/internal/core/domain/services"
	"opsboard/internal/jobs"
)

// CompositionRoot wires the application object graph: the in-memory
// repository, the command and query handlers, the application controller
// and the background jobs.
type CompositionRoot struct {
	repo       *memstore.OrderRepository
	controller *controller.Controller
	jobManager *jobs.JobManager
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from the given configuration.
func NewCompositionRoot(config Config) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	repo := memstore.NewOrderRepository()

	ctrl := controller.NewController(
		repo,
		timers.NewScheduler(),
		services.NewPickupQuoter(),
		commands.NewCreateOrderCommandHandler(repo),
		commands.NewEditOrderCommandHandler(repo),
		commands.NewAppendMessageCommandHandler(repo),
		queries.NewSearchOrdersQueryHandler(repo),
		queries.NewGetOrderSummaryQueryHandler(repo),
		controllerConfig(config),
		logger,
	)

	return CompositionRoot{
		repo:       repo,
		controller: ctrl,
		jobManager: jobs.NewJobManager(ctrl, logger),
		logger:     logger,
	}
}

// OrderRepository returns the in-memory order repository.
func (c CompositionRoot) OrderRepository() *memstore.OrderRepository {
	return c.repo
}

// Controller returns the application controller.
func (c CompositionRoot) Controller() *controller.Controller {
	return c.controller
}

// JobManager returns the background job manager.
func (c CompositionRoot) JobManager() *jobs.JobManager {
	return c.jobManager
}

// Logger returns the process logger.
func (c CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// controllerConfig translates the process configuration into the controller
// configuration, keeping defaults where nothing was set.
func controllerConfig(config Config) controller.Config {
	cfg := controller.DefaultConfig()

	if config.SubmitLatencyMS > 0 {
		cfg.SubmitLatency = time.Duration(config.SubmitLatencyMS) * time.Millisecond
	}
	if config.BookingLatencyMS > 0 {
		cfg.BookingLatency = time.Duration(config.BookingLatencyMS) * time.Millisecond
	}
	if config.MessageLatencyMS > 0 {
		cfg.MessageLatency = time.Duration(config.MessageLatencyMS) * time.Millisecond
	}
	if config.ToastDurationMS > 0 {
		cfg.ToastDuration = time.Duration(config.ToastDurationMS) * time.Millisecond
	}
	if config.OverlayDurationMS > 0 {
		cfg.OverlayDuration = time.Duration(config.OverlayDurationMS) * time.Millisecond
	}
	if len(config.MessageTemplates) > 0 {
		cfg.Templates = config.MessageTemplates
	}

	return cfg
}
