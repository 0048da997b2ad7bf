package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/atomicparade/did-you-just-say/bot"
	"github.com/atomicparade/did-you-just-say/core"
	"github.com/atomicparade/did-you-just-say/core/validation"
	"github.com/atomicparade/did-you-just-say/logging"
	"github.com/atomicparade/did-you-just-say/metrics"
	"github.com/atomicparade/did-you-just-say/render"
	"github.com/atomicparade/did-you-just-say/router"
	"github.com/atomicparade/did-you-just-say/shutdown"
	"github.com/atomicparade/did-you-just-say/slots"
)

func main() {
	// Service management commands (install/uninstall/start/stop) exit here
	if HandleServiceCommand(os.Args) {
		return
	}

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Use fmt here since logger isn't initialized yet
		fmt.Printf("Warning: .env file not found: %v\n", err)
	}

	isDevelopment := os.Getenv("DEV_MODE") == "true"
	logFile := core.GetEnvOrDefault("LOG_FILE", core.DefaultLogFile)

	logger, err := logging.NewLogger(isDevelopment, logFile)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(core.ExitCodeError)
	}
	defer func() {
		_ = logger.Sync()
	}()

	os.Exit(run(logger, isDevelopment))
}

// run wires the engine and drives it until shutdown. Split from main so the
// deferred logger sync still runs before the process exits.
func run(logger *logging.Logger, isDevelopment bool) int {
	slotsFile := core.GetEnvOrDefault("SLOTS_FILE", core.DefaultSlotsFile)

	if code := runStartupValidation(logger, slotsFile); code != core.ExitCodeSuccess {
		return code
	}

	config, err := core.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", zap.Error(err))
		return core.ExitCodeError
	}

	logger.Info("Configuration loaded",
		zap.String("slots_file", config.SlotsFile),
		zap.String("log_file", config.LogFile),
		zap.Int("max_concurrent_renders", config.MaxConcurrentRenders),
		zap.Duration("render_rate_every", config.RenderRateEvery),
		zap.Bool("admin_enabled", config.AdminPasswordHash != ""),
		zap.Bool("dev_mode", isDevelopment),
	)

	registry, err := slots.LoadFile(config.SlotsFile, bot.ReservedCommands()...)
	if err != nil {
		logger.Error("Failed to load slot configuration", zap.Error(err))
		return core.ExitCodeError
	}
	logger.Info("Slot registry loaded",
		zap.Int("slots", registry.Len()),
		zap.Strings("commands", registry.Commands()),
	)

	assets := render.NewAssetCache()
	compositor := render.NewCompositor(assets, config.TextColor)
	collector := metrics.NewStore(metrics.DefaultHistoryCapacity, time.Now())
	rtr := router.New(registry, compositor, logger, collector)
	auth := bot.NewAuthorizer(config.AdminPasswordHash)

	manager := shutdown.NewManager(logger.Zap())
	manager.Register("logger", 10, func(ctx context.Context) error {
		return logger.Sync()
	})
	manager.Start()

	dispatcher := bot.NewDispatcher(rtr, auth, manager, logger, bot.DispatcherConfig{
		MaxConcurrent: config.MaxConcurrentRenders,
		RateEvery:     config.RenderRateEvery,
	})

	console := NewConsole(logger)
	replies := dispatcher.Run(manager.Context(), console.Messages(manager.Context()))
	go console.Deliver(replies)

	<-manager.Context().Done()

	if err := manager.Shutdown(); err != nil {
		logger.Error("Shutdown completed with errors", zap.Error(err))
		return core.ExitCodeError
	}

	m := collector.GetRenderMetrics()
	logger.Info("Goodbye!",
		zap.Int64("total_renders", m.TotalRenders),
		zap.Int64("total_errors", m.TotalErrors),
	)
	return core.ExitCodeSuccess
}

// runStartupValidation checks the slot configuration and referenced assets
// before anything heavy starts.
//
// Returns the appropriate exit code:
//   - ExitCodeSuccess (0) if all validations pass
//   - ExitCodeError (1) if any validation fails
func runStartupValidation(logger *logging.Logger, slotsFile string) int {
	logger.Info("Starting startup validation...")

	suite := validation.NewSuite(slotsFile).
		WithReservedCommands(bot.ReservedCommands()...).
		WithShowProgress(true)

	result := suite.Validate()

	if !result.Success {
		logger.Error("Configuration validation failed",
			zap.Int("passed", result.PassedSteps),
			zap.Int("failed", result.FailedSteps),
			zap.Duration("duration", result.Duration),
		)

		for _, step := range result.Steps {
			if step.Status == validation.StepFailed {
				logger.Error("Validation step failed",
					zap.String("step", step.Name),
					zap.String("message", step.Message),
					zap.Error(step.Error),
				)
			}
		}

		return core.ExitCodeError
	}

	logger.Info("Configuration validation passed",
		zap.Int("checks_passed", result.PassedSteps),
		zap.Duration("duration", result.Duration),
	)
	return core.ExitCodeSuccess
}
