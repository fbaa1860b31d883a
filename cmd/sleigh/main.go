package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/gift-sleigh/internal/application"
	"github.com/eugenenazirov/gift-sleigh/internal/config"
	"github.com/eugenenazirov/gift-sleigh/internal/logging"
)

var signalNotify = signal.Notify

func main() {
	kingpinApp := kingpin.New("sleigh", "Gift Sleigh - hands out gifts from a weight-limited bag to deserving recipients")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	santaName := kingpinApp.Flag("santa", "Name of the gift giver").String()
	capacityFlag := kingpinApp.Flag("capacity", "Bag weight capacity (set -1 to keep configured value)").Default("-1").Float64()
	policy := kingpinApp.Flag("policy", "Gift selection policy: lightest or first-fit").String()
	scenarioFile := kingpinApp.Flag("scenario", "Path to YAML scenario with gifts and recipients").String()
	visitsFlag := kingpinApp.Flag("visits-per-second", "Visits per second (set 0 to disable pacing)").Default("-1").Float64()
	logFormat := kingpinApp.Flag("log-format", "Log encoding: json or console").String()

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *santaName != "" {
		overrides.SantaName = santaName
	}

	if *capacityFlag >= 0 {
		overrides.Capacity = capacityFlag
	}

	if *policy != "" {
		overrides.Policy = policy
	}

	if *scenarioFile != "" {
		overrides.ScenarioFile = scenarioFile
	}

	if *visitsFlag >= 0 {
		overrides.VisitsPerSecond = visitsFlag
	}

	if *logFormat != "" {
		overrides.LogFormat = logFormat
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogFormat)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger, os.Stdout)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}

	ctx, stop := interruptContext(context.Background(), logger)
	defer stop()

	if _, err := app.Run(ctx); err != nil {
		logger.Error("run did not complete", zap.Error(err))
	}
}

// interruptContext returns a context cancelled on SIGINT or SIGTERM.
func interruptContext(parent context.Context, logger *zap.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-quit:
			logger.Info("interrupt received, stopping run")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(quit)
		cancel()
	}
}
