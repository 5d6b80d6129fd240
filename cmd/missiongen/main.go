package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/starshatterwars/missiongen/internal/config"
	"github.com/starshatterwars/missiongen/internal/dispatcher"
	"github.com/starshatterwars/missiongen/internal/generator"
	"github.com/starshatterwars/missiongen/internal/influx"
	"github.com/starshatterwars/missiongen/internal/logging"
	"github.com/starshatterwars/missiongen/internal/mission"
	"github.com/starshatterwars/missiongen/internal/monitor"
	intOtel "github.com/starshatterwars/missiongen/internal/otel"
	"github.com/starshatterwars/missiongen/internal/roster"
	"github.com/starshatterwars/missiongen/internal/scatter"
	"github.com/starshatterwars/missiongen/internal/storage"
	"github.com/starshatterwars/missiongen/internal/worker"
)

// module defs - BuildDate can be set at build time via ldflags
var (
	CurrentVersion string = "0.1.0"
	BuildDate      string = "unknown"
)

// AppName names the log files and the OTel service default.
const AppName = "missiongen"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		os.Exit(1)
	}
}

// app is the wired process: logging, generator, catalog and dispatcher.
type app struct {
	logs     *logging.SlogManager
	logger   *slog.Logger
	logFile  *os.File
	otel     *intOtel.Provider
	backend  storage.Backend
	stats    *influx.Manager
	dispatch *dispatcher.Dispatcher
	monitor  *monitor.Service
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	flags := pflag.NewFlagSet(AppName, pflag.ContinueOnError)
	configDir := flags.String("config-dir", ".", "directory holding "+config.FileName)
	flags.String("campaign", "", "campaign snapshot YAML")
	flags.String("role", "", "player role: starship or fighter")
	flags.Int64("seed", 0, "random seed, 0 seeds from the clock")
	flags.String("logs-dir", "", "log directory")
	flags.String("storage", "", "catalog backend: memory, sqlite or postgres")
	showVersion := flags.Bool("version", false, "print the version and exit")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *showVersion {
		fmt.Fprintf(stdout, "%s %s (%s)\n", AppName, CurrentVersion, BuildDate)
		return nil
	}

	if err := config.Load(*configDir); err != nil {
		return err
	}
	for key, flag := range map[string]string{
		"generator.campaign": "campaign",
		"generator.role":     "role",
		"generator.seed":     "seed",
		"logsDir":            "logs-dir",
		"storage.type":       "storage",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}

	a := &app{logs: logging.NewSlogManager()}
	defer a.shutdown(ctx)
	if err := a.setup(ctx); err != nil {
		return err
	}

	return a.execute(flags.Args(), stdin, stdout)
}

func (a *app) setup(ctx context.Context) error {
	sessionStart := time.Now()

	logsDir := config.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}
	logPath := logging.LogFilePath(logsDir, AppName, sessionStart)
	logFile, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	a.logFile = logFile

	a.otel, err = intOtel.New(ctx, intOtel.FromConfig(config.GetOTelConfig(), logFile))
	if err != nil {
		return fmt.Errorf("failed to initialize OTel provider: %w", err)
	}

	genCfg := config.GetGeneratorConfig()
	src, seed := scatter.NewSeeded(genCfg.Seed)
	gc := mission.NewGenerationContext(src)

	a.logs.Setup(logFile, config.GetString("logLevel"), a.otel.LoggerProvider(), logging.MissionContext(gc))
	a.logger = a.logs.Logger()
	a.logger.Info("Starting up", "version", CurrentVersion, "log", logPath, "seed", seed)

	zl := zerolog.New(logFile).With().Timestamp().Str("app", AppName).Logger()

	campaign, err := roster.LoadSnapshot(genCfg.Campaign)
	if err != nil {
		return fmt.Errorf("failed to load campaign %s: %w", genCfg.Campaign, err)
	}

	strategy, err := generator.StrategyFor(genCfg.Role)
	if err != nil {
		return err
	}
	gen, err := generator.New(campaign, gc,
		generator.WithLogger(a.logger),
		generator.WithStrategy(strategy),
		generator.WithMaxTargetTries(genCfg.MaxTargetTries),
	)
	if err != nil {
		return err
	}

	storageCfg := config.GetStorageConfig()
	a.backend, err = storage.NewBackend(storageCfg, a.logger, zl.With().Str("component", "database").Logger())
	if err != nil {
		return fmt.Errorf("failed to create storage backend: %w", err)
	}
	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("failed to initialize storage backend: %w", err)
	}
	a.logger.Info("Storage backend initialized", "type", storageCfg.Type)

	deps := worker.Dependencies{
		Generator: gen,
		Backend:   a.backend,
		Logger:    a.logger,
		QueueSize: genCfg.QueueSize,
	}
	if influxCfg := config.GetInfluxConfig(); influxCfg.Enabled {
		a.stats = influx.NewManager(influxCfg, zl.With().Str("component", "influx").Logger(),
			filepath.Join(logsDir, AppName+".stats.lp.gz"))
		if err := a.stats.Connect(ctx); err != nil {
			a.logger.Warn("Generation stats disabled", "error", err)
			a.stats = nil
		} else {
			deps.Stats = a.stats
		}
	}

	a.dispatch, err = dispatcher.New(logging.NewDispatcherLogger(zl.With().Str("component", "dispatcher").Logger()))
	if err != nil {
		return err
	}
	manager := worker.NewManager(deps)
	manager.RegisterHandlers(a.dispatch)

	if mc := config.GetMonitorConfig(); mc.Enabled {
		a.monitor = monitor.NewService(monitor.Dependencies{
			WorkerManager: manager,
			Backend:       a.backend,
			StatusDir:     logsDir,
			Interval:      mc.Interval,
			Logger:        a.logger,
		})
		if err := a.monitor.Start(); err != nil {
			a.logger.Warn("Status monitor disabled", "error", err)
			a.monitor = nil
		}
	}
	return nil
}

func (a *app) shutdown(ctx context.Context) {
	if a.dispatch != nil {
		a.dispatch.Close()
	}
	if a.monitor != nil {
		a.monitor.Stop()
	}
	if a.backend != nil {
		if err := a.backend.Close(); err != nil {
			a.logger.Error("Failed to close storage backend", "error", err)
		}
	}
	if a.stats != nil {
		if err := a.stats.Close(); err != nil {
			a.logger.Error("Failed to close stats writer", "error", err)
		}
	}
	if a.logger != nil {
		a.logger.Info("Shutting down")
	}
	if a.otel != nil {
		_ = a.logs.Flush(ctx)
		_ = a.otel.Shutdown(ctx)
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}
