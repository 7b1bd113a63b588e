package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/pucktally/internal/adapters/fetch"
	"github.com/okian/pucktally/internal/adapters/nhl"
	"github.com/okian/pucktally/internal/adapters/quanthockey"
	"github.com/okian/pucktally/internal/adapters/render"
	"github.com/okian/pucktally/internal/app"
	"github.com/okian/pucktally/internal/config"
	"github.com/okian/pucktally/internal/domain/model"
	"github.com/okian/pucktally/pkg/logger"
	"github.com/okian/pucktally/pkg/metrics"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return err
	}
	defer func() { _ = logger.Sync() }()

	lg := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		lg.Error(ctx, "failed to load config", logger.Error(err))
		return err
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		lg.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	timeout := time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	statsClient := fetch.New("quanthockey",
		fetch.WithTimeout(timeout),
		fetch.WithMaxRetries(cfg.MaxRetries),
	)
	rosterClient := fetch.New("nhl",
		fetch.WithTimeout(timeout),
		fetch.WithMaxRetries(cfg.MaxRetries),
	)

	pipeline := app.New(
		app.WithStatsSource(quanthockey.New(statsClient, cfg.StatsBaseURL)),
		app.WithRosterSource(nhl.New(rosterClient, cfg.RosterBaseURL)),
		app.WithCountries(cfg.Countries),
		app.WithTeamCodes(cfg.TeamCodes),
		app.WithLogger(lg),
	)

	rep, err := pipeline.Run(ctx)
	if err != nil {
		lg.Error(ctx, "pipeline run failed", logger.Error(err))
		return err
	}

	if err := render.WriteConsole(os.Stdout, rep, cfg.TopContributors); err != nil {
		lg.Error(ctx, "console report failed", logger.Error(err))
		return err
	}

	if err := writeHTMLFile(cfg.OutputFile, rep); err != nil {
		lg.Error(ctx, "html report failed",
			logger.String("path", cfg.OutputFile), logger.Error(err))
		return err
	}
	lg.Info(ctx, "html report written",
		logger.String("path", cfg.OutputFile),
		logger.String("runID", rep.RunID))

	lg.Debug(ctx, "run metrics", logger.Any("counters", metrics.Snapshot()))

	return nil
}

func writeHTMLFile(path string, rep model.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := render.WriteHTML(f, rep); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
