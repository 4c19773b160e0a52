package main

import (
	"context"
	"log/slog"
	"os"

	"expensetracker/internal/cli"
	"expensetracker/internal/config"
	"expensetracker/internal/console"
	"expensetracker/internal/ledger"
	applog "expensetracker/internal/log"
	"expensetracker/internal/seed"
)

func main() {
	logger := cli.SetupLogger(slog.LevelInfo)
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig(logger)

	if level, err := cfg.SlogLevel(); err == nil && level != slog.LevelInfo {
		logger = cli.SetupLogger(level)
	}

	ctx := context.Background()
	led := ledger.New()

	var archive console.Archiver
	switch cfg.DataBackend {
	case config.BackendSQLite:
		repo := cli.InitRepository(logger, cfg.SQLiteDBPath)
		defer repo.Close()

		records, err := repo.LoadAll(ctx)
		if err != nil {
			logger.Error("Failed to restore archived expenses",
				applog.FieldError, err, applog.FieldPath, cfg.SQLiteDBPath)
			os.Exit(1)
		}
		led = ledger.NewFromRecords(records)
		archive = repo
		logger.Info("Initialized sqlite backend",
			applog.FieldBackend, cfg.DataBackend,
			applog.FieldPath, cfg.SQLiteDBPath,
			applog.FieldCount, led.Len())
	default:
		logger.Info("Initialized memory backend", applog.FieldBackend, cfg.DataBackend)
	}

	// Seed sample expenses only into a fresh ledger; a restored archive
	// already has its rows.
	if cfg.SeedFile != "" && led.Len() == 0 {
		seedLogger := logger.WithComponent(applog.ComponentSeed)
		records, err := seed.Load(cfg.SeedFile, seedLogger)
		if err != nil {
			seedLogger.Error("Failed to load seed file",
				applog.FieldError, err, applog.FieldPath, cfg.SeedFile)
			os.Exit(1)
		}
		for _, e := range records {
			if err := led.Append(e); err != nil {
				seedLogger.Warn("Skipping seed expense rejected by ledger",
					applog.FieldError, err, applog.FieldDate, e.Date)
			}
		}
		seedLogger.Info("Seeded sample expenses",
			applog.FieldPath, cfg.SeedFile, applog.FieldCount, led.Len())
	}

	menu := console.NewMenu(os.Stdin, os.Stdout, led, logger.WithComponent(applog.ComponentConsole))
	if archive != nil {
		menu.WithArchive(archive)
	}

	if err := menu.Run(ctx); err != nil {
		logger.Error("Console session failed", applog.FieldError, err)
		os.Exit(1)
	}
}
