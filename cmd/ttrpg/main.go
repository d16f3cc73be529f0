package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/ttrpg-tools/internal/config"
	"github.com/jwebster45206/ttrpg-tools/internal/handlers"
	"github.com/jwebster45206/ttrpg-tools/internal/logger"
	"github.com/jwebster45206/ttrpg-tools/internal/menu"
	"github.com/jwebster45206/ttrpg-tools/pkg/ledger"
	"github.com/jwebster45206/ttrpg-tools/pkg/locations"
	"github.com/jwebster45206/ttrpg-tools/pkg/names"
	"github.com/jwebster45206/ttrpg-tools/pkg/random"
	"github.com/jwebster45206/ttrpg-tools/pkg/titles"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create data directory: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := os.OpenFile(cfg.Path(cfg.LogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logFile.Close() // Ignore error in defer
	}()

	log, sessionID := logger.WithSession(logger.Setup(cfg, logFile))
	log.Info("Starting ttrpg-tools",
		"environment", cfg.Environment,
		"data_dir", cfg.DataDir,
		"ledger_backend", cfg.LedgerBackend)

	ctx := context.Background()

	repo, err := openRepository(ctx, cfg, log)
	if err != nil {
		logger.WithError(log, err).Error("Failed to open ledger", "backend", cfg.LedgerBackend)
		fmt.Fprintf(os.Stderr, "Failed to open %s ledger: %v\n", cfg.LedgerBackend, err)
		os.Exit(1)
	}
	history, err := ledger.Open(ctx, repo, log)
	if err != nil {
		logger.WithError(log, err).Error("Failed to load saved names")
		fmt.Fprintf(os.Stderr, "Failed to load saved names: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := history.Close(); err != nil {
			logger.WithError(log, err).Error("Failed to close ledger")
		}
	}()

	src := random.New(cfg.Seed)
	loc := locations.NewGenerator(cfg.Path(cfg.LocationsFile), history, src, log)

	root := handlers.Tree(
		handlers.NewDiceHandler(src, log).Node(),
		handlers.NewNamesHandler(names.NewGenerator(cfg.Path(cfg.NamesFile), src, log), log).Node(),
		handlers.NewTitlesHandler(titles.NewGenerator(cfg.Path(cfg.TitlesFile), src, log), log).Node(),
		handlers.NewLocationsHandler(loc, cfg.Path(cfg.ExportFile), log).Node(),
	)

	ui := NewConsoleUI(menu.NewSession(ctx, root), sessionID.String(), log)
	p := tea.NewProgram(ui, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.WithError(log, err).Error("UI exited with error")
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Info("Session ended")
}

func openRepository(ctx context.Context, cfg *config.Config, log *slog.Logger) (ledger.Repository, error) {
	switch cfg.LedgerBackend {
	case config.BackendRedis:
		return ledger.NewRedisRepository(ctx, cfg.RedisURL, cfg.RedisKey, cfg.RedisAttempts, log)
	case config.BackendSQLite:
		return ledger.OpenSQLite(ctx, cfg.Path(cfg.SQLitePath))
	default:
		return ledger.NewFileRepository(cfg.Path(cfg.HistoryFile), log), nil
	}
}
