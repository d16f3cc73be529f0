package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	errorlist "github.com/pixil98/go-errors"
)

// Ledger backends.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

type Config struct {
	DataDir       string `env:"TTRPG_DATA_DIR" envDefault:"data"`
	NamesFile     string `env:"TTRPG_NAMES_FILE" envDefault:"fantasy_names.json"`
	TitlesFile    string `env:"TTRPG_TITLES_FILE" envDefault:"fantasy_titles.json"`
	LocationsFile string `env:"TTRPG_LOCATIONS_FILE" envDefault:"fantasy_locations.json"`
	HistoryFile   string `env:"TTRPG_HISTORY_FILE" envDefault:"fantasy_locations_history.json"`
	ExportFile    string `env:"TTRPG_EXPORT_FILE" envDefault:"saved_locations.pdf"`

	LedgerBackend string `env:"TTRPG_LEDGER_BACKEND" envDefault:"file"`
	RedisURL      string `env:"TTRPG_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RedisKey      string `env:"TTRPG_REDIS_KEY" envDefault:"ttrpg:saved_names"`
	RedisAttempts int    `env:"TTRPG_REDIS_ATTEMPTS" envDefault:"5"`
	SQLitePath    string `env:"TTRPG_SQLITE_PATH" envDefault:"ttrpg.db"`

	Seed        int64  `env:"TTRPG_SEED" envDefault:"0"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevelRaw string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"TTRPG_LOG_FILE" envDefault:"ttrpg.log"`

	LogLevel slog.Level
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	cfg.LedgerBackend = strings.ToLower(strings.TrimSpace(cfg.LedgerBackend))
	cfg.LogLevel = parseLogLevel(cfg.LogLevelRaw)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	el := errorlist.NewErrorList()

	if strings.TrimSpace(c.DataDir) == "" {
		el.Add(fmt.Errorf("TTRPG_DATA_DIR is required"))
	}
	for name, v := range map[string]string{
		"TTRPG_NAMES_FILE":     c.NamesFile,
		"TTRPG_TITLES_FILE":    c.TitlesFile,
		"TTRPG_LOCATIONS_FILE": c.LocationsFile,
	} {
		if strings.TrimSpace(v) == "" {
			el.Add(fmt.Errorf("%s is required", name))
		}
	}

	switch c.LedgerBackend {
	case BackendFile:
		if strings.TrimSpace(c.HistoryFile) == "" {
			el.Add(fmt.Errorf("TTRPG_HISTORY_FILE is required for the file ledger"))
		}
	case BackendRedis:
		if strings.TrimSpace(c.RedisURL) == "" {
			el.Add(fmt.Errorf("TTRPG_REDIS_URL is required for the redis ledger"))
		}
	case BackendSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			el.Add(fmt.Errorf("TTRPG_SQLITE_PATH is required for the sqlite ledger"))
		}
	default:
		el.Add(fmt.Errorf("TTRPG_LEDGER_BACKEND must be one of file, redis, sqlite (got %q)", c.LedgerBackend))
	}

	return el.Err()
}

// Path resolves a configured file name against the data directory. Absolute
// names are returned unchanged.
func (c *Config) Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
