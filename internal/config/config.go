package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-RentalReservations/pkg/logger"
)

// ID strategies for new bookings
const (
	IDStrategySequential = "sequential"
	IDStrategyUUID       = "uuid"
)

// Environment overrides
const (
	EnvLogLevel       = "RESERVATIONS_LOG_LEVEL"
	EnvSeedFile       = "RESERVATIONS_SEED_FILE"
	EnvMetricsEnabled = "RESERVATIONS_METRICS_ENABLED"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Ledger  LedgerConfig  `toml:"ledger"`
	Data    DataConfig    `toml:"data"`
	Server  ServerConfig  `toml:"server"`
}

type LogsConfig struct {
	File  string `toml:"file"` // пусто - stdout
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type LedgerConfig struct {
	IDPrefix   string `toml:"id_prefix"`
	IDStrategy string `toml:"id_strategy"`
}

type DataConfig struct {
	SeedFile   string `toml:"seed_file"`
	ReportDate string `toml:"report_date"` // дата отчета в демо
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "rental-reservations",
		},
		Ledger: LedgerConfig{
			IDPrefix:   "B",
			IDStrategy: IDStrategySequential,
		},
		Data: DataConfig{
			SeedFile:   "data/sample.toml",
			ReportDate: "2026-02-12",
		},
		Server: ServerConfig{
			HTTPPort:        9090,
			ReadTimeout:     5,
			WriteTimeout:    10,
			ShutdownTimeout: 10,
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию,
// затем применяет переменные окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.Logs.Level); err != nil {
		return fmt.Errorf("%w: logs.level: %v", ErrInvalidConfig, err)
	}

	switch c.Ledger.IDStrategy {
	case IDStrategySequential, IDStrategyUUID:
	default:
		return fmt.Errorf("%w: ledger.id_strategy must be %q or %q, got %q",
			ErrInvalidConfig, IDStrategySequential, IDStrategyUUID, c.Ledger.IDStrategy)
	}

	if c.Ledger.IDPrefix == "" {
		return fmt.Errorf("%w: ledger.id_prefix is required", ErrInvalidConfig)
	}

	if c.Data.SeedFile == "" {
		return fmt.Errorf("%w: data.seed_file is required", ErrInvalidConfig)
	}

	if c.Metrics.Enabled {
		if c.Metrics.Path == "" || c.Metrics.Path[0] != '/' {
			return fmt.Errorf("%w: metrics.path must start with '/'", ErrInvalidConfig)
		}
		if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
			return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
		}
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Logs.Level = v
	}

	if v, ok := os.LookupEnv(EnvSeedFile); ok {
		c.Data.SeedFile = v
	}

	if v, ok := os.LookupEnv(EnvMetricsEnabled); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvMetricsEnabled, err)
		}
		c.Metrics.Enabled = enabled
	}

	return nil
}
