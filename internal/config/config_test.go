package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
[logs]
level = "debug"

[metrics]
enabled = true
path = "/prom"

[ledger]
id_strategy = "uuid"

[data]
seed_file = "other.toml"
report_date = "2026-02-13"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/prom", cfg.Metrics.Path)
	assert.Equal(t, "rental-reservations", cfg.Metrics.ServiceName)
	assert.Equal(t, IDStrategyUUID, cfg.Ledger.IDStrategy)
	assert.Equal(t, "B", cfg.Ledger.IDPrefix)
	assert.Equal(t, "other.toml", cfg.Data.SeedFile)
	assert.Equal(t, "2026-02-13", cfg.Data.ReportDate)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvSeedFile, "env.toml")
	t.Setenv(EnvMetricsEnabled, "true")

	cfg, err := Load(writeConfig(t, "[logs]\nlevel = \"debug\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logs.Level)
	assert.Equal(t, "env.toml", cfg.Data.SeedFile)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad level", "[logs]\nlevel = \"loud\"\n"},
		{"bad id strategy", "[ledger]\nid_strategy = \"random\"\n"},
		{"empty prefix", "[ledger]\nid_prefix = \"\"\n"},
		{"bad metrics path", "[metrics]\nenabled = true\npath = \"metrics\"\n"},
		{"bad port", "[metrics]\nenabled = true\n[server]\nhttp_port = 70000\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_InvalidEnvBool(t *testing.T) {
	t.Setenv(EnvMetricsEnabled, "maybe")

	_, err := Load(writeConfig(t, ""))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
