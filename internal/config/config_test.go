package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpctools/internal/config"
	"tpctools/internal/domain"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tpctools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, domain.DefaultConcurrency, cfg.Convert.Concurrency)
}

func TestLoad_OverridesAndDefaults(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
  format: json
convert:
  compression: strong-9
  concurrency: 8
ledger:
  dsn: sqlite:///tmp/runs.db
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "strong-9", cfg.Convert.Compression)
	assert.Equal(t, 8, cfg.Convert.Concurrency)
	assert.Equal(t, domain.DefaultBatchSize, cfg.Convert.BatchSize)
	assert.Equal(t, "columnar", cfg.Convert.Format)
	assert.Equal(t, "sqlite:///tmp/runs.db", cfg.Ledger.DSN)
	assert.Equal(t, "tpctools.events", cfg.Events.Exchange)
}

func TestLoad_FromEnv(t *testing.T) {
	path := writeFile(t, "convert:\n  batch_size: 100\n")
	t.Setenv(config.EnvConfigPath, path)
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Convert.BatchSize)
}

func TestLoad_RejectsBadCompression(t *testing.T) {
	path := writeFile(t, "convert:\n  compression: lzo\n")
	_, err := config.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedCompression)
}

func TestLoad_RejectsBadYAML(t *testing.T) {
	path := writeFile(t, "convert: [unterminated\n")
	_, err := config.Load(path)
	assert.Error(t, err)
}
