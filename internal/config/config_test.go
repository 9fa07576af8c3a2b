package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv isolates a test from MEMTOUR_* variables set in the caller's shell.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MEMTOUR_LOG_LEVEL", "")
	t.Setenv("MEMTOUR_VERBOSE", "")
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_OverridesFromYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "memtour.yaml")
	data := []byte(`
logging:
  level: debug
  enabled: true
passing:
  a: 7
objects:
  start: 3
storage:
  arena_capacity: 2
pointers:
  values: [1, 2]
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Enabled)
	assert.Equal(t, 7, cfg.Passing.A)
	assert.Equal(t, 2, cfg.Passing.B, "unset keys keep defaults")
	assert.Equal(t, 3, cfg.Objects.Start)
	assert.Equal(t, 2, cfg.Storage.ArenaCapacity)
	assert.Equal(t, []int{1, 2}, cfg.Pointers.Values)
}

func TestLoad_ParseError(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("passing: [unterminated"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, DefaultConfig().Validate())
	})

	t.Run("negative counter start", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Objects.Start = -1
		assert.ErrorContains(t, cfg.Validate(), "non-negative")
	})

	t.Run("zero arena capacity", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Storage.ArenaCapacity = 0
		assert.ErrorContains(t, cfg.Validate(), "arena_capacity")
	})

	t.Run("unknown level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Logging.Level = "loud"
		assert.ErrorContains(t, cfg.Validate(), "logging.level")
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Run("MEMTOUR_LOG_LEVEL enables logging", func(t *testing.T) {
		t.Setenv("MEMTOUR_LOG_LEVEL", "WARN")
		t.Setenv("MEMTOUR_VERBOSE", "")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.True(t, cfg.Logging.Enabled)
	})

	t.Run("MEMTOUR_VERBOSE wins over level", func(t *testing.T) {
		t.Setenv("MEMTOUR_LOG_LEVEL", "error")
		t.Setenv("MEMTOUR_VERBOSE", "true")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.True(t, cfg.Logging.Enabled)
	})
}
