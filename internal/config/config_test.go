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
	path := filepath.Join(t.TempDir(), "dfamin.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("keeps defaults for missing keys", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "output: json\nlogLevel: debug\n"))
		require.NoError(t, err)
		assert.Equal(t, OutputJSON, cfg.Output)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, ";", cfg.Delimiter)
		assert.Equal(t, ';', cfg.DelimiterRune())
	})

	t.Run("rejects unknown output", func(t *testing.T) {
		_, err := Load(writeConfig(t, "output: xml\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects long delimiter", func(t *testing.T) {
		_, err := Load(writeConfig(t, "delimiter: ';;'\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects unknown log level", func(t *testing.T) {
		_, err := Load(writeConfig(t, "logLevel: verbose\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects unknown log format", func(t *testing.T) {
		_, err := Load(writeConfig(t, "logFormat: xml\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("log settings ignore case", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "logLevel: WARN\nlogFormat: JSON\n"))
		require.NoError(t, err)
		assert.Equal(t, "WARN", cfg.LogLevel)
	})

	t.Run("rejects broken yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "output: [\n"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
