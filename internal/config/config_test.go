package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults when the file is missing", func(t *testing.T) {
		// When: loading from a path that does not exist
		config, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults are used
		require.NoError(t, err)
		assert.Equal(t, "warn", config.LogLevel)
		assert.Equal(t, "json", config.LogFormat)
		assert.Equal(t, "player", config.FirstTurn)
		assert.Equal(t, int64(0), config.Bot.Seed)
	})

	t.Run("Reads the yml file", func(t *testing.T) {
		// Given: a config file
		path := writeConfig(t, "log-level: debug\nlog-format: text\nbot:\n  seed: 42\n")

		// When: loading it
		config, err := Load(path)

		// Then: the values are applied
		require.NoError(t, err)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, "text", config.LogFormat)
		assert.Equal(t, int64(42), config.Bot.Seed)
	})

	t.Run("Environment without a file", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "info")
		t.Setenv("BOT_SEED", "7")

		config, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, "info", config.LogLevel)
		assert.Equal(t, int64(7), config.Bot.Seed)
	})

	t.Run("Bot cannot move first", func(t *testing.T) {
		path := writeConfig(t, "first-turn: bot\n")

		_, err := Load(path)

		assert.ErrorIs(t, err, ErrUnsupportedFirstTurn)
	})

	t.Run("Broken yml", func(t *testing.T) {
		path := writeConfig(t, "bot: [\n")

		_, err := Load(path)

		assert.Error(t, err)
	})

	t.Run("MustLoad panics on error", func(t *testing.T) {
		path := writeConfig(t, "first-turn: bot\n")

		assert.Panics(t, func() { MustLoad(path) })
	})
}
