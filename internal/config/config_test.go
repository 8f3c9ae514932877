package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

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
	t.Run("Reads the yml file", func(t *testing.T) {
		// Given: a config file with redis storage
		path := writeConfig(t, `
log-level: debug
winning-score: 3
computer-names:
  - Hal
storage:
  driver: redis
  redis:
    host: cache
    port: "6380"
    ttl: 5m
`)

		// When: the config is loaded
		conf, err := Load(path)

		// Then: every field comes from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 3, conf.WinningScore)
		assert.Equal(t, []string{"Hal"}, conf.ComputerNames)
		assert.Equal(t, StorageRedis, conf.Storage.Driver)
		assert.Equal(t, "cache:6380", conf.Storage.Redis.GetRedisAddr())
		assert.Equal(t, 5*time.Minute, conf.Storage.Redis.TTL)
	})

	t.Run("Falls back to defaults without a file", func(t *testing.T) {
		// When: the config path does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults apply
		require.NoError(t, err)
		assert.Equal(t, 4, conf.WinningScore)
		assert.Equal(t, StorageMemory, conf.Storage.Driver)
		assert.Equal(t, []string{"BlackBeard", "CaptainKidd", "Tom from MySpace"}, conf.ComputerNames)
		assert.Equal(t, "localhost:6379", conf.Storage.Redis.GetRedisAddr())
	})

	t.Run("Env overrides defaults", func(t *testing.T) {
		t.Setenv("WINNING_SCORE", "2")

		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, 2, conf.WinningScore)
	})

	t.Run("Error on unknown storage driver", func(t *testing.T) {
		path := writeConfig(t, "storage:\n  driver: etcd\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("Error on non-positive winning score", func(t *testing.T) {
		path := writeConfig(t, "winning-score: -1\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}
