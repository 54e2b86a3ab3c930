package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadirkerem/mongodb-ecommerce-app/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("DB_NAME", "")

	path := writeConfig(t, "port: \"9000\"\nmongo_uri: mongodb://localhost:27017\ndatabase: testdb\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "testdb", cfg.Database)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("DB_NAME", "override")

	path := writeConfig(t, "port: \"9000\"\nmongo_uri: mongodb://localhost:27017\ndatabase: testdb\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "override", cfg.Database)
}

func TestDefaultsAndMissingURI(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_NAME", "")

	t.Run("missing uri fails", func(t *testing.T) {
		t.Setenv("MONGO_URI", "")
		_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.EqualError(t, err, "MONGO_URI is missing in env")
	})

	t.Run("defaults applied", func(t *testing.T) {
		t.Setenv("MONGO_URI", "mongodb://localhost:27017")
		cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "5000", cfg.Port)
		assert.Equal(t, "sample_ecommerce", cfg.Database)
	})
}
