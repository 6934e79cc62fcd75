package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.Equal(t, 5, cfg.DBMaxIdleConns)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:     "8080",
			Env:      "test",
			DBDriver: "sqlite",
			DBPath:   "test.db",
		}
	}

	t.Run("valid sqlite config", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := base()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("sqlite requires a path", func(t *testing.T) {
		cfg := base()
		cfg.DBPath = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("unsupported driver", func(t *testing.T) {
		cfg := base()
		cfg.DBDriver = "oracle"
		assert.Error(t, cfg.Validate())
	})

	t.Run("postgres requires a database name", func(t *testing.T) {
		cfg := base()
		cfg.DBDriver = "postgres"
		cfg.DBName = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("postgres production rejects default password", func(t *testing.T) {
		cfg := base()
		cfg.Env = "production"
		cfg.DBDriver = "postgres"
		cfg.DBName = "microblog"
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})
}
