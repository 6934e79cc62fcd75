package database

import (
	"path/filepath"
	"testing"

	"ripple/internal/config"
	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Port:                     "8080",
		Env:                      "test",
		DBDriver:                 "sqlite",
		DBPath:                   filepath.Join(t.TempDir(), "test.db"),
		DBMaxOpenConns:           5,
		DBMaxIdleConns:           2,
		DBConnMaxLifetimeMinutes: 1,
	}
}

func TestConnectCreatesSchema(t *testing.T) {
	db, err := Connect(sqliteConfig(t))
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable(&models.Post{}))
	assert.True(t, db.Migrator().HasTable(&models.Like{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Ping())
	require.NoError(t, sqlDB.Close())
}

func TestConnectDoesNotMigrateLikesCount(t *testing.T) {
	db, err := Connect(sqliteConfig(t))
	require.NoError(t, err)

	// likes_count is computed per query, never stored.
	assert.False(t, db.Migrator().HasColumn(&models.Post{}, "likes_count"))
}

func TestConfigurePool(t *testing.T) {
	cfg := sqliteConfig(t)
	db, err := Connect(cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, cfg.DBMaxOpenConns, sqlDB.Stats().MaxOpenConnections)
}
