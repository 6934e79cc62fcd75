package repository

import (
	"testing"
	"time"

	"ripple/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory sqlite database for one test. The pool is
// pinned to a single connection so every query sees the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Post{}, &models.Like{}))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func makePost(t *testing.T, db *gorm.DB, ownerID, ownerUsername, text string, ts time.Time) *models.Post {
	t.Helper()

	post := &models.Post{
		ID:            uuid.NewString(),
		Text:          text,
		Timestamp:     ts,
		OwnerID:       ownerID,
		OwnerUsername: ownerUsername,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}
