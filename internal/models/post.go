// Package models contains data structures for the application's domain models.
package models

import "time"

// Post represents a single micro-blog entry.
//
// OwnerID and OwnerUsername are denormalized from the creating identity and
// never change after creation; usernames are immutable for the process
// lifetime, so the copy cannot drift.
type Post struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text" json:"text"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`

	OwnerID       string `gorm:"not null;index" json:"owner_id"`
	OwnerUsername string `gorm:"not null;index" json:"owner_username"`

	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->;-:migration" json:"likes_count"`
}
