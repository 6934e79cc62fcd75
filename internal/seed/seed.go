// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"ripple/internal/identity"
	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumPosts    int
	ShouldClean bool
}

// Seed populates the database with fake posts and a random like mesh over the
// directory's seeded users.
func Seed(db *gorm.DB, dir *identity.Directory, opts Options) error {
	log.Printf("Starting database seeding with %d posts across %d users...", opts.NumPosts, dir.Len())

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	users := dir.Users()
	if len(users) == 0 {
		return fmt.Errorf("user directory is empty, nothing to seed")
	}

	posts, err := createPosts(db, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("%d posts created", len(posts))

	likes, err := createLikes(db, users, posts)
	if err != nil {
		return fmt.Errorf("failed to create likes: %w", err)
	}
	log.Printf("%d likes created", likes)

	return nil
}

// clearData removes likes before posts so no orphaned like ever exists, even
// mid-clean.
func clearData(db *gorm.DB) error {
	if err := db.Where("1 = 1").Delete(&models.Like{}).Error; err != nil {
		return err
	}
	return db.Where("1 = 1").Delete(&models.Post{}).Error
}

func createPosts(db *gorm.DB, users []identity.User, numPosts int) ([]*models.Post, error) {
	gofakeit.Seed(time.Now().UnixNano())

	posts := make([]*models.Post, 0, numPosts)
	now := time.Now().UTC()

	for i := 0; i < numPosts; i++ {
		owner := users[rand.Intn(len(users))]
		post := &models.Post{
			ID:            uuid.NewString(),
			Text:          gofakeit.Sentence(rand.Intn(12) + 3),
			Timestamp:     now.Add(-time.Duration(rand.Intn(72*60)) * time.Minute),
			OwnerID:       owner.ID,
			OwnerUsername: owner.Username,
		}
		if err := db.Create(post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, nil
}

// createLikes gives each post a random subset of likers, at most one like per
// user per post.
func createLikes(db *gorm.DB, users []identity.User, posts []*models.Post) (int, error) {
	total := 0
	for _, post := range posts {
		for _, user := range users {
			if rand.Float64() > 0.4 {
				continue
			}
			like := &models.Like{UserID: user.ID, PostID: post.ID}
			if err := db.Create(like).Error; err != nil {
				return total, err
			}
			total++
		}
	}
	return total, nil
}
