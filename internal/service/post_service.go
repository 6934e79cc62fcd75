// Package service contains the business rules that sit between the HTTP
// handlers and the repositories.
package service

import (
	"context"
	"errors"
	"time"

	"ripple/internal/cache"
	"ripple/internal/identity"
	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostService implements post creation, listing, and ownership-checked deletion.
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a new post service
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost allocates a fresh id, stamps the current UTC time, and persists a
// post owned by the given identity. Empty text is deliberately allowed.
func (s *PostService) CreatePost(ctx context.Context, text string, owner *identity.User) (*models.Post, error) {
	post := &models.Post{
		ID:            uuid.NewString(),
		Text:          text,
		Timestamp:     time.Now().UTC(),
		OwnerID:       owner.ID,
		OwnerUsername: owner.Username,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	observability.PostsCreated.Inc()

	// A freshly created post has no likes; skip the round trip.
	post.LikesCount = 0
	return post, nil
}

// ListPosts returns all posts, newest first, each annotated with its computed
// likes_count. The global listing is served cache-aside when Redis is present;
// every write path invalidates it, so readers never see stale counts.
func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := cache.Aside(ctx, cache.PostsListKey, &posts, cache.ListTTL, func() error {
		var fetchErr error
		posts, fetchErr = s.postRepo.List(ctx)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	return posts, nil
}

// ListPostsByOwner returns the given user's posts, newest first. An unknown
// username yields an empty list, not an error.
func (s *PostService) ListPostsByOwner(ctx context.Context, ownerUsername string) ([]*models.Post, error) {
	posts, err := s.postRepo.ListByOwner(ctx, ownerUsername)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	return posts, nil
}

// DeletePost removes the post and, atomically with it, every like referencing
// it. Existence is checked before ownership so an unknown id is always a
// not-found, never a forbidden.
func (s *PostService) DeletePost(ctx context.Context, postID string, requester *identity.User) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", postID)
		}
		return err
	}

	if post.OwnerID != requester.ID {
		return models.NewForbiddenError("Not authorized to delete this post")
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}
	observability.PostsDeleted.Inc()
	return nil
}
