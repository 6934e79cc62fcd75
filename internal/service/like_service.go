package service

import (
	"context"
	"errors"

	"ripple/internal/identity"
	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"

	"gorm.io/gorm"
)

// LikeService enforces the one-like-per-user rule over the like repository.
type LikeService struct {
	postRepo repository.PostRepository
	likeRepo repository.LikeRepository
}

// NewLikeService creates a new like service
func NewLikeService(postRepo repository.PostRepository, likeRepo repository.LikeRepository) *LikeService {
	return &LikeService{postRepo: postRepo, likeRepo: likeRepo}
}

// Like records the user's like on the post. Post existence is always checked
// before the like-state, so a post deleted concurrently with a like attempt
// surfaces as not-found rather than a like-specific error.
func (s *LikeService) Like(ctx context.Context, postID string, user *identity.User) error {
	if err := s.requirePost(ctx, postID); err != nil {
		return err
	}

	liked, err := s.likeRepo.IsLiked(ctx, user.ID, postID)
	if err != nil {
		return err
	}
	if liked {
		return models.NewValidationError("Already liked this post")
	}

	if err := s.likeRepo.Like(ctx, user.ID, postID); err != nil {
		return err
	}
	observability.LikesRecorded.WithLabelValues("like").Inc()
	return nil
}

// Unlike removes the user's like from the post.
func (s *LikeService) Unlike(ctx context.Context, postID string, user *identity.User) error {
	if err := s.requirePost(ctx, postID); err != nil {
		return err
	}

	liked, err := s.likeRepo.IsLiked(ctx, user.ID, postID)
	if err != nil {
		return err
	}
	if !liked {
		return models.NewValidationError("Post not liked")
	}

	if err := s.likeRepo.Unlike(ctx, user.ID, postID); err != nil {
		return err
	}
	observability.LikesRecorded.WithLabelValues("unlike").Inc()
	return nil
}

// CountForPost returns the number of likes on the post; zero when none.
func (s *LikeService) CountForPost(ctx context.Context, postID string) (int64, error) {
	return s.likeRepo.CountForPost(ctx, postID)
}

func (s *LikeService) requirePost(ctx context.Context, postID string) error {
	_, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", postID)
		}
		return err
	}
	return nil
}
