package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ripple/internal/identity"
	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn      func(context.Context, *models.Post) error
	getByIDFn     func(context.Context, string) (*models.Post, error)
	listFn        func(context.Context) ([]*models.Post, error)
	listByOwnerFn func(context.Context, string) ([]*models.Post, error)
	deleteFn      func(context.Context, string) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context) ([]*models.Post, error) {
	return s.listFn(ctx)
}
func (s *postRepoStub) ListByOwner(ctx context.Context, ownerUsername string) ([]*models.Post, error) {
	return s.listByOwnerFn(ctx, ownerUsername)
}
func (s *postRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:      func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:     func(_ context.Context, _ string) (*models.Post, error) { return &models.Post{}, nil },
		listFn:        func(_ context.Context) ([]*models.Post, error) { return nil, nil },
		listByOwnerFn: func(_ context.Context, _ string) ([]*models.Post, error) { return nil, nil },
		deleteFn:      func(_ context.Context, _ string) error { return nil },
	}
}

// assertAppErrorCode asserts that err is an AppError with the given code.
func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

var testUser = &identity.User{ID: "1", Username: "user1"}

func TestCreatePostFillsServerOwnedFields(t *testing.T) {
	repo := noopPostRepo()
	var created *models.Post
	repo.createFn = func(_ context.Context, post *models.Post) error {
		created = post
		return nil
	}
	svc := NewPostService(repo)

	before := time.Now().UTC()
	post, err := svc.CreatePost(context.Background(), "hello world", testUser)
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "hello world", post.Text)
	assert.Equal(t, "1", post.OwnerID)
	assert.Equal(t, "user1", post.OwnerUsername)
	assert.Zero(t, post.LikesCount)
	assert.False(t, post.Timestamp.Before(before))
	assert.Equal(t, time.UTC, post.Timestamp.Location())
}

func TestCreatePostAllowsEmptyText(t *testing.T) {
	svc := NewPostService(noopPostRepo())

	post, err := svc.CreatePost(context.Background(), "", testUser)
	require.NoError(t, err)
	assert.Empty(t, post.Text)
}

func TestCreatePostIDsAreUnique(t *testing.T) {
	svc := NewPostService(noopPostRepo())

	first, err := svc.CreatePost(context.Background(), "a", testUser)
	require.NoError(t, err)
	second, err := svc.CreatePost(context.Background(), "b", testUser)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestListPostsNeverReturnsNil(t *testing.T) {
	svc := NewPostService(noopPostRepo())

	posts, err := svc.ListPosts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestListPostsByOwnerNeverReturnsNil(t *testing.T) {
	svc := NewPostService(noopPostRepo())

	posts, err := svc.ListPostsByOwner(context.Background(), "ghost")
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestDeletePostNotFound(t *testing.T) {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, _ string) (*models.Post, error) {
		return nil, gorm.ErrRecordNotFound
	}
	svc := NewPostService(repo)

	err := svc.DeletePost(context.Background(), "missing", testUser)
	assertAppErrorCode(t, err, "NOT_FOUND")
}

func TestDeletePostForbiddenForNonOwner(t *testing.T) {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id string) (*models.Post, error) {
		return &models.Post{ID: id, OwnerID: "2", OwnerUsername: "user2"}, nil
	}
	deleted := false
	repo.deleteFn = func(_ context.Context, _ string) error {
		deleted = true
		return nil
	}
	svc := NewPostService(repo)

	err := svc.DeletePost(context.Background(), "someone-elses", testUser)
	assertAppErrorCode(t, err, "FORBIDDEN")
	assert.False(t, deleted, "forbidden delete must not reach the repository")
}

func TestDeletePostByOwner(t *testing.T) {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id string) (*models.Post, error) {
		return &models.Post{ID: id, OwnerID: "1", OwnerUsername: "user1"}, nil
	}
	var deletedID string
	repo.deleteFn = func(_ context.Context, id string) error {
		deletedID = id
		return nil
	}
	svc := NewPostService(repo)

	require.NoError(t, svc.DeletePost(context.Background(), "mine", testUser))
	assert.Equal(t, "mine", deletedID)
}

func TestDeletePostPropagatesRepositoryError(t *testing.T) {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id string) (*models.Post, error) {
		return &models.Post{ID: id, OwnerID: "1"}, nil
	}
	repo.deleteFn = func(_ context.Context, _ string) error {
		return errors.New("disk full")
	}
	svc := NewPostService(repo)

	err := svc.DeletePost(context.Background(), "mine", testUser)
	require.Error(t, err)
	assert.EqualError(t, err, "disk full")
}
