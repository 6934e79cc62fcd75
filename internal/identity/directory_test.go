package identity

import (
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDirectoryParsesTriples(t *testing.T) {
	dir := NewDirectory("1:alice:secret,2:bob:hunter2")

	require.Equal(t, 2, dir.Len())

	user, err := dir.Resolve("alice")
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestNewDirectorySkipsMalformedEntries(t *testing.T) {
	dir := NewDirectory("1:alice:secret,garbage,:missing:id,2:bob:hunter2,")

	assert.Equal(t, 2, dir.Len())
}

func TestNewDirectoryDefaultSpec(t *testing.T) {
	dir := NewDirectory(DefaultDirectorySpec)

	require.Equal(t, 2, dir.Len())

	user, err := dir.Resolve("user1")
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)

	user, err = dir.Resolve("user2")
	require.NoError(t, err)
	assert.Equal(t, "2", user.ID)
}

func TestResolveUnknownToken(t *testing.T) {
	dir := NewDirectory(DefaultDirectorySpec)

	_, err := dir.Resolve("nobody")
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

func TestVerify(t *testing.T) {
	dir := NewDirectory(DefaultDirectorySpec)

	t.Run("correct credentials", func(t *testing.T) {
		user, err := dir.Verify("user1", "password1")
		require.NoError(t, err)
		assert.Equal(t, "user1", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := dir.Verify("user1", "wrong")
		require.Error(t, err)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := dir.Verify("nobody", "password1")
		require.Error(t, err)
	})
}

func TestVerifyPasswordMayContainColons(t *testing.T) {
	dir := NewDirectory("1:alice:pa:ss:word")

	_, err := dir.Verify("alice", "pa:ss:word")
	require.NoError(t, err)
}

func TestUsersReturnsAllEntries(t *testing.T) {
	dir := NewDirectory(DefaultDirectorySpec)

	users := dir.Users()
	require.Len(t, users, 2)

	usernames := []string{users[0].Username, users[1].Username}
	assert.ElementsMatch(t, []string{"user1", "user2"}, usernames)
}
