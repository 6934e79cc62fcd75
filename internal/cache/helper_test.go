package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestGetSetJSON(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	found, err := GetJSON(ctx, "missing", &payload{})
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "p", payload{Name: "x", Count: 3}, time.Minute))

	var got payload
	found, err = GetJSON(ctx, "p", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "x", Count: 3}, got)
}

func TestAsideFetchesOnMissAndCaches(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	calls := 0
	var dest []string
	fetch := func() error {
		calls++
		dest = []string{"a", "b"}
		return nil
	}

	require.NoError(t, Aside(ctx, "list", &dest, time.Minute, fetch))
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"a", "b"}, dest)

	// Second call is served from cache.
	var dest2 []string
	require.NoError(t, Aside(ctx, "list", &dest2, time.Minute, func() error {
		calls++
		return nil
	}))
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"a", "b"}, dest2)
}

func TestInvalidatePostDropsListing(t *testing.T) {
	mr := withTestRedis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, PostKey("abc"), "post", time.Minute))
	require.NoError(t, SetJSON(ctx, PostsListKey, "list", time.Minute))

	InvalidatePost(ctx, "abc")

	assert.False(t, mr.Exists(PostKey("abc")))
	assert.False(t, mr.Exists(PostsListKey))
}

func TestHelpersAreNoOpsWithoutClient(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	found, err := GetJSON(ctx, "k", &struct{}{})
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "k", "v", time.Minute))

	fetched := false
	require.NoError(t, Aside(ctx, "k", &fetched, time.Minute, func() error {
		fetched = true
		return nil
	}))
	assert.True(t, fetched)

	Invalidate(ctx, "k")
}
