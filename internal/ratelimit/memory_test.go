package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreFixedWindow(t *testing.T) {
	now := time.Now()
	store := NewMemoryStore(8, 10*time.Second)
	store.now = func() time.Time { return now }

	ctx := context.Background()

	for i := 0; i < 8; i++ {
		result, err := store.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, result.Allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 8, result.Limit)
		assert.Equal(t, 8-(i+1), result.Remaining)
	}

	// Ninth request in the same window is denied.
	result, err := store.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, 0, result.Remaining)

	// A different client has its own counter.
	other, err := store.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, other.Allowed)

	// After the window elapses the original client is allowed again.
	now = now.Add(10 * time.Second)
	result, err = store.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 7, result.Remaining)
}

func TestMemoryStoreResetInCountsDown(t *testing.T) {
	now := time.Now()
	store := NewMemoryStore(2, 10*time.Second)
	store.now = func() time.Time { return now }

	first, err := store.Allow(context.Background(), "client")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, first.ResetIn)

	now = now.Add(4 * time.Second)
	second, err := store.Allow(context.Background(), "client")
	require.NoError(t, err)
	assert.Equal(t, 6*time.Second, second.ResetIn)
}
