package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGet(t *testing.T) {
	m, err := NewMemory(8)
	require.NoError(t, err)
	ctx := context.Background()

	m.Set(ctx, "k", "v", time.Minute)

	got, ok := m.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestMemory_MissAndExpiry(t *testing.T) {
	m, err := NewMemory(8)
	require.NoError(t, err)
	ctx := context.Background()

	_, ok := m.Get(ctx, "absent")
	assert.False(t, ok)

	m.Set(ctx, "k", "v", -time.Second)
	_, ok = m.Get(ctx, "k")
	assert.False(t, ok, "expired entries behave as misses")
}

func TestMemory_EvictsOldest(t *testing.T) {
	m, err := NewMemory(2)
	require.NoError(t, err)
	ctx := context.Background()

	m.Set(ctx, "a", "1", time.Minute)
	m.Set(ctx, "b", "2", time.Minute)
	m.Set(ctx, "c", "3", time.Minute)

	_, ok := m.Get(ctx, "a")
	assert.False(t, ok)
}
