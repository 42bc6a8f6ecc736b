package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheHitAndMiss(t *testing.T) {
	c := NewMemoryCache(4, time.Minute)

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Put("a", []byte("one"))
	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, []byte("one"), got)

	stats := c.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
}

func TestCacheTTLExpiry(t *testing.T) {
	c := NewMemoryCache(4, time.Minute)
	now := time.Unix(1000, 0)
	c.now = func() time.Time { return now }

	c.Put("a", []byte("one"))
	now = now.Add(30 * time.Second)
	_, ok := c.Get("a")
	assert.True(t, ok, "entry inside TTL")

	now = now.Add(time.Hour)
	_, ok = c.Get("a")
	assert.False(t, ok, "entry past TTL")
	assert.Equal(t, 0, c.Len(), "expired entry is dropped on access")
}

func TestCacheLRUEviction(t *testing.T) {
	c := NewMemoryCache(3, 0)
	c.Put("a", []byte("1"))
	c.Put("b", []byte("2"))
	c.Put("c", []byte("3"))

	// Touch a so b becomes the oldest.
	c.Get("a")
	c.Put("d", []byte("4"))

	_, ok := c.Get("b")
	assert.False(t, ok, "least recently used entry evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, uint64(1), c.Stats().Evictions)
}

func TestCachePutUpdatesInPlace(t *testing.T) {
	c := NewMemoryCache(2, 0)
	c.Put("a", []byte("old"))
	c.Put("a", []byte("new"))
	assert.Equal(t, 1, c.Len())

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), got)
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewMemoryCache(16, time.Minute)
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", j%8)
				c.Put(key, []byte{byte(n)})
				c.Get(key)
			}
		}(i)
	}
	for i := 0; i < 4; i++ {
		<-done
	}
}

func TestKeyStability(t *testing.T) {
	part := map[string]any{"scale": 1.5, "rooms": 3}

	k1, err := Key("main_floor", part)
	require.NoError(t, err)
	k2, err := Key("main_floor", map[string]any{"scale": 1.5, "rooms": 3})
	require.NoError(t, err)
	assert.Equal(t, k1, k2, "identical config hashes identically")

	k3, err := Key("main_floor", map[string]any{"scale": 2.0, "rooms": 3})
	require.NoError(t, err)
	assert.NotEqual(t, k1, k3, "changed config changes the key")

	k4, err := Key("basement", part)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k4, "floor name is part of the key")
}
