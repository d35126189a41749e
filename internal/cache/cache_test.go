package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheBasics(t *testing.T) {
	c := New(time.Hour)

	t.Run("miss on unknown key", func(t *testing.T) {
		_, ok := c.GetQuery("missing")
		assert.False(t, ok)
	})

	t.Run("doc and query spaces are independent", func(t *testing.T) {
		c.SetDoc("42", "doc-level")
		c.SetQuery("42", "query-level")

		doc, ok := c.GetDoc("42")
		require.True(t, ok)
		assert.Equal(t, "doc-level", doc)

		q, ok := c.GetQuery("42")
		require.True(t, ok)
		assert.Equal(t, "query-level", q)
	})

	t.Run("set overwrites", func(t *testing.T) {
		c.SetQuery("k", "first")
		c.SetQuery("k", "second")

		got, ok := c.GetQuery("k")
		require.True(t, ok)
		assert.Equal(t, "second", got)
	})
}

func TestCacheExpiry(t *testing.T) {
	now := time.Now()
	c := New(time.Hour)
	c.now = func() time.Time { return now }

	c.SetQuery("k", "v")

	t.Run("alive within ttl", func(t *testing.T) {
		now = now.Add(59 * time.Minute)
		_, ok := c.GetQuery("k")
		assert.True(t, ok)
	})

	t.Run("expired entry is purged on read", func(t *testing.T) {
		now = now.Add(2 * time.Minute)
		_, ok := c.GetQuery("k")
		assert.False(t, ok)

		// The read evicted it, not just hid it.
		assert.Zero(t, c.Snapshot().QueryEntries)
	})

	t.Run("expired entries linger until read", func(t *testing.T) {
		c.SetDoc("d", "v")
		now = now.Add(2 * time.Hour)
		assert.Equal(t, 1, c.Snapshot().DocEntries)

		_, ok := c.GetDoc("d")
		assert.False(t, ok)
		assert.Zero(t, c.Snapshot().DocEntries)
	})
}

func TestCacheClear(t *testing.T) {
	c := New(time.Hour)
	c.SetDoc("d", 1)
	c.SetQuery("q", 2)
	require.Equal(t, Stats{DocEntries: 1, QueryEntries: 1}, c.Snapshot())

	c.Clear()

	assert.Equal(t, Stats{}, c.Snapshot())
	_, ok := c.GetDoc("d")
	assert.False(t, ok)
}

func TestCacheConcurrency(t *testing.T) {
	c := New(time.Hour)
	done := make(chan struct{})

	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 200; j++ {
				c.SetQuery("shared", j)
				c.GetQuery("shared")
				c.Snapshot()
			}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}

	_, ok := c.GetQuery("shared")
	assert.True(t, ok)
}
