package cache_test

import (
	"testing"

	"github.com/on-the-ground/keyed_selector_go/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handle struct{ name string }

func fillCacheWith(c cache.Cache, entries ...any) cache.Cache {
	for _, e := range entries {
		c.Set(e, e)
	}
	return c
}

func testBasicBehavior(t *testing.T, makeCache func() cache.Cache) {
	t.Run("returns cached value", func(t *testing.T) {
		c := makeCache()
		actual := &handle{name: "foo"}

		c.Set("foo", actual)
		got, ok := c.Get("foo")

		assert.True(t, ok)
		assert.Same(t, actual, got)
	})

	t.Run("misses unknown key", func(t *testing.T) {
		c := makeCache()
		got, ok := c.Get("nope")
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("removes a single item", func(t *testing.T) {
		c := fillCacheWith(makeCache(), 1, 2, 3, 4, 5)

		c.Remove(3)
		c.Remove(42) // no-op on miss

		_, ok := c.Get(3)
		assert.False(t, ok)
		for _, e := range []int{1, 2, 4, 5} {
			got, ok := c.Get(e)
			assert.True(t, ok)
			assert.Equal(t, e, got)
		}
	})

	t.Run("clears the cache", func(t *testing.T) {
		c := fillCacheWith(makeCache(), 1, 2, 3, 4, 5)

		c.Clear()

		for _, e := range []int{1, 2, 3, 4, 5} {
			_, ok := c.Get(e)
			assert.False(t, ok)
		}

		// usable after clear
		c.Set(6, 6)
		got, ok := c.Get(6)
		assert.True(t, ok)
		assert.Equal(t, 6, got)
	})
}

func testCacheSizeOptionValidation[C cache.Cache](t *testing.T, newCache func(int) (C, error)) {
	t.Run("fails if not a positive integer", func(t *testing.T) {
		for _, size := range []int{-12, 0} {
			_, err := newCache(size)
			assert.ErrorIs(t, err, cache.ErrInvalidConfiguration)
			assert.ErrorContains(t, err, "a positive integer")
		}
	})

	t.Run("accepts a positive integer", func(t *testing.T) {
		_, err := newCache(22)
		assert.NoError(t, err)
	})
}

func testMapCacheKeyBehavior(t *testing.T, makeCache func() cache.Cache) {
	t.Run("has no key validator", func(t *testing.T) {
		_, ok := makeCache().(cache.KeyValidator)
		assert.False(t, ok)
	})

	t.Run("any comparable value works as cache key", func(t *testing.T) {
		type point struct{ X, Y int }
		c := makeCache()
		entries := []any{1, struct{}{}, 3, &[]int{}, nil, point{1, 2}, true}

		fillCacheWith(c, entries...)

		for _, e := range entries {
			got, ok := c.Get(e)
			assert.True(t, ok, "key %v", e)
			assert.Equal(t, e, got)
		}
	})

	t.Run("distinguishes number and string keys", func(t *testing.T) {
		c := makeCache()
		c.Set(1, "number")
		c.Set("1", "string")

		got, _ := c.Get(1)
		assert.Equal(t, "number", got)
		got, _ = c.Get("1")
		assert.Equal(t, "string", got)
	})
}

func testRecordCacheKeyBehavior(t *testing.T, makeCache func() cache.Cache) {
	t.Run("validates keys", func(t *testing.T) {
		v, ok := makeCache().(cache.KeyValidator)
		require.True(t, ok)

		assert.True(t, v.IsValidCacheKey(42))
		assert.True(t, v.IsValidCacheKey("x"))
		assert.True(t, v.IsValidCacheKey(2.5))
		assert.False(t, v.IsValidCacheKey(struct{}{}))
		assert.False(t, v.IsValidCacheKey(map[string]int{}))
		assert.False(t, v.IsValidCacheKey(nil))
		assert.False(t, v.IsValidCacheKey(true))
	})

	t.Run("coerces numbers to strings", func(t *testing.T) {
		c := makeCache()
		c.Set(1, "number")
		c.Set("1", "string")

		got, ok := c.Get(1)
		assert.True(t, ok)
		assert.Equal(t, "string", got)
	})

	t.Run("ignores invalid keys", func(t *testing.T) {
		c := makeCache()
		c.Set(struct{}{}, "nope")

		_, ok := c.Get(struct{}{})
		assert.False(t, ok)
	})
}
