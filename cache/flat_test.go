package cache_test

import (
	"testing"

	"github.com/on-the-ground/keyed_selector_go/cache"
	"github.com/stretchr/testify/assert"
)

func TestFlatMap(t *testing.T) {
	newCache := func() cache.Cache { return cache.NewFlatMap() }
	testBasicBehavior(t, newCache)
	testMapCacheKeyBehavior(t, newCache)
}

func TestFlatRecord(t *testing.T) {
	newCache := func() cache.Cache { return cache.NewFlatRecord() }
	testBasicBehavior(t, newCache)
	testRecordCacheKeyBehavior(t, newCache)
}

func TestFlat_Unbounded(t *testing.T) {
	const n = 10_000

	for name, c := range map[string]interface {
		cache.Cache
		Len() int
	}{
		"map":    cache.NewFlatMap(),
		"record": cache.NewFlatRecord(),
	} {
		t.Run(name, func(t *testing.T) {
			for i := range n {
				c.Set(i, i)
			}
			assert.Equal(t, n, c.Len())

			for _, i := range []int{0, 4999, n - 1} {
				got, ok := c.Get(i)
				assert.True(t, ok)
				assert.Equal(t, i, got)
			}

			c.Remove(123)
			assert.Equal(t, n-1, c.Len())
			_, ok := c.Get(123)
			assert.False(t, ok)
			_, ok = c.Get(124)
			assert.True(t, ok)

			c.Clear()
			assert.Equal(t, 0, c.Len())
		})
	}
}
