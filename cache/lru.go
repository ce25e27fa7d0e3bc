package cache

import (
	"github.com/hashicorp/golang-lru/simplelru"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// LRUMap is a bounded map-backed store evicting the least recently
// touched key. Both Get hits and Set count as touches.
type LRUMap struct {
	data *simplelru.LRU
}

// NewLRUMap returns an LRUMap holding at most size entries.
func NewLRUMap(size int) (*LRUMap, error) {
	if err := ValidateCacheSize(size); err != nil {
		return nil, err
	}
	data, err := simplelru.NewLRU(size, nil)
	if err != nil {
		return nil, err
	}
	return &LRUMap{data: data}, nil
}

func (c *LRUMap) Set(key, handle any) {
	c.data.Add(key, handle)
}

func (c *LRUMap) Get(key any) (any, bool) {
	return c.data.Get(key)
}

func (c *LRUMap) Remove(key any) {
	c.data.Remove(key)
}

func (c *LRUMap) Clear() {
	c.data.Purge()
}

func (c *LRUMap) Len() int {
	return c.data.Len()
}

// Keys returns the stored keys, least recently used first.
func (c *LRUMap) Keys() []any {
	return c.data.Keys()
}

// LRURecord is a bounded record-backed store evicting the least recently
// touched key.
type LRURecord struct {
	// oldest first, least recently used
	data *orderedmap.OrderedMap[string, any]
	size int
}

// NewLRURecord returns an LRURecord holding at most size entries.
func NewLRURecord(size int) (*LRURecord, error) {
	if err := ValidateCacheSize(size); err != nil {
		return nil, err
	}
	return &LRURecord{
		data: orderedmap.New[string, any](),
		size: size,
	}, nil
}

func (c *LRURecord) Set(key, handle any) {
	k, ok := RecordKey(key)
	if !ok {
		return
	}
	if _, present := c.data.Set(k, handle); present {
		_ = c.data.MoveToBack(k)
	}
	evictOldest(c.data, c.size)
}

// Get returns the handle under key. A hit marks key as most recently used.
func (c *LRURecord) Get(key any) (any, bool) {
	k, ok := RecordKey(key)
	if !ok {
		return nil, false
	}
	h, ok := c.data.Get(k)
	if ok {
		_ = c.data.MoveToBack(k)
	}
	return h, ok
}

func (c *LRURecord) Remove(key any) {
	if k, ok := RecordKey(key); ok {
		c.data.Delete(k)
	}
}

func (c *LRURecord) Clear() {
	c.data = orderedmap.New[string, any]()
}

func (c *LRURecord) Len() int {
	return c.data.Len()
}

// Keys returns the stored keys in their string form, least recently
// used first.
func (c *LRURecord) Keys() []string {
	return recordKeys(c.data)
}

func (c *LRURecord) IsValidCacheKey(key any) bool {
	return IsStringOrNumber(key)
}
