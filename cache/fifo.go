package cache

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FIFOMap is a bounded map-backed store evicting the earliest inserted key.
type FIFOMap struct {
	data *orderedmap.OrderedMap[any, any]
	size int
}

// NewFIFOMap returns a FIFOMap holding at most size entries.
func NewFIFOMap(size int) (*FIFOMap, error) {
	if err := ValidateCacheSize(size); err != nil {
		return nil, err
	}
	return &FIFOMap{
		data: orderedmap.New[any, any](),
		size: size,
	}, nil
}

func (c *FIFOMap) Set(key, handle any) {
	// overwriting keeps the original insertion position
	c.data.Set(key, handle)
	evictOldest(c.data, c.size)
}

func (c *FIFOMap) Get(key any) (any, bool) {
	return c.data.Get(key)
}

func (c *FIFOMap) Remove(key any) {
	c.data.Delete(key)
}

func (c *FIFOMap) Clear() {
	c.data = orderedmap.New[any, any]()
}

func (c *FIFOMap) Len() int {
	return c.data.Len()
}

// Keys returns the stored keys, earliest first.
func (c *FIFOMap) Keys() []any {
	keys := make([]any, 0, c.data.Len())
	for pair := c.data.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// FIFORecord is a bounded record-backed store evicting the earliest
// inserted key.
type FIFORecord struct {
	data *orderedmap.OrderedMap[string, any]
	size int
}

// NewFIFORecord returns a FIFORecord holding at most size entries.
func NewFIFORecord(size int) (*FIFORecord, error) {
	if err := ValidateCacheSize(size); err != nil {
		return nil, err
	}
	return &FIFORecord{
		data: orderedmap.New[string, any](),
		size: size,
	}, nil
}

func (c *FIFORecord) Set(key, handle any) {
	k, ok := RecordKey(key)
	if !ok {
		return
	}
	c.data.Set(k, handle)
	evictOldest(c.data, c.size)
}

func (c *FIFORecord) Get(key any) (any, bool) {
	k, ok := RecordKey(key)
	if !ok {
		return nil, false
	}
	return c.data.Get(k)
}

func (c *FIFORecord) Remove(key any) {
	if k, ok := RecordKey(key); ok {
		c.data.Delete(k)
	}
}

func (c *FIFORecord) Clear() {
	c.data = orderedmap.New[string, any]()
}

func (c *FIFORecord) Len() int {
	return c.data.Len()
}

// Keys returns the stored keys in their string form, earliest first.
func (c *FIFORecord) Keys() []string {
	return recordKeys(c.data)
}

func (c *FIFORecord) IsValidCacheKey(key any) bool {
	return IsStringOrNumber(key)
}

// evictOldest drops the oldest entries of data until it holds at most size.
func evictOldest[K comparable](data *orderedmap.OrderedMap[K, any], size int) {
	for data.Len() > size {
		data.Delete(data.Oldest().Key)
	}
}

func recordKeys(data *orderedmap.OrderedMap[string, any]) []string {
	keys := make([]string, 0, data.Len())
	for pair := data.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}
