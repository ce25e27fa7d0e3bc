package cache

// FlatMap is an unbounded map-backed store.
type FlatMap struct {
	data map[any]any
}

func NewFlatMap() *FlatMap {
	return &FlatMap{data: make(map[any]any)}
}

func (c *FlatMap) Set(key, handle any) {
	c.data[key] = handle
}

func (c *FlatMap) Get(key any) (any, bool) {
	h, ok := c.data[key]
	return h, ok
}

func (c *FlatMap) Remove(key any) {
	delete(c.data, key)
}

func (c *FlatMap) Clear() {
	c.data = make(map[any]any)
}

func (c *FlatMap) Len() int {
	return len(c.data)
}

// FlatRecord is an unbounded record-backed store. It is the store a keyed
// selector uses when none is configured.
type FlatRecord struct {
	data map[string]any
}

func NewFlatRecord() *FlatRecord {
	return &FlatRecord{data: make(map[string]any)}
}

// Set files handle under the string form of key. Keys that are neither
// strings nor numbers are ignored.
func (c *FlatRecord) Set(key, handle any) {
	k, ok := RecordKey(key)
	if !ok {
		return
	}
	c.data[k] = handle
}

func (c *FlatRecord) Get(key any) (any, bool) {
	k, ok := RecordKey(key)
	if !ok {
		return nil, false
	}
	h, ok := c.data[k]
	return h, ok
}

func (c *FlatRecord) Remove(key any) {
	if k, ok := RecordKey(key); ok {
		delete(c.data, k)
	}
}

func (c *FlatRecord) Clear() {
	c.data = make(map[string]any)
}

func (c *FlatRecord) Len() int {
	return len(c.data)
}

func (c *FlatRecord) IsValidCacheKey(key any) bool {
	return IsStringOrNumber(key)
}
