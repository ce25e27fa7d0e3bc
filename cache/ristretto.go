package cache

import (
	ristretto "github.com/dgraph-io/ristretto/v2"
)

// Ristretto is a record-backed store on top of ristretto's TinyLFU cache.
//
// Unlike the FIFO and LRU stores, admission is probabilistic: a Set may be
// rejected when the cache is full and the newcomer is estimated to be less
// valuable than the entry it would replace. A rejected handle is simply
// rebuilt on the next lookup.
type Ristretto struct {
	cache *ristretto.Cache[string, any]
}

// NewRistretto returns a Ristretto store holding about maxEntries entries.
func NewRistretto(maxEntries int) (*Ristretto, error) {
	if err := ValidateCacheSize(maxEntries); err != nil {
		return nil, err
	}
	c, err := ristretto.NewCache(&ristretto.Config[string, any]{
		NumCounters:        int64(maxEntries) * 10, // ~10x the entries tracked for frequency.
		MaxCost:            int64(maxEntries),      // every entry costs 1.
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &Ristretto{cache: c}, nil
}

// Set stores handle and waits for the write buffer to drain, so that a
// following Get observes the entry if it was admitted.
func (r *Ristretto) Set(key, handle any) {
	k, ok := RecordKey(key)
	if !ok {
		return
	}
	r.cache.Set(k, handle, 1)
	r.cache.Wait()
}

func (r *Ristretto) Get(key any) (any, bool) {
	k, ok := RecordKey(key)
	if !ok {
		return nil, false
	}
	return r.cache.Get(k)
}

func (r *Ristretto) Remove(key any) {
	if k, ok := RecordKey(key); ok {
		r.cache.Del(k)
	}
}

func (r *Ristretto) Clear() {
	r.cache.Clear()
}

// Close stops ristretto's background goroutines. The store is unusable
// afterwards.
func (r *Ristretto) Close() {
	r.cache.Close()
}

func (r *Ristretto) IsValidCacheKey(key any) bool {
	return IsStringOrNumber(key)
}
