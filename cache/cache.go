package cache

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfiguration is returned when a bounded store is built with a
// cache size that is not a positive integer.
var ErrInvalidConfiguration = errors.New("cache: invalid configuration")

// Cache maps cache keys to memoized selector handles.
// Handles are opaque to the store.
type Cache interface {
	// Set inserts or overwrites key. Bounded stores evict at most one entry.
	Set(key, handle any)

	// Get returns the handle stored under key and whether it was present.
	Get(key any) (handle any, ok bool)

	// Remove deletes key. Idempotent - no-op on miss.
	Remove(key any)

	// Clear empties the store.
	Clear()
}

// KeyValidator is implemented by stores that restrict their key space.
// Stores that do not implement it accept every key.
type KeyValidator interface {
	IsValidCacheKey(key any) bool
}

// Number is the set of numeric types a cache size may be expressed in.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// ValidateCacheSize fails with ErrInvalidConfiguration unless n is a
// positive integer.
func ValidateCacheSize[N Number](n N) error {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f <= 0 {
		return fmt.Errorf("%w: cacheSize must be a positive integer, got %v", ErrInvalidConfiguration, n)
	}
	return nil
}

// Compile-time interface assertions.
var (
	_ Cache = (*FlatMap)(nil)
	_ Cache = (*FIFOMap)(nil)
	_ Cache = (*LRUMap)(nil)
	_ Cache = (*FlatRecord)(nil)
	_ Cache = (*FIFORecord)(nil)
	_ Cache = (*LRURecord)(nil)
	_ Cache = (*Ristretto)(nil)

	_ KeyValidator = (*FlatRecord)(nil)
	_ KeyValidator = (*FIFORecord)(nil)
	_ KeyValidator = (*LRURecord)(nil)
	_ KeyValidator = (*Ristretto)(nil)
)
