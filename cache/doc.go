// Package cache provides the stores that hold one memoized selector per cache key.
//
// Every store implements Cache. Stores come in two key spaces:
//
//   - map-backed (FlatMap, FIFOMap, LRUMap): any comparable Go value is a key.
//   - record-backed (FlatRecord, FIFORecord, LRURecord): keys must be strings or
//     numbers and are coerced to their string form, so 42 and "42" are the same key.
//     These stores implement KeyValidator.
//
// Three policies apply to both key spaces:
//
//   - Flat: unbounded, entries live until removed or cleared.
//   - FIFO: bounded; evicts the earliest inserted key. Reads never reorder.
//     Overwriting a key keeps its original position.
//   - LRU: bounded; evicts the least recently read or written key.
//
// Stores are not safe for concurrent use.
package cache
