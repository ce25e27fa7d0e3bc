// Package selector provides the single-key memoizer that keyed selectors
// delegate to.
//
// A memoized selector runs its input selectors against the call arguments
// and invokes the combiner only when the tuple of input results has not
// been seen before. Results are compared by identity:
//
//	→ comparable values by ==
//	→ slices, maps and channels by the memory they point at, which stays
//	  reserved while the result is memoized
//	→ anything else never matches, fmt.Stringer values included
//
// No deep equality is performed. Input selectors are expected to be cheap;
// the combiner is the expensive part that memoization protects.
//
// The memo table is a bounded Trie keyed by the input results. It keeps
// between MaxSize and 2*MaxSize entries by rotating two generations.
//
// Memoized selectors are not safe for concurrent use.
package selector
