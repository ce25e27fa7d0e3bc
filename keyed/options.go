package keyed

import (
	"go.uber.org/zap"

	"github.com/on-the-ground/keyed_selector_go/cache"
	"github.com/on-the-ground/keyed_selector_go/selector"
)

// KeySelector derives a cache key from the arguments a keyed selector is
// called with.
type KeySelector func(args ...any) any

// KeySelectorInputs is what a KeySelectorCreator gets to build a key
// selector from.
type KeySelectorInputs struct {
	InputSelectors []selector.Selector
	ResultFunc     selector.Combiner
	// KeySelector is the directly supplied key selector, possibly nil.
	KeySelector KeySelector
}

// KeySelectorCreator builds the key selector from the selector's
// dependencies and combiner.
type KeySelectorCreator func(KeySelectorInputs) KeySelector

// Options configures a keyed selector.
type Options struct {
	// KeySelector derives the cache key. Required unless KeySelectorCreator
	// produces one.
	KeySelector KeySelector

	// KeySelectorCreator supersedes KeySelector when set.
	KeySelectorCreator KeySelectorCreator

	// CacheObject holds the per-key memoized selectors.
	// Defaults to a new cache.FlatRecord.
	CacheObject cache.Cache

	// SelectorCreator builds the per-key memoized selectors.
	// Defaults to selector.Create.
	SelectorCreator selector.Creator

	// Logger receives the invalid cache key warnings.
	// Defaults to log.Default().
	Logger *zap.Logger
}
