package keyed

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/on-the-ground/keyed_selector_go/cache"
	"github.com/on-the-ground/keyed_selector_go/log"
	"github.com/on-the-ground/keyed_selector_go/selector"
	"github.com/on-the-ground/keyed_selector_go/shared/helper"
)

// Factory is the first stage of a keyed selector: its dependencies and
// combiner, waiting for a key selector.
type Factory struct {
	inputs      []selector.Selector
	resultFunc  selector.Combiner
	memoOptions *selector.Options
}

// New parses funcs as input selectors followed by a combiner and an
// optional selector.Options:
//
//	keyed.New(in1, in2, combiner)
//	keyed.New(in1, in2, combiner, selector.Options{MaxSize: 4})
//	keyed.New([]selector.Selector{in1, in2}, combiner)
//
// The last argument is the combiner if and only if it is a func. Inputs may
// be selector.Selector, func(...any) any, any func of one result, or values
// with a Select(...any) any method such as another keyed *Selector.
func New(funcs ...any) (*Factory, error) {
	inputs, resultFunc, memoOptions, err := parseArgs(funcs)
	if err != nil {
		return nil, err
	}
	return &Factory{
		inputs:      inputs,
		resultFunc:  resultFunc,
		memoOptions: memoOptions,
	}, nil
}

// Build returns a keyed selector. options is either a key selector (a
// KeySelector, a func(...any) any or any func of one result) or Options.
func (f *Factory) Build(options any) (*Selector, error) {
	opts, err := toOptions(options)
	if err != nil {
		return nil, err
	}

	if opts.KeySelectorCreator != nil {
		opts.KeySelector = opts.KeySelectorCreator(KeySelectorInputs{
			InputSelectors: f.inputs,
			ResultFunc:     f.resultFunc,
			KeySelector:    opts.KeySelector,
		})
	}
	if opts.KeySelector == nil {
		return nil, ErrMissingKeySelector
	}
	if opts.CacheObject == nil {
		opts.CacheObject = cache.NewFlatRecord()
	}
	if opts.SelectorCreator == nil {
		opts.SelectorCreator = selector.Create
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	s := &Selector{
		dependencies:    f.inputs,
		resultFunc:      f.resultFunc,
		memoOptions:     f.memoOptions,
		cache:           opts.CacheObject,
		keySelector:     opts.KeySelector,
		selectorCreator: opts.SelectorCreator,
		isValidCacheKey: isHashable,
		logger:          opts.Logger,
	}
	if v, ok := opts.CacheObject.(cache.KeyValidator); ok {
		s.isValidCacheKey = v.IsValidCacheKey
	}
	return s, nil
}

// Selector keeps one memoized selector per cache key.
type Selector struct {
	dependencies    []selector.Selector
	resultFunc      selector.Combiner
	memoOptions     *selector.Options
	cache           cache.Cache
	keySelector     KeySelector
	selectorCreator selector.Creator
	isValidCacheKey func(any) bool
	logger          *zap.Logger

	// shared by every memoized selector of this keyed selector
	recomputations int
}

var _ selector.Handle = (*Selector)(nil)

// Select derives the cache key from args and delegates to the memoized
// selector filed under it, creating it on a miss. It returns nil when the
// store rejects the key.
func (s *Selector) Select(args ...any) any {
	cacheKey := s.keySelector(args...)
	if !s.isValidCacheKey(cacheKey) {
		log.Emit(s.logger, log.LogWarn,
			fmt.Sprintf("invalid cache key \"%v\" returned by keySelector function", cacheKey),
			map[string]any{"cacheKey": cacheKey},
		)
		return nil
	}

	h, ok := s.lookup(cacheKey)
	if !ok {
		h = s.selectorCreator(s.dependencies, s.countRecomputation, s.memoOptions)
		s.cache.Set(cacheKey, h)

		if s.logger.Core().Enabled(zapcore.DebugLevel) {
			fields := map[string]any{"cacheKey": cacheKey}
			if ider, ok := h.(interface{ ID() string }); ok {
				fields["selectorId"] = ider.ID()
			}
			log.Emit(s.logger, log.LogDebug, "created memoized selector", fields)
		}
	}
	return h.Select(args...)
}

func (s *Selector) countRecomputation(results ...any) any {
	s.recomputations++
	return s.resultFunc(results...)
}

func (s *Selector) lookup(cacheKey any) (selector.Handle, bool) {
	return helper.Lookup[selector.Handle](s.cache.Get, cacheKey)
}

// GetMatchingSelector returns the memoized selector filed under the cache
// key derived from args, without invoking it. On LRU stores the lookup
// counts as a use.
func (s *Selector) GetMatchingSelector(args ...any) (selector.Handle, bool) {
	cacheKey := s.keySelector(args...)
	if !s.isValidCacheKey(cacheKey) {
		return nil, false
	}
	return s.lookup(cacheKey)
}

// RemoveMatchingSelector drops the memoized selector filed under the cache
// key derived from args.
func (s *Selector) RemoveMatchingSelector(args ...any) {
	cacheKey := s.keySelector(args...)
	if !s.isValidCacheKey(cacheKey) {
		return
	}
	s.cache.Remove(cacheKey)
}

// ClearCache drops every memoized selector.
func (s *Selector) ClearCache() {
	s.cache.Clear()
}

// Recomputations returns how many times the combiner ran, across all keys.
func (s *Selector) Recomputations() int { return s.recomputations }

// ResetRecomputations zeroes the counter and returns the new value.
func (s *Selector) ResetRecomputations() int {
	s.recomputations = 0
	return s.recomputations
}

func (s *Selector) ResultFunc() selector.Combiner { return s.resultFunc }

func (s *Selector) Dependencies() []selector.Selector { return s.dependencies }

func (s *Selector) Cache() cache.Cache { return s.cache }

func (s *Selector) KeySelector() KeySelector { return s.keySelector }

func (s *Selector) Logger() *zap.Logger { return s.logger }

// SelectAs calls s and asserts the result to T. ok is false when the
// result is nil or not a T.
func SelectAs[T any](s *Selector, args ...any) (T, bool) {
	return helper.As[T](s.Select(args...))
}

// MustSelectAs is SelectAs that panics when the result is not a T,
// including when Select returned nil for an invalid key.
func MustSelectAs[T any](s *Selector, args ...any) T {
	return helper.MustAs[T](s.Select(args...))
}

// isHashable accepts every key a Go map can hold. It guards stores that
// do not validate keys themselves.
func isHashable(key any) bool {
	return key == nil || reflect.ValueOf(key).Comparable()
}
