package selector

import (
	"github.com/google/uuid"
)

// Selector derives a value from the call arguments.
type Selector func(args ...any) any

// Combiner computes a result from the values of the input selectors,
// in input order.
type Combiner func(results ...any) any

// Options configures a memoized selector.
type Options struct {
	// MaxSize bounds the memo table. Zero means 1.
	MaxSize uint32
}

func (o *Options) maxSize() uint32 {
	if o == nil || o.MaxSize == 0 {
		return 1
	}
	return o.MaxSize
}

// Handle is the memoized computation a keyed selector stores per key.
type Handle interface {
	Select(args ...any) any
	ResultFunc() Combiner
	Dependencies() []Selector
	Recomputations() int
	ResetRecomputations() int
}

// Creator builds a Handle from input selectors and a combiner.
// opts may be nil.
type Creator func(inputs []Selector, combiner Combiner, opts *Options) Handle

var _ Creator = Create

// Create is the default Creator. It returns a *Memoized.
func Create(inputs []Selector, combiner Combiner, opts *Options) Handle {
	return New(inputs, combiner, opts)
}

// Memoized memoizes a combiner over the results of its input selectors.
type Memoized struct {
	id             string
	inputs         []Selector
	combiner       Combiner
	memo           *Trie[any]
	recomputations int
}

func New(inputs []Selector, combiner Combiner, opts *Options) *Memoized {
	return &Memoized{
		id:       uuid.New().String(),
		inputs:   inputs,
		combiner: combiner,
		memo:     NewTrie[any](opts.maxSize()),
	}
}

// Select runs the input selectors with args and returns the combined
// value, invoking the combiner only for an unseen tuple of input results.
func (m *Memoized) Select(args ...any) any {
	results := make([]any, len(m.inputs))
	keys := make([]any, len(m.inputs), len(m.inputs)+1)
	for i, input := range m.inputs {
		results[i] = input(args...)
		keys[i] = tableKey(results[i])
	}
	if len(keys) == 0 {
		keys = append(keys, noInputs{})
	}

	if v, ok := m.memo.Load(keys); ok {
		return v
	}
	m.recomputations++
	v := m.combiner(results...)
	m.memo.Store(keys, v)
	return v
}

// ID identifies this memoized selector in diagnostics.
func (m *Memoized) ID() string { return m.id }

func (m *Memoized) ResultFunc() Combiner { return m.combiner }

func (m *Memoized) Dependencies() []Selector { return m.inputs }

func (m *Memoized) Recomputations() int { return m.recomputations }

// ResetRecomputations zeroes the counter and returns the new value.
func (m *Memoized) ResetRecomputations() int {
	m.recomputations = 0
	return m.recomputations
}
