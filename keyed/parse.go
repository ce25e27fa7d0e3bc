package keyed

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/on-the-ground/keyed_selector_go/selector"
)

var (
	// ErrInvalidArguments is returned by New when the arguments are not
	// input selectors followed by a combiner and an optional selector.Options.
	ErrInvalidArguments = errors.New("keyed: invalid arguments")

	// ErrMissingKeySelector is returned by Build when no key selector is
	// supplied or created.
	ErrMissingKeySelector = errors.New("keyed: missing keySelector")
)

// selectable is implemented by selectors built by this module, so they can
// be used as inputs of other selectors.
type selectable interface {
	Select(args ...any) any
}

// parseArgs splits funcs into input selectors, combiner and memoizer
// options. The last argument is the combiner if and only if it is a func;
// otherwise it is the options and the one before it is the combiner.
func parseArgs(funcs []any) ([]selector.Selector, selector.Combiner, *selector.Options, error) {
	if len(funcs) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: missing combiner", ErrInvalidArguments)
	}

	var memoOptions *selector.Options
	last := funcs[len(funcs)-1]
	if !selector.IsFunc(last) {
		opts, err := toMemoOptions(last)
		if err != nil {
			return nil, nil, nil, err
		}
		memoOptions = opts
		funcs = funcs[:len(funcs)-1]
		if len(funcs) == 0 {
			return nil, nil, nil, fmt.Errorf("%w: missing combiner", ErrInvalidArguments)
		}
	}

	resultFunc, err := selector.CombinerFunc(funcs[len(funcs)-1])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: combiner: %w", ErrInvalidArguments, err)
	}

	// a packed slice must be the only input; mixed with more inputs it is rejected
	rawInputs := funcs[:len(funcs)-1]
	if len(rawInputs) == 1 {
		if packed, ok := unpack(rawInputs[0]); ok {
			rawInputs = packed
		}
	}

	inputs := make([]selector.Selector, len(rawInputs))
	for i, raw := range rawInputs {
		in, err := toSelector(raw)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("%w: input selector %d: %w", ErrInvalidArguments, i, err)
		}
		inputs[i] = in
	}
	return inputs, resultFunc, memoOptions, nil
}

func toMemoOptions(v any) (*selector.Options, error) {
	switch o := v.(type) {
	case nil:
		return nil, nil
	case selector.Options:
		return &o, nil
	case *selector.Options:
		return o, nil
	default:
		return nil, fmt.Errorf("%w: expected combiner or selector.Options, got %T", ErrInvalidArguments, v)
	}
}

// unpack expands input selectors handed over as a single slice.
func unpack(v any) ([]any, bool) {
	switch s := v.(type) {
	case []selector.Selector:
		out := make([]any, len(s))
		for i, in := range s {
			out[i] = in
		}
		return out, true
	case []any:
		return s, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func toSelector(v any) (selector.Selector, error) {
	switch s := v.(type) {
	case selector.Selector:
		if s != nil {
			return s, nil
		}
	case KeySelector:
		if s != nil {
			return selector.Selector(s), nil
		}
	case selectable:
		if s != nil {
			return s.Select, nil
		}
	}
	return selector.Func(v)
}

// toOptions normalizes the argument of Build.
func toOptions(v any) (Options, error) {
	switch o := v.(type) {
	case Options:
		return o, nil
	case *Options:
		if o == nil {
			return Options{}, nil
		}
		return *o, nil
	case KeySelector:
		return Options{KeySelector: o}, nil
	case func(...any) any:
		return Options{KeySelector: o}, nil
	}

	if !selector.IsFunc(v) {
		return Options{}, fmt.Errorf("%w: expected key selector or keyed.Options, got %T", ErrInvalidArguments, v)
	}
	ks, err := selector.Func(v)
	if err != nil {
		return Options{}, fmt.Errorf("%w: key selector: %w", ErrInvalidArguments, err)
	}
	return Options{KeySelector: KeySelector(ks)}, nil
}
