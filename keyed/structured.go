package keyed

import (
	"maps"
	"slices"

	"github.com/on-the-ground/keyed_selector_go/selector"
)

// NewStructured returns a Factory whose selectors produce a
// map[string]any holding, under each name, the result of the input
// selector registered under that name. Inputs run in sorted name order.
//
//	factory, _ := keyed.NewStructured(map[string]any{
//		"user":  getUser,
//		"posts": getPosts,
//	})
//	userPage, _ := factory.Build(keys.Arg(1))
func NewStructured(selectors map[string]any, memoOptions ...selector.Options) (*Factory, error) {
	names := slices.Sorted(maps.Keys(selectors))

	funcs := make([]any, 0, len(names)+2)
	for _, name := range names {
		funcs = append(funcs, selectors[name])
	}
	funcs = append(funcs, selector.Combiner(func(results ...any) any {
		out := make(map[string]any, len(names))
		for i, name := range names {
			out[name] = results[i]
		}
		return out
	}))
	if len(memoOptions) > 0 {
		funcs = append(funcs, memoOptions[0])
	}
	return New(funcs...)
}
