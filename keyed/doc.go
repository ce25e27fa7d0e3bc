// Package keyed builds selectors that keep one memoized selector per cache key.
//
// A keyed selector is built in two stages. New takes the input selectors, the
// combiner and an optional selector.Options; Build takes a key selector (or
// Options) and returns the Selector:
//
//	factory, err := keyed.New(getUsers, getLibraryID, func(r ...any) any {
//		return filterByLibrary(r[0].([]User), r[1].(string))
//	})
//	if err != nil {
//		return err
//	}
//	usersByLibrary, err := factory.Build(keys.Arg(1))
//
//	usersByLibrary.Select(state, "lib-1") // computes
//	usersByLibrary.Select(state, "lib-2") // computes, independent memo
//	usersByLibrary.Select(state, "lib-1") // memoized
//
// On every call the key selector derives a cache key from the arguments. The
// key picks a memoized selector from the cache store, creating it on first
// use, and the call is delegated to it. A key the store rejects is logged as
// a warning and the call returns nil.
//
// Keyed selectors are not safe for concurrent use.
package keyed
