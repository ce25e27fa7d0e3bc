// Package keys provides key selectors and key selector creators for keyed
// selectors.
package keys

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/on-the-ground/keyed_selector_go/keyed"
)

const delimiter = ":"

// Arg picks the i-th call argument as the cache key, nil when absent.
func Arg(i int) keyed.KeySelector {
	return func(args ...any) any {
		if i < 0 || i >= len(args) {
			return nil
		}
		return args[i]
	}
}

// Compose joins the text form of each part's key with ":".
func Compose(parts ...keyed.KeySelector) keyed.KeySelector {
	return func(args ...any) any {
		strs := make([]string, len(parts))
		for i, part := range parts {
			strs[i] = fmt.Sprint(part(args...))
		}
		return strings.Join(strs, delimiter)
	}
}

// Hashed turns any key into the xxhash64 of its text form. The result is a
// number, so it is accepted by record-backed stores.
func Hashed(ks keyed.KeySelector) keyed.KeySelector {
	return func(args ...any) any {
		return xxhash.Sum64String(fmt.Sprint(ks(args...)))
	}
}

// FromDependencies keys the cache by the results of the input selectors,
// so every distinct combination of inputs gets its own memoized selector.
func FromDependencies() keyed.KeySelectorCreator {
	return func(in keyed.KeySelectorInputs) keyed.KeySelector {
		deps := in.InputSelectors
		return func(args ...any) any {
			d := xxhash.New()
			for _, dep := range deps {
				fmt.Fprintf(d, "%v\x00", dep(args...))
			}
			return d.Sum64()
		}
	}
}

// Namespaced prefixes the supplied key selector's key with ns.
// Useful when several keyed selectors share one cache store.
func Namespaced(ns string) keyed.KeySelectorCreator {
	return func(in keyed.KeySelectorInputs) keyed.KeySelector {
		if in.KeySelector == nil {
			return nil
		}
		ks := in.KeySelector
		return func(args ...any) any {
			return ns + delimiter + fmt.Sprint(ks(args...))
		}
	}
}
