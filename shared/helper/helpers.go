package helper

import (
	"fmt"
)

// As asserts v to T. ok is false for nil or a value of another type.
func As[T any](v any) (res T, ok bool) {
	res, ok = v.(T)
	return
}

// MustAs is As that panics when v is not a T.
func MustAs[T any](v any) T {
	res, ok := As[T](v)
	if !ok {
		panic(fmt.Errorf("unexpected type: %T, want %T", v, res))
	}
	return res
}

// Lookup reads key through a comma-ok getter such as cache.Cache.Get and
// asserts the hit to T. A miss and a value of another type both report
// ok == false.
func Lookup[T any](get func(key any) (any, bool), key any) (res T, ok bool) {
	var raw any
	if raw, ok = get(key); ok {
		res, ok = As[T](raw)
	}
	return
}
