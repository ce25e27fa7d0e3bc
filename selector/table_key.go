package selector

import (
	"reflect"
	"unsafe"
)

// refKey identifies a slice, map or chan by the memory it refers to. ptr
// is traced by the GC, so the address cannot be reused while the key sits
// in a memo table.
type refKey struct {
	typ reflect.Type
	ptr unsafe.Pointer
	len int
	cap int
}

type opaqueKey struct{ _ byte }

type noInputs struct{}

// tableKey maps an input result to a value usable as a map key that
// preserves identity semantics.
func tableKey(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Comparable() {
		return v
	}
	switch rv.Kind() {
	case reflect.Slice:
		return refKey{typ: rv.Type(), ptr: rv.UnsafePointer(), len: rv.Len(), cap: rv.Cap()}
	case reflect.Map, reflect.Chan:
		return refKey{typ: rv.Type(), ptr: rv.UnsafePointer()}
	}
	// funcs and structs holding reference kinds are copies with no identity
	return &opaqueKey{}
}
