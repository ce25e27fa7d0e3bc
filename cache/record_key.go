package cache

import (
	"reflect"
	"strconv"
)

// IsStringOrNumber reports whether v is a string or a real number,
// including named types built on them. Booleans, nil, complex numbers
// and composite values are rejected.
func IsStringOrNumber(v any) bool {
	_, ok := RecordKey(v)
	return ok
}

// RecordKey coerces a string or number to the string under which
// record-backed stores file it. Integral floats format like integers,
// so 2.0 and 2 share the key "2".
func RecordKey(v any) (string, bool) {
	switch k := v.(type) {
	case string:
		return k, true
	case int:
		return strconv.Itoa(k), true
	case int64:
		return strconv.FormatInt(k, 10), true
	case float64:
		return strconv.FormatFloat(k, 'g', -1, 64), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), true
	default:
		return "", false
	}
}
