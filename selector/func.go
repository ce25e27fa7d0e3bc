package selector

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotAFunc is returned when a value cannot be adapted to a Selector or
// Combiner.
var ErrNotAFunc = errors.New("selector: not a func")

// IsFunc reports whether v is a non-nil func value.
func IsFunc(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// Func adapts a Go func of one result to a Selector. Call arguments are
// passed positionally; missing ones become zero values and extra ones are
// dropped.
//
//	byID, _ := selector.Func(func(s *State, id string) *User { return s.Users[id] })
func Func(fn any) (Selector, error) {
	call, err := adapt(fn)
	if err != nil {
		return nil, err
	}
	return Selector(call), nil
}

// CombinerFunc adapts a Go func of one result to a Combiner.
//
//	sum, _ := selector.CombinerFunc(func(a, b int) int { return a + b })
func CombinerFunc(fn any) (Combiner, error) {
	call, err := adapt(fn)
	if err != nil {
		return nil, err
	}
	return Combiner(call), nil
}

func adapt(fn any) (func(...any) any, error) {
	switch f := fn.(type) {
	case Selector:
		if f != nil {
			return f, nil
		}
	case Combiner:
		if f != nil {
			return f, nil
		}
	case func(...any) any:
		if f != nil {
			return f, nil
		}
	}

	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, fmt.Errorf("%w: %T", ErrNotAFunc, fn)
	}
	ft := rv.Type()
	if ft.NumOut() != 1 {
		return nil, fmt.Errorf("%w: %T must return exactly one value", ErrNotAFunc, fn)
	}
	if ft.IsVariadic() {
		return nil, fmt.Errorf("%w: variadic %T is only supported as func(...any) any", ErrNotAFunc, fn)
	}

	return func(args ...any) any {
		in := make([]reflect.Value, ft.NumIn())
		for i := range in {
			pt := ft.In(i)
			if i >= len(args) || args[i] == nil {
				in[i] = reflect.Zero(pt)
				continue
			}
			in[i] = argValue(args[i], pt)
		}
		return rv.Call(in)[0].Interface()
	}, nil
}

func argValue(arg any, pt reflect.Type) reflect.Value {
	v := reflect.ValueOf(arg)
	switch {
	case v.Type().AssignableTo(pt):
		return v
	case v.Type().ConvertibleTo(pt):
		return v.Convert(pt)
	default:
		panic(fmt.Sprintf("selector: argument of type %s is not assignable to %s", v.Type(), pt))
	}
}
