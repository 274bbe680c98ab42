// Package callable models zero-argument host callbacks and the reference
// counted handles through which they are handed over to spawned threads.
package callable

import (
	"fmt"
	"reflect"
	"runtime"
)

// Callable is a value that can be invoked with zero arguments. A non-nil
// error signals a failed invocation.
type Callable interface {
	Invoke() error
}

// Func adapts a plain function to Callable.
type Func func()

// Invoke calls f.
func (f Func) Invoke() error {
	f()
	return nil
}

// ErrFunc adapts a function returning an error to Callable.
type ErrFunc func() error

// Invoke calls f and returns its error.
func (f ErrFunc) Invoke() error {
	return f()
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// From checks that v can be invoked with zero arguments and returns it as a
// Callable. Besides Callable implementations it accepts any non-nil function
// value taking no arguments (or only a variadic one); results are discarded
// except a trailing error.
func From(v any) (Callable, error) {
	switch actual := v.(type) {
	case nil:
		return nil, &TypeError{Type: "nil"}
	case *Handle:
		if actual == nil {
			return nil, &TypeError{Type: fmt.Sprintf("%T", v)}
		}
		return actual.callable, nil
	case Func:
		if actual == nil {
			return nil, &TypeError{Type: fmt.Sprintf("%T", v)}
		}
		return actual, nil
	case ErrFunc:
		if actual == nil {
			return nil, &TypeError{Type: fmt.Sprintf("%T", v)}
		}
		return actual, nil
	case func():
		if actual == nil {
			return nil, &TypeError{Type: fmt.Sprintf("%T", v)}
		}
		return Func(actual), nil
	case func() error:
		if actual == nil {
			return nil, &TypeError{Type: fmt.Sprintf("%T", v)}
		}
		return ErrFunc(actual), nil
	case Callable:
		rValue := reflect.ValueOf(actual)
		switch rValue.Kind() {
		case reflect.Ptr, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface:
			if rValue.IsNil() {
				return nil, &TypeError{Type: fmt.Sprintf("%T", v)}
			}
		}
		return actual, nil
	}
	return fromReflect(v)
}

func fromReflect(v any) (Callable, error) {
	rValue := reflect.ValueOf(v)
	rType := rValue.Type()
	if rType.Kind() != reflect.Func || rValue.IsNil() {
		return nil, &TypeError{Type: rType.String()}
	}
	switch {
	case rType.NumIn() == 0:
	case rType.NumIn() == 1 && rType.IsVariadic():
	default:
		return nil, &TypeError{Type: rType.String()}
	}
	returnsError := rType.NumOut() > 0 && rType.Out(rType.NumOut()-1) == errorType
	return ErrFunc(func() error {
		out := rValue.Call(nil)
		if !returnsError {
			return nil
		}
		if err, _ := out[len(out)-1].Interface().(error); err != nil {
			return err
		}
		return nil
	}), nil
}

// NameOf returns a human readable name for v: the symbol name for function
// values, the dynamic type otherwise.
func NameOf(v any) string {
	if v == nil {
		return "nil"
	}
	if h, ok := v.(*Handle); ok && h != nil {
		return h.Name()
	}
	rValue := reflect.ValueOf(v)
	if rValue.Kind() == reflect.Func && !rValue.IsNil() {
		if fn := runtime.FuncForPC(rValue.Pointer()); fn != nil {
			return fn.Name()
		}
	}
	return fmt.Sprintf("%T", v)
}
