package value

import (
	"fmt"
	"reflect"
)

// Invocable reports whether v can receive an error through CallWithError.
func Invocable(v any) bool {
	switch f := v.(type) {
	case func(error):
		return f != nil
	case func(error) any:
		return f != nil
	case func(error) error:
		return f != nil
	case func(error) (any, error):
		return f != nil
	}

	fn := reflect.ValueOf(v)
	if fn.Kind() != reflect.Func || fn.IsNil() {
		return false
	}
	t := fn.Type()
	if t.NumIn() == 0 {
		return false
	}
	first := t.In(0)
	if t.IsVariadic() && t.NumIn() == 1 {
		first = first.Elem()
	}
	return errorType.AssignableTo(first)
}

// CallWithError calls fn with err as its first argument. Remaining fixed
// parameters receive their zero values. The first non-error result becomes the
// returned value; a trailing error result becomes the returned error.
func CallWithError(fn any, err error) (any, error) {
	if !Invocable(fn) {
		return nil, fmt.Errorf("value of kind %s can not receive an error", Classify(fn))
	}

	switch f := fn.(type) {
	case func(error):
		f(err)
		return nil, nil
	case func(error) any:
		return f(err), nil
	case func(error) error:
		return nil, f(err)
	case func(error) (any, error):
		return f(err)
	}

	// Reflection fallback for callbacks such as func(err error, res *Response)
	v := reflect.ValueOf(fn)
	t := v.Type()

	errArg := reflect.New(errorType).Elem()
	if err != nil {
		errArg.Set(reflect.ValueOf(err))
	}

	var out []reflect.Value
	if t.IsVariadic() && t.NumIn() == 1 {
		slice := reflect.MakeSlice(t.In(0), 1, 1)
		slice.Index(0).Set(errArg)
		out = v.CallSlice([]reflect.Value{slice})
	} else {
		in := make([]reflect.Value, 0, t.NumIn())
		in = append(in, errArg)
		last := t.NumIn()
		if t.IsVariadic() {
			last--
		}
		for i := 1; i < last; i++ {
			in = append(in, reflect.Zero(t.In(i)))
		}
		out = v.Call(in)
	}

	return splitResults(out)
}

func splitResults(out []reflect.Value) (any, error) {
	if len(out) == 0 {
		return nil, nil
	}

	var result any
	var callErr error
	last := out[len(out)-1]
	values := out
	if last.Type() == errorType {
		if !last.IsNil() {
			callErr = last.Interface().(error)
		}
		values = out[:len(out)-1]
	}
	if len(values) > 0 {
		result = values[0].Interface()
	}
	return result, callErr
}
