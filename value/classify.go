package value

import (
	"math"
	"reflect"
	"regexp"
	"time"
)

// Classifier maps an arbitrary value to its Tag.
type Classifier interface {
	Classify(v any) Tag
}

// ClassifierFunc adapts an ordinary function to the Classifier interface.
type ClassifierFunc func(v any) Tag

func (f ClassifierFunc) Classify(v any) Tag {
	return f(v)
}

// Default is the reflection based classifier used when none is configured.
var Default Classifier = ClassifierFunc(Classify)

var (
	errorType  = reflect.TypeOf((*error)(nil)).Elem()
	timeType   = reflect.TypeOf(time.Time{})
	regexpType = reflect.TypeOf(regexp.Regexp{})
)

// Classify reports the tag of v.
//
// Typed nil pointers, maps, funcs and interfaces classify as Null; nil
// slices still classify as Array. Numeric kinds classify as Number except a
// floating point NaN, which is NaN. Values implementing error classify as
// Error before any structural inspection.
func Classify(v any) Tag {
	switch x := v.(type) {
	case nil:
		return Null
	case UndefinedType:
		return Undef
	case bool:
		return Boolean
	case string:
		return String
	case float64:
		if math.IsNaN(x) {
			return NaN
		}
		return Number
	case float32:
		if math.IsNaN(float64(x)) {
			return NaN
		}
		return Number
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return Number
	case time.Time, *time.Time:
		if p, ok := x.(*time.Time); ok && p == nil {
			return Null
		}
		return Date
	case *regexp.Regexp:
		if x == nil {
			return Null
		}
		return RegExp
	case error:
		return Error
	}

	return classifyReflect(reflect.ValueOf(v))
}

func classifyReflect(rv reflect.Value) Tag {
	switch rv.Kind() {
	case reflect.Bool:
		return Boolean
	case reflect.String:
		return String
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(rv.Float()) {
			return NaN
		}
		return Number
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number
	case reflect.Slice, reflect.Array:
		return Array
	case reflect.Func:
		if rv.IsNil() {
			return Null
		}
		return Function
	case reflect.Map:
		if rv.IsNil() {
			return Null
		}
		return Object
	case reflect.Struct:
		if rv.Type().ConvertibleTo(timeType) {
			return Date
		}
		return Object
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null
		}
		if rv.Type().Implements(errorType) {
			return Error
		}
		if rv.Elem().Type() == regexpType {
			return RegExp
		}
		return classifyReflect(rv.Elem())
	default:
		return Unknown
	}
}
