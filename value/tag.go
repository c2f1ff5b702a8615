// Package value classifies loosely typed Go values into a closed set of tags
// and provides the helpers the dispatcher needs to treat them as the
// arguments of a dynamic call.
package value

// Tag is the closed-set kind reported by a Classifier.
type Tag string

const (
	Object   Tag = "object"
	Number   Tag = "number"
	Array    Tag = "array"
	Function Tag = "function"
	String   Tag = "string"
	Boolean  Tag = "boolean"
	Date     Tag = "date"
	RegExp   Tag = "regexp"
	Null     Tag = "null"
	Undef    Tag = "undefined"
	NaN      Tag = "nan"
	Error    Tag = "error"
	Unknown  Tag = "unknown"
	Any      Tag = "any" // wildcard, never reported by a Classifier
)

// Tags lists every tag a Classifier may report.
var Tags = []Tag{Object, Number, Array, Function, String, Boolean, Date, RegExp, Null, Undef, NaN, Error, Unknown}

// IsNullish reports whether t is null, undefined or NaN.
func (t Tag) IsNullish() bool {
	return t == Null || t == Undef || t == NaN
}

func (t Tag) String() string {
	return string(t)
}

// UndefinedType is the type of Undefined.
type UndefinedType struct{}

func (UndefinedType) String() string { return "undefined" }

// Undefined marks an explicitly absent value: an optional slot that was not
// supplied, or an argument the caller passed as "undefined".
var Undefined = UndefinedType{}

// IsUndefined reports whether v is the Undefined marker.
func IsUndefined(v any) bool {
	_, ok := v.(UndefinedType)
	return ok
}
