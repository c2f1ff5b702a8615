package value

// Option holds a value that may be absent. Parameters normalized from
// optional slots are read through it so callers do not have to tell nil and
// Undefined apart themselves.
type Option[T any] struct {
	Value   T
	Defined bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{Value: v, Defined: true}
}

func None[T any]() Option[T] {
	return Option[T]{Defined: false}
}

// OptionOf converts a normalized parameter into an Option. Nil, Undefined and
// NaN are absent; a value whose dynamic type is not T is absent as well.
func OptionOf[T any](v any) Option[T] {
	if Classify(v).IsNullish() {
		return None[T]()
	}
	if t, ok := v.(T); ok {
		return Some(t)
	}
	return None[T]()
}

func (o Option[T]) IsDefined() bool {
	return o.Defined
}

func (o Option[T]) IsEmpty() bool {
	return !o.Defined
}

func (o Option[T]) Get() T {
	if !o.Defined {
		panic("Option.Get on None")
	}
	return o.Value
}

func (o Option[T]) GetOrElse(defaultValue T) T {
	if o.Defined {
		return o.Value
	}
	return defaultValue
}

func (o Option[T]) ForEach(f func(T)) {
	if o.Defined {
		f(o.Value)
	}
}

// Map applies f to a defined value. Go methods cannot take type parameters,
// so this is a function.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.Defined {
		return Some(f(o.Value))
	}
	return None[U]()
}

func (o Option[T]) Filter(p func(T) bool) Option[T] {
	if o.Defined && p(o.Value) {
		return o
	}
	return None[T]()
}
