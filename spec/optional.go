package spec

import "golang.org/x/exp/constraints"

// Optional represents a value that may or may not be present, used for
// field defaults: a FieldSpec may declare one, in which case omitting the
// field on construction is accepted and the default is substituted.
type Optional[T any] struct {
	value T
	isSet bool
}

func Some[T any](v T) Optional[T] { return Optional[T]{value: v, isSet: true} }
func None[T any]() Optional[T]    { return Optional[T]{} }

func (o Optional[T]) IsSet() bool { return o.isSet }

func (o *Optional[T]) Set(v T) {
	o.value = v
	o.isSet = true
}

func (o Optional[T]) Get() (T, bool) { return o.value, o.isSet }

func (o Optional[T]) GetOr(def T) T {
	if o.isSet {
		return o.value
	}
	return def
}

func (o Optional[T]) Unwrap() T {
	if !o.isSet {
		panic("spec: Optional value is not set")
	}
	return o.value
}

// CastInt converts an integer Optional to another integer type.
func CastInt[A, B constraints.Integer](a Optional[A]) (out Optional[B]) {
	if a.IsSet() {
		out.Set(B(a.Unwrap()))
	}
	return out
}
