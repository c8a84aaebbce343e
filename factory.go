package enum

import "reflect"

// New constructs a validated instance of T holding value.
//
// A nil value stands for "no value supplied": unless nil is itself a declared
// constant, the type's default is substituted. The resulting value must be
// one of T's declared constant values under strict, type-preserving equality;
// anything else yields a *InvalidValueError, or the declared default when T
// opted into fallback construction via Fallbacker. On success the instance
// holds the canonical value from the declaration, regardless of which equal
// representation was passed in.
func New[T Declarer](value any) (T, error) {
	var out T
	m := metaFor(typeOf[T]())
	canonical, err := m.resolve(value)
	if err != nil {
		return out, err
	}
	bind(&out, m, canonical)
	return out, nil
}

// Create is an alias for New, for call sites that read better as creation.
func Create[T Declarer](value any) (T, error) {
	return New[T](value)
}

// Must is New that panics on error. Intended for fixtures and for constants
// known valid at compile time.
func Must[T Declarer](value any) T {
	out, err := New[T](value)
	if err != nil {
		panic(err)
	}
	return out
}

// FromName constructs an instance of T holding the value of the constant
// with the exact given name. A name that is not a declared constant yields a
// *UnknownConstError.
func FromName[T Declarer](name string) (T, error) {
	m := metaFor(typeOf[T]())
	i, ok := m.byName[name]
	if !ok {
		var zero T
		return zero, &UnknownConstError{Enum: m.name, Name: name}
	}
	return New[T](m.members[i].Value)
}

// bind writes the populated Instance into out's embedded Instance field,
// following the field path recorded at boot through any refinement chain.
func bind[T Declarer](out *T, m *Meta, value any) {
	field := reflect.ValueOf(out).Elem().FieldByIndex(m.path)
	field.Set(reflect.ValueOf(Instance{value: value, meta: m}))
}
