package enum

import "reflect"

var declarerType = reflect.TypeOf((*Declarer)(nil)).Elem()
var initializerType = reflect.TypeOf((*Initializer)(nil)).Elem()
var instanceType = reflect.TypeOf(Instance{})

// DefaultConst is the reserved field name on a declaration struct. A field
// with this name supplies the type's default value instead of declaring a
// constant.
const DefaultConst = "DEFAULT"

// Declarer is the one required capability of an enum type. EnumValues must
// return the declaration struct for the type: each exported field declares
// one constant (field name = constant name, field value = constant value),
// an anonymous struct field splices in the constants of an embedded
// declaration, and a field named DEFAULT declares the default value.
//
// EnumValues is called once per type on a zero value, so it must not depend
// on instance state.
type Declarer interface {
	EnumValues() any
}

// Labeler optionally supplies the static display-label table for a type,
// keyed by constant value. Constants absent from the table fall back to the
// string form of their value.
type Labeler interface {
	EnumLabels() map[any]string
}

// Initializer is an optional one-time setup hook. EnumInit runs at most once
// per booted type, after the declaration has been read, and may mutate the
// label table through the Meta it receives. Typical use is populating labels
// from a translation catalog.
type Initializer interface {
	EnumInit(m *Meta)
}

// Fallbacker optionally opts a type into fallback construction: when
// EnumFallback returns true, constructing with an unknown value yields the
// declared default instead of an error.
type Fallbacker interface {
	EnumFallback() bool
}

// Enum is implemented by every type that embeds Instance. It is the common
// currency for heterogeneous enum handling; only instances produced by this
// package satisfy it usefully, since enumType is unexported.
type Enum interface {
	Value() any
	Name() string
	Label() string
	String() string
	Valid() bool
	enumType() reflect.Type
}

// Member is one declared constant of an enum type.
type Member struct {
	Name  string
	Value any
}

// Choice pairs a constant value with its resolved display label, in
// declaration order. The shape is intended for feeding select/radio style
// UI builders.
type Choice struct {
	Value any
	Label string
}
