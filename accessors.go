package enum

// The package-level accessors are the static half of the API: each one boots
// T on first use and reads the cached metadata. They are thin wrappers over
// Meta's methods, spelled as generics so call sites stay free of reflection.

// Default returns T's declared default value, unresolved and unvalidated,
// or nil when T declares none.
func Default[T Declarer]() any {
	v, _ := MetaOf[T]().Default()
	return v
}

// Consts returns T's declared constant names in declaration order.
func Consts[T Declarer]() []string {
	return MetaOf[T]().Consts()
}

// HasConst reports whether T declares a constant with the exact given name.
func HasConst[T Declarer](name string) bool {
	return MetaOf[T]().HasConst(name)
}

// Values returns T's declared constant values in declaration order.
func Values[T Declarer]() []any {
	return MetaOf[T]().Values()
}

// Labels returns the display labels of T's constants, in the same order as
// Values.
func Labels[T Declarer]() []string {
	return MetaOf[T]().Labels()
}

// Has reports whether value is a declared constant value of T, under strict
// type-preserving equality.
func Has[T Declarer](value any) bool {
	return MetaOf[T]().Has(value)
}

// HasNot is the negation of Has.
func HasNot[T Declarer](value any) bool {
	return !Has[T](value)
}

// Choices returns value/label pairs for T's constants in declaration order,
// shaped for feeding selection widgets.
func Choices[T Declarer]() []Choice {
	return MetaOf[T]().Choices()
}

// Members returns T's full name/value declaration in declaration order.
func Members[T Declarer]() []Member {
	return MetaOf[T]().Members()
}
