package enum

import "reflect"

// Instance is the value-object core of every enum type. Concrete types embed
// it and gain all instance behavior; the embedded Instance is populated by
// the New/Create factories and is immutable afterward.
//
// The zero Instance is the "not constructed" state: Valid reports false, the
// accessors return zero values, and it compares unequal to everything,
// including another zero Instance.
type Instance struct {
	value any
	meta  *Meta
}

// Value returns the canonical constant value the instance holds. The value
// is the exact instance from the declaration, so strict comparisons against
// other canonical values behave consistently.
func (i Instance) Value() any {
	return i.value
}

// Name returns the declared constant name for the held value, or the empty
// string if the instance is the zero Instance or holds a fallback default
// that is not itself a constant.
func (i Instance) Name() string {
	if i.meta == nil {
		return ""
	}
	if idx, ok := i.meta.indexOf(i.value); ok {
		return i.meta.members[idx].Name
	}
	return ""
}

// Label returns the display label for the held value: the type's label table
// entry if one exists, otherwise the string form of the value.
func (i Instance) Label() string {
	if i.meta == nil {
		return ""
	}
	return i.meta.Label(i.value)
}

// String is the label, so an instance prints as its display text.
func (i Instance) String() string {
	return i.Label()
}

// Valid reports whether the instance was produced by a factory, as opposed
// to being a zero value.
func (i Instance) Valid() bool {
	return i.meta != nil
}

func (i Instance) enumType() reflect.Type {
	if i.meta == nil {
		return nil
	}
	return i.meta.typ
}

// Equals reports whether other holds the same constant value and belongs to
// a compatible enum type. Two types are compatible when they are the same
// type or one refines the other by embedding it. Labels and every other
// piece of metadata are ignored; a zero Instance equals nothing.
func (i Instance) Equals(other Enum) bool {
	if i.meta == nil || other == nil || !other.Valid() {
		return false
	}
	if !i.meta.compatibleWith(other.enumType()) {
		return false
	}
	return i.value == other.Value()
}

// NotEquals is the negation of Equals.
func (i Instance) NotEquals(other Enum) bool {
	return !i.Equals(other)
}

// Is reports whether the instance holds the constant addressed by name. The
// name is matched modulo constant-form normalization, so Is("remoteWorker"),
// Is("remote_worker") and Is("REMOTE_WORKER") all address REMOTE_WORKER.
//
// A name that resolves to no declared constant is a programming error; Is
// panics with a *UndefinedAccessorError rather than quietly returning false.
func (i Instance) Is(name string) bool {
	if i.meta == nil {
		panic("enum: Is called on a zero Instance")
	}
	form := constName(name)
	idx, ok := i.meta.byConst[form]
	if !ok {
		panic(&UndefinedAccessorError{Enum: i.meta.name, Accessor: name, Const: form})
	}
	return i.value == i.meta.members[idx].Value
}

// IsNot is the negation of Is. It panics for unresolvable names the same way
// Is does.
func (i Instance) IsNot(name string) bool {
	return !i.Is(name)
}

// compatibleWith reports whether values of m's type may be compared with
// values of other. Either type appearing in the other's refinement lineage
// makes the pair compatible; lineage is captured at boot, so instances that
// straddle a Reset still compare consistently.
func (m *Meta) compatibleWith(other reflect.Type) bool {
	if other == nil {
		return false
	}
	if m.typ == other {
		return true
	}
	for _, t := range m.lineage {
		if t == other {
			return true
		}
	}
	for _, t := range metaFor(other).lineage {
		if t == m.typ {
			return true
		}
	}
	return false
}
