package enum

import "fmt"

// The three error types below are programming-error signals: none of them is
// recovered inside the package and all propagate to the caller unmodified.
// Each carries its context as fields so callers can pull it back out with
// errors.As.

// InvalidValueError reports a construction attempt with a value that is not
// a constant of the target enum type (after default substitution, and with
// no fallback available).
type InvalidValueError struct {
	Enum  string // bare name of the enum type
	Value any    // the offending value, as passed or defaulted
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("enum: value %v (%T) is not a constant of %s", e.Value, e.Value, e.Enum)
}

// UnknownConstError reports a by-name construction attempt naming a constant
// the enum type does not declare.
type UnknownConstError struct {
	Enum string
	Name string // the constant name as requested, not normalized
}

func (e *UnknownConstError) Error() string {
	return fmt.Sprintf("enum: %s has no constant named %s", e.Enum, e.Name)
}

// UndefinedAccessorError reports a name predicate that resolves to no
// declared constant. Instance.Is delivers it via panic, since a predicate
// against a nonexistent constant can only be a typo or a missed rename.
type UndefinedAccessorError struct {
	Enum     string
	Accessor string // the name as passed to Is/IsNot
	Const    string // its normalized constant form
}

func (e *UndefinedAccessorError) Error() string {
	return fmt.Sprintf("enum: %s has no constant matching predicate %q (looked for %s)", e.Enum, e.Accessor, e.Const)
}
