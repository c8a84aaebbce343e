package enum

import (
	"fmt"
	"reflect"
)

// typeOf is the type-parameter spelling of reflect.TypeOf for a zero value.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// stringForm renders a constant value for use as its own fallback label.
// nil renders empty rather than as "<nil>".
func stringForm(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}
