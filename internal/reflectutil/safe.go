package reflectutil

import "reflect"

// IsNillable returns true if the given kind can hold a nil value.
func IsNillable(kind reflect.Kind) bool {
	switch kind {
	case reflect.Ptr,
		reflect.Interface,
		reflect.Slice,
		reflect.Map,
		reflect.Chan,
		reflect.Func:
		return true
	default:
		return false
	}
}

// UnwrapToConcreteValue unwraps pointers and interfaces to get to the concrete value.
// Returns the concrete value, or an invalid reflect.Value if a nil is met
// on the way.
//
// Example:
//
//	var x **int
//	v := reflect.ValueOf(x)
//	concrete := UnwrapToConcreteValue(v) // returns the int value (if not nil)
func UnwrapToConcreteValue(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// IsNilValue safely checks if a reflect.Value is nil.
// Returns true if:
// - The value is invalid
// - The value's kind can hold nil (pointer, interface, slice, map, chan, func) AND it is nil
// Returns false for non-nillable kinds (int, string, struct, etc.)
func IsNilValue(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	return IsNillable(v.Kind()) && v.IsNil()
}
