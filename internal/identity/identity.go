// Package identity resolves the runtime type identities that key the cast
// table. Identities are reflect.Type values: structural, process-unique, and
// hashable, so they survive renames and stay distinct per instantiation.
package identity

import "reflect"

// Of returns the reflect.Type of the type parameter T. Unlike reflect.TypeOf
// on a value, it also works for interface types, which is what cast targets
// are.
func Of[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Concrete returns the identity under which casts for v's dynamic type are
// registered: the dynamic type with at most one level of pointer indirection
// stripped. A *Widget and a Widget share one identity, so a cast registered
// for Widget is found from either handle.
func Concrete(v any) reflect.Type {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// Name returns the display name for a type as used in manifests and reports,
// e.g. "shape.Circle" or "fmt.Stringer". Pointer types are named after their
// element so that a registration and its manifest entry always agree.
func Name(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}
