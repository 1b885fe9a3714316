package traitcast

import (
	"reflect"

	"github.com/vk/traitcast/internal/identity"
	"github.com/vk/traitcast/internal/registry"
)

// table is the process-wide cast table. Its first lookup consumes every
// pending registration exactly once; see internal/registry.
var table = registry.New()

// Ref casts v to interface T, keyed on v's dynamic (concrete) type, not on
// whatever interface type v was held as. It returns false when the pair was
// never registered; that is a normal outcome, not an error.
//
// v may be any interface value over the concrete type, including a plain
// `any` obtained earlier: erasure is reflexive.
func Ref[T any](v any) (T, bool) {
	var zero T
	if v == nil {
		return zero, false
	}
	e, ok := table.Lookup(identity.Concrete(v), identity.Of[T]())
	if !ok {
		return zero, false
	}
	return e.Caster.(*Caster[T]).Ref(v), true
}

// Mut casts p to interface T as a mutable view. p must be a pointer to the
// concrete value; mutations through the result are visible to the original.
// A non-pointer handle cannot yield a mutable view and misses.
func Mut[T any](p any) (T, bool) {
	var zero T
	if p == nil || reflect.TypeOf(p).Kind() != reflect.Pointer {
		return zero, false
	}
	e, ok := table.Lookup(identity.Concrete(p), identity.Of[T]())
	if !ok {
		return zero, false
	}
	return e.Caster.(*Caster[T]).Mut(p), true
}

// Owned consumes the handle v and returns it re-wrapped as interface T. On a
// miss the returned error is a *MissError carrying v back to the caller: the
// original handle is never silently dropped.
func Owned[T any](v any) (T, error) {
	var zero T
	if v == nil {
		return zero, &MissError{Value: v, Target: identity.Of[T]()}
	}
	e, ok := table.Lookup(identity.Concrete(v), identity.Of[T]())
	if !ok {
		return zero, &MissError{Value: v, Target: identity.Of[T]()}
	}
	return e.Caster.(*Caster[T]).Owned(v), nil
}

// Implements reports whether v can be cast to interface T. It is a pure
// membership test against the cast table, invokes no conversion function,
// and agrees exactly with Ref.
func Implements[T any](v any) bool {
	if v == nil {
		return false
	}
	return table.Contains(identity.Concrete(v), identity.Of[T]())
}

// Registration describes one materialized cast table row, for diagnostics
// and manifest validation.
type Registration struct {
	Concrete   reflect.Type
	Target     reflect.Type
	ThreadSafe bool
	Doc        string
}

// Registrations returns a snapshot of the cast table in deterministic order
// (by concrete name, then target name), building the table if necessary.
func Registrations() []Registration {
	rows := table.Entries()
	out := make([]Registration, 0, len(rows))
	for _, e := range rows {
		out = append(out, Registration{
			Concrete:   e.Key.Concrete,
			Target:     e.Key.Target,
			ThreadSafe: e.ThreadSafe,
			Doc:        e.Doc,
		})
	}
	return out
}
