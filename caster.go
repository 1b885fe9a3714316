package traitcast

// Caster bundles the three conversion functions for one
// (concrete type, target interface) pair. All three agree on the same pair;
// each expects a handle whose dynamic type is the registered concrete type
// (or a pointer to it). The cast table verifies that identity before any of
// them is invoked, so the functions themselves perform no checking.
type Caster[T any] struct {
	// Ref casts an erased read view, a value or pointer of the concrete
	// type, to T.
	Ref func(v any) T

	// Mut casts an erased mutable view, a pointer to the concrete type,
	// to T. Mutations through the result are visible to the original.
	Mut func(p any) T

	// Owned consumes an erased owned handle and re-wraps it as T.
	Owned func(v any) T
}

// structuralCaster builds the caster for a pair where S (or *S) implements T
// directly. Registration verified the implementation, so the assertions here
// cannot fail for a handle that matched the table key.
func structuralCaster[S any, T any]() *Caster[T] {
	return &Caster[T]{
		Ref:   viewAs[S, T],
		Mut:   func(p any) T { return p.(T) },
		Owned: viewAs[S, T],
	}
}

// viewAs returns v as T. When only *S implements T and v holds a plain S,
// the value is boxed first; the resulting view reads a copy, which is all a
// read view or an owned handle needs.
func viewAs[S any, T any](v any) T {
	if t, ok := v.(T); ok {
		return t
	}
	s := v.(S)
	return any(&s).(T)
}

// adapterCaster builds the caster for a pair converted through an adapter
// function, for targets the concrete type does not structurally implement.
func adapterCaster[S any, T any](adapt func(*S) T) *Caster[T] {
	ref := func(v any) T {
		if p, ok := v.(*S); ok {
			return adapt(p)
		}
		s := v.(S)
		return adapt(&s)
	}
	return &Caster[T]{
		Ref:   ref,
		Mut:   func(p any) T { return adapt(p.(*S)) },
		Owned: ref,
	}
}
