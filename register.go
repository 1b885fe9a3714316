package traitcast

import (
	"fmt"
	"reflect"

	"github.com/vk/traitcast/internal/identity"
	"github.com/vk/traitcast/internal/registry"
)

// Option adjusts a single registration.
type Option func(*settings)

type settings struct {
	threadSafe bool
	doc        string
}

// WithThreadSafe marks the registered caster as safe to invoke from multiple
// goroutines at once. It is metadata only: manifests and reports surface it,
// the table algorithm ignores it.
func WithThreadSafe() Option {
	return func(s *settings) { s.threadSafe = true }
}

// WithDoc attaches a human-readable note to the registration.
func WithDoc(doc string) Option {
	return func(s *settings) { s.doc = doc }
}

// Register declares that values of concrete type S may be cast to interface
// T. S (or *S) must implement T; otherwise Register panics, since a
// registration site that lies about its types is a programming error. Call it
// from init().
//
// Registering the same (S, T) pair twice keeps the later registration and
// logs a warning. Registering after the cast table has been built panics.
func Register[S any, T any](opts ...Option) {
	concrete, target := checkPair[S, T]()
	if !reflect.PointerTo(concrete).Implements(target) {
		panic(fmt.Sprintf("traitcast: %s does not implement %s; use RegisterAdapter",
			identity.Name(concrete), identity.Name(target)))
	}
	provide(concrete, target, func() any { return structuralCaster[S, T]() }, opts)
}

// RegisterAdapter declares that values of concrete type S may be cast to
// interface T through the given adapter function. Use it when S does not
// implement T itself and the cast must go through a wrapper.
func RegisterAdapter[S any, T any](adapt func(*S) T, opts ...Option) {
	if adapt == nil {
		panic("traitcast: nil adapter")
	}
	concrete, target := checkPair[S, T]()
	provide(concrete, target, func() any { return adapterCaster[S, T](adapt) }, opts)
}

// checkPair resolves and validates the identities of a registration pair.
func checkPair[S any, T any]() (concrete, target reflect.Type) {
	concrete = identity.Of[S]()
	target = identity.Of[T]()
	if target.Kind() != reflect.Interface {
		panic(fmt.Sprintf("traitcast: cast target %s is not an interface", identity.Name(target)))
	}
	switch concrete.Kind() {
	case reflect.Interface:
		panic(fmt.Sprintf("traitcast: concrete type %s must not be an interface", identity.Name(concrete)))
	case reflect.Pointer:
		panic(fmt.Sprintf("traitcast: register the element type of %s, not the pointer", concrete))
	}
	return concrete, target
}

// provide appends a lazy table entry for the pair. The caster itself is only
// constructed when the table is built, once, on first use.
func provide(concrete, target reflect.Type, mk func() any, opts []Option) {
	var s settings
	for _, o := range opts {
		o(&s)
	}
	err := table.Provide(func() registry.Entry {
		return registry.Entry{
			Key:        registry.Key{Concrete: concrete, Target: target},
			Caster:     mk(),
			ThreadSafe: s.threadSafe,
			Doc:        s.doc,
		}
	})
	if err != nil {
		panic(fmt.Errorf("traitcast: register %s as %s: %w",
			identity.Name(concrete), identity.Name(target), err))
	}
}
