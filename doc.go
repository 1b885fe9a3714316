// Package traitcast provides direct, runtime-checked casting between
// interface values backed by the same concrete type, without naming that
// concrete type at the call site.
//
// Go's type assertion only succeeds when the dynamic type structurally
// satisfies the target interface, and it offers no way to opt types into an
// explicit cast relationship or to cast through an adapter. traitcast keeps a
// process-wide cast table instead: packages register (concrete type, target
// interface) pairs, usually from init(), and any interface value over a
// registered type can then be cast to the target, from anywhere, via a table
// lookup and one function call.
//
// Registering and casting:
//
//	type Widget struct{ Label string }
//
//	func (w *Widget) Describe() string { return w.Label }
//
//	func init() {
//		traitcast.Register[Widget, Describable]()
//	}
//
//	func report(v Renderable) {
//		if d, ok := traitcast.Ref[Describable](v); ok {
//			fmt.Println(d.Describe())
//		}
//	}
//
// A cast succeeds if and only if the pair was registered; a miss is a normal
// outcome, never a panic. The table is built once, lazily, on the first cast
// from any goroutine, and is immutable afterwards.
package traitcast
