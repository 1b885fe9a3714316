package registry

import (
	"errors"
	"log/slog"
	"reflect"
	"sort"
	"sync"

	"github.com/vk/traitcast/internal/identity"
)

// Key identifies one legal cast: a concrete type paired with a target
// interface type.
type Key struct {
	Concrete reflect.Type
	Target   reflect.Type
}

// String returns a human-readable "concrete -> target" representation.
func (k Key) String() string {
	return identity.Name(k.Concrete) + " -> " + identity.Name(k.Target)
}

// Entry is one materialized cast table row. Caster holds a type-erased
// *traitcast.Caster[T]; the table never invokes it, only hands it back to the
// caller that keyed the lookup, so the identity check always precedes dispatch.
type Entry struct {
	Key        Key
	Caster     any
	ThreadSafe bool
	Doc        string
}

// Provider lazily produces one Entry. Providers are evaluated exactly once,
// during the one-shot table build.
type Provider func() Entry

var (
	// ErrSealed indicates a registration attempt after the table was built.
	ErrSealed = errors.New("registry: table already built")
	// ErrInvalid indicates a nil or otherwise unusable provider.
	ErrInvalid = errors.New("registry: invalid provider")
)

// Table collects cast providers and materializes them into an immutable
// lookup map on first use. The zero value is not usable; call New.
type Table struct {
	mu        sync.Mutex
	providers []Provider
	sealed    bool

	buildOnce sync.Once
	entries   map[Key]Entry
}

// New creates an empty, unsealed table.
func New() *Table {
	return &Table{}
}

// Provide appends a lazy cast entry. It must be called before the first
// lookup; afterwards the table is sealed and ErrSealed is returned.
func (t *Table) Provide(p Provider) error {
	if p == nil {
		return ErrInvalid
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.sealed {
		return ErrSealed
	}
	t.providers = append(t.providers, p)
	return nil
}

// Sealed reports whether the table has been built.
func (t *Table) Sealed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sealed
}

// build consumes every provider exactly once and materializes the lookup map.
// Guarded by buildOnce: concurrent first callers block until the single build
// completes, then all observe the same immutable map.
func (t *Table) build() {
	t.mu.Lock()
	t.sealed = true
	providers := t.providers
	t.providers = nil
	t.mu.Unlock()

	entries := make(map[Key]Entry, len(providers))
	for _, p := range providers {
		e := p()
		if prev, dup := entries[e.Key]; dup {
			// Same pair registered from two sites. Last write wins; the
			// order of init() execution is fixed by the import graph, so
			// the winner is stable for a given build.
			slog.Warn("Duplicate cast registration, keeping the later one.",
				"cast", e.Key.String(), "previous_doc", prev.Doc, "doc", e.Doc)
		}
		entries[e.Key] = e
	}
	t.entries = entries
	slog.Debug("Cast table built.", "entries", len(entries))
}

// Lookup returns the entry for the given (concrete, target) pair. The first
// call from any goroutine triggers the one-shot build. Absence is a normal
// "no such cast" outcome.
func (t *Table) Lookup(concrete, target reflect.Type) (Entry, bool) {
	t.buildOnce.Do(t.build)
	e, ok := t.entries[Key{Concrete: concrete, Target: target}]
	return e, ok
}

// Contains reports whether the pair is registered, without touching the
// caster. It agrees exactly with Lookup.
func (t *Table) Contains(concrete, target reflect.Type) bool {
	_, ok := t.Lookup(concrete, target)
	return ok
}

// Len returns the number of materialized entries, building the table if
// necessary.
func (t *Table) Len() int {
	t.buildOnce.Do(t.build)
	return len(t.entries)
}

// Entries returns a snapshot of all rows in deterministic order (by concrete
// name, then target name), building the table if necessary.
func (t *Table) Entries() []Entry {
	t.buildOnce.Do(t.build)
	items := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		items = append(items, e)
	}
	sort.Slice(items, func(i, j int) bool {
		ci, cj := identity.Name(items[i].Key.Concrete), identity.Name(items[j].Key.Concrete)
		if ci == cj {
			return identity.Name(items[i].Key.Target) < identity.Name(items[j].Key.Target)
		}
		return ci < cj
	})
	return items
}
