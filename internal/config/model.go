package config

// Model is the unified, format-agnostic representation of all loaded cast
// manifests, keyed by concrete type name.
type Model struct {
	Casts map[string]*CastDefinition
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{Casts: make(map[string]*CastDefinition)}
}

// CastDefinition is the format-agnostic representation of a `cast` block: the
// set of target interfaces one concrete type promises to be castable to.
type CastDefinition struct {
	// Concrete is the display name of the concrete type, e.g. "shape.Circle".
	Concrete string

	// Description is an optional human-readable note.
	Description string

	// Targets lists the display names of the declared target interfaces,
	// e.g. "fmt.Stringer".
	Targets []string

	// ThreadSafe declares that the registered casters must be marked safe
	// for concurrent use.
	ThreadSafe bool

	// Source is the manifest file the definition came from, for error
	// reporting.
	Source string
}

// DeclaresTarget reports whether the definition lists the given target
// interface name.
func (d *CastDefinition) DeclaresTarget(name string) bool {
	for _, t := range d.Targets {
		if t == name {
			return true
		}
	}
	return false
}
