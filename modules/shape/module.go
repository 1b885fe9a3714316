// Package shape is a cast provider module compiled into the traitcast
// inspector. It registers structural casts for its geometric types and ships
// a manifest declaring them.
package shape

import (
	"fmt"

	"github.com/vk/traitcast"
)

// Describable exposes a human-readable description of a value.
type Describable interface {
	Describe() string
}

// Renderable draws a value as a rough text sketch.
type Renderable interface {
	Render() string
}

// Circle is a concrete shape.
type Circle struct {
	Radius float64
}

// Describe implements Describable.
func (c *Circle) Describe() string {
	return fmt.Sprintf("circle with radius %g", c.Radius)
}

// Render implements Renderable.
func (c *Circle) Render() string {
	return "( )"
}

// String implements fmt.Stringer.
func (c *Circle) String() string {
	return c.Describe()
}

// Square is a concrete shape that only describes itself.
type Square struct {
	Side float64
}

// Describe implements Describable.
func (s *Square) Describe() string {
	return fmt.Sprintf("square with side %g", s.Side)
}

func init() {
	traitcast.Register[Circle, Describable](traitcast.WithThreadSafe())
	traitcast.Register[Circle, Renderable](traitcast.WithThreadSafe())
	traitcast.Register[Circle, fmt.Stringer](traitcast.WithThreadSafe())
	traitcast.Register[Square, Describable](traitcast.WithThreadSafe())
}
