// Package note is a cast provider module demonstrating adapter-based casts:
// Note has no marshaling methods of its own, so its cast to
// encoding.TextMarshaler goes through a wrapper.
package note

import (
	"encoding"

	"github.com/vk/traitcast"
)

// Note is a plain value with a title and a body.
type Note struct {
	Title string
	Body  string
}

// textNote adapts a Note to encoding.TextMarshaler.
type textNote struct {
	n *Note
}

// MarshalText renders the note as "title: body".
func (t textNote) MarshalText() ([]byte, error) {
	return []byte(t.n.Title + ": " + t.n.Body), nil
}

func init() {
	traitcast.RegisterAdapter[Note, encoding.TextMarshaler](
		func(n *Note) encoding.TextMarshaler { return textNote{n: n} },
		traitcast.WithDoc("rendered as 'title: body'"),
	)
}
