package note_test

import (
	"encoding"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/traitcast"
	"github.com/vk/traitcast/modules/note"
)

func TestNoteMarshalsThroughAdapter(t *testing.T) {
	n := note.Note{Title: "groceries", Body: "milk, eggs"}

	marshaler, ok := traitcast.Ref[encoding.TextMarshaler](n)
	require.True(t, ok, "Note should cast to encoding.TextMarshaler via its adapter")

	text, err := marshaler.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "groceries: milk, eggs", string(text))
}

func TestNoteDoesNotRender(t *testing.T) {
	type renderable interface{ Render() string }
	assert.False(t, traitcast.Implements[renderable](note.Note{}))
}
