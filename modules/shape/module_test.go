package shape_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/traitcast"
	"github.com/vk/traitcast/modules/shape"
)

func TestCircleCasts(t *testing.T) {
	circle := &shape.Circle{Radius: 2}

	desc, ok := traitcast.Ref[shape.Describable](circle)
	require.True(t, ok)
	assert.Equal(t, "circle with radius 2", desc.Describe())

	str, ok := traitcast.Ref[fmt.Stringer](circle)
	require.True(t, ok)
	assert.Equal(t, desc.Describe(), str.String())

	rend, ok := traitcast.Ref[shape.Renderable](circle)
	require.True(t, ok)
	assert.Equal(t, "( )", rend.Render())
}

func TestSquareOnlyDescribes(t *testing.T) {
	square := &shape.Square{Side: 3}

	desc, ok := traitcast.Ref[shape.Describable](square)
	require.True(t, ok)
	assert.Equal(t, "square with side 3", desc.Describe())

	assert.False(t, traitcast.Implements[shape.Renderable](square))
}
