package traitcast_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/traitcast"
	"github.com/vk/traitcast/internal/testutil"
)

// Fixture types. Widget is registered for Describable and Renderable but
// never for Serializable; Gadget only gains Serializable through an adapter.

type Describable interface {
	Describe() string
}

type Renderable interface {
	Render() string
}

type Serializable interface {
	Serialize() ([]byte, error)
}

type Widget struct {
	Label   string
	renders int
}

func (w *Widget) Describe() string { return "widget " + w.Label }

func (w *Widget) Render() string {
	w.renders++
	return "[" + w.Label + "]"
}

type Gadget struct {
	ID int
}

type gadgetJSON struct {
	g *Gadget
}

func (j gadgetJSON) Serialize() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"id":%d}`, j.g.ID)), nil
}

func init() {
	// The same pair twice: the second registration must win.
	traitcast.Register[Widget, Describable](traitcast.WithThreadSafe(), traitcast.WithDoc("first"))
	traitcast.Register[Widget, Describable](traitcast.WithThreadSafe(), traitcast.WithDoc("second"))
	traitcast.Register[Widget, Renderable]()
	traitcast.RegisterAdapter[Gadget, Serializable](
		func(g *Gadget) Serializable { return gadgetJSON{g: g} },
	)
}

func TestRefAcrossUnrelatedInterfaces(t *testing.T) {
	w := &Widget{Label: "a"}
	var r Renderable = w

	d, ok := traitcast.Ref[Describable](r)
	require.True(t, ok, "registered cast should succeed")
	assert.Equal(t, "widget a", d.Describe())
	assert.True(t, traitcast.Implements[Describable](r))
}

func TestRefUnregisteredPair(t *testing.T) {
	w := &Widget{Label: "b"}
	var r Renderable = w

	s, ok := traitcast.Ref[Serializable](r)
	assert.False(t, ok)
	assert.Nil(t, s)
	assert.False(t, traitcast.Implements[Serializable](r))
}

func TestRefFromValueHandle(t *testing.T) {
	// A plain value still casts; the read view is over a boxed copy.
	d, ok := traitcast.Ref[Describable](Widget{Label: "v"})
	require.True(t, ok)
	assert.Equal(t, "widget v", d.Describe())
}

func TestMut(t *testing.T) {
	t.Run("mutations are visible through the view", func(t *testing.T) {
		w := &Widget{Label: "m"}
		view, ok := traitcast.Mut[Renderable](w)
		require.True(t, ok)

		assert.Equal(t, "[m]", view.Render())
		assert.Equal(t, 1, w.renders)
	})

	t.Run("non-pointer handle misses", func(t *testing.T) {
		_, ok := traitcast.Mut[Renderable](Widget{Label: "m"})
		assert.False(t, ok)
	})
}

func TestOwned(t *testing.T) {
	t.Run("hit re-wraps the handle", func(t *testing.T) {
		w := &Widget{Label: "o"}
		d, err := traitcast.Owned[Describable](w)
		require.NoError(t, err)
		assert.Equal(t, "widget o", d.Describe())
	})

	t.Run("miss hands the original handle back", func(t *testing.T) {
		w := &Widget{Label: "keep"}
		_, err := traitcast.Owned[Serializable](w)
		require.Error(t, err)
		require.ErrorIs(t, err, traitcast.ErrNotRegistered)

		var miss *traitcast.MissError
		require.ErrorAs(t, err, &miss)
		require.Same(t, w, miss.Value, "the original handle must come back unchanged")

		// Still usable afterwards.
		assert.Equal(t, "widget keep", miss.Value.(*Widget).Describe())
		assert.Contains(t, miss.Error(), "Widget")
		assert.Contains(t, miss.Error(), "Serializable")
	})
}

func TestAdapterCast(t *testing.T) {
	g := &Gadget{ID: 7}
	var v any = g

	s, ok := traitcast.Ref[Serializable](v)
	require.True(t, ok, "adapter-registered cast should succeed")
	raw, err := s.Serialize()
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7}`, string(raw))
}

func TestErasureReflexivity(t *testing.T) {
	w := &Widget{Label: "e"}
	var typed Renderable = w
	var erased any = w

	dTyped, okTyped := traitcast.Ref[Describable](typed)
	dErased, okErased := traitcast.Ref[Describable](erased)

	require.True(t, okTyped)
	require.True(t, okErased)
	assert.Equal(t, dTyped.Describe(), dErased.Describe())
	assert.Equal(t, traitcast.Implements[Describable](typed), traitcast.Implements[Describable](erased))
}

func TestIdempotence(t *testing.T) {
	w := &Widget{Label: "i"}

	testutil.Concurrently(t, 8, func(int) error {
		for n := 0; n < 100; n++ {
			if !traitcast.Implements[Describable](w) {
				return errors.New("Implements flipped to false")
			}
			if traitcast.Implements[Serializable](w) {
				return errors.New("Implements flipped to true")
			}
			if _, ok := traitcast.Ref[Describable](w); !ok {
				return errors.New("Ref flipped to miss")
			}
		}
		return nil
	})
}

func TestImplementsAgreesWithRef(t *testing.T) {
	w := &Widget{Label: "agree"}
	g := &Gadget{ID: 1}

	for _, v := range []any{w, g} {
		_, refOK := traitcast.Ref[Describable](v)
		assert.Equal(t, refOK, traitcast.Implements[Describable](v))
		_, refOK = traitcast.Ref[Serializable](v)
		assert.Equal(t, refOK, traitcast.Implements[Serializable](v))
	}
}

func TestRegistrationsSnapshot(t *testing.T) {
	// Four registration calls, but the duplicate pair collapses into one row.
	regs := traitcast.Registrations()
	require.Len(t, regs, 3)

	// Deterministic order: by concrete name, then target name.
	prev := ""
	var widgetDescribable *traitcast.Registration
	for i, reg := range regs {
		key := reg.Concrete.String() + "/" + reg.Target.String()
		assert.Greater(t, key, prev, "snapshot must be sorted")
		prev = key
		if reg.Concrete.Name() == "Widget" && reg.Target.Name() == "Describable" {
			widgetDescribable = &regs[i]
		}
	}

	require.NotNil(t, widgetDescribable)
	assert.Equal(t, "second", widgetDescribable.Doc, "later duplicate registration must win")
	assert.True(t, widgetDescribable.ThreadSafe)
}

func TestNilHandle(t *testing.T) {
	_, ok := traitcast.Ref[Describable](nil)
	assert.False(t, ok)
	assert.False(t, traitcast.Implements[Describable](nil))

	_, err := traitcast.Owned[Describable](nil)
	assert.ErrorIs(t, err, traitcast.ErrNotRegistered)
}

func TestRegisterAfterBuildPanics(t *testing.T) {
	// Force the one-shot build, then try to register.
	_ = traitcast.Implements[Describable](&Widget{})

	require.Panics(t, func() {
		traitcast.Register[Widget, Renderable]()
	})
	require.Panics(t, func() {
		traitcast.RegisterAdapter[Widget, Serializable](
			func(*Widget) Serializable { return nil },
		)
	})
	// The late registration must not have landed.
	assert.False(t, traitcast.Implements[Serializable](&Widget{}))
}

func TestRegisterRejectsBadPairs(t *testing.T) {
	t.Run("non-interface target", func(t *testing.T) {
		require.Panics(t, func() { traitcast.Register[Widget, int]() })
	})
	t.Run("interface as concrete type", func(t *testing.T) {
		require.Panics(t, func() { traitcast.Register[Describable, Renderable]() })
	})
	t.Run("pointer as concrete type", func(t *testing.T) {
		require.Panics(t, func() { traitcast.Register[*Widget, Describable]() })
	})
	t.Run("concrete type that does not implement the target", func(t *testing.T) {
		require.Panics(t, func() { traitcast.Register[Gadget, Describable]() })
	})
	t.Run("nil adapter", func(t *testing.T) {
		require.Panics(t, func() { traitcast.RegisterAdapter[Gadget, Describable](nil) })
	})
}
