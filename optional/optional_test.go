package optional_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valuekit/valuekit/internal/lifetest"
	"github.com/valuekit/valuekit/optional"
)

func TestSomeAndNone(t *testing.T) {
	s := optional.Some(42)
	require.True(t, s.HasValue())
	assert.Equal(t, 42, *s.Get())

	n := optional.None[int]()
	assert.False(t, n.HasValue())

	v, ok := s.Value()
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = n.Value()
	assert.False(t, ok)
}

func TestValueOr(t *testing.T) {
	s := optional.Some("set")
	n := optional.None[string]()

	assert.Equal(t, "set", s.ValueOr("default"))
	assert.Equal(t, "default", n.ValueOr("default"))
}

func TestGet_MutatesInPlace(t *testing.T) {
	o := optional.Some(1)

	*o.Get() = 9
	assert.Equal(t, 9, *o.Get())
}

func TestGet_TrapsWhenEmpty(t *testing.T) {
	n := optional.None[int]()
	assert.Panics(t, func() { n.Get() })
}

func TestSet_DestroysPreviousValue(t *testing.T) {
	released := false

	o := optional.Some(lifetest.NewRelease(&released))
	o.Set(lifetest.Release{})

	assert.True(t, released)
	assert.True(t, o.HasValue())
}

func TestClear_DestroysValue(t *testing.T) {
	released := false

	o := optional.Some(lifetest.NewRelease(&released))
	o.Clear()

	assert.True(t, released)
	assert.False(t, o.HasValue())

	// Clearing an already empty Optional is fine.
	o.Clear()
	assert.False(t, o.HasValue())
}

func TestTake_MovesValueOutIntact(t *testing.T) {
	released := false

	o := optional.Some(lifetest.NewRelease(&released))
	out := o.Take()

	assert.False(t, released, "take must not destroy the value")
	assert.False(t, o.HasValue())

	out.Dispose()
	assert.True(t, released)

	assert.Panics(t, func() { o.Take() })
}

func TestReplace_ReturnsOldWithoutDestroying(t *testing.T) {
	released := false

	o := optional.Some(lifetest.NewRelease(&released))
	old := o.Replace(lifetest.Release{})

	assert.False(t, released)
	assert.True(t, o.HasValue())

	old.Dispose()
	assert.True(t, released)
}

func TestClone(t *testing.T) {
	t.Run("dispatches the value's cloner", func(t *testing.T) {
		var stats lifetest.Stats

		o := optional.Some(lifetest.NewProbe(&stats))
		dup := o.Clone()

		assert.Equal(t, 1, stats.Clones)
		assert.True(t, dup.HasValue())
		assert.True(t, o.HasValue())
	})

	t.Run("empty clones to empty", func(t *testing.T) {
		n := optional.None[int]()
		assert.False(t, n.Clone().HasValue())
	})

	t.Run("zero value clones to empty", func(t *testing.T) {
		var z optional.Optional[int]
		assert.False(t, z.Clone().HasValue())
	})
}

func TestMove(t *testing.T) {
	var stats lifetest.Stats

	o := optional.Some(lifetest.NewProbe(&stats))
	dst := o.Move()

	assert.Equal(t, 1, stats.Moves)
	assert.False(t, o.HasValue(), "the source is left empty, not claimed")
	assert.True(t, dst.HasValue())

	// The emptied source is still fully usable.
	o.Set(lifetest.Probe{})
	assert.True(t, o.HasValue())
}

func TestDispose(t *testing.T) {
	var stats lifetest.Stats

	o := optional.Some(lifetest.NewProbe(&stats))
	o.Dispose()

	assert.Equal(t, 1, stats.Disposes)
	assert.False(t, o.HasValue())

	o.Dispose()
	assert.Equal(t, 1, stats.Disposes, "double dispose must not re-run the destructor")
}

func TestString(t *testing.T) {
	assert.Equal(t, "Some(7)", optional.Some(7).String())
	assert.Equal(t, "None", optional.None[int]().String())
}
