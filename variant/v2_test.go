package variant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valuekit/valuekit/internal/lifetest"
	"github.com/valuekit/valuekit/variant"
)

func TestNewV2_ConstructionAndAccess(t *testing.T) {
	t.Run("first alternative", func(t *testing.T) {
		v := variant.NewV2From0[int, string](42)

		assert.True(t, v.Is0())
		assert.False(t, v.Is1())
		assert.Equal(t, 0, v.Tag())
		assert.Equal(t, 42, *v.Get0())
	})

	t.Run("second alternative", func(t *testing.T) {
		v := variant.NewV2From1[int, string]("hello")

		assert.False(t, v.Is0())
		assert.True(t, v.Is1())
		assert.Equal(t, 1, v.Tag())
		assert.Equal(t, "hello", *v.Get1())
	})
}

func TestV2_GetAliasesLiveStorage(t *testing.T) {
	v := variant.NewV2From0[int, string](1)

	p := v.Get0()
	*p = 7
	assert.Equal(t, 7, *v.Get0(), "mutation through the reference must be visible")

	*v.Get0() = 9
	assert.Equal(t, 9, *p, "the reference stays valid until the discriminant changes")
}

func TestV2_TryGet(t *testing.T) {
	v := variant.NewV2From1[int, string]("x")

	_, ok := v.TryGet0()
	assert.False(t, ok)

	p, ok := v.TryGet1()
	require.True(t, ok)
	assert.Equal(t, "x", *p)
}

func TestV2_Clone_DispatchesOnlyActiveAlternative(t *testing.T) {
	var stats lifetest.Stats
	poisoned := false
	_ = lifetest.NewTripwire(&poisoned) // the inactive arm's hooks must never run

	v := variant.NewV2From0[lifetest.Probe, lifetest.Tripwire](lifetest.NewProbe(&stats))

	dup := v.Clone()

	assert.Equal(t, 1, stats.Clones, "exactly one copy-construction")
	assert.Zero(t, stats.Moves)
	assert.False(t, poisoned, "the inactive alternative's hooks must not run")
	assert.True(t, v.Is0(), "clone leaves the source intact")
	assert.True(t, dup.Is0())
	assert.NotNil(t, dup.Get0().Stats)
}

func TestV2_Move_DispatchesMoverOnceAndClaimsSource(t *testing.T) {
	var stats lifetest.Stats
	poisoned := false

	v := variant.NewV2From0[lifetest.Probe, lifetest.Tripwire](lifetest.NewProbe(&stats))
	_ = variant.NewV2From1[lifetest.Probe, lifetest.Tripwire](lifetest.NewTripwire(&poisoned))

	dst := v.Move()

	assert.Equal(t, 1, stats.Moves, "exactly one move-construction")
	assert.Zero(t, stats.Clones, "move must never fall back to copy")
	assert.False(t, poisoned)

	assert.True(t, v.Claimed())
	assert.True(t, v.Is0(), "the tag is not reset by a move")
	assert.Panics(t, func() { v.Get0() }, "claimed storage must not be readable")

	require.True(t, dst.Is0())
	assert.NotNil(t, dst.Get0().Stats)
}

func TestV2_Set_DestroysOldConstructsNew(t *testing.T) {
	firstReleased := false
	secondReleased := false
	poisoned := false

	v := variant.NewV2From0[lifetest.Release, lifetest.Tripwire](lifetest.NewRelease(&firstReleased))
	v.Set0(lifetest.NewRelease(&secondReleased))

	assert.True(t, firstReleased, "the replaced value's destructor runs exactly at set")
	assert.False(t, secondReleased)
	assert.True(t, v.Is0())

	v.Dispose()
	assert.True(t, secondReleased, "the new value's destructor runs at container destruction")
	assert.False(t, poisoned)
}

func TestV2_Set_SwitchesAlternative(t *testing.T) {
	released := false

	v := variant.NewV2From0[lifetest.Release, string](lifetest.NewRelease(&released))
	v.Set1("done")

	assert.True(t, released, "the old alternative is destroyed before the switch")
	assert.False(t, v.Is0())
	assert.True(t, v.Is1())
	assert.Equal(t, "done", *v.Get1())
}

func TestV2_Take_SkipsDestructorAndClaims(t *testing.T) {
	released := false

	v := variant.NewV2From0[lifetest.Release, string](lifetest.NewRelease(&released))
	out := v.Take0()

	assert.False(t, released, "take hands the value to the caller without destroying it")
	assert.True(t, v.Claimed())

	out.Dispose()
	assert.True(t, released, "the taken value still owns the resource")

	// Destruction of a claimed container must not double-release.
	released = false
	v.Dispose()
	assert.False(t, released)
}

func TestV2_ClaimedStateMatrix(t *testing.T) {
	v := variant.NewV2From0[int, string](1)
	_ = v.Take0()

	assert.Panics(t, func() { v.Get0() })
	assert.Panics(t, func() { v.Take0() })
	assert.Panics(t, func() { v.Replace0With1("x") })
	assert.Panics(t, func() { v.Clone() })
	assert.Panics(t, func() { v.Move() })
	assert.NotPanics(t, func() { v.Dispose() })

	_, ok := v.TryGet0()
	assert.False(t, ok)

	// Set is the one operation that revives a claimed container.
	v.Set1("alive")
	assert.False(t, v.Claimed())
	assert.Equal(t, "alive", *v.Get1())
}

func TestV2_Replace(t *testing.T) {
	v := variant.NewV2From0[int, string](998)

	old := v.Replace0With1("hello")

	assert.Equal(t, 998, old)
	assert.True(t, v.Is1())
	assert.Equal(t, "hello", *v.Get1())
}

func TestV2_Replace_SkipsOldDestructor(t *testing.T) {
	released := false

	v := variant.NewV2From0[lifetest.Release, string](lifetest.NewRelease(&released))
	old := v.Replace0With1("next")

	assert.False(t, released, "the replaced value is handed to the caller, not destroyed")
	assert.Equal(t, "next", *v.Get1())

	old.Dispose()
	assert.True(t, released)
}

func TestV2_ReplaceSameAlternative(t *testing.T) {
	v := variant.NewV2From1[int, string]("old")

	old := v.Replace1With1("new")

	assert.Equal(t, "old", old)
	assert.Equal(t, "new", *v.Get1())
}

func TestV2_Dispose_ExactlyOneDestructor(t *testing.T) {
	var stats lifetest.Stats
	poisoned := false

	v := variant.NewV2From0[lifetest.Probe, lifetest.Tripwire](lifetest.NewProbe(&stats))
	v.Dispose()

	assert.Equal(t, 1, stats.Disposes, "exactly one destructor runs")
	assert.False(t, poisoned)

	v.Dispose()
	assert.Equal(t, 1, stats.Disposes, "double dispose must not re-run the destructor")
}

func TestV2_PreconditionTraps(t *testing.T) {
	tests := []struct {
		name string
		op   func(v *variant.V2[int, string])
	}{
		{name: "Get0 while holding 1", op: func(v *variant.V2[int, string]) { v.Get0() }},
		{name: "Take0 while holding 1", op: func(v *variant.V2[int, string]) { v.Take0() }},
		{name: "Replace0With1 while holding 1", op: func(v *variant.V2[int, string]) { v.Replace0With1("x") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := variant.NewV2From1[int, string]("held")
			assert.Panics(t, func() { tt.op(&v) })
		})
	}
}

func TestV2_ZeroValueIsClaimed(t *testing.T) {
	var v variant.V2[int, string]

	assert.True(t, v.Claimed())
	assert.Panics(t, func() { v.Get0() })

	v.Set0(5)
	assert.Equal(t, 5, *v.Get0())
}

func TestV2_ZeroSizedAlternative(t *testing.T) {
	type unit struct{}

	v := variant.NewV2From0[unit, int](unit{})
	assert.True(t, v.Is0())
	assert.NotNil(t, v.Get0())

	v.Set1(3)
	assert.True(t, v.Is1())

	v.Set0(unit{})
	assert.True(t, v.Is0())
	v.Dispose()
}

// Containers implement the lifecycle contracts themselves, so a variant
// can be an alternative of another variant and dispatch still reaches
// the innermost value exactly once.
func TestV2_NestedContainers(t *testing.T) {
	var stats lifetest.Stats

	inner := variant.NewV2From0[lifetest.Probe, int](lifetest.NewProbe(&stats))
	outer := variant.NewV2From0[variant.V2[lifetest.Probe, int], string](inner.Move())
	require.Equal(t, 1, stats.Moves)

	dup := outer.Clone()
	assert.Equal(t, 1, stats.Clones, "outer clone dispatches to the inner alternative's Cloner")

	outer.Dispose()
	assert.Equal(t, 1, stats.Disposes)

	dup.Dispose()
	assert.Equal(t, 2, stats.Disposes)
}
