// Package lifetest provides instrumented value types for exercising
// lifecycle dispatch in tests. Each type records, through caller-owned
// state captured by pointer, which of its lifecycle hooks ran, so a test
// can prove both that the active alternative's hooks run exactly once
// and that no other alternative's hooks run at all.
package lifetest

// Tripwire trips a shared flag whenever any of its lifecycle hooks runs.
// Park one in the inactive arm of a union: if the flag is set while the
// union is known to hold the other alternative, dispatch touched the
// wrong arm.
type Tripwire struct {
	Touched *bool
}

// NewTripwire returns a Tripwire wired to the given flag.
func NewTripwire(flag *bool) Tripwire {
	return Tripwire{Touched: flag}
}

// Clone trips the flag.
func (t Tripwire) Clone() Tripwire {
	*t.Touched = true
	return t
}

// Move trips the flag and leaves the receiver inert.
func (t *Tripwire) Move() Tripwire {
	*t.Touched = true
	out := *t
	t.Touched = nil
	return out
}

// Dispose trips the flag. An inert (moved-from) Tripwire stays silent.
func (t *Tripwire) Dispose() {
	if t.Touched != nil {
		*t.Touched = true
	}
}

// Stats accumulates lifecycle hook invocations for a Probe.
type Stats struct {
	Clones   int
	Moves    int
	Disposes int
}

// Probe counts every lifecycle hook invocation in caller-owned Stats,
// for exactly-once assertions: a leak shows up as a missing dispose, a
// double free as an extra one.
type Probe struct {
	Stats *Stats
}

// NewProbe returns a Probe reporting into stats.
func NewProbe(stats *Stats) Probe {
	return Probe{Stats: stats}
}

// Clone counts a copy-construction.
func (p Probe) Clone() Probe {
	p.Stats.Clones++
	return p
}

// Move counts a move-construction and leaves the receiver inert.
func (p *Probe) Move() Probe {
	p.Stats.Moves++
	out := *p
	p.Stats = nil
	return out
}

// Dispose counts a destruction. Inert probes stay silent.
func (p *Probe) Dispose() {
	if p.Stats != nil {
		p.Stats.Disposes++
	}
}

// Release flips a caller-owned flag when destroyed, making the moment of
// destruction observable. It implements no Cloner or Mover, so copies
// and moves are bitwise and a moved-from Release is zeroed to inert.
type Release struct {
	Flag *bool
}

// NewRelease returns a Release wired to the given flag.
func NewRelease(flag *bool) Release {
	return Release{Flag: flag}
}

// Dispose marks the resource as released. Inert releases stay silent.
func (r *Release) Dispose() {
	if r.Flag != nil {
		*r.Flag = true
	}
}
