// Package world implements construction and derived accessors.
package world

import "github.com/katalvlaran/determinisk/fixed"

// New validates cfg in one pass and, when no defect is found, builds
// the World: bodies in declared order, OldPosition derived from the
// declared velocity, springs resolved to ordered index pairs, and the
// maximum radius cached for the broadphase.
//
// On any defect New returns a ValidationError listing every problem;
// no partial world is ever constructed.
// Complexity: O(bodies + springs + zones + fields).
func New(cfg Config) (*World, error) {
	defects, index := validate(cfg)
	if len(defects) > 0 {
		return nil, defects
	}

	w := &World{
		Bodies:   make([]Circle, len(cfg.Bodies)),
		IDs:      make([]string, len(cfg.Bodies)),
		Bounds:   cfg.Bounds,
		Gravity:  cfg.Gravity,
		Damping:  cfg.Damping,
		DT:       cfg.DT,
		Boundary: cfg.Boundary,
		Springs:  make([]Spring, len(cfg.Springs)),
		Fields:   append([]Field(nil), cfg.Fields...),
		Zones:    make([]Zone, len(cfg.Zones)),
		index:    index,
	}

	for i, b := range cfg.Bodies {
		w.IDs[i] = b.ID
		w.Bodies[i] = Circle{
			Position:    b.Position,
			OldPosition: b.Position.Sub(b.Velocity.Scale(cfg.DT)),
			Radius:      b.Radius,
			Mass:        b.Mass,
			Restitution: b.Restitution,
			Friction:    b.Friction,
			Tags:        append([]string(nil), b.Tags...),
		}
		if b.Radius > w.maxRadius {
			w.maxRadius = b.Radius
		}
	}

	for i, s := range cfg.Springs {
		a, b := index[s.A], index[s.B]
		if a > b {
			a, b = b, a
		}
		w.Springs[i] = Spring{
			ID:         s.ID,
			A:          a,
			B:          b,
			RestLength: s.RestLength,
			Stiffness:  s.Stiffness,
			Damping:    s.Damping,
		}
	}

	for i, z := range cfg.Zones {
		w.Zones[i] = Zone{
			ID:     z.ID,
			Owner:  index[z.Owner],
			Radius: z.Radius,
			Stay:   z.Stay,
		}
	}

	return w, nil
}

// Len returns the body count.
// Complexity: O(1).
func (w *World) Len() int {
	return len(w.Bodies)
}

// MaxRadius returns the largest body radius, cached at construction.
// Radii never change in-kernel, so the cache never goes stale.
// Complexity: O(1).
func (w *World) MaxRadius() fixed.Scalar {
	return w.maxRadius
}

// IndexOf returns the index of the body with the given id, or −1 when
// the id is unknown. The lookup map is built once at construction and
// never iterated, so it cannot introduce order nondeterminism.
// Complexity: O(1).
func (w *World) IndexOf(id string) int {
	if i, ok := w.index[id]; ok {
		return i
	}
	return -1
}

// Velocity returns body i's implicit velocity
// (Position − OldPosition) / dt.
// Complexity: O(1).
func (w *World) Velocity(i int) fixed.Vec2 {
	return w.Bodies[i].Position.Sub(w.Bodies[i].OldPosition).DivScale(w.DT)
}

// Time returns the simulation time StepCount × dt as a Scalar. The
// product wraps like any other fixed-point multiply; project to
// float64 for human display only.
// Complexity: O(1).
func (w *World) Time() fixed.Scalar {
	return fixed.FromInt(int32(w.StepCount)).Mul(w.DT)
}
