// Package engine implements stage 1: force accumulation.
//
// The accumulation order below is normative, not stylistic. Gravity first
// per body in index order, then springs in declared order, then fields
// in declared order iterating bodies in index order.
package engine

import (
	"github.com/katalvlaran/determinisk/world"
)

// accumulateForces fills e.forces with the per-body net force for this
// step.
// Complexity: O(bodies + springs + fields × bodies).
func (e *Engine) accumulateForces() {
	w := e.w

	for i := range e.forces {
		e.forces[i] = w.Gravity.Scale(w.Bodies[i].Mass)
	}

	for si := range w.Springs {
		e.applySpring(&w.Springs[si])
	}

	for fi := range w.Fields {
		e.applyField(&w.Fields[fi])
	}
}

// applySpring adds one spring's force to both endpoints. The force
// along the unit vector from A to B has magnitude
//
//	stiffness·(|Δ| − rest) + damping·(Δ · v_rel)/|Δ|
//
// positive when stretched, so A is pulled toward B and B toward A —
// equal and opposite. A zero-length spring contributes nothing.
func (e *Engine) applySpring(s *world.Spring) {
	w := e.w
	a, b := &w.Bodies[s.A], &w.Bodies[s.B]

	delta := b.Position.Sub(a.Position)
	dist := delta.Length()
	if dist == 0 {
		return // degenerate: no direction to act along
	}

	vRel := w.Velocity(s.B).Sub(w.Velocity(s.A))
	mag := s.Stiffness.Mul(dist.Sub(s.RestLength)).
		Add(s.Damping.Mul(delta.Dot(vRel).Div(dist)))

	f := delta.DivScale(dist).Scale(mag)
	e.forces[s.A] = e.forces[s.A].Add(f)
	e.forces[s.B] = e.forces[s.B].Sub(f)
}

// applyField adds one field's contribution to every body, in index
// order.
func (e *Engine) applyField(f *world.Field) {
	w := e.w
	for i := range w.Bodies {
		b := &w.Bodies[i]
		switch f.Kind {
		case world.FieldGravity:
			// Position carries the acceleration vector; Strength
			// scales it. F = a·strength·m.
			e.forces[i] = e.forces[i].Add(
				f.Position.Scale(f.Strength).Scale(b.Mass))

		case world.FieldAttractor, world.FieldRepulsor:
			delta := f.Position.Sub(b.Position)
			dist := delta.Length()
			if dist == 0 || (f.Range > 0 && dist >= f.Range) {
				continue
			}
			pull := delta.DivScale(dist).Scale(f.Strength)
			if f.Kind == world.FieldRepulsor {
				pull = pull.Neg()
			}
			e.forces[i] = e.forces[i].Add(pull)

		case world.FieldVortex:
			delta := f.Position.Sub(b.Position)
			dist := delta.Length()
			if dist == 0 || (f.Range > 0 && dist >= f.Range) {
				continue
			}
			e.forces[i] = e.forces[i].Add(
				delta.DivScale(dist).Perp().Scale(f.Strength))

		case world.FieldDamping:
			v := w.Velocity(i)
			e.forces[i] = e.forces[i].Sub(v.Scale(f.Strength))
		}
	}
}
