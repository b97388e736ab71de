// Package engine implements stage 6: impulse resolution.
//
// A single pass runs per step. Residual interpenetration bounded by
// the 0.8 correction factor is expected and resolves over subsequent
// steps; this is the standard sequential-impulse compromise and the
// exact behavior the determinism contract preserves.
package engine

import (
	"github.com/katalvlaran/determinisk/event"
	"github.com/katalvlaran/determinisk/fixed"
)

// posCorrection is the Baumgarte slack factor, 0.8 in Q16.16.
const posCorrection = fixed.Scalar(52429)

// resolve processes the contact records in pair order. For each
// contact:
//
//   - approaching pairs (vₙ < 0) receive a normal impulse of magnitude
//     −(1+e)·vₙ / (1/mᵢ + 1/mⱼ) with e the mean restitution, applied
//     by moving the previous positions so the position-Verlet implicit
//     velocity changes by exactly ±(j/m)·n̂
//   - every contact, separating or not, receives positional correction
//     0.8·penetration along the normal, split inversely by mass
//
// One collision event per contact, in the same order.
// Complexity: O(contacts).
func (e *Engine) resolve(step uint64) {
	w := e.w
	dt := w.DT

	for ci := range e.contacts {
		c := &e.contacts[ci]
		bi, bj := &w.Bodies[c.i], &w.Bodies[c.j]

		vi := bi.Position.Sub(bi.OldPosition).DivScale(dt)
		vj := bj.Position.Sub(bj.OldPosition).DivScale(dt)
		vn := vj.Sub(vi).Dot(c.normal)

		var impulse fixed.Scalar
		if vn < 0 {
			rest := bi.Restitution.Add(bj.Restitution).Mul(fixed.Half)
			invMass := fixed.One.Div(bi.Mass).Add(fixed.One.Div(bj.Mass))
			impulse = fixed.One.Add(rest).Mul(vn).Neg().Div(invMass)

			bi.OldPosition = bi.OldPosition.Add(
				c.normal.Scale(impulse.Div(bi.Mass).Mul(dt)))
			bj.OldPosition = bj.OldPosition.Sub(
				c.normal.Scale(impulse.Div(bj.Mass).Mul(dt)))
		}

		corr := c.normal.Scale(posCorrection.Mul(c.penetration))
		total := bi.Mass.Add(bj.Mass)
		bi.Position = bi.Position.Sub(corr.Scale(bj.Mass.Div(total)))
		bj.Position = bj.Position.Add(corr.Scale(bi.Mass.Div(total)))

		ev := event.CollisionEvent{
			Step:           step,
			I:              c.i,
			J:              c.j,
			Contact:        c.point,
			Normal:         c.normal,
			Penetration:    c.penetration,
			NormalVelocity: vn,
			Impulse:        impulse,
		}
		e.log.Collisions = append(e.log.Collisions, ev)
		if e.opts.Observer.OnCollision != nil {
			e.opts.Observer.OnCollision(ev)
		}
	}
}
