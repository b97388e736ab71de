// Package engine implements stage 2: position-Verlet integration.
package engine

import "github.com/katalvlaran/determinisk/fixed"

// two is the Scalar 2. The Verlet doubling is a fixed-point multiply,
// not a shift, so wrapping behaves like every other multiply.
var two = fixed.FromInt(2)

// integrate advances every body one position-Verlet step:
//
//	a    = F/m
//	next = 2·pos − old + a·dt²
//	next -= (next − old)·damping    (when damping > 0)
//	old, pos = pos, next
//
// Mass is positive by world invariant, so the division is safe.
// Complexity: O(bodies).
func (e *Engine) integrate() {
	w := e.w
	dtSq := w.DT.Mul(w.DT)

	for i := range w.Bodies {
		b := &w.Bodies[i]
		accel := e.forces[i].DivScale(b.Mass)
		next := b.Position.Scale(two).Sub(b.OldPosition).Add(accel.Scale(dtSq))

		if w.Damping > 0 {
			vImpl := next.Sub(b.OldPosition) // two-step velocity
			next = next.Sub(vImpl.Scale(w.Damping))
		}

		b.OldPosition = b.Position
		b.Position = next
	}
}
