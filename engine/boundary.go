// Package engine implements stage 3: boundary resolution.
//
// Bodies are processed in index order, x axis before y. Solid walls
// clamp and reflect the implicit velocity through the previous
// position; Periodic walls wrap with the Euclidean remainder and
// translate the previous position by the same delta so implicit
// velocity is untouched; Open does nothing.
package engine

import (
	"github.com/katalvlaran/determinisk/event"
	"github.com/katalvlaran/determinisk/fixed"
	"github.com/katalvlaran/determinisk/world"
)

// applyBoundary resolves the world edge for every body and emits
// boundary events for Solid contacts.
// Complexity: O(bodies).
func (e *Engine) applyBoundary(step uint64) {
	w := e.w
	switch w.Boundary.Kind {
	case world.Open:
		return

	case world.Solid:
		for i := range w.Bodies {
			b := &w.Bodies[i]
			e.solidAxis(step, i, &b.Position.X, &b.OldPosition.X, b.Radius,
				w.Bounds.X, event.Left, event.Right)
			e.solidAxis(step, i, &b.Position.Y, &b.OldPosition.Y, b.Radius,
				w.Bounds.Y, event.Bottom, event.Top)
		}

	case world.Periodic:
		for i := range w.Bodies {
			b := &w.Bodies[i]
			wrapAxis(&b.Position.X, &b.OldPosition.X, w.Bounds.X)
			wrapAxis(&b.Position.Y, &b.OldPosition.Y, w.Bounds.Y)
		}
	}
}

// solidAxis clamps one body against both walls of one axis. The event
// carries the pre-reflect velocity component along the axis.
func (e *Engine) solidAxis(step uint64, body int, pos, old *fixed.Scalar,
	r, bound fixed.Scalar, minSide, maxSide event.Side) {

	rest := e.w.Boundary.Restitution
	switch {
	case pos.Sub(r) < 0:
		impact := pos.Sub(*old).Div(e.w.DT)
		*pos = r
		*old = pos.Add(pos.Sub(*old).Mul(rest))
		e.log.Boundaries = append(e.log.Boundaries, event.BoundaryEvent{
			Step: step, Body: body, ID: e.w.IDs[body], Side: minSide, Impact: impact,
		})

	case pos.Add(r) > bound:
		impact := pos.Sub(*old).Div(e.w.DT)
		*pos = bound.Sub(r)
		*old = pos.Add(pos.Sub(*old).Mul(rest))
		e.log.Boundaries = append(e.log.Boundaries, event.BoundaryEvent{
			Step: step, Body: body, ID: e.w.IDs[body], Side: maxSide, Impact: impact,
		})
	}
}

// wrapAxis applies the Euclidean remainder to one axis and translates
// the previous position by the wrap delta. No event is emitted.
func wrapAxis(pos, old *fixed.Scalar, bound fixed.Scalar) {
	wrapped := pos.EuclidMod(bound)
	if wrapped != *pos {
		*old = old.Add(wrapped.Sub(*pos))
		*pos = wrapped
	}
}
