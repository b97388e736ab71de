// Package engine implements stage 5: narrow phase.
package engine

// narrowPhase tests every candidate pair in sorted order and records a
// contact for each true overlap. Coincident centres (d² = 0) are
// skipped: there is no normal to act along, and the pair will separate
// through other forces or stay degenerate.
// Complexity: O(pairs).
func (e *Engine) narrowPhase() {
	w := e.w
	e.contacts = e.contacts[:0]

	for _, p := range e.pairs {
		i, j := int(p.I), int(p.J)
		bi, bj := &w.Bodies[i], &w.Bodies[j]

		delta := bj.Position.Sub(bi.Position)
		distSq := delta.LengthSq()
		sum := bi.Radius.Add(bj.Radius)
		if distSq >= sum.Mul(sum) || distSq == 0 {
			continue
		}

		dist := distSq.Sqrt()
		if dist == 0 {
			continue // quantized to zero below one ulp — treat as coincident
		}
		n := delta.DivScale(dist)
		e.contacts = append(e.contacts, contact{
			i:           i,
			j:           j,
			normal:      n,
			penetration: sum.Sub(dist),
			point:       bi.Position.Add(n.Scale(bi.Radius)),
		})
	}
}
