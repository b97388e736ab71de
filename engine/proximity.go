// Package engine implements stage 7: proximity zones.
//
// Zone membership lives in bitsets keyed by body index, never in a
// map, so diffing and event emission iterate in body-index order by
// construction. Per zone in declared order: Enters first, then Exits,
// then Stays when the zone opts in.
package engine

import "github.com/katalvlaran/determinisk/event"

// updateProximity recomputes every zone's membership from post-
// resolution positions, diffs against the previous step's set, emits
// the transition events, and stores the new set.
//
// A body is inside when its centre distance to the owner's centre is
// strictly below zone.radius + body.radius. The owner is excluded.
// Complexity: O(zones × bodies).
func (e *Engine) updateProximity(step uint64) {
	w := e.w
	for zi := range w.Zones {
		z := &w.Zones[zi]
		owner := &w.Bodies[z.Owner]

		cur := e.zoneCur
		for k := range cur {
			cur[k] = 0
		}
		for i := range w.Bodies {
			if i == z.Owner {
				continue
			}
			dist := w.Bodies[i].Position.Sub(owner.Position).Length()
			if dist < z.Radius.Add(w.Bodies[i].Radius) {
				cur[i>>6] |= 1 << (uint(i) & 63)
			}
		}

		prev := e.zonePrev[zi]
		for i := range w.Bodies {
			if testBit(cur, i) && !testBit(prev, i) {
				e.emitProximity(step, z.ID, i, event.Enter)
			}
		}
		for i := range w.Bodies {
			if testBit(prev, i) && !testBit(cur, i) {
				e.emitProximity(step, z.ID, i, event.Exit)
			}
		}
		if z.Stay {
			for i := range w.Bodies {
				if testBit(cur, i) && testBit(prev, i) {
					e.emitProximity(step, z.ID, i, event.Stay)
				}
			}
		}

		copy(prev, cur)
	}
}

// emitProximity appends one proximity event.
func (e *Engine) emitProximity(step uint64, zone string, body int, kind event.ProximityKind) {
	e.log.Proximities = append(e.log.Proximities, event.ProximityEvent{
		Step: step, Zone: zone, Body: body, ID: e.w.IDs[body], Kind: kind,
	})
}

// testBit reports whether bit i is set.
func testBit(set []uint64, i int) bool {
	return set[i>>6]&(1<<(uint(i)&63)) != 0
}
