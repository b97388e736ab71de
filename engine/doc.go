// Package engine advances a world through the deterministic step
// pipeline: force accumulation, position-Verlet integration, boundary
// resolution, broadphase, narrow phase, impulse resolution, and
// proximity tracking, finishing with the state fingerprint.
//
// 🚀 What is engine?
//
//	The conductor. One Step() call executes the eight stages in a
//	fixed, normative order:
//
//	  1. accumulate forces (gravity, springs, fields — in that order)
//	  2. integrate positions (position-Verlet, optional damping)
//	  3. apply boundary correction; emit boundary events
//	  4. rebuild the spatial grid from post-integration positions
//	  5. enumerate candidate pairs in canonical order
//	  6. resolve collisions; emit collision events
//	  7. update proximity zones; emit enter/exit/stay events
//	  8. capture the state hash and optional snapshot
//
// ✨ Contracts:
//
//   - One Step() is an atomic unit of progress: it cannot fail under a
//     validly constructed world, so state never ends up half-advanced
//   - Single-threaded, non-blocking, no suspension points; bounded
//     work per body and per candidate pair
//   - Scratch buffers — force vectors, grid cells, pair list, contact
//     list, zone bitsets — are allocated once in New and reused. A
//     step is not allocation-free in every case: lists that outgrow
//     their preallocated capacity grow by append, and Options.Snapshots
//     allocates the snapshot bytes every step
//   - Iteration order is fixed everywhere: bodies by index, springs
//     and fields by declaration, pairs by (i, j), zones by declaration
//
// The optional Observer is a static capability: a struct of typed
// hooks checked for nil at each site, not a dynamic interface.
package engine
