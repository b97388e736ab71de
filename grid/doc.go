// Package grid implements the uniform broadphase: a fixed-dimension
// grid of cells rebuilt from body positions every step, producing the
// canonical, deterministic list of candidate collision pairs.
//
// 🚀 What is grid?
//
//	A cheap filter in front of the narrow phase. Cell side is twice the
//	largest body radius, so two disks can only overlap if their
//	bounding boxes share a cell:
//
//	  • Dimensions — bounds / cell, clamped to ≥ 1, computed once at
//	    construction and never again
//	  • Insertion — each body lands in every cell its bounding box
//	    [pos ± r] touches, clamped to the grid
//	  • Enumeration — cells walk in row-major order; a pair is emitted
//	    exactly once, from the top-left cell of the two bodies' cell
//	    rectangle intersection, then the list is sorted by (i, j)
//
// ✨ Why this shape?
//
//   - Deterministic — no hash set anywhere; the dedup rule is
//     positional, and the final lexicographic sort makes the pair
//     order independent of grid organization
//   - Allocation-light stepping — cell lists are preallocated at
//     construction and the pair slice is supplied by the caller; both
//     are reused, and grow by append only when a step outgrows them
//   - Complete — two overlapping bodies always co-occupy every cell of
//     their rectangle intersection, including its top-left cell, so
//     the dedup rule cannot miss a pair
//
// Complexity per step: O(bodies × cells-touched) to rebuild,
// O(Σ cell-list² + P log P) to enumerate and sort P pairs.
package grid
