// Package grid implements construction, rebuild, and canonical pair
// enumeration.
package grid

import (
	"errors"
	"sort"

	"github.com/katalvlaran/determinisk/fixed"
	"github.com/katalvlaran/determinisk/world"
)

// ErrBadBounds indicates non-positive world bounds at construction.
var ErrBadBounds = errors.New("grid: bounds must be positive")

// Pair is one candidate collision pair, always ordered I < J.
type Pair struct {
	I, J int32
}

// Grid is the uniform broadphase index. Dimensions and cell size are
// fixed at construction; Rebuild refills the cells each step.
type Grid struct {
	cell fixed.Scalar // cell side = 2 × max radius
	w, h int32        // cell counts, each ≥ 1

	cells  [][]int32  // row-major per-cell body index lists
	rects  [][4]int32 // per body: inclusive cell rect x0, y0, x1, y1
	sorter pairSorter // reused to keep enumeration allocation-free
}

// New builds a Grid for the given world bounds, maximum body radius,
// and body count. Cell side is 2 × maxRadius; when the world has no
// bodies (maxRadius 0) the grid degenerates to a single cell.
// Dimensions are bounds / cell clamped to ≥ 1.
// Complexity: O(cells + bodies) allocations, all up front.
func New(bounds fixed.Vec2, maxRadius fixed.Scalar, bodies int) (*Grid, error) {
	if bounds.X <= 0 || bounds.Y <= 0 {
		return nil, ErrBadBounds
	}

	cell := maxRadius.Add(maxRadius)
	w, h := int32(1), int32(1)
	if cell > 0 {
		w = clampDim(int32(bounds.X.Div(cell)) >> fixed.FracBits)
		h = clampDim(int32(bounds.Y.Div(cell)) >> fixed.FracBits)
	} else {
		cell = fixed.MaxOf(bounds.X, bounds.Y)
	}

	g := &Grid{
		cell:  cell,
		w:     w,
		h:     h,
		cells: make([][]int32, int(w)*int(h)),
		rects: make([][4]int32, bodies),
	}
	for i := range g.cells {
		g.cells[i] = make([]int32, 0, 8)
	}

	return g, nil
}

// clampDim forces a computed dimension to at least one cell.
func clampDim(d int32) int32 {
	if d < 1 {
		return 1
	}
	return d
}

// CellSize returns the cell side length.
// Complexity: O(1).
func (g *Grid) CellSize() fixed.Scalar {
	return g.cell
}

// Dims returns the grid dimensions in cells.
// Complexity: O(1).
func (g *Grid) Dims() (w, h int) {
	return int(g.w), int(g.h)
}

// coord maps a world coordinate onto a cell index along one axis,
// clamped into [0, dim). Truncation toward zero is fine here because
// out-of-range values clamp anyway.
func (g *Grid) coord(v fixed.Scalar, dim int32) int32 {
	c := int32(int64(v) / int64(g.cell))
	if c < 0 {
		return 0
	}
	if c >= dim {
		return dim - 1
	}
	return c
}

// Rebuild clears the cells and reinserts every body from its current
// position: each body joins every cell its bounding box [pos ± r]
// touches, clamped to the grid, and its cell rectangle is recorded for
// the pair dedup rule.
// Complexity: O(bodies × cells-touched); no allocation after warm-up.
func (g *Grid) Rebuild(bodies []world.Circle) {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	for i := range bodies {
		b := &bodies[i]
		x0 := g.coord(b.Position.X.Sub(b.Radius), g.w)
		x1 := g.coord(b.Position.X.Add(b.Radius), g.w)
		y0 := g.coord(b.Position.Y.Sub(b.Radius), g.h)
		y1 := g.coord(b.Position.Y.Add(b.Radius), g.h)
		g.rects[i] = [4]int32{x0, y0, x1, y1}
		for cy := y0; cy <= y1; cy++ {
			row := cy * g.w
			for cx := x0; cx <= x1; cx++ {
				g.cells[row+cx] = append(g.cells[row+cx], int32(i))
			}
		}
	}
}

// Pairs appends every candidate pair to dst (reset to length zero
// first) and returns it sorted lexicographically by (I, J).
//
// Dedup rule: a pair may co-occupy up to four cells; it is emitted
// only from the top-left cell of the intersection of the two bodies'
// cell rectangles. Both bodies are present in every intersection cell
// by construction, so no pair is missed, and the rule needs no seen-
// set. The final sort is the normative ordering that makes downstream
// resolution deterministic under any grid reorganization.
// Complexity: O(Σ cell-list² + P log P).
func (g *Grid) Pairs(dst []Pair) []Pair {
	dst = dst[:0]
	for cy := int32(0); cy < g.h; cy++ {
		for cx := int32(0); cx < g.w; cx++ {
			list := g.cells[cy*g.w+cx]
			for a := 0; a < len(list); a++ {
				for b := a + 1; b < len(list); b++ {
					lo, hi := list[a], list[b]
					if lo > hi {
						lo, hi = hi, lo
					}
					if cx == maxInt32(g.rects[lo][0], g.rects[hi][0]) &&
						cy == maxInt32(g.rects[lo][1], g.rects[hi][1]) {
						dst = append(dst, Pair{I: lo, J: hi})
					}
				}
			}
		}
	}
	g.sorter.pairs = dst
	sort.Sort(&g.sorter)
	g.sorter.pairs = nil

	return dst
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// pairSorter orders pairs lexicographically by (I, J). It lives on the
// Grid so sorting does not allocate per step.
type pairSorter struct {
	pairs []Pair
}

func (s *pairSorter) Len() int { return len(s.pairs) }

func (s *pairSorter) Less(i, j int) bool {
	a, b := s.pairs[i], s.pairs[j]
	if a.I != b.I {
		return a.I < b.I
	}
	return a.J < b.J
}

func (s *pairSorter) Swap(i, j int) {
	s.pairs[i], s.pairs[j] = s.pairs[j], s.pairs[i]
}
