// Package engine implements Engine construction, options, observer, and step
// result types.
package engine

import (
	"github.com/katalvlaran/determinisk/codec"
	"github.com/katalvlaran/determinisk/event"
	"github.com/katalvlaran/determinisk/fixed"
	"github.com/katalvlaran/determinisk/grid"
	"github.com/katalvlaran/determinisk/world"
)

// pairBudget scales the preallocated candidate-pair and contact
// capacity per body. Dense scenes beyond the budget grow the slices,
// which is a construction-time budgeting concern, not a runtime error.
const pairBudget = 16

// Observer is an optional set of statically-typed step hooks. Every
// member may be nil; non-nil members are invoked synchronously at the
// stage boundary they name. Hooks observe, they must not mutate.
type Observer struct {
	// OnForces fires after force accumulation with the per-body net
	// force vectors for the step being computed.
	OnForces func(step uint64, forces []fixed.Vec2)

	// OnIntegrate fires after integration, before boundary resolution.
	OnIntegrate func(step uint64, bodies []world.Circle)

	// OnCollision fires once per resolved contact, in pair order.
	OnCollision func(ev event.CollisionEvent)

	// OnStep fires last, with the completed step's result.
	OnStep func(res StepResult)
}

// Options configures an Engine.
type Options struct {
	// Snapshots attaches the canonical persisted-state bytes to every
	// StepResult. Off by default: hashing is cheap, snapshotting is
	// a per-step allocation.
	Snapshots bool

	// Observer holds the optional step hooks.
	Observer Observer
}

// DefaultOptions returns the zero configuration: no snapshots, no
// hooks.
func DefaultOptions() Options {
	return Options{}
}

// StepResult summarizes one completed step.
type StepResult struct {
	// Step is the number of completed steps after this one; the
	// events this step emitted are tagged with the same value.
	Step uint64

	// Time is Step × dt as a Scalar. Project to float64 for display
	// only.
	Time fixed.Scalar

	// Hash is the SHA-256 determinism fingerprint of the post-step
	// canonical encoding.
	Hash [32]byte

	// Event counts emitted by this step, per sequence.
	Collisions  int
	Boundaries  int
	Proximities int

	// Snapshot holds the persisted-state bytes when Options.Snapshots
	// is set, nil otherwise.
	Snapshot []byte
}

// contact is one narrow-phase overlap record, consumed by the
// resolver in pair order.
type contact struct {
	i, j        int
	normal      fixed.Vec2 // unit, from i toward j
	penetration fixed.Scalar
	point       fixed.Vec2
}

// Engine owns a world, its event log, and all step scratch. Construct
// with New; zero value is not usable.
type Engine struct {
	w    *world.World
	log  *event.Log
	opts Options

	broad    *grid.Grid
	forces   []fixed.Vec2
	pairs    []grid.Pair
	contacts []contact

	// zonePrev[z] is zone z's previous-step membership bitset keyed by
	// body index; zoneCur is the shared current-step scratch.
	zonePrev [][]uint64
	zoneCur  []uint64

	// encBuf is the reused canonical-encoding scratch for the per-step
	// fingerprint, so hashing does not allocate.
	encBuf []byte
}

// New builds an Engine over w with all scratch sized up front: force
// vectors to the body count, the grid to the world bounds and cached
// maximum radius, pair and contact lists to the pair budget, and one
// bitset per zone. The world must come from world.New; its invariants
// (positive masses and radii, valid bounds) are assumed from here on.
// Complexity: O(bodies + cells + zones) allocations, all up front.
func New(w *world.World, opts Options) (*Engine, error) {
	broad, err := grid.New(w.Bounds, w.MaxRadius(), w.Len())
	if err != nil {
		return nil, err
	}

	n := w.Len()
	words := (n + 63) / 64
	zonePrev := make([][]uint64, len(w.Zones))
	for i := range zonePrev {
		zonePrev[i] = make([]uint64, words)
	}

	return &Engine{
		w:        w,
		log:      event.NewLog(n, len(w.Zones)),
		opts:     opts,
		broad:    broad,
		forces:   make([]fixed.Vec2, n),
		pairs:    make([]grid.Pair, 0, pairBudget*n),
		contacts: make([]contact, 0, pairBudget*n),
		zonePrev: zonePrev,
		zoneCur:  make([]uint64, words),
		encBuf:   make([]byte, 0, codec.EncodedLen(w)+8),
	}, nil
}

// World returns the engine's world. The engine owns all mutation
// between Step calls; callers read only.
func (e *Engine) World() *world.World {
	return e.w
}

// Log returns the event log. Clearing it is the caller's prerogative
// and the only way entries leave.
func (e *Engine) Log() *event.Log {
	return e.log
}
