// Package engine implements the step pipeline.
package engine

import (
	"crypto/sha256"

	"github.com/katalvlaran/determinisk/codec"
)

// Step executes one full simulation step and returns its result. The
// stage order is normative; see the package documentation. Step cannot
// fail under a world constructed by world.New — every division in the
// pipeline is structurally guarded, and wrapping overflow is defined —
// so one call is always one whole unit of progress.
//
// Events emitted by this step are tagged with the returned Step value,
// the post-increment count of completed steps.
// Complexity: O(bodies + springs + fields×bodies + pairs + zones×bodies).
func (e *Engine) Step() StepResult {
	w := e.w
	step := w.StepCount + 1

	collisions := len(e.log.Collisions)
	boundaries := len(e.log.Boundaries)
	proximities := len(e.log.Proximities)

	e.accumulateForces()
	if e.opts.Observer.OnForces != nil {
		e.opts.Observer.OnForces(step, e.forces)
	}

	e.integrate()
	if e.opts.Observer.OnIntegrate != nil {
		e.opts.Observer.OnIntegrate(step, w.Bodies)
	}

	e.applyBoundary(step)

	e.broad.Rebuild(w.Bodies)
	e.pairs = e.broad.Pairs(e.pairs)

	e.narrowPhase()
	e.resolve(step)
	e.updateProximity(step)

	w.StepCount = step

	e.encBuf = codec.Encode(e.encBuf[:0], w)
	res := StepResult{
		Step:        step,
		Time:        w.Time(),
		Hash:        sha256.Sum256(e.encBuf),
		Collisions:  len(e.log.Collisions) - collisions,
		Boundaries:  len(e.log.Boundaries) - boundaries,
		Proximities: len(e.log.Proximities) - proximities,
	}
	if e.opts.Snapshots {
		res.Snapshot = codec.EncodeState(w)
	}
	if e.opts.Observer.OnStep != nil {
		e.opts.Observer.OnStep(res)
	}

	return res
}

// Run advances n steps and returns the last result. Cancellation, if
// any, belongs to the caller's own step loop; Run is a convenience for
// tests and replays.
// Complexity: n × Step.
func (e *Engine) Run(n int) StepResult {
	var res StepResult
	for i := 0; i < n; i++ {
		res = e.Step()
	}
	return res
}
