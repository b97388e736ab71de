// Package determinisk is a deterministic 2D rigid-body physics engine
// for disks whose state evolution is bit-identical across hardware,
// compilers, and optimization levels.
//
// 🚀 What is determinisk?
//
//	A fixed-point simulation kernel built so that an execution trace can
//	be replayed anywhere — including inside a zero-knowledge virtual
//	machine — and attested by comparing SHA-256 fingerprints:
//
//	  • Q16.16 fixed-point scalars and vectors — no floating point in
//	    the hot path, ever
//	  • Position-Verlet integration with implicit velocity
//	  • Uniform-grid broadphase with a deterministic pair order
//	  • Single-pass impulse resolution with positional correction
//	  • Append-only, totally ordered event log
//	  • Canonical big-endian state encoding + SHA-256 fingerprint
//
// ✨ Why choose determinisk?
//
//   - Reproducible — identical inputs give identical bytes, every step,
//     on every platform
//   - Allocation-light — all scratch buffers are sized at construction
//     and reused; a step allocates only when a buffer outgrows its
//     preallocated capacity or when snapshots are enabled
//   - Single-threaded by contract — no locks, no map iteration, no
//     nondeterministic order anywhere in the pipeline
//   - Pure Go — no cgo, no files, no environment access
//
// Everything is organized under seven subpackages:
//
//	fixed/    — Q16.16 Scalar and Vec2 arithmetic
//	world/    — bodies, springs, fields, zones, validated construction
//	grid/     — uniform broadphase with canonical pair enumeration
//	event/    — collision, boundary, and proximity event log
//	engine/   — force accumulation, integration, resolution, stepping
//	codec/    — canonical byte encoding and determinism fingerprint
//	scenario/ — declarative YAML construction input
//
// Quick ASCII example:
//
//	┌────────────────────┐
//	│        ●→          │   two disks in a solid-walled box;
//	│          ←●        │   step, hash, replay, compare.
//	└────────────────────┘
//
// Dive into each package's doc.go for contracts, complexity notes, and
// runnable examples.
//
//	go get github.com/katalvlaran/determinisk
package determinisk
