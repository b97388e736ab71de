// Package world implements central entity types, sentinel errors, and the
// declarative Config consumed by New.
//
// This file declares Circle, Spring, Field, Zone, Boundary, the
// Config family, and the sentinel errors used as Defect kinds.
package world

import (
	"errors"

	"github.com/katalvlaran/determinisk/fixed"
)

// Sentinel errors for construction-time validation. Each Defect wraps
// exactly one of these, so callers can match with errors.Is.
var (
	// ErrInvalidRadius indicates a body radius with a non-positive value.
	ErrInvalidRadius = errors.New("world: radius must be positive")

	// ErrInvalidMass indicates a body mass with a non-positive value.
	ErrInvalidMass = errors.New("world: mass must be positive")

	// ErrOutOfBounds indicates a body centre outside the world rectangle.
	ErrOutOfBounds = errors.New("world: position outside bounds")

	// ErrDuplicateID indicates two bodies sharing one identifier.
	ErrDuplicateID = errors.New("world: duplicate body id")

	// ErrInvalidTimestep indicates a timestep outside (0, 0.1].
	ErrInvalidTimestep = errors.New("world: timestep must be in (0, 0.1]")

	// ErrInvalidWorldSize indicates a non-positive world dimension.
	ErrInvalidWorldSize = errors.New("world: bounds must be positive")

	// ErrDanglingReference indicates a spring or zone naming a missing body.
	ErrDanglingReference = errors.New("world: reference to unknown body")

	// ErrOutOfRange indicates restitution, friction, damping, or another
	// bounded parameter outside its interval.
	ErrOutOfRange = errors.New("world: parameter out of range")
)

// BoundaryKind selects how the world edge treats bodies.
type BoundaryKind int

const (
	// Solid clamps bodies inside the rectangle and reflects their
	// implicit velocity with the boundary restitution.
	Solid BoundaryKind = iota

	// Periodic wraps positions with the Euclidean remainder, preserving
	// implicit velocity.
	Periodic

	// Open leaves bodies alone; they may drift outside the rectangle.
	Open
)

// Boundary bundles the kind with the restitution used by Solid walls.
// Restitution is ignored for Periodic and Open.
type Boundary struct {
	Kind        BoundaryKind
	Restitution fixed.Scalar
}

// FieldKind selects a force-field variant.
type FieldKind int

const (
	// FieldGravity applies a constant acceleration: Position holds the
	// acceleration vector and Strength scales it.
	FieldGravity FieldKind = iota

	// FieldAttractor applies a radial pull of constant magnitude
	// Strength toward Position, cut off at Range when Range > 0.
	FieldAttractor

	// FieldRepulsor is FieldAttractor with the sign flipped.
	FieldRepulsor

	// FieldVortex applies Strength along the counter-clockwise
	// perpendicular of the offset to Position, with the same cutoff.
	FieldVortex

	// FieldDamping applies −Strength × implicit velocity to every body.
	FieldDamping
)

// Field is one force field. Which members are meaningful depends on
// Kind; see the kind constants. Range ≤ 0 means unbounded.
type Field struct {
	Kind     FieldKind
	Strength fixed.Scalar
	Position fixed.Vec2
	Range    fixed.Scalar
}

// Circle is one disk body. Velocity is implicit:
// v = (Position − OldPosition) / dt.
type Circle struct {
	Position    fixed.Vec2
	OldPosition fixed.Vec2
	Radius      fixed.Scalar // invariant: > 0
	Mass        fixed.Scalar // invariant: > 0
	Restitution fixed.Scalar // in [0, 1]
	Friction    fixed.Scalar // in [0, 1]; carried and encoded, no tangential term in resolution
	Tags        []string     // opaque, preserved verbatim, unused by the kernel
}

// Spring connects two bodies by index, A < B. Distinct springs may
// share endpoints.
type Spring struct {
	ID         string
	A, B       int
	RestLength fixed.Scalar
	Stiffness  fixed.Scalar
	Damping    fixed.Scalar
}

// Zone is a proximity region owned by a body. Membership state lives
// in the engine; the Zone itself is run-constant.
type Zone struct {
	ID     string
	Owner  int
	Radius fixed.Scalar
	Stay   bool // emit Stay events for retained members
}

// BodyConfig declares one body in a Config. OldPosition is derived as
// Position − Velocity·dt during construction.
type BodyConfig struct {
	ID          string
	Position    fixed.Vec2
	Velocity    fixed.Vec2
	Radius      fixed.Scalar
	Mass        fixed.Scalar
	Restitution fixed.Scalar
	Friction    fixed.Scalar
	Tags        []string
}

// SpringConfig declares one spring by body identifiers.
type SpringConfig struct {
	ID         string
	A, B       string
	RestLength fixed.Scalar
	Stiffness  fixed.Scalar
	Damping    fixed.Scalar
}

// ZoneConfig declares one proximity zone by its owner's identifier.
type ZoneConfig struct {
	ID     string
	Owner  string
	Radius fixed.Scalar
	Stay   bool
}

// Config is the declarative construction input recognized by New.
// Validation is performed once, in New, and reports every defect.
type Config struct {
	Bounds   fixed.Vec2
	Gravity  fixed.Vec2
	Damping  fixed.Scalar // in [0, 1)
	DT       fixed.Scalar // in (0, 0.1]
	Boundary Boundary
	Bodies   []BodyConfig
	Springs  []SpringConfig
	Zones    []ZoneConfig
	Fields   []Field
}

// World is the full simulation state: the ordered body list, the
// run-constant configuration, and the step counter. Construction goes
// through New only; afterwards the engine owns all mutation.
type World struct {
	Bodies []Circle
	IDs    []string // parallel to Bodies; unique, order never changes

	Bounds   fixed.Vec2
	Gravity  fixed.Vec2
	Damping  fixed.Scalar
	DT       fixed.Scalar
	Boundary Boundary

	Springs []Spring
	Fields  []Field
	Zones   []Zone

	// StepCount is the number of completed steps, n ≥ 0.
	StepCount uint64

	maxRadius fixed.Scalar
	index     map[string]int // id → body index; built once, never iterated
}
