// Package event implements event record types and the Log container.
package event

import (
	"fmt"

	"github.com/katalvlaran/determinisk/fixed"
)

// Side identifies which wall a boundary event came from. Bottom is the
// y-minimum wall, Top the y-maximum.
type Side int

const (
	Left Side = iota
	Right
	Bottom
	Top
)

// String returns the side name for display.
func (s Side) String() string {
	switch s {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Bottom:
		return "Bottom"
	case Top:
		return "Top"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ProximityKind distinguishes zone membership transitions.
type ProximityKind int

const (
	Enter ProximityKind = iota
	Exit
	Stay
)

// String returns the kind name for display.
func (k ProximityKind) String() string {
	switch k {
	case Enter:
		return "Enter"
	case Exit:
		return "Exit"
	case Stay:
		return "Stay"
	default:
		return fmt.Sprintf("ProximityKind(%d)", int(k))
	}
}

// CollisionEvent records one resolved circle-circle contact.
type CollisionEvent struct {
	Step        uint64
	I, J        int        // body indices, I < J
	Contact     fixed.Vec2 // contact point on body I's rim
	Normal      fixed.Vec2 // unit normal from I toward J
	Penetration fixed.Scalar
	// NormalVelocity is the pre-impulse relative velocity along the
	// normal; negative means approaching.
	NormalVelocity fixed.Scalar
	// Impulse is the applied impulse magnitude; zero for contacts that
	// were already separating and received positional correction only.
	Impulse fixed.Scalar
}

// String renders the event for display only.
func (e CollisionEvent) String() string {
	return fmt.Sprintf("step %d: collision %d-%d pen=%.4f vn=%.4f j=%.4f",
		e.Step, e.I, e.J,
		e.Penetration.Float64(), e.NormalVelocity.Float64(), e.Impulse.Float64())
}

// BoundaryEvent records one solid-wall contact. Impact is the
// pre-reflect velocity component along the violated axis.
type BoundaryEvent struct {
	Step   uint64
	Body   int
	ID     string
	Side   Side
	Impact fixed.Scalar
}

// String renders the event for display only.
func (e BoundaryEvent) String() string {
	return fmt.Sprintf("step %d: %s hit %s wall at %.4f",
		e.Step, e.ID, e.Side, e.Impact.Float64())
}

// ProximityEvent records one zone membership transition.
type ProximityEvent struct {
	Step uint64
	Zone string
	Body int
	ID   string
	Kind ProximityKind
}

// String renders the event for display only.
func (e ProximityEvent) String() string {
	return fmt.Sprintf("step %d: %s %s zone %s", e.Step, e.ID, e.Kind, e.Zone)
}

// Log holds the three append-only event sequences. The kernel appends
// during a step; only the caller clears.
type Log struct {
	Collisions  []CollisionEvent
	Boundaries  []BoundaryEvent
	Proximities []ProximityEvent
}

// NewLog returns a Log whose slices carry enough capacity for typical
// per-run volumes given the body and zone counts, so early steps do
// not grow them.
// Complexity: O(1) beyond the allocations.
func NewLog(bodies, zones int) *Log {
	return &Log{
		Collisions:  make([]CollisionEvent, 0, 4*bodies),
		Boundaries:  make([]BoundaryEvent, 0, 2*bodies),
		Proximities: make([]ProximityEvent, 0, 2*zones*bodies),
	}
}

// Clear drops all entries, keeping capacity. Only the caller invokes
// this; the kernel never does.
// Complexity: O(1).
func (l *Log) Clear() {
	l.Collisions = l.Collisions[:0]
	l.Boundaries = l.Boundaries[:0]
	l.Proximities = l.Proximities[:0]
}

// Len returns the total entry count across all three sequences.
// Complexity: O(1).
func (l *Log) Len() int {
	return len(l.Collisions) + len(l.Boundaries) + len(l.Proximities)
}
