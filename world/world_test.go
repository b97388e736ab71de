// File: world/world_test.go
package world_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/determinisk/fixed"
	"github.com/katalvlaran/determinisk/world"
)

// dt60 is 1/60 s in Q16.16.
var dt60 = fixed.One.Div(fixed.FromInt(60))

// baseConfig returns a minimal valid config with one body.
func baseConfig() world.Config {
	return world.Config{
		Bounds:   fixed.V2(fixed.FromInt(100), fixed.FromInt(100)),
		Gravity:  fixed.V2(0, fixed.FromInt(-10)),
		Damping:  0,
		DT:       dt60,
		Boundary: world.Boundary{Kind: world.Solid, Restitution: 0},
		Bodies: []world.BodyConfig{{
			ID:          "ball",
			Position:    fixed.V2(fixed.FromInt(50), fixed.FromInt(50)),
			Radius:      fixed.One,
			Mass:        fixed.One,
			Restitution: fixed.Half,
		}},
	}
}

// TestNewDerivesOldPosition verifies OldPosition = Position − v·dt.
func TestNewDerivesOldPosition(t *testing.T) {
	cfg := baseConfig()
	cfg.Bodies[0].Velocity = fixed.V2(fixed.FromInt(3), 0)

	w, err := world.New(cfg)
	require.NoError(t, err)
	require.Equal(t, 1, w.Len())

	wantOld := cfg.Bodies[0].Position.Sub(cfg.Bodies[0].Velocity.Scale(dt60))
	require.Equal(t, wantOld, w.Bodies[0].OldPosition)

	// The implicit velocity must reproduce the declared one up to
	// fixed-point truncation of v·dt.
	v := w.Velocity(0)
	require.InDelta(t, 3.0, v.X.Float64(), 0.01)
	require.Equal(t, fixed.Zero, v.Y)
}

// TestNewResolvesAndOrdersSprings verifies spring endpoints resolve to
// index pairs with A < B regardless of declaration order.
func TestNewResolvesAndOrdersSprings(t *testing.T) {
	cfg := baseConfig()
	cfg.Bodies = append(cfg.Bodies, world.BodyConfig{
		ID:       "bob",
		Position: fixed.V2(fixed.FromInt(60), fixed.FromInt(50)),
		Radius:   fixed.One,
		Mass:     fixed.One,
	})
	cfg.Springs = []world.SpringConfig{{
		ID: "s0", A: "bob", B: "ball",
		RestLength: fixed.FromInt(5),
		Stiffness:  fixed.FromInt(2),
	}}

	w, err := world.New(cfg)
	require.NoError(t, err)
	require.Equal(t, 0, w.Springs[0].A)
	require.Equal(t, 1, w.Springs[0].B)
}

// TestMaxRadiusCached verifies the broadphase cell-size input.
func TestMaxRadiusCached(t *testing.T) {
	cfg := baseConfig()
	cfg.Bodies = append(cfg.Bodies, world.BodyConfig{
		ID:       "big",
		Position: fixed.V2(fixed.FromInt(20), fixed.FromInt(20)),
		Radius:   fixed.FromInt(3),
		Mass:     fixed.One,
	})
	w, err := world.New(cfg)
	require.NoError(t, err)
	require.Equal(t, fixed.FromInt(3), w.MaxRadius())
}

// TestIndexOf verifies the id lookup, including the miss case.
func TestIndexOf(t *testing.T) {
	w, err := world.New(baseConfig())
	require.NoError(t, err)
	require.Equal(t, 0, w.IndexOf("ball"))
	require.Equal(t, -1, w.IndexOf("ghost"))
}

// TestTagsPreservedVerbatim verifies tags survive construction
// untouched and un-aliased.
func TestTagsPreservedVerbatim(t *testing.T) {
	cfg := baseConfig()
	tags := []string{"player", "solid"}
	cfg.Bodies[0].Tags = tags

	w, err := world.New(cfg)
	require.NoError(t, err)
	require.Equal(t, []string{"player", "solid"}, w.Bodies[0].Tags)

	tags[0] = "mutated"
	require.Equal(t, "player", w.Bodies[0].Tags[0], "tags must be copied, not aliased")
}

// TestValidationCollectsEveryDefect verifies the collected-list
// contract: one bad config reports all of its problems at once.
func TestValidationCollectsEveryDefect(t *testing.T) {
	cfg := world.Config{
		Bounds:   fixed.V2(0, fixed.FromInt(-5)), // InvalidWorldSize
		Damping:  fixed.One,                      // OutOfRange (must be < 1)
		DT:       0,                              // InvalidTimestep
		Boundary: world.Boundary{Kind: world.Solid, Restitution: fixed.FromInt(2)}, // OutOfRange
		Bodies: []world.BodyConfig{
			{ID: "a", Radius: 0, Mass: 0, Restitution: -fixed.One, Friction: fixed.FromInt(2),
				Position: fixed.V2(fixed.FromInt(500), 0)}, // InvalidRadius, InvalidMass, 2×OutOfRange, OutOfBounds
			{ID: "a", Radius: fixed.One, Mass: fixed.One}, // DuplicateId
		},
		Springs: []world.SpringConfig{
			{ID: "s", A: "a", B: "nope", RestLength: -fixed.One}, // DanglingReference, OutOfRange
		},
		Zones: []world.ZoneConfig{
			{ID: "z", Owner: "missing", Radius: -fixed.One}, // DanglingReference, OutOfRange
		},
	}

	_, err := world.New(cfg)
	require.Error(t, err)

	var ve world.ValidationError
	require.ErrorAs(t, err, &ve)

	for _, kind := range []error{
		world.ErrInvalidWorldSize,
		world.ErrInvalidTimestep,
		world.ErrInvalidRadius,
		world.ErrInvalidMass,
		world.ErrDuplicateID,
		world.ErrDanglingReference,
		world.ErrOutOfRange,
		world.ErrOutOfBounds,
	} {
		require.True(t, ve.Has(kind), "expected defect kind %v", kind)
	}
	// Spot-check errors.Is interop through the Defect wrapper.
	require.True(t, errors.Is(ve[0], world.ErrInvalidWorldSize))
}

// TestOpenWorldSkipsBoundsCheck verifies Open boundaries admit bodies
// anywhere.
func TestOpenWorldSkipsBoundsCheck(t *testing.T) {
	cfg := baseConfig()
	cfg.Boundary = world.Boundary{Kind: world.Open}
	cfg.Bodies[0].Position = fixed.V2(fixed.FromInt(-500), fixed.FromInt(900))

	_, err := world.New(cfg)
	require.NoError(t, err)
}

// TestTimestepBounds verifies the (0, 0.1] interval edge cases.
func TestTimestepBounds(t *testing.T) {
	cfg := baseConfig()
	cfg.DT = fixed.FromFloat64(0.1)
	_, err := world.New(cfg)
	require.NoError(t, err, "0.1 is inclusive")

	cfg.DT = fixed.FromFloat64(0.11)
	_, err = world.New(cfg)
	require.Error(t, err)

	var ve world.ValidationError
	require.ErrorAs(t, err, &ve)
	require.True(t, ve.Has(world.ErrInvalidTimestep))
}
