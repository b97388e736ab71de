// File: scenario/scenario_test.go
package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/determinisk/fixed"
	"github.com/katalvlaran/determinisk/scenario"
	"github.com/katalvlaran/determinisk/world"
)

const fullDoc = `
world:
  width: 100
  height: 20
  gravity: [0, -10]
  damping: 0
  timestep: 0.015625
  boundary: {kind: solid, restitution: 0.5}
circles:
  - {id: ball, position: [50, 10], velocity: [1, 0], radius: 1, mass: 1,
     restitution: 0.5, tags: [player]}
  - {id: bob, position: [54, 10], radius: 1, mass: 2}
springs:
  - {id: s0, circle_a: ball, circle_b: bob, rest_length: 4, stiffness: 10,
     damping: 0.5}
zones:
  - {id: aura, circle_id: ball, radius: 3, stay: true}
fields:
  - {type: attractor, strength: 10, position: [60, 10], range: 8}
  - {type: damping, strength: 0.25}
`

// TestParseFullDocument verifies every section lands in the world with
// exact fixed-point conversion.
func TestParseFullDocument(t *testing.T) {
	w, err := scenario.Parse([]byte(fullDoc))
	require.NoError(t, err)

	require.Equal(t, 2, w.Len())
	require.Equal(t, fixed.V2(fixed.FromInt(100), fixed.FromInt(20)), w.Bounds)
	require.Equal(t, fixed.V2(0, fixed.FromInt(-10)), w.Gravity)
	require.Equal(t, fixed.Scalar(1024), w.DT, "1/64 converts exactly")
	require.Equal(t, world.Solid, w.Boundary.Kind)
	require.Equal(t, fixed.Half, w.Boundary.Restitution)

	require.Equal(t, "ball", w.IDs[0])
	require.Equal(t, []string{"player"}, w.Bodies[0].Tags)
	require.Equal(t, fixed.FromInt(2), w.Bodies[1].Mass)

	require.Len(t, w.Springs, 1)
	require.Equal(t, 0, w.Springs[0].A)
	require.Equal(t, 1, w.Springs[0].B)
	require.Equal(t, fixed.FromInt(4), w.Springs[0].RestLength)

	require.Len(t, w.Zones, 1)
	require.True(t, w.Zones[0].Stay)
	require.Equal(t, 0, w.Zones[0].Owner)

	require.Len(t, w.Fields, 2)
	require.Equal(t, world.FieldAttractor, w.Fields[0].Kind)
	require.Equal(t, fixed.FromInt(8), w.Fields[0].Range)
	require.Equal(t, world.FieldDamping, w.Fields[1].Kind)
}

// TestParseDefaultsBoundaryToSolid verifies the empty boundary kind.
func TestParseDefaultsBoundaryToSolid(t *testing.T) {
	w, err := scenario.Parse([]byte(`
world: {width: 10, height: 10, timestep: 0.015625}
circles:
  - {id: a, position: [5, 5], radius: 1, mass: 1}
`))
	require.NoError(t, err)
	require.Equal(t, world.Solid, w.Boundary.Kind)
}

// TestParseDocumentErrors covers syntax and enum failures.
func TestParseDocumentErrors(t *testing.T) {
	_, err := scenario.Parse([]byte("world: ["))
	require.ErrorIs(t, err, scenario.ErrBadDocument)

	_, err = scenario.Parse([]byte(`
world: {width: 10, height: 10, timestep: 0.015625, boundary: {kind: rubber}}
`))
	require.ErrorIs(t, err, scenario.ErrUnknownBoundary)

	_, err = scenario.Parse([]byte(`
world: {width: 10, height: 10, timestep: 0.015625}
fields:
  - {type: magnetism, strength: 1}
`))
	require.ErrorIs(t, err, scenario.ErrUnknownField)
}

// TestParsePassesValidationThrough verifies defective documents
// surface the world's collected ValidationError unchanged.
func TestParsePassesValidationThrough(t *testing.T) {
	_, err := scenario.Parse([]byte(`
world: {width: 10, height: 10, timestep: 0.015625}
circles:
  - {id: a, position: [5, 5], radius: 0, mass: 1}
  - {id: a, position: [6, 5], radius: 1, mass: 1}
`))
	require.Error(t, err)

	var ve world.ValidationError
	require.ErrorAs(t, err, &ve)
	require.True(t, ve.Has(world.ErrInvalidRadius))
	require.True(t, ve.Has(world.ErrDuplicateID))
}

// TestRenderRoundTrip verifies Render output parses back to the same
// document.
func TestRenderRoundTrip(t *testing.T) {
	doc, err := scenario.ParseDocument([]byte(fullDoc))
	require.NoError(t, err)

	out, err := scenario.Render(doc)
	require.NoError(t, err)

	back, err := scenario.ParseDocument(out)
	require.NoError(t, err)
	require.Equal(t, doc, back)
}
