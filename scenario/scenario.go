// Package scenario implements parsing and rendering.
package scenario

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/determinisk/fixed"
	"github.com/katalvlaran/determinisk/world"
)

// Parse decodes a YAML scenario document and builds the validated
// world. Document-level problems (syntax, unknown enum strings) are
// reported first; everything else flows through world.New, whose
// collected ValidationError passes up untouched.
// Complexity: O(document size).
func Parse(data []byte) (*world.World, error) {
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}
	cfg, err := doc.Config()
	if err != nil {
		return nil, err
	}
	return world.New(cfg)
}

// ParseDocument decodes the YAML bytes into a Document without
// building a world.
// Complexity: O(document size).
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	return &doc, nil
}

// Render marshals a Document back to YAML bytes.
// Complexity: O(document size).
func Render(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// Config converts the document into a world.Config, performing every
// float → Q16.16 conversion exactly once.
func (d *Document) Config() (world.Config, error) {
	cfg := world.Config{
		Bounds:  fixed.V2FromFloat64(d.World.Width, d.World.Height),
		Gravity: fixed.V2FromFloat64(d.World.Gravity[0], d.World.Gravity[1]),
		Damping: fixed.FromFloat64(d.World.Damping),
		DT:      fixed.FromFloat64(d.World.Timestep),
	}

	switch d.World.Boundary.Kind {
	case "", "solid":
		cfg.Boundary = world.Boundary{
			Kind:        world.Solid,
			Restitution: fixed.FromFloat64(d.World.Boundary.Restitution),
		}
	case "periodic":
		cfg.Boundary = world.Boundary{Kind: world.Periodic}
	case "open":
		cfg.Boundary = world.Boundary{Kind: world.Open}
	default:
		return world.Config{}, fmt.Errorf("%w: %q", ErrUnknownBoundary, d.World.Boundary.Kind)
	}

	for _, c := range d.Circles {
		cfg.Bodies = append(cfg.Bodies, world.BodyConfig{
			ID:          c.ID,
			Position:    fixed.V2FromFloat64(c.Position[0], c.Position[1]),
			Velocity:    fixed.V2FromFloat64(c.Velocity[0], c.Velocity[1]),
			Radius:      fixed.FromFloat64(c.Radius),
			Mass:        fixed.FromFloat64(c.Mass),
			Restitution: fixed.FromFloat64(c.Restitution),
			Friction:    fixed.FromFloat64(c.Friction),
			Tags:        c.Tags,
		})
	}

	for _, s := range d.Springs {
		cfg.Springs = append(cfg.Springs, world.SpringConfig{
			ID:         s.ID,
			A:          s.CircleA,
			B:          s.CircleB,
			RestLength: fixed.FromFloat64(s.RestLength),
			Stiffness:  fixed.FromFloat64(s.Stiffness),
			Damping:    fixed.FromFloat64(s.Damping),
		})
	}

	for _, z := range d.Zones {
		cfg.Zones = append(cfg.Zones, world.ZoneConfig{
			ID:     z.ID,
			Owner:  z.CircleID,
			Radius: fixed.FromFloat64(z.Radius),
			Stay:   z.Stay,
		})
	}

	for _, f := range d.Fields {
		kind, ok := fieldKinds[f.Type]
		if !ok {
			return world.Config{}, fmt.Errorf("%w: %q", ErrUnknownField, f.Type)
		}
		fld := world.Field{
			Kind:     kind,
			Strength: fixed.FromFloat64(f.Strength),
			Range:    fixed.FromFloat64(f.Range),
		}
		if f.Position != nil {
			fld.Position = fixed.V2FromFloat64(f.Position[0], f.Position[1])
		}
		cfg.Fields = append(cfg.Fields, fld)
	}

	return cfg, nil
}

// fieldKinds maps document type strings onto field kinds. Lookup only;
// never iterated.
var fieldKinds = map[string]world.FieldKind{
	"gravity":   world.FieldGravity,
	"attractor": world.FieldAttractor,
	"repulsor":  world.FieldRepulsor,
	"vortex":    world.FieldVortex,
	"damping":   world.FieldDamping,
}
