// Package scenario implements document types and sentinel errors.
package scenario

import "errors"

// Sentinel errors for document-level problems found before world
// validation runs.
var (
	// ErrUnknownBoundary indicates an unrecognized boundary kind string.
	ErrUnknownBoundary = errors.New("scenario: unknown boundary kind")

	// ErrUnknownField indicates an unrecognized field type string.
	ErrUnknownField = errors.New("scenario: unknown field type")

	// ErrBadDocument wraps YAML syntax errors.
	ErrBadDocument = errors.New("scenario: malformed document")
)

// Document is the root of the declarative configuration.
type Document struct {
	World   WorldDoc    `yaml:"world"`
	Circles []CircleDoc `yaml:"circles"`
	Springs []SpringDoc `yaml:"springs,omitempty"`
	Zones   []ZoneDoc   `yaml:"zones,omitempty"`
	Fields  []FieldDoc  `yaml:"fields,omitempty"`
}

// WorldDoc declares the world-level options.
type WorldDoc struct {
	Width    float64     `yaml:"width"`
	Height   float64     `yaml:"height"`
	Gravity  [2]float64  `yaml:"gravity"`
	Damping  float64     `yaml:"damping"`
	Timestep float64     `yaml:"timestep"`
	Boundary BoundaryDoc `yaml:"boundary"`
}

// BoundaryDoc declares the wall behavior. An empty kind means solid.
type BoundaryDoc struct {
	Kind        string  `yaml:"kind"`
	Restitution float64 `yaml:"restitution"`
}

// CircleDoc declares one body.
type CircleDoc struct {
	ID          string     `yaml:"id"`
	Position    [2]float64 `yaml:"position"`
	Velocity    [2]float64 `yaml:"velocity"`
	Radius      float64    `yaml:"radius"`
	Mass        float64    `yaml:"mass"`
	Restitution float64    `yaml:"restitution"`
	Friction    float64    `yaml:"friction"`
	Tags        []string   `yaml:"tags,omitempty"`
}

// SpringDoc declares one spring by body identifiers.
type SpringDoc struct {
	ID         string  `yaml:"id"`
	CircleA    string  `yaml:"circle_a"`
	CircleB    string  `yaml:"circle_b"`
	RestLength float64 `yaml:"rest_length"`
	Stiffness  float64 `yaml:"stiffness"`
	Damping    float64 `yaml:"damping"`
}

// ZoneDoc declares one proximity zone.
type ZoneDoc struct {
	ID       string  `yaml:"id"`
	CircleID string  `yaml:"circle_id"`
	Radius   float64 `yaml:"radius"`
	Stay     bool    `yaml:"stay,omitempty"`
}

// FieldDoc declares one force field. Position is optional; for a
// gravity field it carries the acceleration vector.
type FieldDoc struct {
	Type     string      `yaml:"type"`
	Strength float64     `yaml:"strength"`
	Position *[2]float64 `yaml:"position,omitempty"`
	Range    float64     `yaml:"range,omitempty"`
}
