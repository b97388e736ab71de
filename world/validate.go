// Package world implements Config validation.
//
// Validators collect defects instead of returning on the first one, so
// a caller sees the whole repair list in a single construction attempt.
package world

import (
	"fmt"

	"github.com/katalvlaran/determinisk/fixed"
)

// maxTimestep is the inclusive upper bound on DT: 0.1 in Q16.16.
const maxTimestep = fixed.Scalar(6553)

// validate runs every check over cfg and returns the collected defects
// together with the id → index map built along the way (valid for the
// body ids that did resolve, even when defects exist elsewhere).
// Complexity: O(bodies + springs + zones).
func validate(cfg Config) (ValidationError, map[string]int) {
	var defects ValidationError
	index := make(map[string]int, len(cfg.Bodies))

	defects = appendWorldDefects(defects, cfg)
	defects = appendBodyDefects(defects, cfg, index)
	defects = appendSpringDefects(defects, cfg, index)
	defects = appendZoneDefects(defects, cfg, index)

	return defects, index
}

// appendWorldDefects checks the world-level parameters.
func appendWorldDefects(defects ValidationError, cfg Config) ValidationError {
	if cfg.Bounds.X <= 0 || cfg.Bounds.Y <= 0 {
		defects = append(defects, Defect{
			Kind:   ErrInvalidWorldSize,
			Loc:    "world",
			Detail: fmt.Sprintf("bounds %v x %v", cfg.Bounds.X.Float64(), cfg.Bounds.Y.Float64()),
		})
	}
	if cfg.DT <= 0 || cfg.DT > maxTimestep {
		defects = append(defects, Defect{
			Kind:   ErrInvalidTimestep,
			Loc:    "world",
			Detail: fmt.Sprintf("timestep %v", cfg.DT.Float64()),
		})
	}
	if cfg.Damping < 0 || cfg.Damping >= fixed.One {
		defects = append(defects, Defect{
			Kind:   ErrOutOfRange,
			Loc:    "world",
			Detail: fmt.Sprintf("damping %v outside [0,1)", cfg.Damping.Float64()),
		})
	}
	if cfg.Boundary.Kind == Solid &&
		(cfg.Boundary.Restitution < 0 || cfg.Boundary.Restitution > fixed.One) {
		defects = append(defects, Defect{
			Kind:   ErrOutOfRange,
			Loc:    "world",
			Detail: fmt.Sprintf("boundary restitution %v outside [0,1]", cfg.Boundary.Restitution.Float64()),
		})
	}

	return defects
}

// appendBodyDefects checks every body and fills index with the ids
// seen first. Bounds placement is only enforced for Solid and Periodic
// worlds; Open worlds admit bodies anywhere.
func appendBodyDefects(defects ValidationError, cfg Config, index map[string]int) ValidationError {
	for i, b := range cfg.Bodies {
		loc := bodyLoc(i, b.ID)
		if _, dup := index[b.ID]; dup {
			defects = append(defects, Defect{
				Kind:   ErrDuplicateID,
				Loc:    loc,
				Detail: "id already used",
			})
		} else {
			index[b.ID] = i
		}
		if b.Radius <= 0 {
			defects = append(defects, Defect{
				Kind:   ErrInvalidRadius,
				Loc:    loc,
				Detail: fmt.Sprintf("radius %v", b.Radius.Float64()),
			})
		}
		if b.Mass <= 0 {
			defects = append(defects, Defect{
				Kind:   ErrInvalidMass,
				Loc:    loc,
				Detail: fmt.Sprintf("mass %v", b.Mass.Float64()),
			})
		}
		if b.Restitution < 0 || b.Restitution > fixed.One {
			defects = append(defects, Defect{
				Kind:   ErrOutOfRange,
				Loc:    loc,
				Detail: fmt.Sprintf("restitution %v outside [0,1]", b.Restitution.Float64()),
			})
		}
		if b.Friction < 0 || b.Friction > fixed.One {
			defects = append(defects, Defect{
				Kind:   ErrOutOfRange,
				Loc:    loc,
				Detail: fmt.Sprintf("friction %v outside [0,1]", b.Friction.Float64()),
			})
		}
		if cfg.Boundary.Kind != Open {
			if b.Position.X < 0 || b.Position.X > cfg.Bounds.X ||
				b.Position.Y < 0 || b.Position.Y > cfg.Bounds.Y {
				defects = append(defects, Defect{
					Kind:   ErrOutOfBounds,
					Loc:    loc,
					Detail: fmt.Sprintf("position (%v, %v)", b.Position.X.Float64(), b.Position.Y.Float64()),
				})
			}
		}
	}

	return defects
}

// appendSpringDefects checks spring parameters and endpoint references.
func appendSpringDefects(defects ValidationError, cfg Config, index map[string]int) ValidationError {
	for i, s := range cfg.Springs {
		loc := springLoc(i, s.ID)
		_, okA := index[s.A]
		_, okB := index[s.B]
		if !okA {
			defects = append(defects, Defect{
				Kind:   ErrDanglingReference,
				Loc:    loc,
				Detail: fmt.Sprintf("endpoint %q not found", s.A),
			})
		}
		if !okB {
			defects = append(defects, Defect{
				Kind:   ErrDanglingReference,
				Loc:    loc,
				Detail: fmt.Sprintf("endpoint %q not found", s.B),
			})
		}
		if okA && okB && s.A == s.B {
			defects = append(defects, Defect{
				Kind:   ErrDanglingReference,
				Loc:    loc,
				Detail: "endpoints identical",
			})
		}
		if s.RestLength < 0 {
			defects = append(defects, Defect{
				Kind:   ErrOutOfRange,
				Loc:    loc,
				Detail: fmt.Sprintf("rest length %v negative", s.RestLength.Float64()),
			})
		}
		if s.Stiffness < 0 {
			defects = append(defects, Defect{
				Kind:   ErrOutOfRange,
				Loc:    loc,
				Detail: fmt.Sprintf("stiffness %v negative", s.Stiffness.Float64()),
			})
		}
		if s.Damping < 0 {
			defects = append(defects, Defect{
				Kind:   ErrOutOfRange,
				Loc:    loc,
				Detail: fmt.Sprintf("damping %v negative", s.Damping.Float64()),
			})
		}
	}

	return defects
}

// appendZoneDefects checks zone parameters and the owner reference.
func appendZoneDefects(defects ValidationError, cfg Config, index map[string]int) ValidationError {
	for i, z := range cfg.Zones {
		loc := zoneLoc(i, z.ID)
		if _, ok := index[z.Owner]; !ok {
			defects = append(defects, Defect{
				Kind:   ErrDanglingReference,
				Loc:    loc,
				Detail: fmt.Sprintf("owner %q not found", z.Owner),
			})
		}
		if z.Radius < 0 {
			defects = append(defects, Defect{
				Kind:   ErrOutOfRange,
				Loc:    loc,
				Detail: fmt.Sprintf("radius %v negative", z.Radius.Float64()),
			})
		}
	}

	return defects
}

// bodyLoc formats a body locator, falling back to the position when
// the id is empty.
func bodyLoc(i int, id string) string {
	if id == "" {
		return fmt.Sprintf("body[%d]", i)
	}
	return "body " + id
}

func springLoc(i int, id string) string {
	if id == "" {
		return fmt.Sprintf("spring[%d]", i)
	}
	return "spring " + id
}

func zoneLoc(i int, id string) string {
	if id == "" {
		return fmt.Sprintf("zone[%d]", i)
	}
	return "zone " + id
}
