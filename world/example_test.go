// File: world/example_test.go
package world_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/determinisk/fixed"
	"github.com/katalvlaran/determinisk/world"
)

////////////////////////////////////////////////////////////////////////////////
// Example: validated construction
////////////////////////////////////////////////////////////////////////////////

// ExampleNew demonstrates the collected-defect contract: a config with
// several problems reports all of them in one ValidationError instead
// of failing on the first.
func ExampleNew() {
	cfg := world.Config{
		Bounds: fixed.V2(fixed.FromInt(100), fixed.FromInt(100)),
		DT:     fixed.One.Div(fixed.FromInt(60)),
		Bodies: []world.BodyConfig{
			{ID: "a", Radius: 0, Mass: fixed.One,
				Position: fixed.V2(fixed.FromInt(10), fixed.FromInt(10))},
			{ID: "a", Radius: fixed.One, Mass: 0,
				Position: fixed.V2(fixed.FromInt(20), fixed.FromInt(10))},
		},
	}

	_, err := world.New(cfg)
	var ve world.ValidationError
	if errors.As(err, &ve) {
		fmt.Println("defects:", len(ve))
		fmt.Println("bad radius:", ve.Has(world.ErrInvalidRadius))
		fmt.Println("bad mass:", ve.Has(world.ErrInvalidMass))
		fmt.Println("duplicate id:", ve.Has(world.ErrDuplicateID))
	}

	// Output:
	// defects: 3
	// bad radius: true
	// bad mass: true
	// duplicate id: true
}
