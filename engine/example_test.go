// File: engine/example_test.go
package engine_test

import (
	"fmt"

	"github.com/katalvlaran/determinisk/engine"
	"github.com/katalvlaran/determinisk/fixed"
	"github.com/katalvlaran/determinisk/world"
)

////////////////////////////////////////////////////////////////////////////////
// Example: stepping a world deterministically
////////////////////////////////////////////////////////////////////////////////

// ExampleEngine_Step drops a ball in a solid box and shows that two
// independent engines built from the same config produce the same
// fingerprint at the same step — the whole point of the kernel.
func ExampleEngine_Step() {
	cfg := world.Config{
		Bounds:   fixed.V2(fixed.FromInt(100), fixed.FromInt(20)),
		Gravity:  fixed.V2(0, fixed.FromInt(-10)),
		DT:       fixed.One.Div(fixed.FromInt(60)),
		Boundary: world.Boundary{Kind: world.Solid},
		Bodies: []world.BodyConfig{{
			ID:       "ball",
			Position: fixed.V2(fixed.FromInt(50), fixed.FromInt(10)),
			Radius:   fixed.One, Mass: fixed.One, Restitution: fixed.Half,
		}},
	}

	build := func() *engine.Engine {
		w, err := world.New(cfg)
		if err != nil {
			panic(err)
		}
		e, err := engine.New(w, engine.DefaultOptions())
		if err != nil {
			panic(err)
		}
		return e
	}

	a, b := build(), build()
	ra := a.Run(240)
	rb := b.Run(240)

	fmt.Println("steps:", ra.Step)
	fmt.Println("fingerprints match:", ra.Hash == rb.Hash)
	fmt.Println("ball rests on floor:", a.World().Bodies[0].Position.Y == fixed.One)

	// Output:
	// steps: 240
	// fingerprints match: true
	// ball rests on floor: true
}
