// File: engine/bench_test.go
package engine_test

import (
	"testing"

	"github.com/katalvlaran/determinisk/engine"
	"github.com/katalvlaran/determinisk/fixed"
	"github.com/katalvlaran/determinisk/world"
)

// BenchmarkStep measures one full pipeline step over a 100-body
// lattice settling under gravity in a solid box. The lattice is
// deterministic; no randomness anywhere.
func BenchmarkStep(b *testing.B) {
	cfg := world.Config{
		Bounds:   fixed.V2(fixed.FromInt(100), fixed.FromInt(100)),
		Gravity:  fixed.V2(0, fixed.FromInt(-10)),
		DT:       fixed.One.Div(fixed.FromInt(60)),
		Boundary: world.Boundary{Kind: world.Solid, Restitution: fixed.Half},
	}
	for i := 0; i < 100; i++ {
		x := 5 + (i%10)*10
		y := 5 + (i/10)*9
		cfg.Bodies = append(cfg.Bodies, world.BodyConfig{
			ID:       string(rune('a'+i%26)) + string(rune('0'+i/26)),
			Position: fixed.V2(fixed.FromInt(int32(x)), fixed.FromInt(int32(y))),
			Radius:   fixed.One, Mass: fixed.One, Restitution: fixed.Half,
		})
	}
	w, err := world.New(cfg)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}
	e, err := engine.New(w, engine.DefaultOptions())
	if err != nil {
		b.Fatalf("setup: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Step()
	}
}
