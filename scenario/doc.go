// Package scenario decodes the declarative YAML construction input
// into a validated world. It is the one place floating-point numbers
// exist: scenario values convert to Q16.16 exactly once, here, at the
// I/O edge.
//
// 🚀 What is scenario?
//
//	The byte-level front door for world construction. A document looks
//	like:
//
//	  world:
//	    width: 100
//	    height: 20
//	    gravity: [0, -10]
//	    timestep: 0.016666
//	    boundary: {kind: solid, restitution: 0.5}
//	  circles:
//	    - {id: ball, position: [50, 10], radius: 1, mass: 1}
//	    - {id: bob, position: [54, 10], radius: 1, mass: 2}
//	  springs:
//	    - {id: s0, circle_a: ball, circle_b: bob, rest_length: 5,
//	       stiffness: 10}
//	  zones:
//	    - {id: aura, circle_id: ball, radius: 3}
//	  fields:
//	    - {type: attractor, strength: 10, position: [60, 50], range: 8}
//
// ✨ Contracts:
//
//   - Bytes in, world out: Parse never touches a file — reading bytes
//     from disk belongs to external collaborators, not the kernel
//   - Construction validation passes through untouched: a bad document
//     surfaces the same collected world.ValidationError a hand-built
//     Config would
//   - Marshal round-trips: Render(doc) emits YAML that Parse accepts
package scenario
