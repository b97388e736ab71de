// Package world defines the simulation entities — disks, springs,
// force fields, proximity zones, boundaries — and the validated
// construction path that is the only way to obtain a World.
//
// 🚀 What is world?
//
//	The in-memory state the kernel advances. A World is an ordered
//	sequence of bodies with parallel string identifiers, plus the
//	run-constant configuration around them:
//
//	  • Circle   — position, previous position, radius, mass, material
//	  • Spring   — index pair with rest length, stiffness, damping
//	  • Field    — gravity / attractor / repulsor / vortex / damping
//	  • Zone     — a radius around an owning body, tracked for
//	               enter/exit events
//	  • Boundary — solid, periodic, or open walls
//
// ✨ Construction contract:
//
//   - New validates the whole Config and reports every defect at once,
//     never first-fail — a ValidationError is a list of Defect values,
//     each carrying its kind sentinel and locator
//   - No partial worlds: any defect means no World
//   - Body order is identity: index order never changes during a run,
//     and bodies are never added or removed in-kernel
//   - Implicit velocity: OldPosition = Position − Velocity·dt is
//     derived once here; afterwards velocity exists only implicitly
//
// All fields a World exposes are owned by the engine once stepping
// begins; callers must treat them as read-only between steps.
package world
