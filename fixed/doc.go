// Package fixed implements Q16.16 fixed-point arithmetic: a signed
// 32-bit Scalar with 16 fractional bits, and a 2-component Vec2 over
// it.
//
// 🚀 What is fixed?
//
//	The arithmetic bedrock of determinisk. Every quantity the kernel
//	touches — positions, velocities, forces, radii, impulses — is a
//	Scalar, and every Scalar operation is defined purely on the 32-bit
//	integer representation:
//
//	  • Add/Sub/Neg — plain int32 operations, two's-complement wrap
//	  • Mul         — promote to int64, multiply, arithmetic shift 16
//	  • Div         — promote numerator to int64, shift left 16, divide
//	  • Sqrt        — Newton–Raphson, exactly 8 iterations, guess n>>1
//
// ✨ Why fixed-point?
//
//   - Bit-identical — results depend only on integer inputs, never on
//     the host FPU, rounding mode, or optimization level
//   - Closed domain — no NaN, no infinity; overflow wraps and wrapping
//     is defined behavior (keeping values in range is the caller's job)
//   - zkVM-friendly — integer ops cost cycles, not trust
//
// Range ≈ [−32768, +32768) with resolution 2⁻¹⁶. Conversions to and
// from float64 exist for I/O edges and tests only; no kernel hot path
// calls them.
//
// Division by a zero raw representation is a programming bug, not a
// recoverable error: Div panics, and every kernel call site guards
// with an explicit zero check first (magnitude before normalize, mass
// positive by invariant).
package fixed
