// Package fixed — 2-component vector algebra over the Q16.16 Scalar.
//
// This file declares Vec2 and its component-wise and geometric
// operations. Vec2 is a value type: every operation returns a new
// vector and no operation mutates its receiver.
package fixed

// Vec2 is a pair of Q16.16 scalars. The zero value is the zero vector.
type Vec2 struct {
	X, Y Scalar
}

// V2 constructs a Vec2 from two scalars.
// Complexity: O(1).
func V2(x, y Scalar) Vec2 {
	return Vec2{X: x, Y: y}
}

// V2FromFloat64 constructs a Vec2 from float64 components. I/O edges
// and tests only — never the hot path.
// Complexity: O(1).
func V2FromFloat64(x, y float64) Vec2 {
	return Vec2{X: FromFloat64(x), Y: FromFloat64(y)}
}

// Add returns v + u component-wise.
// Complexity: O(1).
func (v Vec2) Add(u Vec2) Vec2 {
	return Vec2{X: v.X + u.X, Y: v.Y + u.Y}
}

// Sub returns v − u component-wise.
// Complexity: O(1).
func (v Vec2) Sub(u Vec2) Vec2 {
	return Vec2{X: v.X - u.X, Y: v.Y - u.Y}
}

// Neg returns −v.
// Complexity: O(1).
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Scale returns v scaled by s.
// Complexity: O(1).
func (v Vec2) Scale(s Scalar) Vec2 {
	return Vec2{X: v.X.Mul(s), Y: v.Y.Mul(s)}
}

// DivScale returns v divided component-wise by s. Panics on a zero
// divisor, like Scalar.Div.
// Complexity: O(1).
func (v Vec2) DivScale(s Scalar) Vec2 {
	return Vec2{X: v.X.Div(s), Y: v.Y.Div(s)}
}

// Dot returns the dot product v · u.
// Complexity: O(1).
func (v Vec2) Dot(u Vec2) Scalar {
	return v.X.Mul(u.X) + v.Y.Mul(u.Y)
}

// LengthSq returns |v|² = x² + y². Wraps for vectors whose squared
// magnitude leaves the Q16.16 range; keeping magnitudes conditioned is
// the caller's responsibility.
// Complexity: O(1).
func (v Vec2) LengthSq() Scalar {
	return v.X.Mul(v.X) + v.Y.Mul(v.Y)
}

// Length returns |v| = sqrt(x² + y²).
// Complexity: O(1).
func (v Vec2) Length() Scalar {
	return v.LengthSq().Sqrt()
}

// Normalize returns the unit vector along v, or v unchanged when its
// magnitude is zero. The zero-magnitude escape keeps the fixed-point
// domain closed: no division by zero can occur.
// Complexity: O(1).
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X.Div(l), Y: v.Y.Div(l)}
}

// Perp returns the counter-clockwise perpendicular (−y, x). Used by
// vortex fields.
// Complexity: O(1).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// IsZero reports whether both components have a zero representation.
// Complexity: O(1).
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
