// Package vec provides the three-component vector used by movement code.
package vec

import "math"

// Vec3 is a point, velocity or direction in 3D space. It is a plain value and
// is copied freely.
type Vec3 struct {
	X, Y, Z float64
}

// Zero is the zero vector.
var Zero = Vec3{}

// New returns the vector (x, y, z).
func New(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns the component-wise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// AddInPlace sets v to v + o.
func (v *Vec3) AddInPlace(o Vec3) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
}

// Sub returns the component-wise difference v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// SubInPlace sets v to v - o.
func (v *Vec3) SubInPlace(o Vec3) {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
}

// Scale returns v with every component multiplied by k.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// ScaleInPlace multiplies every component of v by k.
func (v *Vec3) ScaleInPlace(k float64) {
	v.X *= k
	v.Y *= k
	v.Z *= k
}

// Dot returns the inner product of v and o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the right-handed cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Len returns the Euclidean norm of v.
func (v Vec3) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Normalize scales v to unit length in place. The caller must ensure v is
// not the zero vector; a zero vector ends up with NaN components.
func (v *Vec3) Normalize() {
	inv := 1 / v.Len()
	v.X *= inv
	v.Y *= inv
	v.Z *= inv
}

// XY drops the Z component for screen-plane drawing.
func (v Vec3) XY() (float64, float64) { return v.X, v.Y }
