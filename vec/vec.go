// Package vec provides the small value types consumed by the lvgeom matrices:
// 2-, 3- and 4-component vectors, quaternions and axis-angle rotations.
//
// All types are plain values (stack-allocated, comparable with ==). Methods
// never mutate their receiver.
package vec

import "math"

// Vec2 is a 2D vector.
type Vec2 struct{ X, Y float64 }

// Vec3 is a 3D vector.
type Vec3 struct{ X, Y, Z float64 }

// Vec4 is a 4D (homogeneous) vector.
type Vec4 struct{ X, Y, Z, W float64 }

// V2 returns Vec2{x, y}.
func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// V3 returns Vec3{x, y, z}.
func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// V4 returns Vec4{x, y, z, w}.
func V4(x, y, z, w float64) Vec4 { return Vec4{X: x, Y: y, Z: z, W: w} }

func (a Vec2) Add(b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Scale(k float64) Vec2 { return Vec2{a.X * k, a.Y * k} }
func (a Vec2) Dot(b Vec2) float64   { return a.X*b.X + a.Y*b.Y }
func (a Vec2) Len() float64         { return math.Hypot(a.X, a.Y) }

// ApproxEq reports whether every component differs by at most eps.
func (a Vec2) ApproxEq(b Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

// Normalize returns a unit vector in the same direction, or the zero vector
// when a has zero length.
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}

	return a.Scale(1 / l)
}

func (a Vec3) Add(b Vec3) Vec3      { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3      { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Scale(k float64) Vec3 { return Vec3{a.X * k, a.Y * k, a.Z * k} }
func (a Vec3) Neg() Vec3            { return Vec3{-a.X, -a.Y, -a.Z} }
func (a Vec3) Dot(b Vec3) float64   { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross returns a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the Euclidean length.
func (a Vec3) Len() float64 { return math.Sqrt(a.Dot(a)) }

// Normalize returns a unit vector in the same direction, or the zero vector
// when a has zero length.
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l == 0 {
		return Vec3{}
	}

	return a.Scale(1 / l)
}

// ApproxEq reports whether every component differs by at most eps.
func (a Vec3) ApproxEq(b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

// Vec4 lifts a to homogeneous coordinates with the given w.
func (a Vec3) Vec4(w float64) Vec4 { return Vec4{a.X, a.Y, a.Z, w} }

func (a Vec4) Add(b Vec4) Vec4      { return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }
func (a Vec4) Scale(k float64) Vec4 { return Vec4{a.X * k, a.Y * k, a.Z * k, a.W * k} }
func (a Vec4) Dot(b Vec4) float64   { return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W }
func (a Vec4) XYZ() Vec3            { return Vec3{a.X, a.Y, a.Z} }

// ApproxEq reports whether every component differs by at most eps.
func (a Vec4) ApproxEq(b Vec4, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps && math.Abs(a.W-b.W) <= eps
}

// PerspectiveDivide returns (x/w, y/w, z/w).
func (a Vec4) PerspectiveDivide() Vec3 {
	inv := 1 / a.W
	return Vec3{a.X * inv, a.Y * inv, a.Z * inv}
}
