package vec

import "math"

// Quat is a quaternion x·i + y·j + z·k + w.
// Rotation quaternions are expected to be unit length; Normalize first when
// the source is not trusted.
type Quat struct{ X, Y, Z, W float64 }

// QuatIdent returns the identity rotation.
func QuatIdent() Quat { return Quat{W: 1} }

// Len returns the quaternion norm.
func (q Quat) Len() float64 { return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W) }

// Normalize returns q scaled to unit length, or the identity when q is zero.
func (q Quat) Normalize() Quat {
	l := q.Len()
	if l == 0 {
		return QuatIdent()
	}
	inv := 1 / l

	return Quat{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// Conjugate returns (-x, -y, -z, w); for unit quaternions it is the inverse.
func (q Quat) Conjugate() Quat { return Quat{-q.X, -q.Y, -q.Z, q.W} }

// Mul returns q ⋅ r (r applied first when rotating vectors).
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Rotate returns v rotated by the unit quaternion q.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)

	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// QuatFromEuler converts Euler XYZ angles (radians, applied X then Y then Z)
// to a unit quaternion.
func QuatFromEuler(rx, ry, rz float64) Quat {
	sx, cx := math.Sincos(rx * 0.5)
	sy, cy := math.Sincos(ry * 0.5)
	sz, cz := math.Sincos(rz * 0.5)

	return Quat{
		X: sx*cy*cz - cx*sy*sz,
		Y: cx*sy*cz + sx*cy*sz,
		Z: cx*cy*sz - sx*sy*cz,
		W: cx*cy*cz + sx*sy*sz,
	}
}

// AxisAngle is a rotation of Angle radians around Axis (right-handed).
// Axis need not be normalized; a zero axis denotes no rotation.
type AxisAngle struct {
	Angle float64
	Axis  Vec3
}

// Quat converts a to a unit quaternion.
func (a AxisAngle) Quat() Quat {
	n := a.Axis.Normalize()
	if n == (Vec3{}) {
		return QuatIdent()
	}
	s, c := math.Sincos(a.Angle * 0.5)

	return Quat{n.X * s, n.Y * s, n.Z * s, c}
}

// AxisAngleFrom converts a unit quaternion to axis-angle form. The identity
// rotation yields a zero angle around +X.
func AxisAngleFrom(q Quat) AxisAngle {
	q = q.Normalize()
	if q.W > 1 {
		q.W = 1
	}
	angle := 2 * math.Acos(q.W)
	s := math.Sqrt(1 - q.W*q.W)
	if s < 1e-12 {
		return AxisAngle{Angle: 0, Axis: Vec3{X: 1}}
	}

	return AxisAngle{Angle: angle, Axis: Vec3{q.X / s, q.Y / s, q.Z / s}}
}
