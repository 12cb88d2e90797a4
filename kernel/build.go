// SPDX-License-Identifier: MIT

package kernel

import (
	"math"

	"github.com/katalvlaran/lvgeom/vec"
)

// RotationX3 returns the right-handed rotation of angle radians about +X.
func RotationX3(angle float64) M3 {
	s, c := math.Sincos(angle)
	return M3{1, 0, 0, 0, c, s, 0, -s, c}
}

// RotationY3 returns the right-handed rotation of angle radians about +Y.
func RotationY3(angle float64) M3 {
	s, c := math.Sincos(angle)
	return M3{c, 0, -s, 0, 1, 0, s, 0, c}
}

// RotationZ3 returns the right-handed rotation of angle radians about +Z.
func RotationZ3(angle float64) M3 {
	s, c := math.Sincos(angle)
	return M3{c, s, 0, -s, c, 0, 0, 0, 1}
}

// Rotation3 returns the rotation of angle radians about axis. The axis is
// normalized here; a zero axis yields the identity.
func Rotation3(angle float64, axis vec.Vec3) M3 {
	n := axis.Normalize()
	if n == (vec.Vec3{}) {
		return Ident3
	}
	s, c := math.Sincos(angle)
	omc := 1 - c
	x, y, z := n.X, n.Y, n.Z

	return M3{
		c + x*x*omc, x*y*omc + z*s, x*z*omc - y*s,
		x*y*omc - z*s, c + y*y*omc, y*z*omc + x*s,
		x*z*omc + y*s, y*z*omc - x*s, c + z*z*omc,
	}
}

// RotationQuat3 returns the rotation encoded by q. q is normalized here so
// that the result is orthonormal.
func RotationQuat3(q vec.Quat) M3 {
	q = q.Normalize()
	x, y, z, w := q.X, q.Y, q.Z, q.W
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return M3{
		1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy),
		2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx),
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy),
	}
}

// LookAlong3 returns the view rotation facing dir with the given up vector
// (right-handed, camera looks down -Z). A zero dir or an up parallel to dir
// yields a singular matrix.
func LookAlong3(dir, up vec.Vec3) M3 {
	f := dir.Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return M3{
		s.X, u.X, -f.X,
		s.Y, u.Y, -f.Y,
		s.Z, u.Z, -f.Z,
	}
}

// LookAt returns the linear block and offset of the view transform placing a
// camera at eye looking at center.
func LookAt(eye, center, up vec.Vec3) (M3, [3]float64) {
	l := LookAlong3(center.Sub(eye), up)
	t := Apply3(l, [3]float64{eye.X, eye.Y, eye.Z})

	return l, [3]float64{-t[0], -t[1], -t[2]}
}

// Reflection returns the linear block and offset of the reflection about the
// plane a·x + b·y + c·z + d = 0. The plane is normalized here.
func Reflection(plane vec.Vec4) (M3, [3]float64) {
	n := plane.XYZ()
	l := n.Len()
	if l == 0 {
		return Ident3, [3]float64{}
	}
	inv := 1 / l
	a, b, c, d := n.X*inv, n.Y*inv, n.Z*inv, plane.W*inv

	lin := M3{
		1 - 2*a*a, -2 * a * b, -2 * a * c,
		-2 * a * b, 1 - 2*b*b, -2 * b * c,
		-2 * a * c, -2 * b * c, 1 - 2*c*c,
	}

	return lin, [3]float64{-2 * a * d, -2 * b * d, -2 * c * d}
}

// Ortho returns the linear block and offset of the OpenGL orthographic
// projection (z mapped to [-1, 1]). Degenerate extents yield Inf.
func Ortho(left, right, bottom, top, near, far float64) (M3, [3]float64) {
	rl, tb, fn := 1/(right-left), 1/(top-bottom), 1/(far-near)

	t := [3]float64{-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn}

	return Scaling3(2*rl, 2*tb, -2*fn), t
}

// Frustum4 returns the OpenGL perspective frustum projection.
func Frustum4(left, right, bottom, top, near, far float64) M4 {
	rl, tb, fn := 1/(right-left), 1/(top-bottom), 1/(far-near)

	var r M4
	r[0] = 2 * near * rl
	r[5] = 2 * near * tb
	r[8] = (right + left) * rl
	r[9] = (top + bottom) * tb
	r[10] = -(far + near) * fn
	r[11] = -1
	r[14] = -2 * far * near * fn

	return r
}

// Perspective4 returns the symmetric OpenGL perspective projection with a
// vertical field of view fovy (radians).
func Perspective4(fovy, aspect, near, far float64) M4 {
	f := 1 / math.Tan(fovy/2)
	nf := 1 / (near - far)

	var r M4
	r[0] = f / aspect
	r[5] = f
	r[10] = (far + near) * nf
	r[11] = -1
	r[14] = 2 * far * near * nf

	return r
}

// Shadow4 returns the planar projection of geometry onto plane as seen from
// light (w = 0 for a directional light, 1 for a point light).
func Shadow4(light, plane vec.Vec4) M4 {
	if n := plane.XYZ().Len(); n != 0 {
		plane = plane.Scale(1 / n)
	}
	dot := plane.Dot(light)
	l := [4]float64{light.X, light.Y, light.Z, light.W}
	p := [4]float64{plane.X, plane.Y, plane.Z, plane.W}

	var r M4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			v := -l[row] * p[c]
			if row == c {
				v += dot
			}
			r[c*4+row] = v
		}
	}

	return r
}

// Rotation32 returns the 2D rotation of angle radians (counter-clockwise).
func Rotation32(angle float64) M32 {
	s, c := math.Sincos(angle)
	return M32{c, s, -s, c, 0, 0}
}
