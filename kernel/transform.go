// SPDX-License-Identifier: MIT

package kernel

import "math"

// The Post kernels below compute a·op for a specific op in O(columns) work.
// They make no assumption about a, so they are valid on any receiver.

// Translate4 returns a·T(x, y, z).
func Translate4(a M4, x, y, z float64) M4 {
	for row := 0; row < 4; row++ {
		a[12+row] += a[row]*x + a[4+row]*y + a[8+row]*z
	}

	return a
}

// TranslateLocal4 returns T(x, y, z)·a.
func TranslateLocal4(a M4, x, y, z float64) M4 {
	for c := 0; c < 4; c++ {
		w := a[c*4+3]
		a[c*4] += x * w
		a[c*4+1] += y * w
		a[c*4+2] += z * w
	}

	return a
}

// Scale4 returns a·S(x, y, z).
func Scale4(a M4, x, y, z float64) M4 {
	for row := 0; row < 4; row++ {
		a[row] *= x
		a[4+row] *= y
		a[8+row] *= z
	}

	return a
}

// ScaleLocal4 returns S(x, y, z)·a.
func ScaleLocal4(a M4, x, y, z float64) M4 {
	for c := 0; c < 4; c++ {
		a[c*4] *= x
		a[c*4+1] *= y
		a[c*4+2] *= z
	}

	return a
}

// rotateCols4 replaces columns i and j of a with (ci·cos + cj·sin, cj·cos − ci·sin).
func rotateCols4(a M4, i, j int, angle float64) M4 {
	s, c := math.Sincos(angle)
	for row := 0; row < 4; row++ {
		ci, cj := a[i*4+row], a[j*4+row]
		a[i*4+row] = ci*c + cj*s
		a[j*4+row] = cj*c - ci*s
	}

	return a
}

// RotateX4 returns a·Rx(angle).
func RotateX4(a M4, angle float64) M4 { return rotateCols4(a, 1, 2, angle) }

// RotateY4 returns a·Ry(angle).
func RotateY4(a M4, angle float64) M4 { return rotateCols4(a, 2, 0, angle) }

// RotateZ4 returns a·Rz(angle).
func RotateZ4(a M4, angle float64) M4 { return rotateCols4(a, 0, 1, angle) }

// Translate43 returns a·T(x, y, z).
func Translate43(a M43, x, y, z float64) M43 {
	for row := 0; row < 3; row++ {
		a[9+row] += a[row]*x + a[3+row]*y + a[6+row]*z
	}

	return a
}

// TranslateLocal43 returns T(x, y, z)·a.
func TranslateLocal43(a M43, x, y, z float64) M43 {
	a[9] += x
	a[10] += y
	a[11] += z

	return a
}

// Scale43 returns a·S(x, y, z).
func Scale43(a M43, x, y, z float64) M43 {
	for row := 0; row < 3; row++ {
		a[row] *= x
		a[3+row] *= y
		a[6+row] *= z
	}

	return a
}

// ScaleLocal43 returns S(x, y, z)·a.
func ScaleLocal43(a M43, x, y, z float64) M43 {
	for c := 0; c < 4; c++ {
		a[c*3] *= x
		a[c*3+1] *= y
		a[c*3+2] *= z
	}

	return a
}

func rotateCols43(a M43, i, j int, angle float64) M43 {
	s, c := math.Sincos(angle)
	for row := 0; row < 3; row++ {
		ci, cj := a[i*3+row], a[j*3+row]
		a[i*3+row] = ci*c + cj*s
		a[j*3+row] = cj*c - ci*s
	}

	return a
}

// RotateX43 returns a·Rx(angle).
func RotateX43(a M43, angle float64) M43 { return rotateCols43(a, 1, 2, angle) }

// RotateY43 returns a·Ry(angle).
func RotateY43(a M43, angle float64) M43 { return rotateCols43(a, 2, 0, angle) }

// RotateZ43 returns a·Rz(angle).
func RotateZ43(a M43, angle float64) M43 { return rotateCols43(a, 0, 1, angle) }

// Scale3 returns a·S(x, y, z).
func Scale3(a M3, x, y, z float64) M3 {
	for row := 0; row < 3; row++ {
		a[row] *= x
		a[3+row] *= y
		a[6+row] *= z
	}

	return a
}

// Translate32 returns a·T(x, y).
func Translate32(a M32, x, y float64) M32 {
	a[4] += a[0]*x + a[2]*y
	a[5] += a[1]*x + a[3]*y

	return a
}

// TranslateLocal32 returns T(x, y)·a.
func TranslateLocal32(a M32, x, y float64) M32 {
	a[4] += x
	a[5] += y

	return a
}

// Scale32 returns a·S(x, y).
func Scale32(a M32, x, y float64) M32 {
	a[0] *= x
	a[1] *= x
	a[2] *= y
	a[3] *= y

	return a
}

// Rotate32 returns a·R(angle).
func Rotate32(a M32, angle float64) M32 {
	s, c := math.Sincos(angle)
	c0, c1 := a[0], a[1]
	d0, d1 := a[2], a[3]
	a[0], a[1] = c0*c+d0*s, c1*c+d1*s
	a[2], a[3] = d0*c-c0*s, d1*c-c1*s

	return a
}

// Transpose4 returns aᵀ.
func Transpose4(a M4) M4 {
	var r M4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			r[c*4+row] = a[row*4+c]
		}
	}

	return r
}

// TransposeLinear4 returns the 4×4 whose linear block is the transpose of
// a's and whose remaining entries are those of the identity.
func TransposeLinear4(a M4) M4 { return Lift3(Transpose3(Linear4(a))) }

// TransposeLinear43 is TransposeLinear4 for the 4×3 shape.
func TransposeLinear43(a M43) M43 { return Lift3To43(Transpose3(Linear43(a))) }

// TransposeLinear32 returns the 3×2 whose 2×2 block is the transpose of a's
// and whose offset is zero.
func TransposeLinear32(a M32) M32 {
	l := Transpose2(Linear32(a))
	return M32{l[0], l[1], l[2], l[3], 0, 0}
}
