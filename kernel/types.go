// SPDX-License-Identifier: MIT

package kernel

import "math"

// M4 is a column-major 4×4 matrix: m[col*4+row].
type M4 [16]float64

// M43 is a column-major affine matrix with 4 columns and 3 rows: m[col*3+row].
// The implicit fourth row is (0, 0, 0, 1).
type M43 [12]float64

// M3 is a column-major 3×3 matrix: m[col*3+row].
type M3 [9]float64

// M32 is a column-major affine matrix with 3 columns and 2 rows: m[col*2+row].
// The implicit third row is (0, 0, 1).
type M32 [6]float64

// Identity values, one per shape.
var (
	Ident4  = M4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	Ident43 = M43{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0}
	Ident3  = M3{1, 0, 0, 0, 1, 0, 0, 0, 1}
	Ident32 = M32{1, 0, 0, 1, 0, 0}
)

// Linear4 returns the upper-left 3×3 block of a.
func Linear4(a M4) M3 {
	return M3{a[0], a[1], a[2], a[4], a[5], a[6], a[8], a[9], a[10]}
}

// Offset4 returns the translation column of a (rows 0..2 of column 3).
func Offset4(a M4) [3]float64 { return [3]float64{a[12], a[13], a[14]} }

// Affine4 assembles an affine 4×4 from a linear block and an offset.
func Affine4(l M3, t [3]float64) M4 {
	return M4{
		l[0], l[1], l[2], 0,
		l[3], l[4], l[5], 0,
		l[6], l[7], l[8], 0,
		t[0], t[1], t[2], 1,
	}
}

// Linear43 returns the 3×3 linear block of a.
func Linear43(a M43) M3 { return M3(a[0:9]) }

// Offset43 returns the translation column of a.
func Offset43(a M43) [3]float64 { return [3]float64{a[9], a[10], a[11]} }

// Affine43 assembles a 4×3 from a linear block and an offset.
func Affine43(l M3, t [3]float64) M43 {
	return M43{l[0], l[1], l[2], l[3], l[4], l[5], l[6], l[7], l[8], t[0], t[1], t[2]}
}

// Trim4 drops the last row of a. The result equals a only when a is affine.
func Trim4(a M4) M43 { return Affine43(Linear4(a), Offset4(a)) }

// Lift43 embeds a into a 4×4 with the identity last row.
func Lift43(a M43) M4 { return Affine4(Linear43(a), Offset43(a)) }

// Lift3 embeds a linear map into a 4×4 with zero offset.
func Lift3(a M3) M4 { return Affine4(a, [3]float64{}) }

// Lift3To43 embeds a linear map into a 4×3 with zero offset.
func Lift3To43(a M3) M43 { return Affine43(a, [3]float64{}) }

// Linear32 returns the 2×2 linear block of a as (c0r0, c0r1, c1r0, c1r1).
func Linear32(a M32) [4]float64 { return [4]float64{a[0], a[1], a[2], a[3]} }

// Finite reports whether no entry of s is NaN or ±Inf.
func Finite(s []float64) bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
