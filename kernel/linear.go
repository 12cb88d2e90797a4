// SPDX-License-Identifier: MIT

package kernel

// Mul3 returns a·b for 3×3 linear maps.
func Mul3(a, b M3) M3 {
	var r M3
	for c := 0; c < 3; c++ {
		b0, b1, b2 := b[c*3], b[c*3+1], b[c*3+2]
		r[c*3] = a[0]*b0 + a[3]*b1 + a[6]*b2
		r[c*3+1] = a[1]*b0 + a[4]*b1 + a[7]*b2
		r[c*3+2] = a[2]*b0 + a[5]*b1 + a[8]*b2
	}

	return r
}

// Apply3 returns a·v.
func Apply3(a M3, v [3]float64) [3]float64 {
	return [3]float64{
		a[0]*v[0] + a[3]*v[1] + a[6]*v[2],
		a[1]*v[0] + a[4]*v[1] + a[7]*v[2],
		a[2]*v[0] + a[5]*v[1] + a[8]*v[2],
	}
}

// Det3 returns the determinant of a.
func Det3(a M3) float64 {
	return a[0]*(a[4]*a[8]-a[5]*a[7]) -
		a[1]*(a[3]*a[8]-a[5]*a[6]) +
		a[2]*(a[3]*a[7]-a[4]*a[6])
}

// Invert3 returns a⁻¹ by cofactor expansion.
// The adjugate formula is symmetric under transposition, so it works on the
// column-major array unchanged.
func Invert3(a M3) M3 {
	inv := 1 / Det3(a)

	return M3{
		(a[4]*a[8] - a[5]*a[7]) * inv,
		(a[2]*a[7] - a[1]*a[8]) * inv,
		(a[1]*a[5] - a[2]*a[4]) * inv,
		(a[5]*a[6] - a[3]*a[8]) * inv,
		(a[0]*a[8] - a[2]*a[6]) * inv,
		(a[2]*a[3] - a[0]*a[5]) * inv,
		(a[3]*a[7] - a[4]*a[6]) * inv,
		(a[1]*a[6] - a[0]*a[7]) * inv,
		(a[0]*a[4] - a[1]*a[3]) * inv,
	}
}

// Transpose3 returns aᵀ.
func Transpose3(a M3) M3 {
	return M3{a[0], a[3], a[6], a[1], a[4], a[7], a[2], a[5], a[8]}
}

// Normal3 returns (a⁻¹)ᵀ, the matrix that transforms surface normals.
func Normal3(a M3) M3 { return Transpose3(Invert3(a)) }

// Scaling3 returns diag(x, y, z).
func Scaling3(x, y, z float64) M3 { return M3{x, 0, 0, 0, y, 0, 0, 0, z} }

// Mul2 returns a·b for 2×2 blocks stored (c0r0, c0r1, c1r0, c1r1).
func Mul2(a, b [4]float64) [4]float64 {
	return [4]float64{
		a[0]*b[0] + a[2]*b[1],
		a[1]*b[0] + a[3]*b[1],
		a[0]*b[2] + a[2]*b[3],
		a[1]*b[2] + a[3]*b[3],
	}
}

// Apply2 returns a·v.
func Apply2(a [4]float64, v [2]float64) [2]float64 {
	return [2]float64{a[0]*v[0] + a[2]*v[1], a[1]*v[0] + a[3]*v[1]}
}

// Det2 returns the determinant of a 2×2 block.
func Det2(a [4]float64) float64 { return a[0]*a[3] - a[2]*a[1] }

// Invert2 returns the inverse of a 2×2 block.
func Invert2(a [4]float64) [4]float64 {
	inv := 1 / Det2(a)

	return [4]float64{a[3] * inv, -a[1] * inv, -a[2] * inv, a[0] * inv}
}

// Transpose2 returns the transpose of a 2×2 block.
func Transpose2(a [4]float64) [4]float64 { return [4]float64{a[0], a[2], a[1], a[3]} }
