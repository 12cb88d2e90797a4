// SPDX-License-Identifier: MIT

package kernel

import (
	"math"

	"github.com/katalvlaran/lvgeom/props"
)

// Classify4 returns the strongest property set a provably satisfies.
// Affinity, translation and identity are exact tests; orthonormality of the
// linear block is accepted within eps (see Orthonormal3). Non-finite entries
// never satisfy an exact test or the Gram test, so they only ever weaken the
// result.
func Classify4(a M4, eps float64) props.Set {
	if a[3] == 0 && a[7] == 0 && a[11] == 0 && a[15] == 1 {
		return classifyAffine(Linear4(a), Offset4(a), eps)
	}
	if IsPerspective4(a) {
		return props.Perspective
	}

	return props.Unknown
}

// IsPerspective4 reports whether a matches the zero pattern of a perspective
// projection:
//
//	m01 = m02 = m03 = m10 = m12 = m13 = m30 = m31 = m33 = 0, m23 ≠ 0
//
// with mCR naming column C, row R. That pattern is what MulPerspectiveAffine4
// and InvertPerspective4 rely on.
func IsPerspective4(a M4) bool {
	return a[1] == 0 && a[2] == 0 && a[3] == 0 &&
		a[4] == 0 && a[6] == 0 && a[7] == 0 &&
		a[12] == 0 && a[13] == 0 && a[15] == 0 &&
		a[11] != 0 && !math.IsNaN(a[11])
}

// Classify43 is Classify4 for the always-affine 4×3 shape.
func Classify43(a M43, eps float64) props.Set {
	return classifyAffine(Linear43(a), Offset43(a), eps)
}

// Classify3 classifies a linear 3×3. A shape without translation column can
// only be Identity, Orthonormal or Affine.
func Classify3(a M3, eps float64) props.Set {
	return classifyAffine(a, [3]float64{}, eps)
}

// Classify32 classifies an affine 3×2.
func Classify32(a M32, eps float64) props.Set {
	l := Linear32(a)
	s := props.Affine
	if l == [4]float64{1, 0, 0, 1} {
		s |= props.Translation
		if a[4] == 0 && a[5] == 0 {
			s |= props.Identity
		}
	}
	if orthonormalCols([][]float64{l[0:2], l[2:4]}, eps) {
		s |= props.Orthonormal
	}

	return props.Normalize(s)
}

func classifyAffine(l M3, t [3]float64, eps float64) props.Set {
	s := props.Affine
	if l == Ident3 {
		s |= props.Translation
		if t == ([3]float64{}) {
			s |= props.Identity
		}
	}
	if Orthonormal3(l, eps) {
		s |= props.Orthonormal
	}

	return props.Normalize(s)
}

// Orthonormal3 reports whether the columns of l are orthonormal.
// A signed permutation (every column a ±unit axis, no axis repeated) is
// accepted exactly; otherwise the Gram matrix must match the identity within
// eps entry-wise.
func Orthonormal3(l M3, eps float64) bool {
	return orthonormalCols([][]float64{l[0:3], l[3:6], l[6:9]}, eps)
}

func orthonormalCols(cols [][]float64, eps float64) bool {
	if signedPermutation(cols) {
		return true
	}
	for i := range cols {
		for j := i; j < len(cols); j++ {
			var dot float64
			for k := range cols[i] {
				dot += cols[i][k] * cols[j][k]
			}
			want := 0.0
			if i == j {
				want = 1
			}
			if !(math.Abs(dot-want) <= eps) {
				return false
			}
		}
	}

	return true
}

func signedPermutation(cols [][]float64) bool {
	var seen uint
	for _, col := range cols {
		hit := -1
		for k, v := range col {
			switch {
			case v == 0:
			case (v == 1 || v == -1) && hit < 0:
				hit = k
			default:
				return false
			}
		}
		if hit < 0 || seen&(1<<hit) != 0 {
			return false
		}
		seen |= 1 << hit
	}

	return true
}
