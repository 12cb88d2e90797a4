// SPDX-License-Identifier: MIT

package kernel

// Invert4 returns a⁻¹ by expansion over the 2×2 minors of the upper and lower
// row pairs. A singular a yields Inf/NaN entries.
func Invert4(m M4) M4 {
	m00, m01, m02, m03 := m[0], m[1], m[2], m[3]
	m10, m11, m12, m13 := m[4], m[5], m[6], m[7]
	m20, m21, m22, m23 := m[8], m[9], m[10], m[11]
	m30, m31, m32, m33 := m[12], m[13], m[14], m[15]

	a := m00*m11 - m01*m10
	b := m00*m12 - m02*m10
	c := m00*m13 - m03*m10
	d := m01*m12 - m02*m11
	e := m01*m13 - m03*m11
	f := m02*m13 - m03*m12
	g := m20*m31 - m21*m30
	h := m20*m32 - m22*m30
	i := m20*m33 - m23*m30
	j := m21*m32 - m22*m31
	k := m21*m33 - m23*m31
	l := m22*m33 - m23*m32

	det := 1 / (a*l - b*k + c*j + d*i - e*h + f*g)

	return M4{
		(m11*l - m12*k + m13*j) * det,
		(-m01*l + m02*k - m03*j) * det,
		(m31*f - m32*e + m33*d) * det,
		(-m21*f + m22*e - m23*d) * det,

		(-m10*l + m12*i - m13*h) * det,
		(m00*l - m02*i + m03*h) * det,
		(-m30*f + m32*c - m33*b) * det,
		(m20*f - m22*c + m23*b) * det,

		(m10*k - m11*i + m13*g) * det,
		(-m00*k + m01*i - m03*g) * det,
		(m30*e - m31*c + m33*a) * det,
		(-m20*e + m21*c - m23*a) * det,

		(-m10*j + m11*h - m12*g) * det,
		(m00*j - m01*h + m02*g) * det,
		(-m30*d + m31*b - m32*a) * det,
		(m20*d - m21*b + m22*a) * det,
	}
}

// invertAffine inverts the affine map x ↦ l·x + t.
func invertAffine(l M3, t [3]float64) (M3, [3]float64) {
	li := Invert3(l)
	u := Apply3(li, t)

	return li, [3]float64{-u[0], -u[1], -u[2]}
}

// invertRigid inverts x ↦ l·x + t for an orthonormal l (l⁻¹ = lᵀ).
func invertRigid(l M3, t [3]float64) (M3, [3]float64) {
	lt := Transpose3(l)
	u := Apply3(lt, t)

	return lt, [3]float64{-u[0], -u[1], -u[2]}
}

// InvertAffine4 returns a⁻¹ for an affine a.
func InvertAffine4(a M4) M4 { return Affine4(invertAffine(Linear4(a), Offset4(a))) }

// InvertOrthonormal4 returns a⁻¹ for an affine a with orthonormal linear block.
func InvertOrthonormal4(a M4) M4 { return Affine4(invertRigid(Linear4(a), Offset4(a))) }

// InvertTranslation4 returns a⁻¹ for a pure translation.
func InvertTranslation4(a M4) M4 {
	r := Ident4
	r[12], r[13], r[14] = -a[12], -a[13], -a[14]

	return r
}

// InvertPerspective4 returns a⁻¹ for an a matching the perspective zero
// pattern. The result does not match that pattern itself.
func InvertPerspective4(m M4) M4 {
	a, b := m[0], m[5]
	c, d, e, g := m[8], m[9], m[10], m[11]
	f := m[14]

	invA, invB := 1/a, 1/b
	invG := 1 / g

	var r M4
	r[0] = invA
	r[5] = invB
	r[11] = 1 / f
	r[12] = -c * invA * invG
	r[13] = -d * invB * invG
	r[14] = invG
	r[15] = -e / (f * g)

	return r
}

// Invert43 returns a⁻¹ for an affine 4×3.
func Invert43(a M43) M43 { return Affine43(invertAffine(Linear43(a), Offset43(a))) }

// InvertOrthonormal43 returns a⁻¹ when the linear block is orthonormal.
func InvertOrthonormal43(a M43) M43 { return Affine43(invertRigid(Linear43(a), Offset43(a))) }

// InvertTranslation43 returns a⁻¹ for a pure translation.
func InvertTranslation43(a M43) M43 {
	r := Ident43
	r[9], r[10], r[11] = -a[9], -a[10], -a[11]

	return r
}

// Invert32 returns a⁻¹ for an affine 3×2.
func Invert32(a M32) M32 {
	li := Invert2(Linear32(a))
	u := Apply2(li, [2]float64{a[4], a[5]})

	return M32{li[0], li[1], li[2], li[3], -u[0], -u[1]}
}

// InvertOrthonormal32 returns a⁻¹ when the 2×2 block is orthonormal.
func InvertOrthonormal32(a M32) M32 {
	lt := Transpose2(Linear32(a))
	u := Apply2(lt, [2]float64{a[4], a[5]})

	return M32{lt[0], lt[1], lt[2], lt[3], -u[0], -u[1]}
}

// InvertTranslation32 returns a⁻¹ for a pure translation.
func InvertTranslation32(a M32) M32 { return M32{1, 0, 0, 1, -a[4], -a[5]} }

// InvertOrthonormal3 returns aᵀ, the inverse of an orthonormal a.
func InvertOrthonormal3(a M3) M3 { return Transpose3(a) }

// Det4 returns the determinant of a general 4×4.
func Det4(m M4) float64 {
	m00, m01, m02, m03 := m[0], m[1], m[2], m[3]
	m10, m11, m12, m13 := m[4], m[5], m[6], m[7]
	m20, m21, m22, m23 := m[8], m[9], m[10], m[11]
	m30, m31, m32, m33 := m[12], m[13], m[14], m[15]

	return (m00*m11-m01*m10)*(m22*m33-m23*m32) -
		(m00*m12-m02*m10)*(m21*m33-m23*m31) +
		(m00*m13-m03*m10)*(m21*m32-m22*m31) +
		(m01*m12-m02*m11)*(m20*m33-m23*m30) -
		(m01*m13-m03*m11)*(m20*m32-m22*m30) +
		(m02*m13-m03*m12)*(m20*m31-m21*m30)
}

// DetAffine4 returns the determinant of an affine 4×4 (that of its linear block).
func DetAffine4(a M4) float64 { return Det3(Linear4(a)) }

// Det43 returns the determinant of the implicit 4×4 (that of the linear block).
func Det43(a M43) float64 { return Det3(Linear43(a)) }

// Det32 returns the determinant of the implicit 3×3 (that of the 2×2 block).
func Det32(a M32) float64 { return Det2(Linear32(a)) }
