// SPDX-License-Identifier: MIT

package kernel

// Mul4 returns a·b with no structural assumptions.
func Mul4(a, b M4) M4 {
	var r M4
	for c := 0; c < 4; c++ {
		b0, b1, b2, b3 := b[c*4], b[c*4+1], b[c*4+2], b[c*4+3]
		for row := 0; row < 4; row++ {
			r[c*4+row] = a[row]*b0 + a[4+row]*b1 + a[8+row]*b2 + a[12+row]*b3
		}
	}

	return r
}

// MulAffine4 returns a·b where both operands are affine.
// The last row of the result is written as (0, 0, 0, 1) without computation.
func MulAffine4(a, b M4) M4 {
	la := Linear4(a)
	l := Mul3(la, Linear4(b))
	t := Apply3(la, Offset4(b))
	ta := Offset4(a)

	return Affine4(l, [3]float64{t[0] + ta[0], t[1] + ta[1], t[2] + ta[2]})
}

// MulTranslation4 returns a·b where a is a pure translation and b is affine.
// Only the offsets are added; the linear block of b is copied through.
func MulTranslation4(a, b M4) M4 {
	r := b
	r[12] += a[12]
	r[13] += a[13]
	r[14] += a[14]
	r[3], r[7], r[11], r[15] = 0, 0, 0, 1

	return r
}

// MulPerspectiveAffine4 returns a·b where a matches the perspective zero
// pattern (see ClassifyPerspective4) and b is affine.
func MulPerspectiveAffine4(a, b M4) M4 {
	a00, a11 := a[0], a[5]
	a20, a21, a22, a23 := a[8], a[9], a[10], a[11]
	a32 := a[14]

	var r M4
	for c := 0; c < 4; c++ {
		v0, v1, v2 := b[c*4], b[c*4+1], b[c*4+2]
		r[c*4] = a00*v0 + a20*v2
		r[c*4+1] = a11*v1 + a21*v2
		r[c*4+2] = a22 * v2
		r[c*4+3] = a23 * v2
	}
	// Only the offset column of an affine b carries w = 1.
	r[14] += a32

	return r
}

// Mul43 returns a·b for affine 4×3 operands.
func Mul43(a, b M43) M43 {
	la := Linear43(a)
	t := Apply3(la, Offset43(b))
	ta := Offset43(a)

	return Affine43(Mul3(la, Linear43(b)), [3]float64{t[0] + ta[0], t[1] + ta[1], t[2] + ta[2]})
}

// MulTranslation43 returns a·b where a is a pure translation.
func MulTranslation43(a, b M43) M43 {
	r := b
	r[9] += a[9]
	r[10] += a[10]
	r[11] += a[11]

	return r
}

// Mul32 returns a·b for affine 3×2 operands.
func Mul32(a, b M32) M32 {
	la := Linear32(a)
	l := Mul2(la, Linear32(b))
	t := Apply2(la, [2]float64{b[4], b[5]})

	return M32{l[0], l[1], l[2], l[3], t[0] + a[4], t[1] + a[5]}
}

// MulTranslation32 returns a·b where a is a pure translation.
func MulTranslation32(a, b M32) M32 {
	r := b
	r[4] += a[4]
	r[5] += a[5]

	return r
}

// Add4 returns the component-wise sum a+b.
func Add4(a, b M4) M4 {
	for i := range a {
		a[i] += b[i]
	}

	return a
}

// Add43 returns the component-wise sum a+b.
func Add43(a, b M43) M43 {
	for i := range a {
		a[i] += b[i]
	}

	return a
}

// Add3 returns the component-wise sum a+b.
func Add3(a, b M3) M3 {
	for i := range a {
		a[i] += b[i]
	}

	return a
}

// Add32 returns the component-wise sum a+b.
func Add32(a, b M32) M32 {
	for i := range a {
		a[i] += b[i]
	}

	return a
}
