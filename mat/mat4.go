// SPDX-License-Identifier: MIT

package mat

import (
	"fmt"

	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/lvgeom/kernel"
	"github.com/katalvlaran/lvgeom/props"
	"github.com/katalvlaran/lvgeom/vec"
)

const typeMat4 = "Mat4"

// Mat4 is a 4×4 homogeneous transform with tracked properties.
// The zero value is the zero matrix with an empty property set.
type Mat4 struct {
	m kernel.M4
	p props.Set
}

// Ident4 returns the 4×4 identity.
func Ident4() Mat4 {
	var m Mat4
	m.SetIdentity()

	return m
}

// NewMat4 returns a matrix holding the column-major entries e, classified
// with the given options.
func NewMat4(e [16]float64, opts ...props.Option) Mat4 {
	var m Mat4
	m.SetRawClassified(e, opts...)

	return m
}

// Mat4FromSlice is NewMat4 for a slice of exactly 16 column-major entries.
func Mat4FromSlice(s []float64, opts ...props.Option) (Mat4, error) {
	if len(s) != len(kernel.M4{}) {
		return Mat4{}, fmt.Errorf("Mat4FromSlice(len=%d): %w", len(s), ErrDimensionMismatch)
	}

	return NewMat4([16]float64(s), opts...), nil
}

// Properties returns the tracked property set.
func (m *Mat4) Properties() props.Set { return m.p }

// State returns the state-machine view of the tracked set.
func (m *Mat4) State() props.State { return props.StateOf(m.p) }

// Raw returns the column-major entries.
func (m *Mat4) Raw() [16]float64 { return m.m }

// At returns the entry in column col, row row.
func (m *Mat4) At(col, row int) (float64, error) {
	if err := checkCell(typeMat4, "At", 4, 4, col, row); err != nil {
		return 0, err
	}

	return m.m[col*4+row], nil
}

// Set writes one entry. The property set is reset to Unknown.
func (m *Mat4) Set(col, row int, v float64) error {
	if err := checkCell(typeMat4, "Set", 4, 4, col, row); err != nil {
		return err
	}
	m.m[col*4+row] = v
	m.p = props.Unknown

	return nil
}

// Col returns column i.
func (m *Mat4) Col(i int) (vec.Vec4, error) {
	if err := checkLine(typeMat4, "Col", 4, i); err != nil {
		return vec.Vec4{}, err
	}

	return vec.V4(m.m[i*4], m.m[i*4+1], m.m[i*4+2], m.m[i*4+3]), nil
}

// Row returns row i.
func (m *Mat4) Row(i int) (vec.Vec4, error) {
	if err := checkLine(typeMat4, "Row", 4, i); err != nil {
		return vec.Vec4{}, err
	}

	return vec.V4(m.m[i], m.m[4+i], m.m[8+i], m.m[12+i]), nil
}

// SetCol replaces column i. The property set is reset to Unknown.
func (m *Mat4) SetCol(i int, v vec.Vec4) error {
	if err := checkLine(typeMat4, "SetCol", 4, i); err != nil {
		return err
	}
	m.m[i*4], m.m[i*4+1], m.m[i*4+2], m.m[i*4+3] = v.X, v.Y, v.Z, v.W
	m.p = props.Unknown

	return nil
}

// SetRow replaces row i. The property set is reset to Unknown.
func (m *Mat4) SetRow(i int, v vec.Vec4) error {
	if err := checkLine(typeMat4, "SetRow", 4, i); err != nil {
		return err
	}
	m.m[i], m.m[4+i], m.m[8+i], m.m[12+i] = v.X, v.Y, v.Z, v.W
	m.p = props.Unknown

	return nil
}

// SetRaw replaces all entries and resets the property set to Unknown.
func (m *Mat4) SetRaw(e [16]float64) {
	m.m = e
	m.p = props.Unknown
}

// SetRawClassified replaces all entries and classifies them. The stored
// claim uses the configured tolerance capped at props.ClaimEpsilon.
func (m *Mat4) SetRawClassified(e [16]float64, opts ...props.Option) {
	m.m = e
	m.p = d4.Classify(e, props.Gather(opts...).ClaimTolerance())
}

// Classify re-derives the property set from the entries, stores and returns
// it. Like SetRawClassified, the orthonormality test runs at
// Options.ClaimTolerance so a near-orthonormal matrix is never tracked as one.
func (m *Mat4) Classify(opts ...props.Option) props.Set {
	m.p = d4.Classify(m.m, props.Gather(opts...).ClaimTolerance())
	return m.p
}

// Classified reports the property set the entries satisfy at the configured
// tolerance, without storing it. With the default options it can only be
// stronger than what Classify stores.
func (m *Mat4) Classified(opts ...props.Option) props.Set {
	return d4.Classify(m.m, props.Gather(opts...).Epsilon())
}

// IsFinite reports whether no entry is NaN or ±Inf.
func (m *Mat4) IsFinite() bool { return kernel.Finite(m.m[:]) }

// Determinant returns det(m), using the 3×3 block alone when m is affine.
func (m *Mat4) Determinant() float64 {
	if m.p.Has(props.Affine) {
		return kernel.DetAffine4(m.m)
	}

	return kernel.Det4(m.m)
}

// F32 returns m as a row-major float32 matrix.
func (m *Mat4) F32() f32.Mat4 {
	var out f32.Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[r*4+c] = float32(m.m[c*4+r])
		}
	}

	return out
}

// SetF32 replaces the entries with the row-major float32 matrix a and
// classifies them.
func (m *Mat4) SetF32(a f32.Mat4, opts ...props.Option) {
	var e kernel.M4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			e[c*4+r] = float64(a[r*4+c])
		}
	}
	m.SetRawClassified(e, opts...)
}

// SetMat3 replaces m with the embedding of a (zero offset, identity last row).
// a's properties carry over.
func (m *Mat4) SetMat3(a *Mat3) {
	m.m = kernel.Lift3(a.m)
	m.p = d4.Caps().Fit(a.p)
}

// SetMat4x3 replaces m with the embedding of a (identity last row).
func (m *Mat4) SetMat4x3(a *Mat4x3) {
	m.m = kernel.Lift43(a.m)
	m.p = d4.Caps().Fit(a.p)
}

// TransformPosition returns m·(v, 1) with the perspective divide applied when
// m is not affine.
func (m *Mat4) TransformPosition(v vec.Vec3) vec.Vec3 {
	if m.p.Has(props.Affine) {
		t := kernel.Apply3(kernel.Linear4(m.m), [3]float64{v.X, v.Y, v.Z})
		return vec.V3(t[0]+m.m[12], t[1]+m.m[13], t[2]+m.m[14])
	}

	return m.Transform(v.Vec4(1)).PerspectiveDivide()
}

// TransformDirection returns the linear block applied to v (w = 0).
func (m *Mat4) TransformDirection(v vec.Vec3) vec.Vec3 {
	t := kernel.Apply3(kernel.Linear4(m.m), [3]float64{v.X, v.Y, v.Z})
	return vec.V3(t[0], t[1], t[2])
}

// Transform returns m·v.
func (m *Mat4) Transform(v vec.Vec4) vec.Vec4 {
	a := &m.m
	return vec.V4(
		a[0]*v.X+a[4]*v.Y+a[8]*v.Z+a[12]*v.W,
		a[1]*v.X+a[5]*v.Y+a[9]*v.Z+a[13]*v.W,
		a[2]*v.X+a[6]*v.Y+a[10]*v.Z+a[14]*v.W,
		a[3]*v.X+a[7]*v.Y+a[11]*v.Z+a[15]*v.W,
	)
}

// TransformProject returns m·(v, 1) divided by its w component.
func (m *Mat4) TransformProject(v vec.Vec3) vec.Vec3 {
	return m.Transform(v.Vec4(1)).PerspectiveDivide()
}

// EqualApprox reports whether every entry of m and o differs by at most eps.
// Property sets are not compared.
func (m *Mat4) EqualApprox(o *Mat4, eps float64) bool { return approxEqual(m.m[:], o.m[:], eps) }

// String renders the matrix row by row followed by its property set.
func (m *Mat4) String() string { return format(typeMat4, m.m[:], 4, 4, m.p) }
