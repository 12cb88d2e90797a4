// SPDX-License-Identifier: MIT

package mat

import (
	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/lvgeom/dispatch"
	"github.com/katalvlaran/lvgeom/kernel"
	"github.com/katalvlaran/lvgeom/props"
	"github.com/katalvlaran/lvgeom/vec"
)

const typeMat3x2 = "Mat3x2"

// Mat3x2 is a 2D affine transform stored as 3 columns of 2 rows; the last
// row (0, 0, 1) is implicit. It is always Affine.
type Mat3x2 struct {
	m kernel.M32
	p props.Set
}

// Ident3x2 returns the 2D identity transform.
func Ident3x2() Mat3x2 {
	var m Mat3x2
	m.SetIdentity()

	return m
}

// NewMat3x2 returns a classified matrix holding the column-major entries e.
func NewMat3x2(e [6]float64, opts ...props.Option) Mat3x2 {
	var m Mat3x2
	m.SetRawClassified(e, opts...)

	return m
}

func (m *Mat3x2) Properties() props.Set { return m.p }
func (m *Mat3x2) State() props.State    { return props.StateOf(m.p) }
func (m *Mat3x2) Raw() [6]float64       { return m.m }

// At returns the entry in column col, row row.
func (m *Mat3x2) At(col, row int) (float64, error) {
	if err := checkCell(typeMat3x2, "At", 3, 2, col, row); err != nil {
		return 0, err
	}

	return m.m[col*2+row], nil
}

// Set writes one entry; the set falls back to Affine.
func (m *Mat3x2) Set(col, row int, v float64) error {
	if err := checkCell(typeMat3x2, "Set", 3, 2, col, row); err != nil {
		return err
	}
	m.m[col*2+row] = v
	m.p = d32.Caps().Fit(props.Unknown)

	return nil
}

// Col returns column i.
func (m *Mat3x2) Col(i int) (vec.Vec2, error) {
	if err := checkLine(typeMat3x2, "Col", 3, i); err != nil {
		return vec.Vec2{}, err
	}

	return vec.V2(m.m[i*2], m.m[i*2+1]), nil
}

// Row returns row i.
func (m *Mat3x2) Row(i int) (vec.Vec3, error) {
	if err := checkLine(typeMat3x2, "Row", 2, i); err != nil {
		return vec.Vec3{}, err
	}

	return vec.V3(m.m[i], m.m[2+i], m.m[4+i]), nil
}

// SetRaw replaces all entries; the set falls back to Affine.
func (m *Mat3x2) SetRaw(e [6]float64) {
	m.m = e
	m.p = d32.Caps().Fit(props.Unknown)
}

// SetRawClassified replaces all entries and classifies them.
func (m *Mat3x2) SetRawClassified(e [6]float64, opts ...props.Option) {
	m.m = e
	m.p = d32.Classify(e, props.Gather(opts...).ClaimTolerance())
}

func (m *Mat3x2) Classify(opts ...props.Option) props.Set {
	m.p = d32.Classify(m.m, props.Gather(opts...).ClaimTolerance())
	return m.p
}

func (m *Mat3x2) Classified(opts ...props.Option) props.Set {
	return d32.Classify(m.m, props.Gather(opts...).Epsilon())
}

func (m *Mat3x2) IsFinite() bool       { return kernel.Finite(m.m[:]) }
func (m *Mat3x2) Determinant() float64 { return kernel.Det32(m.m) }

// TransformPosition returns L·v + t.
func (m *Mat3x2) TransformPosition(v vec.Vec2) vec.Vec2 {
	return vec.V2(m.m[0]*v.X+m.m[2]*v.Y+m.m[4], m.m[1]*v.X+m.m[3]*v.Y+m.m[5])
}

// TransformDirection returns L·v.
func (m *Mat3x2) TransformDirection(v vec.Vec2) vec.Vec2 {
	return vec.V2(m.m[0]*v.X+m.m[2]*v.Y, m.m[1]*v.X+m.m[3]*v.Y)
}

// F32 returns m as a row-major float32 affine matrix.
func (m *Mat3x2) F32() f32.Aff3 {
	return f32.Aff3{
		float32(m.m[0]), float32(m.m[2]), float32(m.m[4]),
		float32(m.m[1]), float32(m.m[3]), float32(m.m[5]),
	}
}

// SetF32 replaces the entries with the row-major float32 affine matrix a and
// classifies them.
func (m *Mat3x2) SetF32(a f32.Aff3, opts ...props.Option) {
	m.SetRawClassified([6]float64{
		float64(a[0]), float64(a[3]),
		float64(a[1]), float64(a[4]),
		float64(a[2]), float64(a[5]),
	}, opts...)
}

func (m *Mat3x2) EqualApprox(o *Mat3x2, eps float64) bool { return approxEqual(m.m[:], o.m[:], eps) }
func (m *Mat3x2) String() string                          { return format(typeMat3x2, m.m[:], 3, 2, m.p) }

func (m *Mat3x2) SetIdentity()       { m.m, m.p = d32.Identity() }
func (m *Mat3x2) Mul(l, r *Mat3x2)   { m.m, m.p = d32.Mul(l.m, l.p, r.m, r.p) }
func (m *Mat3x2) MulLocal(l *Mat3x2) { m.m, m.p = d32.Mul(l.m, l.p, m.m, m.p) }
func (m *Mat3x2) Invert(src *Mat3x2) { m.m, m.p = d32.Invert(src.m, src.p) }
func (m *Mat3x2) Add(a, b *Mat3x2)   { m.m, m.p = d32.Add(a.m, a.p, b.m, b.p) }

// SetTranslation makes m a pure translation.
func (m *Mat3x2) SetTranslation(x, y float64) {
	m.m, m.p = kernel.M32{1, 0, 0, 1, x, y}, d32.Caps().Fit(props.FromOffset(x, y))
}

// SetScaling makes m a scaling.
func (m *Mat3x2) SetScaling(x, y float64) {
	m.m, m.p = kernel.M32{x, 0, 0, y, 0, 0}, d32.Caps().Fit(props.FromScale(x, y))
}

// SetRotation makes m a counter-clockwise rotation of angle radians.
func (m *Mat3x2) SetRotation(angle float64) {
	m.m, m.p = kernel.Rotation32(angle), d32.Caps().Fit(props.Orthonormal)
}

// Translate sets m = m × T(x, y).
func (m *Mat3x2) Translate(x, y float64) { m.apply(translate32(x, y)) }

// TranslateLocal sets m = T(x, y) × m.
func (m *Mat3x2) TranslateLocal(x, y float64) { m.applyLocal(translate32(x, y)) }

// Scale sets m = m × S(x, y).
func (m *Mat3x2) Scale(x, y float64) {
	m.apply(dispatch.Op[kernel.M32]{
		Name:  "scale",
		Build: func() kernel.M32 { return kernel.M32{x, 0, 0, y, 0, 0} },
		Props: props.FromScale(x, y),
		Post:  func(a kernel.M32) kernel.M32 { return kernel.Scale32(a, x, y) },
	})
}

// Rotate sets m = m × R(angle).
func (m *Mat3x2) Rotate(angle float64) {
	m.apply(dispatch.Op[kernel.M32]{
		Name:  "rotate",
		Build: func() kernel.M32 { return kernel.Rotation32(angle) },
		Props: props.Normalize(props.Orthonormal),
		Post:  func(a kernel.M32) kernel.M32 { return kernel.Rotate32(a, angle) },
	})
}

func (m *Mat3x2) apply(op dispatch.Op[kernel.M32])      { m.m, m.p, _ = d32.Apply(m.m, m.p, op) }
func (m *Mat3x2) applyLocal(op dispatch.Op[kernel.M32]) { m.m, m.p, _ = d32.ApplyLocal(m.m, m.p, op) }

func translate32(x, y float64) dispatch.Op[kernel.M32] {
	return dispatch.Op[kernel.M32]{
		Name:  "translate",
		Build: func() kernel.M32 { return kernel.M32{1, 0, 0, 1, x, y} },
		Props: props.FromOffset(x, y),
		Post:  func(a kernel.M32) kernel.M32 { return kernel.Translate32(a, x, y) },
		Pre:   func(a kernel.M32) kernel.M32 { return kernel.TranslateLocal32(a, x, y) },
	}
}
