// SPDX-License-Identifier: MIT

package mat

import (
	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/lvgeom/dispatch"
	"github.com/katalvlaran/lvgeom/kernel"
	"github.com/katalvlaran/lvgeom/props"
	"github.com/katalvlaran/lvgeom/vec"
)

const typeMat3 = "Mat3"

// Mat3 is a 3×3 linear map (rotation, scale, normal matrix). It has no
// offset column, so Translation and Identity coincide, and it is always
// Affine when viewed as the linear block of a 4×4.
type Mat3 struct {
	m kernel.M3
	p props.Set
}

// Ident3 returns the 3×3 identity.
func Ident3() Mat3 {
	var m Mat3
	m.SetIdentity()

	return m
}

// NewMat3 returns a classified matrix holding the column-major entries e.
func NewMat3(e [9]float64, opts ...props.Option) Mat3 {
	var m Mat3
	m.SetRawClassified(e, opts...)

	return m
}

func (m *Mat3) Properties() props.Set { return m.p }
func (m *Mat3) State() props.State    { return props.StateOf(m.p) }
func (m *Mat3) Raw() [9]float64       { return m.m }

// At returns the entry in column col, row row.
func (m *Mat3) At(col, row int) (float64, error) {
	if err := checkCell(typeMat3, "At", 3, 3, col, row); err != nil {
		return 0, err
	}

	return m.m[col*3+row], nil
}

// Set writes one entry; the set falls back to Affine.
func (m *Mat3) Set(col, row int, v float64) error {
	if err := checkCell(typeMat3, "Set", 3, 3, col, row); err != nil {
		return err
	}
	m.m[col*3+row] = v
	m.p = d3.Caps().Fit(props.Unknown)

	return nil
}

// Col returns column i.
func (m *Mat3) Col(i int) (vec.Vec3, error) {
	if err := checkLine(typeMat3, "Col", 3, i); err != nil {
		return vec.Vec3{}, err
	}

	return vec.V3(m.m[i*3], m.m[i*3+1], m.m[i*3+2]), nil
}

// Row returns row i.
func (m *Mat3) Row(i int) (vec.Vec3, error) {
	if err := checkLine(typeMat3, "Row", 3, i); err != nil {
		return vec.Vec3{}, err
	}

	return vec.V3(m.m[i], m.m[3+i], m.m[6+i]), nil
}

// SetCol replaces column i; the set falls back to Affine.
func (m *Mat3) SetCol(i int, v vec.Vec3) error {
	if err := checkLine(typeMat3, "SetCol", 3, i); err != nil {
		return err
	}
	m.m[i*3], m.m[i*3+1], m.m[i*3+2] = v.X, v.Y, v.Z
	m.p = d3.Caps().Fit(props.Unknown)

	return nil
}

// SetRow replaces row i; the set falls back to Affine.
func (m *Mat3) SetRow(i int, v vec.Vec3) error {
	if err := checkLine(typeMat3, "SetRow", 3, i); err != nil {
		return err
	}
	m.m[i], m.m[3+i], m.m[6+i] = v.X, v.Y, v.Z
	m.p = d3.Caps().Fit(props.Unknown)

	return nil
}

// SetRaw replaces all entries; the set falls back to Affine.
func (m *Mat3) SetRaw(e [9]float64) {
	m.m = e
	m.p = d3.Caps().Fit(props.Unknown)
}

// SetRawClassified replaces all entries and classifies them.
func (m *Mat3) SetRawClassified(e [9]float64, opts ...props.Option) {
	m.m = e
	m.p = d3.Classify(e, props.Gather(opts...).ClaimTolerance())
}

// SetMat4 keeps the linear block of a. Orthonormality and identity of the
// block are only known when a is affine.
func (m *Mat3) SetMat4(a *Mat4) {
	m.m = kernel.Linear4(a.m)
	m.p = d3.Caps().Fit(linearPart(a.p))
}

// SetMat4x3 keeps the linear block of a.
func (m *Mat3) SetMat4x3(a *Mat4x3) {
	m.m = kernel.Linear43(a.m)
	m.p = d3.Caps().Fit(linearPart(a.p))
}

// linearPart maps the set of an affine transform to that of its linear block:
// a Translation has an identity block.
func linearPart(s props.Set) props.Set {
	if !s.Has(props.Affine) {
		return props.Unknown
	}
	if s.Has(props.Translation) {
		return props.Normalize(props.Identity)
	}

	return s
}

// SetNormal sets m to the normal matrix of the 4×4 src.
func (m *Mat3) SetNormal(src *Mat4) {
	m.m = normalBlock(kernel.Linear4(src.m), src.p)
	m.p = d3.Caps().Fit(props.TransposeLinear(src.p))
}

// Normal sets m to the inverse transpose of src.
func (m *Mat3) Normal(src *Mat3) {
	m.m = normalBlock(src.m, src.p)
	m.p = d3.Caps().Fit(props.TransposeLinear(src.p))
}

func (m *Mat3) Classify(opts ...props.Option) props.Set {
	m.p = d3.Classify(m.m, props.Gather(opts...).ClaimTolerance())
	return m.p
}

func (m *Mat3) Classified(opts ...props.Option) props.Set {
	return d3.Classify(m.m, props.Gather(opts...).Epsilon())
}

func (m *Mat3) IsFinite() bool       { return kernel.Finite(m.m[:]) }
func (m *Mat3) Determinant() float64 { return kernel.Det3(m.m) }

// Transform returns m·v.
func (m *Mat3) Transform(v vec.Vec3) vec.Vec3 {
	t := kernel.Apply3(m.m, [3]float64{v.X, v.Y, v.Z})
	return vec.V3(t[0], t[1], t[2])
}

// F32 returns m as a row-major float32 matrix.
func (m *Mat3) F32() f32.Mat3 {
	var out f32.Mat3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[r*3+c] = float32(m.m[c*3+r])
		}
	}

	return out
}

// SetF32 replaces the entries with the row-major float32 matrix a and
// classifies them.
func (m *Mat3) SetF32(a f32.Mat3, opts ...props.Option) {
	var e kernel.M3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			e[c*3+r] = float64(a[r*3+c])
		}
	}
	m.SetRawClassified(e, opts...)
}

func (m *Mat3) EqualApprox(o *Mat3, eps float64) bool { return approxEqual(m.m[:], o.m[:], eps) }
func (m *Mat3) String() string                        { return format(typeMat3, m.m[:], 3, 3, m.p) }

func (m *Mat3) SetIdentity()        { m.m, m.p = d3.Identity() }
func (m *Mat3) Mul(l, r *Mat3)      { m.m, m.p = d3.Mul(l.m, l.p, r.m, r.p) }
func (m *Mat3) MulLocal(l *Mat3)    { m.m, m.p = d3.Mul(l.m, l.p, m.m, m.p) }
func (m *Mat3) Invert(src *Mat3)    { m.m, m.p = d3.Invert(src.m, src.p) }
func (m *Mat3) Transpose(src *Mat3) { m.m, m.p = d3.Transpose(src.m, src.p) }
func (m *Mat3) Add(a, b *Mat3)      { m.m, m.p = d3.Add(a.m, a.p, b.m, b.p) }

func (m *Mat3) SetScaling(x, y, z float64) { m.setOp(scaleOp(x, y, z)) }
func (m *Mat3) SetRotationX(angle float64) { m.setOp(rotationOp("rotate_x", kernel.RotationX3(angle))) }
func (m *Mat3) SetRotationY(angle float64) { m.setOp(rotationOp("rotate_y", kernel.RotationY3(angle))) }
func (m *Mat3) SetRotationZ(angle float64) { m.setOp(rotationOp("rotate_z", kernel.RotationZ3(angle))) }
func (m *Mat3) SetQuat(q vec.Quat)         { m.setOp(rotationOp("rotate_quat", kernel.RotationQuat3(q))) }

func (m *Mat3) SetRotation(angle float64, axis vec.Vec3) {
	m.setOp(rotationOp("rotate", kernel.Rotation3(angle, axis)))
}

func (m *Mat3) SetLookAlong(dir, up vec.Vec3) { m.setOp(lookAlongOp(dir, up)) }

func (m *Mat3) setOp(o affineOp) { m.m, m.p = o.linear, d3.Caps().Fit(o.props) }

// Scale sets m = m × S(x, y, z).
func (m *Mat3) Scale(x, y, z float64) {
	op := scaleOp(x, y, z).m3()
	op.Post = func(a kernel.M3) kernel.M3 { return kernel.Scale3(a, x, y, z) }
	m.apply(op)
}

func (m *Mat3) RotateX(angle float64) { m.apply(rotationOp("rotate_x", kernel.RotationX3(angle)).m3()) }
func (m *Mat3) RotateY(angle float64) { m.apply(rotationOp("rotate_y", kernel.RotationY3(angle)).m3()) }
func (m *Mat3) RotateZ(angle float64) { m.apply(rotationOp("rotate_z", kernel.RotationZ3(angle)).m3()) }
func (m *Mat3) RotateQuat(q vec.Quat) { m.apply(rotationOp("rotate_quat", kernel.RotationQuat3(q)).m3()) }

func (m *Mat3) Rotate(angle float64, axis vec.Vec3) {
	m.apply(rotationOp("rotate", kernel.Rotation3(angle, axis)).m3())
}

func (m *Mat3) RotateLocal(angle float64, axis vec.Vec3) {
	m.applyLocal(rotationOp("rotate", kernel.Rotation3(angle, axis)).m3())
}

func (m *Mat3) LookAlong(dir, up vec.Vec3) { m.apply(lookAlongOp(dir, up).m3()) }

func (m *Mat3) apply(op dispatch.Op[kernel.M3])      { m.m, m.p, _ = d3.Apply(m.m, m.p, op) }
func (m *Mat3) applyLocal(op dispatch.Op[kernel.M3]) { m.m, m.p, _ = d3.ApplyLocal(m.m, m.p, op) }
