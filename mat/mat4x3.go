// SPDX-License-Identifier: MIT

package mat

import (
	"github.com/katalvlaran/lvgeom/dispatch"
	"github.com/katalvlaran/lvgeom/kernel"
	"github.com/katalvlaran/lvgeom/props"
	"github.com/katalvlaran/lvgeom/vec"
)

const typeMat4x3 = "Mat4x3"

// Mat4x3 is a 3D affine transform stored as 4 columns of 3 rows; the last
// row (0, 0, 0, 1) is implicit. It is always Affine.
type Mat4x3 struct {
	m kernel.M43
	p props.Set
}

// Ident4x3 returns the 4×3 identity.
func Ident4x3() Mat4x3 {
	var m Mat4x3
	m.SetIdentity()

	return m
}

// NewMat4x3 returns a classified matrix holding the column-major entries e.
func NewMat4x3(e [12]float64, opts ...props.Option) Mat4x3 {
	var m Mat4x3
	m.SetRawClassified(e, opts...)

	return m
}

func (m *Mat4x3) Properties() props.Set { return m.p }
func (m *Mat4x3) State() props.State    { return props.StateOf(m.p) }
func (m *Mat4x3) Raw() [12]float64      { return m.m }

// At returns the entry in column col, row row.
func (m *Mat4x3) At(col, row int) (float64, error) {
	if err := checkCell(typeMat4x3, "At", 4, 3, col, row); err != nil {
		return 0, err
	}

	return m.m[col*3+row], nil
}

// Set writes one entry and resets the property set to what the shape
// guarantees (Affine).
func (m *Mat4x3) Set(col, row int, v float64) error {
	if err := checkCell(typeMat4x3, "Set", 4, 3, col, row); err != nil {
		return err
	}
	m.m[col*3+row] = v
	m.p = d43.Caps().Fit(props.Unknown)

	return nil
}

// Col returns column i.
func (m *Mat4x3) Col(i int) (vec.Vec3, error) {
	if err := checkLine(typeMat4x3, "Col", 4, i); err != nil {
		return vec.Vec3{}, err
	}

	return vec.V3(m.m[i*3], m.m[i*3+1], m.m[i*3+2]), nil
}

// Row returns row i.
func (m *Mat4x3) Row(i int) (vec.Vec4, error) {
	if err := checkLine(typeMat4x3, "Row", 3, i); err != nil {
		return vec.Vec4{}, err
	}

	return vec.V4(m.m[i], m.m[3+i], m.m[6+i], m.m[9+i]), nil
}

// SetCol replaces column i; the set falls back to Affine.
func (m *Mat4x3) SetCol(i int, v vec.Vec3) error {
	if err := checkLine(typeMat4x3, "SetCol", 4, i); err != nil {
		return err
	}
	m.m[i*3], m.m[i*3+1], m.m[i*3+2] = v.X, v.Y, v.Z
	m.p = d43.Caps().Fit(props.Unknown)

	return nil
}

// SetRow replaces row i; the set falls back to Affine.
func (m *Mat4x3) SetRow(i int, v vec.Vec4) error {
	if err := checkLine(typeMat4x3, "SetRow", 3, i); err != nil {
		return err
	}
	m.m[i], m.m[3+i], m.m[6+i], m.m[9+i] = v.X, v.Y, v.Z, v.W
	m.p = d43.Caps().Fit(props.Unknown)

	return nil
}

// SetRaw replaces all entries; the set falls back to Affine.
func (m *Mat4x3) SetRaw(e [12]float64) {
	m.m = e
	m.p = d43.Caps().Fit(props.Unknown)
}

// SetRawClassified replaces all entries and classifies them.
func (m *Mat4x3) SetRawClassified(e [12]float64, opts ...props.Option) {
	m.m = e
	m.p = d43.Classify(e, props.Gather(opts...).ClaimTolerance())
}

// SetMat4 keeps the first three rows of a. The properties carry over only
// when a is affine; otherwise the dropped row makes them meaningless.
func (m *Mat4x3) SetMat4(a *Mat4) {
	m.m = kernel.Trim4(a.m)
	if a.p.Has(props.Affine) {
		m.p = d43.Caps().Fit(a.p)
	} else {
		m.p = d43.Caps().Fit(props.Unknown)
	}
}

// SetMat3 embeds a linear map with zero offset.
func (m *Mat4x3) SetMat3(a *Mat3) {
	m.m = kernel.Lift3To43(a.m)
	m.p = d43.Caps().Fit(a.p)
}

func (m *Mat4x3) Classify(opts ...props.Option) props.Set {
	m.p = d43.Classify(m.m, props.Gather(opts...).ClaimTolerance())
	return m.p
}

func (m *Mat4x3) Classified(opts ...props.Option) props.Set {
	return d43.Classify(m.m, props.Gather(opts...).Epsilon())
}

func (m *Mat4x3) IsFinite() bool       { return kernel.Finite(m.m[:]) }
func (m *Mat4x3) Determinant() float64 { return kernel.Det43(m.m) }

// TransformPosition returns L·v + t.
func (m *Mat4x3) TransformPosition(v vec.Vec3) vec.Vec3 {
	t := kernel.Apply3(kernel.Linear43(m.m), [3]float64{v.X, v.Y, v.Z})
	return vec.V3(t[0]+m.m[9], t[1]+m.m[10], t[2]+m.m[11])
}

// TransformDirection returns L·v.
func (m *Mat4x3) TransformDirection(v vec.Vec3) vec.Vec3 {
	t := kernel.Apply3(kernel.Linear43(m.m), [3]float64{v.X, v.Y, v.Z})
	return vec.V3(t[0], t[1], t[2])
}

func (m *Mat4x3) EqualApprox(o *Mat4x3, eps float64) bool { return approxEqual(m.m[:], o.m[:], eps) }
func (m *Mat4x3) String() string                          { return format(typeMat4x3, m.m[:], 4, 3, m.p) }

func (m *Mat4x3) SetIdentity()       { m.m, m.p = d43.Identity() }
func (m *Mat4x3) Mul(l, r *Mat4x3)   { m.m, m.p = d43.Mul(l.m, l.p, r.m, r.p) }
func (m *Mat4x3) MulLocal(l *Mat4x3) { m.m, m.p = d43.Mul(l.m, l.p, m.m, m.p) }
func (m *Mat4x3) Invert(src *Mat4x3) { m.m, m.p = d43.Invert(src.m, src.p) }
func (m *Mat4x3) Add(a, b *Mat4x3)   { m.m, m.p = d43.Add(a.m, a.p, b.m, b.p) }
func (m *Mat4x3) Normal(src *Mat4x3) {
	m.m = kernel.Lift3To43(normalBlock(kernel.Linear43(src.m), src.p))
	m.p = d43.Caps().Fit(props.TransposeLinear(src.p))
}

// Transpose3x3 sets m to the transpose of src's linear block with zero offset.
func (m *Mat4x3) Transpose3x3(src *Mat4x3) {
	m.m, m.p = kernel.TransposeLinear43(src.m), d43.Caps().Fit(props.TransposeLinear(src.p))
}

func (m *Mat4x3) SetTranslation(x, y, z float64) { m.setOp(translateOp(x, y, z)) }
func (m *Mat4x3) SetScaling(x, y, z float64)     { m.setOp(scaleOp(x, y, z)) }
func (m *Mat4x3) SetRotationX(angle float64)     { m.setOp(rotationOp("rotate_x", kernel.RotationX3(angle))) }
func (m *Mat4x3) SetRotationY(angle float64)     { m.setOp(rotationOp("rotate_y", kernel.RotationY3(angle))) }
func (m *Mat4x3) SetRotationZ(angle float64)     { m.setOp(rotationOp("rotate_z", kernel.RotationZ3(angle))) }

func (m *Mat4x3) SetRotation(angle float64, axis vec.Vec3) {
	m.setOp(rotationOp("rotate", kernel.Rotation3(angle, axis)))
}

func (m *Mat4x3) SetQuat(q vec.Quat) { m.setOp(rotationOp("rotate_quat", kernel.RotationQuat3(q))) }

func (m *Mat4x3) SetLookAt(eye, center, up vec.Vec3) { m.setOp(lookAtOp(eye, center, up)) }
func (m *Mat4x3) SetLookAlong(dir, up vec.Vec3)      { m.setOp(lookAlongOp(dir, up)) }
func (m *Mat4x3) SetReflection(plane vec.Vec4)       { m.setOp(reflectOp(plane)) }

func (m *Mat4x3) SetOrtho(left, right, bottom, top, near, far float64) {
	m.setOp(orthoOp(left, right, bottom, top, near, far))
}

func (m *Mat4x3) setOp(o affineOp) { m.m, m.p = kernel.Affine43(o.linear, o.offset), d43.Caps().Fit(o.props) }

// Translate sets m = m × T(x, y, z).
func (m *Mat4x3) Translate(x, y, z float64) {
	op := translateOp(x, y, z).m43()
	op.Post = func(a kernel.M43) kernel.M43 { return kernel.Translate43(a, x, y, z) }
	m.apply(op)
}

// TranslateLocal sets m = T(x, y, z) × m.
func (m *Mat4x3) TranslateLocal(x, y, z float64) {
	op := translateOp(x, y, z).m43()
	op.Pre = func(a kernel.M43) kernel.M43 { return kernel.TranslateLocal43(a, x, y, z) }
	m.applyLocal(op)
}

// Scale sets m = m × S(x, y, z).
func (m *Mat4x3) Scale(x, y, z float64) {
	op := scaleOp(x, y, z).m43()
	op.Post = func(a kernel.M43) kernel.M43 { return kernel.Scale43(a, x, y, z) }
	m.apply(op)
}

// ScaleLocal sets m = S(x, y, z) × m.
func (m *Mat4x3) ScaleLocal(x, y, z float64) {
	op := scaleOp(x, y, z).m43()
	op.Pre = func(a kernel.M43) kernel.M43 { return kernel.ScaleLocal43(a, x, y, z) }
	m.applyLocal(op)
}

func (m *Mat4x3) RotateX(angle float64) {
	op := rotationOp("rotate_x", kernel.RotationX3(angle)).m43()
	op.Post = func(a kernel.M43) kernel.M43 { return kernel.RotateX43(a, angle) }
	m.apply(op)
}

func (m *Mat4x3) RotateY(angle float64) {
	op := rotationOp("rotate_y", kernel.RotationY3(angle)).m43()
	op.Post = func(a kernel.M43) kernel.M43 { return kernel.RotateY43(a, angle) }
	m.apply(op)
}

func (m *Mat4x3) RotateZ(angle float64) {
	op := rotationOp("rotate_z", kernel.RotationZ3(angle)).m43()
	op.Post = func(a kernel.M43) kernel.M43 { return kernel.RotateZ43(a, angle) }
	m.apply(op)
}

func (m *Mat4x3) Rotate(angle float64, axis vec.Vec3) {
	m.apply(rotationOp("rotate", kernel.Rotation3(angle, axis)).m43())
}

func (m *Mat4x3) RotateLocal(angle float64, axis vec.Vec3) {
	m.applyLocal(rotationOp("rotate", kernel.Rotation3(angle, axis)).m43())
}

func (m *Mat4x3) RotateQuat(q vec.Quat) {
	m.apply(rotationOp("rotate_quat", kernel.RotationQuat3(q)).m43())
}

func (m *Mat4x3) LookAt(eye, center, up vec.Vec3) { m.apply(lookAtOp(eye, center, up).m43()) }
func (m *Mat4x3) LookAlong(dir, up vec.Vec3)      { m.apply(lookAlongOp(dir, up).m43()) }
func (m *Mat4x3) Reflect(plane vec.Vec4)          { m.apply(reflectOp(plane).m43()) }

func (m *Mat4x3) Ortho(left, right, bottom, top, near, far float64) {
	m.apply(orthoOp(left, right, bottom, top, near, far).m43())
}

func (m *Mat4x3) apply(op dispatch.Op[kernel.M43])      { m.m, m.p, _ = d43.Apply(m.m, m.p, op) }
func (m *Mat4x3) applyLocal(op dispatch.Op[kernel.M43]) { m.m, m.p, _ = d43.ApplyLocal(m.m, m.p, op) }
