// SPDX-License-Identifier: MIT

package mat

import (
	"github.com/katalvlaran/lvgeom/dispatch"
	"github.com/katalvlaran/lvgeom/kernel"
	"github.com/katalvlaran/lvgeom/props"
	"github.com/katalvlaran/lvgeom/vec"
)

// SetIdentity makes m the identity.
func (m *Mat4) SetIdentity() { m.m, m.p = d4.Identity() }

// Mul sets m = l × r. m may alias l or r.
func (m *Mat4) Mul(l, r *Mat4) { m.m, m.p = d4.Mul(l.m, l.p, r.m, r.p) }

// MulLocal sets m = l × m.
func (m *Mat4) MulLocal(l *Mat4) { m.m, m.p = d4.Mul(l.m, l.p, m.m, m.p) }

// Invert sets m = src⁻¹. A singular src leaves non-finite entries in m.
func (m *Mat4) Invert(src *Mat4) { m.m, m.p = d4.Invert(src.m, src.p) }

// Transpose sets m = srcᵀ.
func (m *Mat4) Transpose(src *Mat4) { m.m, m.p = d4.Transpose(src.m, src.p) }

// Transpose3x3 sets m to the transpose of src's linear block, with zero
// offset and identity last row.
func (m *Mat4) Transpose3x3(src *Mat4) {
	m.m, m.p = kernel.TransposeLinear4(src.m), props.TransposeLinear(src.p)
}

// Add sets m = a + b element-wise. The last rows are summed too, so nothing
// is claimed about the result; use Add4x3 to keep an affine last row.
func (m *Mat4) Add(a, b *Mat4) { m.m, m.p = kernel.Add4(a.m, b.m), props.Unknown }

// Add4x3 adds the first three rows of b to those of a; the last row is a's.
func (m *Mat4) Add4x3(a, b *Mat4) {
	r := a.m
	for c := 0; c < 4; c++ {
		for row := 0; row < 3; row++ {
			r[c*4+row] += b.m[c*4+row]
		}
	}
	m.m, m.p = r, props.Sum(a.p, b.p)
}

// Normal sets m to the normal matrix of src: the inverse transpose of its
// linear block, with zero offset and identity last row.
func (m *Mat4) Normal(src *Mat4) {
	m.m, m.p = kernel.Lift3(normalBlock(kernel.Linear4(src.m), src.p)), props.TransposeLinear(src.p)
}

// normalBlock computes (l⁻¹)ᵀ, skipping the inverse when l is known to be
// orthonormal (then (l⁻¹)ᵀ = l).
func normalBlock(l kernel.M3, p props.Set) kernel.M3 {
	switch {
	case p.Has(props.Translation):
		return kernel.Ident3
	case p.Has(props.Orthonormal):
		return l
	default:
		return kernel.Normal3(l)
	}
}

// Setters. Each constructor states its own property set.

// SetTranslation makes m a pure translation.
func (m *Mat4) SetTranslation(x, y, z float64) { m.setOp(translateOp(x, y, z).m4()) }

// SetScaling makes m a diagonal scaling.
func (m *Mat4) SetScaling(x, y, z float64) { m.setOp(scaleOp(x, y, z).m4()) }

// SetRotationX makes m a rotation of angle radians about +X.
func (m *Mat4) SetRotationX(angle float64) {
	m.setOp(rotationOp("rotate_x", kernel.RotationX3(angle)).m4())
}

// SetRotationY makes m a rotation of angle radians about +Y.
func (m *Mat4) SetRotationY(angle float64) {
	m.setOp(rotationOp("rotate_y", kernel.RotationY3(angle)).m4())
}

// SetRotationZ makes m a rotation of angle radians about +Z.
func (m *Mat4) SetRotationZ(angle float64) {
	m.setOp(rotationOp("rotate_z", kernel.RotationZ3(angle)).m4())
}

// SetRotation makes m a rotation of angle radians about axis.
func (m *Mat4) SetRotation(angle float64, axis vec.Vec3) {
	m.setOp(rotationOp("rotate", kernel.Rotation3(angle, axis)).m4())
}

// SetRotationAxisAngle is SetRotation for an AxisAngle value.
func (m *Mat4) SetRotationAxisAngle(a vec.AxisAngle) { m.SetRotation(a.Angle, a.Axis) }

// SetQuat makes m the rotation encoded by q (normalized first).
func (m *Mat4) SetQuat(q vec.Quat) { m.setOp(rotationOp("rotate_quat", kernel.RotationQuat3(q)).m4()) }

// SetLookAt makes m the view transform of a camera at eye looking at center.
func (m *Mat4) SetLookAt(eye, center, up vec.Vec3) { m.setOp(lookAtOp(eye, center, up).m4()) }

// SetLookAlong makes m the view rotation facing dir.
func (m *Mat4) SetLookAlong(dir, up vec.Vec3) { m.setOp(lookAlongOp(dir, up).m4()) }

// SetOrtho makes m an orthographic projection.
func (m *Mat4) SetOrtho(left, right, bottom, top, near, far float64) {
	m.setOp(orthoOp(left, right, bottom, top, near, far).m4())
}

// SetFrustum makes m a perspective frustum projection.
func (m *Mat4) SetFrustum(left, right, bottom, top, near, far float64) {
	m.setOp(perspectiveOp("frustum", kernel.Frustum4(left, right, bottom, top, near, far)))
}

// SetPerspective makes m a symmetric perspective projection.
func (m *Mat4) SetPerspective(fovy, aspect, near, far float64) {
	m.setOp(perspectiveOp("perspective", kernel.Perspective4(fovy, aspect, near, far)))
}

// SetReflection makes m the reflection about plane (a, b, c, d).
func (m *Mat4) SetReflection(plane vec.Vec4) { m.setOp(reflectOp(plane).m4()) }

// SetShadow makes m the planar shadow projection from light onto plane.
// Nothing is claimed about the result.
func (m *Mat4) SetShadow(light, plane vec.Vec4) { m.setOp(shadowOp(light, plane)) }

func (m *Mat4) setOp(op dispatch.Op[kernel.M4]) { m.m, m.p = op.Build(), d4.Caps().Fit(op.Props) }

func shadowOp(light, plane vec.Vec4) dispatch.Op[kernel.M4] {
	s := kernel.Shadow4(light, plane)
	return dispatch.Op[kernel.M4]{Name: "shadow", Build: func() kernel.M4 { return s }, Props: props.Unknown}
}

// Appliers. Each post-multiplies m by the named transform (m = m × op), so
// the op acts on vectors first. The *Local variants pre-multiply. Every
// applier returns the dispatch rung that computed the result.

// Translate sets m = m × T(x, y, z).
func (m *Mat4) Translate(x, y, z float64) dispatch.MulPath { return m.apply(translate4(x, y, z)) }

// TranslateLocal sets m = T(x, y, z) × m.
func (m *Mat4) TranslateLocal(x, y, z float64) dispatch.MulPath {
	return m.applyLocal(translate4(x, y, z))
}

// Scale sets m = m × S(x, y, z).
func (m *Mat4) Scale(x, y, z float64) dispatch.MulPath { return m.apply(scale4(x, y, z)) }

// ScaleLocal sets m = S(x, y, z) × m.
func (m *Mat4) ScaleLocal(x, y, z float64) dispatch.MulPath { return m.applyLocal(scale4(x, y, z)) }

// RotateX sets m = m × Rx(angle).
func (m *Mat4) RotateX(angle float64) dispatch.MulPath {
	op := rotationOp("rotate_x", kernel.RotationX3(angle)).m4()
	op.Post = func(a kernel.M4) kernel.M4 { return kernel.RotateX4(a, angle) }
	return m.apply(op)
}

// RotateY sets m = m × Ry(angle).
func (m *Mat4) RotateY(angle float64) dispatch.MulPath {
	op := rotationOp("rotate_y", kernel.RotationY3(angle)).m4()
	op.Post = func(a kernel.M4) kernel.M4 { return kernel.RotateY4(a, angle) }
	return m.apply(op)
}

// RotateZ sets m = m × Rz(angle).
func (m *Mat4) RotateZ(angle float64) dispatch.MulPath {
	op := rotationOp("rotate_z", kernel.RotationZ3(angle)).m4()
	op.Post = func(a kernel.M4) kernel.M4 { return kernel.RotateZ4(a, angle) }
	return m.apply(op)
}

// Rotate sets m = m × R(angle, axis).
func (m *Mat4) Rotate(angle float64, axis vec.Vec3) dispatch.MulPath {
	return m.apply(rotationOp("rotate", kernel.Rotation3(angle, axis)).m4())
}

// RotateLocal sets m = R(angle, axis) × m.
func (m *Mat4) RotateLocal(angle float64, axis vec.Vec3) dispatch.MulPath {
	return m.applyLocal(rotationOp("rotate", kernel.Rotation3(angle, axis)).m4())
}

// RotateAxisAngle sets m = m × R(a).
func (m *Mat4) RotateAxisAngle(a vec.AxisAngle) dispatch.MulPath { return m.Rotate(a.Angle, a.Axis) }

// RotateQuat sets m = m × R(q).
func (m *Mat4) RotateQuat(q vec.Quat) dispatch.MulPath {
	return m.apply(rotationOp("rotate_quat", kernel.RotationQuat3(q)).m4())
}

// LookAt sets m = m × LookAt(eye, center, up).
func (m *Mat4) LookAt(eye, center, up vec.Vec3) dispatch.MulPath {
	return m.apply(lookAtOp(eye, center, up).m4())
}

// LookAlong sets m = m × LookAlong(dir, up).
func (m *Mat4) LookAlong(dir, up vec.Vec3) dispatch.MulPath { return m.apply(lookAlongOp(dir, up).m4()) }

// Ortho sets m = m × Ortho(...).
func (m *Mat4) Ortho(left, right, bottom, top, near, far float64) dispatch.MulPath {
	return m.apply(orthoOp(left, right, bottom, top, near, far).m4())
}

// Frustum sets m = m × Frustum(...).
func (m *Mat4) Frustum(left, right, bottom, top, near, far float64) dispatch.MulPath {
	return m.apply(perspectiveOp("frustum", kernel.Frustum4(left, right, bottom, top, near, far)))
}

// Perspective sets m = m × Perspective(...).
func (m *Mat4) Perspective(fovy, aspect, near, far float64) dispatch.MulPath {
	return m.apply(perspectiveOp("perspective", kernel.Perspective4(fovy, aspect, near, far)))
}

// Reflect sets m = m × Reflection(plane).
func (m *Mat4) Reflect(plane vec.Vec4) dispatch.MulPath { return m.apply(reflectOp(plane).m4()) }

// Shadow sets m = m × Shadow(light, plane).
func (m *Mat4) Shadow(light, plane vec.Vec4) dispatch.MulPath { return m.apply(shadowOp(light, plane)) }

func (m *Mat4) apply(op dispatch.Op[kernel.M4]) (path dispatch.MulPath) {
	m.m, m.p, path = d4.Apply(m.m, m.p, op)
	return path
}

func (m *Mat4) applyLocal(op dispatch.Op[kernel.M4]) (path dispatch.MulPath) {
	m.m, m.p, path = d4.ApplyLocal(m.m, m.p, op)
	return path
}

func translate4(x, y, z float64) dispatch.Op[kernel.M4] {
	op := translateOp(x, y, z).m4()
	op.Post = func(a kernel.M4) kernel.M4 { return kernel.Translate4(a, x, y, z) }
	op.Pre = func(a kernel.M4) kernel.M4 { return kernel.TranslateLocal4(a, x, y, z) }

	return op
}

func scale4(x, y, z float64) dispatch.Op[kernel.M4] {
	op := scaleOp(x, y, z).m4()
	op.Post = func(a kernel.M4) kernel.M4 { return kernel.Scale4(a, x, y, z) }
	op.Pre = func(a kernel.M4) kernel.M4 { return kernel.ScaleLocal4(a, x, y, z) }

	return op
}
