// SPDX-License-Identifier: MIT

package mat

import (
	"github.com/katalvlaran/lvgeom/dispatch"
	"github.com/katalvlaran/lvgeom/kernel"
	"github.com/katalvlaran/lvgeom/props"
	"github.com/katalvlaran/lvgeom/vec"
)

// affineOp is a shape-independent description of an affine transform: a
// linear block, an offset and the properties the pair is known to have.
// Each shape lifts it into a dispatch.Op of its own entry type.
type affineOp struct {
	name   string
	linear kernel.M3
	offset [3]float64
	props  props.Set
}

func (o affineOp) m4() dispatch.Op[kernel.M4] {
	return dispatch.Op[kernel.M4]{
		Name:  o.name,
		Build: func() kernel.M4 { return kernel.Affine4(o.linear, o.offset) },
		Props: o.props,
	}
}

func (o affineOp) m43() dispatch.Op[kernel.M43] {
	return dispatch.Op[kernel.M43]{
		Name:  o.name,
		Build: func() kernel.M43 { return kernel.Affine43(o.linear, o.offset) },
		Props: o.props,
	}
}

// m3 drops the offset; only linear ops are lifted to Mat3.
func (o affineOp) m3() dispatch.Op[kernel.M3] {
	return dispatch.Op[kernel.M3]{
		Name:  o.name,
		Build: func() kernel.M3 { return o.linear },
		Props: o.props,
	}
}

func translateOp(x, y, z float64) affineOp {
	return affineOp{
		name:   "translate",
		linear: kernel.Ident3,
		offset: [3]float64{x, y, z},
		props:  props.FromOffset(x, y, z),
	}
}

func scaleOp(x, y, z float64) affineOp {
	return affineOp{name: "scale", linear: kernel.Scaling3(x, y, z), props: props.FromScale(x, y, z)}
}

func rotationOp(name string, l kernel.M3) affineOp {
	return affineOp{name: name, linear: l, props: props.Normalize(props.Orthonormal)}
}

func lookAlongOp(dir, up vec.Vec3) affineOp {
	l := kernel.LookAlong3(dir, up)
	return affineOp{name: "look_along", linear: l, props: rigidProps(l)}
}

func lookAtOp(eye, center, up vec.Vec3) affineOp {
	l, t := kernel.LookAt(eye, center, up)
	return affineOp{name: "look_at", linear: l, offset: t, props: rigidProps(l)}
}

func reflectOp(plane vec.Vec4) affineOp {
	l, t := kernel.Reflection(plane)
	return affineOp{name: "reflect", linear: l, offset: t, props: props.Normalize(props.Orthonormal)}
}

func orthoOp(left, right, bottom, top, near, far float64) affineOp {
	l, t := kernel.Ortho(left, right, bottom, top, near, far)
	return affineOp{name: "ortho", linear: l, offset: t, props: props.Affine}
}

// rigidProps is the claim of a view rotation: orthonormal unless the basis
// degenerated (zero or parallel direction vectors) or lost orthogonality
// beyond rounding noise.
func rigidProps(l kernel.M3) props.Set {
	if kernel.Orthonormal3(l, props.ClaimEpsilon) {
		return props.Normalize(props.Orthonormal)
	}

	return props.Affine
}

// perspectiveOp wraps a projection builder; every projection built by the
// kernel package matches the perspective zero pattern.
func perspectiveOp(name string, m kernel.M4) dispatch.Op[kernel.M4] {
	return dispatch.Op[kernel.M4]{
		Name:  name,
		Build: func() kernel.M4 { return m },
		Props: props.Perspective,
	}
}
