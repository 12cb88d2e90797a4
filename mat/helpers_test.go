// SPDX-License-Identifier: MIT
// Package mat_test contains test helpers.
//
// Purpose:
//   • Provide small deterministic fixtures (one per property class).
//   • Assert the under-claim invariant and approximate equality with a
//     readable failure message.

package mat_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/mat"
	"github.com/katalvlaran/lvgeom/props"
	"github.com/katalvlaran/lvgeom/vec"
)

const tol = 1e-9

// fixture4 returns one Mat4 per property class, keyed by a short label.
func fixture4() map[string]mat.Mat4 {
	id := mat.Ident4()

	var tr mat.Mat4
	tr.SetTranslation(1, -2, 3)

	var rot mat.Mat4
	rot.SetRotation(0.8, vec.V3(1, 2, -1))
	rot.Translate(4, 5, 6)

	var aff mat.Mat4
	aff.SetScaling(2, 0.5, 3)
	aff.RotateY(0.4)
	aff.TranslateLocal(-1, 0, 2)

	var persp mat.Mat4
	persp.SetPerspective(math.Pi/3, 1.5, 0.1, 100)

	var general mat.Mat4
	general.SetRaw([16]float64{
		2, 1, 0, 0.5,
		-1, 3, 1, 0,
		0.5, 0, 4, 1,
		1, 2, -1, 2,
	})

	return map[string]mat.Mat4{
		"identity":    id,
		"translation": tr,
		"orthonormal": rot,
		"affine":      aff,
		"perspective": persp,
		"general":     general,
	}
}

// shape is the surface every matrix type offers to the under-claim check.
type shape interface {
	Properties() props.Set
	Classified(opts ...props.Option) props.Set
	IsFinite() bool
	String() string
}

// requireUnderClaim asserts that the tracked set never claims more than the
// classifier derives from the entries.
func requireUnderClaim(t testing.TB, m shape, step string) {
	t.Helper()
	if !m.IsFinite() {
		return
	}
	tracked, actual := m.Properties(), m.Classified()
	require.Truef(t, tracked.Implies(actual),
		"%s: tracked %v claims more than classified %v\n%v", step, tracked, actual, m)
}

// requireClose4 asserts entry-wise closeness of two Mat4.
func requireClose4(t testing.TB, want, got *mat.Mat4, eps float64) {
	t.Helper()
	require.Truef(t, want.EqualApprox(got, eps), "want\n%v\ngot\n%v", want, got)
}

// randomStep4 applies one random engine operation to m.
func randomStep4(rng *rand.Rand, m *mat.Mat4) string {
	f := func() float64 { return rng.Float64()*4 - 2 }
	switch rng.Intn(14) {
	case 0:
		m.Translate(f(), f(), f())
		return "translate"
	case 1:
		m.Scale(f(), f(), f())
		return "scale"
	case 2:
		m.Scale(-1, 1, 1)
		return "scale_unit"
	case 3:
		m.RotateX(f())
		return "rotate_x"
	case 4:
		m.Rotate(f(), vec.V3(f(), f(), f()))
		return "rotate"
	case 5:
		m.RotateQuat(vec.Quat{X: f(), Y: f(), Z: f(), W: f()})
		return "rotate_quat"
	case 6:
		m.LookAt(vec.V3(f(), f(), 5), vec.V3(0, 0, 0), vec.V3(0, 1, 0))
		return "look_at"
	case 7:
		m.Invert(m)
		return "invert"
	case 8:
		m.Transpose3x3(m)
		return "transpose3x3"
	case 9:
		var o mat.Mat4
		o.SetRotationZ(f())
		m.MulLocal(&o)
		return "mul_local"
	case 10:
		m.Perspective(1, 1.3, 0.5, 50)
		return "perspective"
	case 11:
		m.Reflect(vec.V4(f(), f(), f(), f()))
		return "reflect"
	case 12:
		m.TranslateLocal(f(), f(), f())
		return "translate_local"
	default:
		m.SetIdentity()
		return "identity"
	}
}

// randomStep43 applies one random engine operation to m.
func randomStep43(rng *rand.Rand, m *mat.Mat4x3) string {
	f := func() float64 { return rng.Float64()*4 - 2 }
	switch rng.Intn(17) {
	case 0:
		m.Translate(f(), f(), f())
		return "translate"
	case 1:
		m.TranslateLocal(f(), f(), f())
		return "translate_local"
	case 2:
		m.Scale(f(), f(), f())
		return "scale"
	case 3:
		m.ScaleLocal(1, -1, 1)
		return "scale_local_unit"
	case 4:
		m.RotateY(f())
		return "rotate_y"
	case 5:
		m.Rotate(f(), vec.V3(f(), f(), f()))
		return "rotate"
	case 6:
		m.RotateLocal(f(), vec.V3(f(), f(), f()))
		return "rotate_local"
	case 7:
		m.RotateQuat(vec.Quat{X: f(), Y: f(), Z: f(), W: f()})
		return "rotate_quat"
	case 8:
		m.LookAt(vec.V3(f(), f(), 5), vec.V3(0, 0, 0), vec.V3(0, 1, 0))
		return "look_at"
	case 9:
		m.Reflect(vec.V4(f(), f(), f(), f()))
		return "reflect"
	case 10:
		m.Invert(m)
		return "invert"
	case 11:
		m.Transpose3x3(m)
		return "transpose3x3"
	case 12:
		m.Normal(m)
		return "normal"
	case 13:
		var o mat.Mat4x3
		o.SetRotationX(f())
		m.MulLocal(&o)
		return "mul_local"
	case 14:
		var o mat.Mat4
		o.SetRotationZ(f())
		o.Translate(f(), f(), f())
		m.SetMat4(&o)
		return "set_mat4"
	case 15:
		m.Ortho(-1, 1, -1, 1, 0.5, 50)
		return "ortho"
	default:
		m.SetIdentity()
		return "identity"
	}
}

// randomStep3 applies one random engine operation to m.
func randomStep3(rng *rand.Rand, m *mat.Mat3) string {
	f := func() float64 { return rng.Float64()*4 - 2 }
	switch rng.Intn(16) {
	case 0:
		m.Scale(f(), f(), f())
		return "scale"
	case 1:
		m.Scale(-1, 1, 1)
		return "scale_unit"
	case 2:
		m.RotateX(f())
		return "rotate_x"
	case 3:
		m.RotateZ(f())
		return "rotate_z"
	case 4:
		m.Rotate(f(), vec.V3(f(), f(), f()))
		return "rotate"
	case 5:
		m.RotateLocal(f(), vec.V3(f(), f(), f()))
		return "rotate_local"
	case 6:
		m.RotateQuat(vec.Quat{X: f(), Y: f(), Z: f(), W: f()})
		return "rotate_quat"
	case 7:
		m.LookAlong(vec.V3(f(), f(), f()), vec.V3(0, 1, 0))
		return "look_along"
	case 8:
		m.Invert(m)
		return "invert"
	case 9:
		m.Transpose(m)
		return "transpose"
	case 10:
		m.Normal(m)
		return "normal"
	case 11:
		var o mat.Mat3
		o.SetRotationY(f())
		m.MulLocal(&o)
		return "mul_local"
	case 12:
		var o mat.Mat4
		o.SetPerspective(1, 1.3, 0.5, 50)
		if rng.Intn(2) == 0 {
			o.SetRotation(f(), vec.V3(f(), f(), f()))
		}
		m.SetMat4(&o)
		return "set_mat4"
	case 13:
		var o mat.Mat4x3
		o.SetScaling(f(), f(), f())
		m.SetMat4x3(&o)
		return "set_mat4x3"
	case 14:
		o := *m
		m.Add(m, &o)
		return "add"
	default:
		m.SetIdentity()
		return "identity"
	}
}

// randomStep32 applies one random engine operation to m.
func randomStep32(rng *rand.Rand, m *mat.Mat3x2) string {
	f := func() float64 { return rng.Float64()*4 - 2 }
	switch rng.Intn(9) {
	case 0:
		m.Translate(f(), f())
		return "translate"
	case 1:
		m.TranslateLocal(f(), f())
		return "translate_local"
	case 2:
		m.Scale(f(), f())
		return "scale"
	case 3:
		m.Scale(1, -1)
		return "scale_unit"
	case 4:
		m.Rotate(f())
		return "rotate"
	case 5:
		m.Invert(m)
		return "invert"
	case 6:
		var o mat.Mat3x2
		o.SetRotation(f())
		o.Translate(f(), f())
		m.MulLocal(&o)
		return "mul_local"
	case 7:
		o := *m
		m.Add(m, &o)
		return "add"
	default:
		m.SetIdentity()
		return "identity"
	}
}
