package kernel_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/kernel"
	"github.com/katalvlaran/lvgeom/props"
	"github.com/katalvlaran/lvgeom/vec"
)

const tol = 1e-12

func requireClose(t *testing.T, want, got []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaf(t, want[i], got[i], eps, "entry %d: want %v got %v", i, want, got)
	}
}

// flat returns the entries of a kernel matrix value as a slice; call results
// are not addressable, so they cannot be sliced directly.
func flat(m any) []float64 {
	switch v := m.(type) {
	case kernel.M4:
		return v[:]
	case kernel.M43:
		return v[:]
	case kernel.M3:
		return v[:]
	case kernel.M32:
		return v[:]
	}
	panic(fmt.Sprintf("flat: unsupported type %T", m))
}

// general is a well-conditioned matrix with no structure.
var general = kernel.M4{
	2, 1, 0, 0.5,
	-1, 3, 1, 0,
	0.5, 0, 4, 1,
	1, 2, -1, 2,
}

func rigid() kernel.M4 {
	return kernel.Affine4(kernel.Rotation3(0.7, vec.V3(1, 2, 3)), [3]float64{4, -5, 6})
}

func affine() kernel.M4 {
	l := kernel.Mul3(kernel.Rotation3(-0.3, vec.V3(0, 1, 1)), kernel.Scaling3(2, 0.5, 3))
	return kernel.Affine4(l, [3]float64{1, 2, 3})
}

func TestInvert4_General(t *testing.T) {
	inv := kernel.Invert4(general)
	requireClose(t, kernel.Ident4[:], flat(kernel.Mul4(general, inv)), tol)
	requireClose(t, kernel.Ident4[:], flat(kernel.Mul4(inv, general)), tol)

	det := kernel.Det4(general)
	require.NotZero(t, det)
	require.InDelta(t, 1/det, kernel.Det4(inv), 1e-12)
}

func TestInvert4_SingularPropagatesNonFinite(t *testing.T) {
	var zero kernel.M4
	inv := kernel.Invert4(zero)
	require.False(t, kernel.Finite(inv[:]))
}

func TestInvertVariants_AgreeWithGeneral(t *testing.T) {
	cases := []struct {
		name string
		m    kernel.M4
		inv  func(kernel.M4) kernel.M4
	}{
		{"affine", affine(), kernel.InvertAffine4},
		{"orthonormal", rigid(), kernel.InvertOrthonormal4},
		{"translation", kernel.Affine4(kernel.Ident3, [3]float64{7, 8, 9}), kernel.InvertTranslation4},
		{"perspective", kernel.Perspective4(math.Pi/3, 16.0/9, 0.1, 100), kernel.InvertPerspective4},
		{"frustum", kernel.Frustum4(-1, 2, -0.5, 1.5, 0.5, 50), kernel.InvertPerspective4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireClose(t, flat(kernel.Invert4(tc.m)), flat(tc.inv(tc.m)), 1e-9)
		})
	}
}

func TestMulVariants_AgreeWithGeneral(t *testing.T) {
	a, r := affine(), rigid()
	tr := kernel.Affine4(kernel.Ident3, [3]float64{-1, 0.5, 2})
	p := kernel.Frustum4(-1, 2, -0.5, 1.5, 0.5, 50)

	requireClose(t, flat(kernel.Mul4(a, r)), flat(kernel.MulAffine4(a, r)), tol)
	requireClose(t, flat(kernel.Mul4(tr, a)), flat(kernel.MulTranslation4(tr, a)), tol)
	requireClose(t, flat(kernel.Mul4(p, a)), flat(kernel.MulPerspectiveAffine4(p, a)), tol)
}

func TestMul43_MatchesLiftedProduct(t *testing.T) {
	a, b := kernel.Trim4(affine()), kernel.Trim4(rigid())
	want := kernel.Trim4(kernel.Mul4(kernel.Lift43(a), kernel.Lift43(b)))
	requireClose(t, want[:], flat(kernel.Mul43(a, b)), tol)

	inv := kernel.Invert43(a)
	requireClose(t, kernel.Ident43[:], flat(kernel.Mul43(a, inv)), tol)
	requireClose(t, flat(kernel.Invert43(b)), flat(kernel.InvertOrthonormal43(b)), 1e-12)
}

func TestMul32_Invert32(t *testing.T) {
	a := kernel.Scale32(kernel.Translate32(kernel.Rotation32(0.4), 3, -2), 2, 0.5)
	inv := kernel.Invert32(a)
	requireClose(t, kernel.Ident32[:], flat(kernel.Mul32(a, inv)), tol)

	r := kernel.Translate32(kernel.Rotation32(1.1), 1, 1)
	requireClose(t, flat(kernel.Invert32(r)), flat(kernel.InvertOrthonormal32(r)), 1e-12)

	tr := kernel.M32{1, 0, 0, 1, 5, 6}
	require.Equal(t, kernel.M32{1, 0, 0, 1, -5, -6}, kernel.InvertTranslation32(tr))
	requireClose(t, flat(kernel.Mul32(tr, a)), flat(kernel.MulTranslation32(tr, a)), 0)
}

func TestPostKernels_MatchExplicitProduct(t *testing.T) {
	m := general
	tr := kernel.Affine4(kernel.Ident3, [3]float64{1, -2, 3})
	sc := kernel.Lift3(kernel.Scaling3(2, 3, 4))

	requireClose(t, flat(kernel.Mul4(m, tr)), flat(kernel.Translate4(m, 1, -2, 3)), tol)
	requireClose(t, flat(kernel.Mul4(tr, m)), flat(kernel.TranslateLocal4(m, 1, -2, 3)), tol)
	requireClose(t, flat(kernel.Mul4(m, sc)), flat(kernel.Scale4(m, 2, 3, 4)), tol)
	requireClose(t, flat(kernel.Mul4(sc, m)), flat(kernel.ScaleLocal4(m, 2, 3, 4)), tol)
	requireClose(t, flat(kernel.Mul4(m, kernel.Lift3(kernel.RotationX3(0.3)))), flat(kernel.RotateX4(m, 0.3)), tol)
	requireClose(t, flat(kernel.Mul4(m, kernel.Lift3(kernel.RotationY3(0.3)))), flat(kernel.RotateY4(m, 0.3)), tol)
	requireClose(t, flat(kernel.Mul4(m, kernel.Lift3(kernel.RotationZ3(0.3)))), flat(kernel.RotateZ4(m, 0.3)), tol)

	a := kernel.Trim4(affine())
	requireClose(t, flat(kernel.Mul43(a, kernel.Lift3To43(kernel.RotationY3(-1)))), flat(kernel.RotateY43(a, -1)), tol)
	requireClose(t, flat(kernel.Mul43(kernel.Affine43(kernel.Scaling3(2, 3, 4), [3]float64{}), a)),
		flat(kernel.ScaleLocal43(a, 2, 3, 4)), tol)
}

func TestRotationBuilders(t *testing.T) {
	got := kernel.Apply3(kernel.RotationX3(math.Pi/2), [3]float64{0, 1, 0})
	requireClose(t, []float64{0, 0, 1}, got[:], tol)

	axis := kernel.Rotation3(0.9, vec.V3(0, 0, 2))
	requireClose(t, flat(kernel.RotationZ3(0.9)), axis[:], tol)

	q := vec.AxisAngle{Angle: 0.9, Axis: vec.V3(1, -1, 2)}.Quat()
	requireClose(t, flat(kernel.Rotation3(0.9, vec.V3(1, -1, 2))), flat(kernel.RotationQuat3(q)), tol)

	require.Equal(t, kernel.Ident3, kernel.Rotation3(1, vec.Vec3{}))
}

func TestLookAt_MapsEyeToOrigin(t *testing.T) {
	eye := vec.V3(1, 2, 3)
	l, off := kernel.LookAt(eye, vec.V3(0, 0, 0), vec.V3(0, 1, 0))
	m := kernel.Affine4(l, off)
	p := kernel.Apply3(l, [3]float64{eye.X, eye.Y, eye.Z})
	requireClose(t, []float64{0, 0, 0}, []float64{p[0] + off[0], p[1] + off[1], p[2] + off[2]}, tol)
	assert.True(t, kernel.Classify4(m, props.DefaultEpsilon).Has(props.Orthonormal))
}

func TestReflection_IsInvolution(t *testing.T) {
	l, off := kernel.Reflection(vec.V4(1, 1, 0, -2))
	m := kernel.Affine4(l, off)
	requireClose(t, kernel.Ident4[:], flat(kernel.Mul4(m, m)), tol)
	require.InDelta(t, -1, kernel.Det4(m), tol)
}

func TestShadow_FixesPointsOnPlane(t *testing.T) {
	plane := vec.V4(0, 1, 0, 0)
	s := kernel.Shadow4(vec.V4(1, 5, 2, 1), plane)
	// A point already on y=0 maps to a multiple of itself.
	p := [4]float64{3, 0, -1, 1}
	var out [4]float64
	for row := 0; row < 4; row++ {
		for c := 0; c < 4; c++ {
			out[row] += s[c*4+row] * p[c]
		}
	}
	require.NotZero(t, out[3])
	requireClose(t, []float64{3, 0, -1}, []float64{out[0] / out[3], out[1] / out[3], out[2] / out[3]}, tol)
}

func TestClassify4(t *testing.T) {
	eps := props.DefaultEpsilon
	cases := []struct {
		name string
		m    kernel.M4
		want props.Set
	}{
		{"identity", kernel.Ident4, props.Normalize(props.Identity)},
		{"translation", kernel.Affine4(kernel.Ident3, [3]float64{1, 0, 0}), props.Normalize(props.Translation)},
		{"rigid", rigid(), props.Normalize(props.Orthonormal)},
		{"signed permutation", kernel.Lift3(kernel.M3{0, -1, 0, 1, 0, 0, 0, 0, 1}), props.Normalize(props.Orthonormal)},
		{"affine", affine(), props.Affine},
		{"perspective", kernel.Perspective4(1, 1, 1, 10), props.Perspective},
		{"general", general, props.Unknown},
		{"nan", kernel.M4{math.NaN()}, props.Unknown},
		{"inf offset", kernel.Affine4(kernel.Ident3, [3]float64{math.Inf(1)}), props.Normalize(props.Translation)},
		{"nan linear", kernel.Lift3(kernel.M3{math.NaN(), 0, 0, 0, 1, 0, 0, 0, 1}), props.Affine},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, kernel.Classify4(tc.m, eps))
		})
	}
}

func TestClassify_OrthonormalTolerance(t *testing.T) {
	l := kernel.Scaling3(1+1e-6, 1, 1)
	require.False(t, kernel.Orthonormal3(l, 1e-9))
	require.True(t, kernel.Orthonormal3(l, 1e-5))
	require.False(t, kernel.Orthonormal3(kernel.M3{math.NaN(), 0, 0, 0, 1, 0, 0, 0, 1}, 1))

	require.Equal(t, props.Normalize(props.Identity), kernel.Classify3(kernel.Ident3, 0))
	require.Equal(t, props.Normalize(props.Identity), kernel.Classify32(kernel.Ident32, 0))
	require.Equal(t, props.Normalize(props.Translation), kernel.Classify32(kernel.M32{1, 0, 0, 1, 2, 0}, 0))
	require.Equal(t, props.Normalize(props.Orthonormal), kernel.Classify32(kernel.Rotation32(0.5), 1e-12))
	require.Equal(t, props.Affine, kernel.Classify43(kernel.Trim4(affine()), 1e-12))
}

func TestTransposeLinear(t *testing.T) {
	r := rigid()
	tl := kernel.TransposeLinear4(r)
	requireClose(t, kernel.Ident4[:], flat(kernel.MulAffine4(kernel.Lift3(kernel.Linear4(r)), tl)), tol)
	require.Equal(t, kernel.Transpose4(kernel.Transpose4(general)), general)
}
