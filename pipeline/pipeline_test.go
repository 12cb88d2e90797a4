// SPDX-License-Identifier: MIT
package pipeline_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/mat"
	"github.com/katalvlaran/lvgeom/pipeline"
	"github.com/katalvlaran/lvgeom/props"
	"github.com/katalvlaran/lvgeom/vec"
)

const camera = `
name: camera
steps:
  - op: perspective
    fovy: 1.0
    aspect: 1.5
    near: 0.1
    far: 100
  - op: look_at
    eye: [0, 2, 5]
    center: [0, 0, 0]
    up: [0, 1, 0]
`

func TestParseAndEval_Camera(t *testing.T) {
	p, err := pipeline.ParseBytes([]byte(camera))
	require.NoError(t, err)
	require.Equal(t, "camera", p.Name)
	require.Len(t, p.Steps, 2)

	m, traces := p.Eval()
	require.Len(t, traces, 2)
	assert.Equal(t, "identity", traces[0].Path)
	assert.Equal(t, props.Perspective, traces[0].Props)
	assert.Equal(t, "perspective_affine", traces[1].Path)
	assert.Equal(t, props.Unknown, traces[1].Props)

	var proj, view, want mat.Mat4
	proj.SetPerspective(1, 1.5, 0.1, 100)
	view.SetLookAt(vec.V3(0, 2, 5), vec.Vec3{}, vec.V3(0, 1, 0))
	want.Mul(&proj, &view)
	assert.True(t, want.EqualApprox(&m, 1e-12))
}

func TestEval_TranslationChain(t *testing.T) {
	doc := `
name: chain
steps:
  - op: translate
    offset: [1, 2, 3]
  - op: translate
    offset: [4, 5, 6]
  - op: invert
`
	p, err := pipeline.ParseBytes([]byte(doc))
	require.NoError(t, err)
	m, traces := p.Eval()

	assert.Equal(t, "post", traces[1].Path)
	assert.Equal(t, "translation", traces[2].Path)
	assert.Equal(t, props.StateTranslation, m.State())
	assert.Equal(t, vec.V3(-5, -7, -9), m.TransformPosition(vec.Vec3{}))
}

func TestEval_LocalSteps(t *testing.T) {
	doc := `
name: local
steps:
  - op: rotate_z
    angle: 1.5707963267948966
  - op: translate
    offset: [1, 0, 0]
    local: true
  - op: classify
`
	p, err := pipeline.ParseBytes([]byte(doc))
	require.NoError(t, err)
	m, traces := p.Eval()

	// Local translation is applied after the rotation: (1,0,0) → (0,1,0) → (1,1,0).
	got := m.TransformPosition(vec.V3(1, 0, 0))
	assert.True(t, got.ApproxEq(vec.V3(1, 1, 0), 1e-12), "%+v", got)
	assert.Equal(t, "pre", traces[1].Path)
	assert.Equal(t, "", traces[2].Path)
	assert.True(t, traces[2].Props.Has(props.Orthonormal))
}

// A step's reported path is the rung that actually ran: translate and scale
// go through their column kernels even on a perspective matrix, while ops
// without a kernel go through the product ladder.
func TestApply_ReportsRungTaken(t *testing.T) {
	cases := []struct {
		name string
		step pipeline.Step
		want string
	}{
		{"translate", pipeline.Step{Op: pipeline.OpTranslate, Offset: []float64{1, 2, 3}}, "post"},
		{"scale", pipeline.Step{Op: pipeline.OpScale, Factors: []float64{2, 2, 2}}, "post"},
		{"rotate_x", pipeline.Step{Op: pipeline.OpRotateX, Angle: 0.3}, "post"},
		{"local translate", pipeline.Step{Op: pipeline.OpTranslate, Offset: []float64{1, 2, 3}, Local: true}, "pre"},
		{"rotate", pipeline.Step{Op: pipeline.OpRotate, Angle: 0.3, Axis: []float64{0, 0, 1}}, "perspective_affine"},
		{"local rotate", pipeline.Step{Op: pipeline.OpRotate, Angle: 0.3, Axis: []float64{0, 0, 1}, Local: true}, "general"},
		{"ortho", pipeline.Step{Op: pipeline.OpOrtho, Left: -1, Right: 1, Bottom: -1, Top: 1, Near: 1, Far: 10}, "perspective_affine"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mat.Ident4()
			m.SetPerspective(1, 1.5, 0.1, 100)
			require.Equal(t, props.Perspective, m.Properties())

			want := m
			operand, ok := pipeline.Operand(tc.step)
			require.True(t, ok)
			if tc.step.Premultiplies() {
				want.Mul(&operand, &want)
			} else {
				want.Mul(&want, &operand)
			}

			assert.Equal(t, tc.want, pipeline.Apply(&m, tc.step))
			assert.True(t, want.EqualApprox(&m, 1e-12))
		})
	}

	m := mat.Ident4()
	assert.Equal(t, "identity", pipeline.Apply(&m, pipeline.Step{Op: pipeline.OpTranslate, Offset: []float64{1, 0, 0}}))
	assert.Equal(t, "translation", pipeline.Apply(&m, pipeline.Step{Op: pipeline.OpInvert}))
}

func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
		msg  string
	}{
		{"unknown op", "name: x\nsteps:\n  - op: warp\n", pipeline.ErrUnknownOp, `"warp"`},
		{"missing name", "steps:\n  - op: identity\n", pipeline.ErrInvalidPipeline, "Name"},
		{"no steps", "name: x\nsteps: []\n", pipeline.ErrInvalidPipeline, "Steps"},
		{"missing offset", "name: x\nsteps:\n  - op: translate\n", pipeline.ErrInvalidPipeline, "required_for_op"},
		{"short axis", "name: x\nsteps:\n  - op: rotate\n    axis: [1, 0]\n", pipeline.ErrInvalidPipeline, "len"},
		{"bad fovy", "name: x\nsteps:\n  - op: perspective\n    fovy: 4\n    aspect: 1\n    near: 1\n    far: 2\n", pipeline.ErrInvalidPipeline, "fovy"},
		{"flat ortho", "name: x\nsteps:\n  - op: ortho\n    left: 1\n    right: 1\n    top: 1\n    far: 1\n", pipeline.ErrInvalidPipeline, "right"},
		{"local invert", "name: x\nsteps:\n  - op: invert\n    local: true\n", pipeline.ErrInvalidPipeline, "unused_for_op"},
		{"nan angle", "name: x\nsteps:\n  - op: rotate_x\n    angle: .nan\n", pipeline.ErrInvalidPipeline, "finite"},
		{"inf offset", "name: x\nsteps:\n  - op: translate\n    offset: [1, .inf, 3]\n", pipeline.ErrInvalidPipeline, "finite"},
		{"unknown key", "name: x\nsteps:\n  - op: identity\n    warp: 1\n", pipeline.ErrInvalidPipeline, "warp"},
		{"not yaml", "name: [", pipeline.ErrInvalidPipeline, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pipeline.ParseBytes([]byte(tc.doc))
			require.ErrorIs(t, err, tc.want)
			assert.True(t, strings.Contains(err.Error(), tc.msg), err.Error())
		})
	}
}

func TestOperand_CoversEveryProduct(t *testing.T) {
	products := map[string]bool{}
	for _, op := range pipeline.Ops {
		s := pipeline.Step{
			Op: op, Offset: []float64{1, 2, 3}, Factors: []float64{2, 2, 2},
			Angle: 0.5, Axis: []float64{0, 0, 1},
			Eye: []float64{0, 0, 5}, Center: []float64{0, 0, 0}, Up: []float64{0, 1, 0}, Dir: []float64{0, 0, -1},
			Left: -1, Right: 1, Bottom: -1, Top: 1, Near: 1, Far: 10, Fovy: 1, Aspect: 1,
			Plane: []float64{0, 1, 0, 0}, Light: []float64{0, 5, 0, 1},
		}
		if _, ok := pipeline.Operand(s); ok {
			products[op] = true
		}
	}
	assert.Len(t, products, 13)
	assert.False(t, products[pipeline.OpInvert])
	assert.True(t, products[pipeline.OpShadow])
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camera.yaml")
	require.NoError(t, os.WriteFile(path, []byte(camera), 0o600))
	p, err := pipeline.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "camera", p.Name)

	_, err = pipeline.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
