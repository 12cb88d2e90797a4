// SPDX-License-Identifier: MIT

// Package pipeline evaluates YAML-described transform chains through the
// property-tracking matrix engine.
//
// A document names a pipeline and lists its steps:
//
//	name: camera
//	steps:
//	  - op: perspective
//	    fovy: 1.0
//	    aspect: 1.5
//	    near: 0.1
//	    far: 100
//	  - op: look_at
//	    eye: [0, 2, 5]
//	    center: [0, 0, 0]
//	    up: [0, 1, 0]
//
// Evaluation starts from the identity and applies every step in order as a
// post-multiplication (m = m × step), or as a pre-multiplication for
// translate, scale and rotate steps marked local. The remaining steps act on
// the accumulated matrix as a whole (invert, transpose, normal, classify,
// identity).
package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgeom/dispatch"
	"github.com/katalvlaran/lvgeom/mat"
	"github.com/katalvlaran/lvgeom/props"
	"github.com/katalvlaran/lvgeom/vec"
)

// Pipeline is a named chain of steps.
type Pipeline struct {
	Name  string `yaml:"name" validate:"required"`
	Steps []Step `yaml:"steps" validate:"required,min=1,dive"`
}

// Trace records what one step did to the accumulated matrix.
type Trace struct {
	Index int
	Op    string
	// Path is the dispatch ladder rung selected for the step, or "" for steps
	// that do not go through a ladder.
	Path  string
	Props props.Set
}

// Parse decodes and validates a pipeline document. Unknown keys are rejected.
func Parse(r io.Reader) (*Pipeline, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Pipeline
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPipeline, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(data []byte) (*Pipeline, error) { return Parse(bytes.NewReader(data)) }

// Load reads and parses the pipeline file at path.
func Load(path string) (*Pipeline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Validate checks the pipeline against its struct tags and the per-operation
// parameter rules. An unknown operation yields ErrUnknownOp; every other
// failure yields ErrInvalidPipeline. The message names the offending field.
func (p *Pipeline) Validate() error {
	err := stepValidate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidPipeline, err)
	}
	first := verrs[0]
	if first.Tag() == "op" {
		return fmt.Errorf("%w: %q at %s", ErrUnknownOp, first.Param(), first.Namespace())
	}

	return fmt.Errorf("%w: %s fails %q (%s)", ErrInvalidPipeline, first.Namespace(), first.Tag(), first.Param())
}

// Eval runs the pipeline from the identity and returns the final matrix with
// one Trace per step. p must have passed Validate.
func (p *Pipeline) Eval() (mat.Mat4, []Trace) {
	m := mat.Ident4()
	traces := make([]Trace, 0, len(p.Steps))
	for i, s := range p.Steps {
		path := Apply(&m, s)
		traces = append(traces, Trace{Index: i, Op: s.Op, Path: path, Props: m.Properties()})
	}

	return m, traces
}

// Apply performs one validated step on m and returns the dispatch rung that
// computed it ("" for steps outside the ladders).
func Apply(m *mat.Mat4, s Step) string {
	if _, ok := Operand(s); ok {
		if s.Premultiplies() {
			return applyLocal(m, s).String()
		}
		return apply(m, s).String()
	}

	switch s.Op {
	case OpIdentity:
		m.SetIdentity()
	case OpInvert:
		path := dispatch.SelectInvert(m.Properties()).String()
		m.Invert(m)
		return path
	case OpTranspose:
		m.Transpose(m)
	case OpTranspose3x3:
		m.Transpose3x3(m)
	case OpNormal:
		m.Normal(m)
	case OpClassify:
		m.Classify()
	}

	return ""
}

// Operand builds the matrix a multiplying step combines with the
// accumulated one. It reports false for steps that are not products.
func Operand(s Step) (mat.Mat4, bool) {
	var o mat.Mat4
	switch s.Op {
	case OpTranslate:
		o.SetTranslation(s.Offset[0], s.Offset[1], s.Offset[2])
	case OpScale:
		o.SetScaling(s.Factors[0], s.Factors[1], s.Factors[2])
	case OpRotate:
		o.SetRotation(s.Angle, v3(s.Axis))
	case OpRotateX:
		o.SetRotationX(s.Angle)
	case OpRotateY:
		o.SetRotationY(s.Angle)
	case OpRotateZ:
		o.SetRotationZ(s.Angle)
	case OpLookAt:
		o.SetLookAt(v3(s.Eye), v3(s.Center), v3(s.Up))
	case OpLookAlong:
		o.SetLookAlong(v3(s.Dir), v3(s.Up))
	case OpOrtho:
		o.SetOrtho(s.Left, s.Right, s.Bottom, s.Top, s.Near, s.Far)
	case OpFrustum:
		o.SetFrustum(s.Left, s.Right, s.Bottom, s.Top, s.Near, s.Far)
	case OpPerspective:
		o.SetPerspective(s.Fovy, s.Aspect, s.Near, s.Far)
	case OpReflect:
		o.SetReflection(v4(s.Plane))
	case OpShadow:
		o.SetShadow(v4(s.Light), v4(s.Plane))
	default:
		return o, false
	}

	return o, true
}

// apply runs the engine's post-multiplying applier for s.
func apply(m *mat.Mat4, s Step) dispatch.MulPath {
	switch s.Op {
	case OpTranslate:
		return m.Translate(s.Offset[0], s.Offset[1], s.Offset[2])
	case OpScale:
		return m.Scale(s.Factors[0], s.Factors[1], s.Factors[2])
	case OpRotate:
		return m.Rotate(s.Angle, v3(s.Axis))
	case OpRotateX:
		return m.RotateX(s.Angle)
	case OpRotateY:
		return m.RotateY(s.Angle)
	case OpRotateZ:
		return m.RotateZ(s.Angle)
	case OpLookAt:
		return m.LookAt(v3(s.Eye), v3(s.Center), v3(s.Up))
	case OpLookAlong:
		return m.LookAlong(v3(s.Dir), v3(s.Up))
	case OpOrtho:
		return m.Ortho(s.Left, s.Right, s.Bottom, s.Top, s.Near, s.Far)
	case OpFrustum:
		return m.Frustum(s.Left, s.Right, s.Bottom, s.Top, s.Near, s.Far)
	case OpPerspective:
		return m.Perspective(s.Fovy, s.Aspect, s.Near, s.Far)
	case OpReflect:
		return m.Reflect(v4(s.Plane))
	case OpShadow:
		return m.Shadow(v4(s.Light), v4(s.Plane))
	}

	return dispatch.MulGeneral
}

// applyLocal runs the pre-multiplying applier for s.
func applyLocal(m *mat.Mat4, s Step) dispatch.MulPath {
	switch s.Op {
	case OpTranslate:
		return m.TranslateLocal(s.Offset[0], s.Offset[1], s.Offset[2])
	case OpScale:
		return m.ScaleLocal(s.Factors[0], s.Factors[1], s.Factors[2])
	case OpRotate:
		return m.RotateLocal(s.Angle, v3(s.Axis))
	}

	return dispatch.MulGeneral
}

// Premultiplies reports whether s is applied as op × m rather than m × op.
func (s Step) Premultiplies() bool {
	return s.Local && (s.Op == OpTranslate || s.Op == OpScale || s.Op == OpRotate)
}

func v3(s []float64) vec.Vec3 { return vec.V3(s[0], s[1], s[2]) }
func v4(s []float64) vec.Vec4 { return vec.V4(s[0], s[1], s[2], s[3]) }
