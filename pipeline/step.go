// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// Operation names accepted in a step's op field.
const (
	OpIdentity     = "identity"
	OpTranslate    = "translate"
	OpScale        = "scale"
	OpRotate       = "rotate"
	OpRotateX      = "rotate_x"
	OpRotateY      = "rotate_y"
	OpRotateZ      = "rotate_z"
	OpLookAt       = "look_at"
	OpLookAlong    = "look_along"
	OpOrtho        = "ortho"
	OpFrustum      = "frustum"
	OpPerspective  = "perspective"
	OpReflect      = "reflect"
	OpShadow       = "shadow"
	OpInvert       = "invert"
	OpTranspose    = "transpose"
	OpTranspose3x3 = "transpose3x3"
	OpNormal       = "normal"
	OpClassify     = "classify"
)

// Ops lists every operation name in a stable order.
var Ops = []string{
	OpIdentity, OpTranslate, OpScale, OpRotate, OpRotateX, OpRotateY, OpRotateZ,
	OpLookAt, OpLookAlong, OpOrtho, OpFrustum, OpPerspective, OpReflect, OpShadow,
	OpInvert, OpTranspose, OpTranspose3x3, OpNormal, OpClassify,
}

// Step is one operation of a pipeline. Only the fields used by Op may be set;
// which ones are required is checked by Validate.
//
// Vectors are YAML sequences: offset, factors, axis, eye, center, up and dir
// have 3 components, plane and light have 4.
type Step struct {
	Op    string `yaml:"op" validate:"required"`
	Local bool   `yaml:"local,omitempty"`

	Offset  []float64 `yaml:"offset,omitempty" validate:"omitempty,len=3,dive,finite"`
	Factors []float64 `yaml:"factors,omitempty" validate:"omitempty,len=3,dive,finite"`

	Angle float64   `yaml:"angle,omitempty" validate:"finite"`
	Axis  []float64 `yaml:"axis,omitempty" validate:"omitempty,len=3,dive,finite"`

	Eye    []float64 `yaml:"eye,omitempty" validate:"omitempty,len=3,dive,finite"`
	Center []float64 `yaml:"center,omitempty" validate:"omitempty,len=3,dive,finite"`
	Up     []float64 `yaml:"up,omitempty" validate:"omitempty,len=3,dive,finite"`
	Dir    []float64 `yaml:"dir,omitempty" validate:"omitempty,len=3,dive,finite"`

	Left   float64 `yaml:"left,omitempty" validate:"finite"`
	Right  float64 `yaml:"right,omitempty" validate:"finite"`
	Bottom float64 `yaml:"bottom,omitempty" validate:"finite"`
	Top    float64 `yaml:"top,omitempty" validate:"finite"`
	Near   float64 `yaml:"near,omitempty" validate:"finite"`
	Far    float64 `yaml:"far,omitempty" validate:"finite"`
	Fovy   float64 `yaml:"fovy,omitempty" validate:"finite"`
	Aspect float64 `yaml:"aspect,omitempty" validate:"finite"`

	Plane []float64 `yaml:"plane,omitempty" validate:"omitempty,len=4,dive,finite"`
	Light []float64 `yaml:"light,omitempty" validate:"omitempty,len=4,dive,finite"`
}

// stepValidate is the validator instance for pipeline documents.
// Initialized in init() with the custom tags and the per-op struct check.
var stepValidate *validator.Validate

func init() {
	stepValidate = validator.New()
	if err := stepValidate.RegisterValidation("finite", validateFinite); err != nil {
		panic(fmt.Sprintf("pipeline: register finite validation: %v", err))
	}
	stepValidate.RegisterStructValidation(validateStep, Step{})
}

// validateFinite rejects NaN and ±Inf.
func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// validateStep checks the parameters each operation needs. Errors are
// reported with the tag "required_for_op", "unused_for_op", "range" or "op".
func validateStep(sl validator.StructLevel) {
	s := sl.Current().Interface().(Step)

	need := func(ok bool, field string) {
		if !ok {
			sl.ReportError(field, field, field, "required_for_op", s.Op)
		}
	}
	check := func(ok bool, field string) {
		if !ok {
			sl.ReportError(field, field, field, "range", s.Op)
		}
	}

	switch s.Op {
	case OpIdentity, OpInvert, OpTranspose, OpTranspose3x3, OpNormal, OpClassify:
	case OpTranslate:
		need(s.Offset != nil, "offset")
	case OpScale:
		need(s.Factors != nil, "factors")
	case OpRotate:
		need(s.Axis != nil, "axis")
	case OpRotateX, OpRotateY, OpRotateZ:
	case OpLookAt:
		need(s.Eye != nil, "eye")
		need(s.Center != nil, "center")
		need(s.Up != nil, "up")
	case OpLookAlong:
		need(s.Dir != nil, "dir")
		need(s.Up != nil, "up")
	case OpOrtho, OpFrustum:
		check(s.Right != s.Left, "right")
		check(s.Top != s.Bottom, "top")
		check(s.Far != s.Near, "far")
	case OpPerspective:
		check(s.Fovy > 0 && s.Fovy < math.Pi, "fovy")
		check(s.Aspect > 0, "aspect")
		check(s.Near > 0, "near")
		check(s.Far > s.Near, "far")
	case OpReflect:
		need(s.Plane != nil, "plane")
	case OpShadow:
		need(s.Light != nil, "light")
		need(s.Plane != nil, "plane")
	default:
		sl.ReportError(s.Op, "op", "Op", "op", s.Op)
		return
	}

	if s.Local && !s.Premultiplies() {
		sl.ReportError(s.Local, "local", "Local", "unused_for_op", s.Op)
	}
}
