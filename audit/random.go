// SPDX-License-Identifier: MIT

package audit

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvgeom/pipeline"
)

// RandomStep draws one valid pipeline step. Parameters stay in ranges that
// keep products well conditioned: scale factors have magnitude in [0.5, 2],
// offsets and plane coefficients lie in [-2, 2]. Unit scales and zero
// offsets are drawn on purpose so the stronger fast paths get exercised.
func RandomStep(rng *rand.Rand) pipeline.Step {
	u := func(lo, hi float64) float64 { return lo + rng.Float64()*(hi-lo) }
	v3 := func() []float64 { return []float64{u(-2, 2), u(-2, 2), u(-2, 2)} }
	factor := func() float64 {
		f := u(0.5, 2)
		if rng.Intn(2) == 0 {
			f = -f
		}
		return f
	}

	switch rng.Intn(20) {
	case 0, 1:
		return pipeline.Step{Op: pipeline.OpTranslate, Offset: v3(), Local: rng.Intn(3) == 0}
	case 2:
		return pipeline.Step{Op: pipeline.OpTranslate, Offset: []float64{0, 0, 0}}
	case 3:
		return pipeline.Step{Op: pipeline.OpScale, Factors: []float64{factor(), factor(), factor()}, Local: rng.Intn(3) == 0}
	case 4:
		unit := []float64{1, 1, 1}
		unit[rng.Intn(3)] = -1
		return pipeline.Step{Op: pipeline.OpScale, Factors: unit}
	case 5, 6:
		return pipeline.Step{Op: pipeline.OpRotate, Angle: u(-math.Pi, math.Pi), Axis: v3(), Local: rng.Intn(3) == 0}
	case 7:
		return pipeline.Step{Op: pipeline.OpRotateX, Angle: u(-math.Pi, math.Pi)}
	case 8:
		return pipeline.Step{Op: pipeline.OpRotateY, Angle: u(-math.Pi, math.Pi)}
	case 9:
		return pipeline.Step{Op: pipeline.OpRotateZ, Angle: u(-math.Pi, math.Pi)}
	case 10:
		return pipeline.Step{Op: pipeline.OpLookAt, Eye: v3(), Center: v3(), Up: []float64{0, 1, 0}}
	case 11:
		return pipeline.Step{Op: pipeline.OpLookAlong, Dir: v3(), Up: []float64{0, 0, 1}}
	case 12:
		w := u(0.5, 2)
		return pipeline.Step{Op: pipeline.OpOrtho, Left: -w, Right: w, Bottom: -1, Top: 1, Near: u(0.1, 1), Far: u(10, 100)}
	case 13:
		return pipeline.Step{Op: pipeline.OpFrustum, Left: u(-1, -0.2), Right: u(0.2, 1), Bottom: -0.5, Top: 0.5, Near: u(0.1, 1), Far: u(10, 100)}
	case 14:
		return pipeline.Step{Op: pipeline.OpPerspective, Fovy: u(0.3, 2), Aspect: u(0.5, 2), Near: u(0.1, 1), Far: u(10, 100)}
	case 15:
		return pipeline.Step{Op: pipeline.OpReflect, Plane: append(v3(), u(-2, 2))}
	case 16, 17:
		return pipeline.Step{Op: pipeline.OpInvert}
	case 18:
		ops := []string{pipeline.OpTranspose, pipeline.OpTranspose3x3, pipeline.OpNormal, pipeline.OpClassify}
		return pipeline.Step{Op: ops[rng.Intn(len(ops))]}
	default:
		return pipeline.Step{Op: pipeline.OpIdentity}
	}
}
