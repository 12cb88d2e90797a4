// SPDX-License-Identifier: MIT

package mat

import (
	"github.com/katalvlaran/lvgeom/dispatch"
	"github.com/katalvlaran/lvgeom/kernel"
)

// One dispatcher per shape. Tables are validated once at package init.
var (
	d4 = dispatch.New(dispatch.Caps{Name: "mat4", HasTranslation: true, HasProjectiveRow: true},
		dispatch.Table[kernel.M4]{
			Identity:             kernel.Ident4,
			Mul:                  kernel.Mul4,
			MulAffine:            kernel.MulAffine4,
			MulTranslation:       kernel.MulTranslation4,
			MulPerspectiveAffine: kernel.MulPerspectiveAffine4,
			Invert:               kernel.Invert4,
			InvertAffine:         kernel.InvertAffine4,
			InvertOrthonormal:    kernel.InvertOrthonormal4,
			InvertTranslation:    kernel.InvertTranslation4,
			InvertPerspective:    kernel.InvertPerspective4,
			Transpose:            kernel.Transpose4,
			Classify:             kernel.Classify4,
		})

	d43 = dispatch.New(dispatch.Caps{Name: "mat4x3", HasTranslation: true},
		dispatch.Table[kernel.M43]{
			Identity:          kernel.Ident43,
			Mul:               kernel.Mul43,
			MulTranslation:    kernel.MulTranslation43,
			Invert:            kernel.Invert43,
			InvertOrthonormal: kernel.InvertOrthonormal43,
			InvertTranslation: kernel.InvertTranslation43,
			Add:               kernel.Add43,
			Classify:          kernel.Classify43,
		})

	d3 = dispatch.New(dispatch.Caps{Name: "mat3"},
		dispatch.Table[kernel.M3]{
			Identity:          kernel.Ident3,
			Mul:               kernel.Mul3,
			Invert:            kernel.Invert3,
			InvertOrthonormal: kernel.InvertOrthonormal3,
			Transpose:         kernel.Transpose3,
			Add:               kernel.Add3,
			Classify:          kernel.Classify3,
		})

	d32 = dispatch.New(dispatch.Caps{Name: "mat3x2", HasTranslation: true},
		dispatch.Table[kernel.M32]{
			Identity:          kernel.Ident32,
			Mul:               kernel.Mul32,
			MulTranslation:    kernel.MulTranslation32,
			Invert:            kernel.Invert32,
			InvertOrthonormal: kernel.InvertOrthonormal32,
			InvertTranslation: kernel.InvertTranslation32,
			Add:               kernel.Add32,
			Classify:          kernel.Classify32,
		})
)
