// SPDX-License-Identifier: MIT

package props

import "math"

// Product returns the properties of l × r as computed by the multiply ladder.
//
// Implementation (first applicable rung wins):
//   - Stage 1: l is Identity → r's properties (the result is a copy of r).
//   - Stage 2: r is Identity → l's properties.
//   - Stage 3: l is Translation and r is Affine → Affine, narrowed by r's
//     Orthonormal/Translation facts (l only shifts the offset).
//   - Stage 4: both Affine → Affine, plus Orthonormal only when both claim it.
//   - Stage 5: anything else (perspective × affine, general) → Unknown.
//
// Behavior highlights:
//   - The result never claims more than both inputs justify; a product of two
//     orthonormal maps is orthonormal, a product involving a scale is not.
//
// Complexity: O(1).
func Product(l, r Set) Set {
	switch {
	case l.Has(Identity):
		return Normalize(r)
	case r.Has(Identity):
		return Normalize(l)
	case l.Has(Translation) && r.Has(Affine):
		return Normalize(Affine | r&(Orthonormal|Translation))
	case l.Has(Affine) && r.Has(Affine):
		return Normalize(Affine | l&r&Orthonormal)
	default:
		return Unknown
	}
}

// Sum returns the properties of an element-wise sum that leaves the last row
// of the left operand untouched (Add4x3 on 4×4, Add on 4×3/3×3/3×2).
// Sums keep the affine row only; identity, translation and orthonormality are
// not preserved by addition. This is the AND-narrow combinator.
func Sum(a, b Set) Set { return Normalize(a & b & Affine) }

// Inverse returns the properties of the inverse selected by the invert ladder.
//
//   - Identity    → Identity
//   - Translation → Translation (negated offset)
//   - Orthonormal → Orthonormal (transposed linear block)
//   - Affine      → Affine
//   - otherwise   → Unknown (perspective and general inverses)
func Inverse(s Set) Set {
	switch {
	case s.Has(Identity):
		return Normalize(Identity)
	case s.Has(Translation):
		return Normalize(Translation)
	case s.Has(Orthonormal):
		return Normalize(Orthonormal)
	case s.Has(Affine):
		return Affine
	default:
		return Unknown
	}
}

// Transpose returns the properties of a full transpose of a matrix that has a
// translation column (4×4). Only the identity survives: the offset moves into
// the last row, so the result is no longer known to be affine.
func Transpose(s Set) Set {
	if s.Has(Identity) {
		return Normalize(Identity)
	}

	return Unknown
}

// TransposeLinear returns the properties of a transpose restricted to the
// linear block, with the offset cleared and the last row reset to the identity
// row (Transpose3x3, or Transpose on shapes without a translation column).
//
// The result is always Affine. Orthonormality survives transposition, and a
// Translation input has an identity linear block, so its transpose with the
// offset dropped is the identity.
func TransposeLinear(s Set) Set {
	out := Affine | s&Orthonormal
	if s.Has(Translation) {
		out |= Identity
	}

	return Normalize(out)
}

// FromScale returns the constructor properties of a diagonal scaling with the
// given factors.
//
//   - all factors == 1        → Identity
//   - all |factor| == 1       → Orthonormal (reflections/sign flips, no true scaling)
//   - otherwise               → Affine
//
// The comparison is exact; a factor of 0.9999999 is a scale.
func FromScale(factors ...float64) Set {
	identity, unit := true, true
	for _, f := range factors {
		if f != 1 {
			identity = false
		}
		if math.Abs(f) != 1 {
			unit = false
		}
	}
	switch {
	case identity:
		return Normalize(Identity)
	case unit:
		return Normalize(Orthonormal)
	default:
		return Affine
	}
}

// FromOffset returns the constructor properties of a pure translation: Identity
// when every component is zero, Translation otherwise.
func FromOffset(offset ...float64) Set {
	for _, v := range offset {
		if v != 0 {
			return Normalize(Translation)
		}
	}

	return Normalize(Identity)
}
