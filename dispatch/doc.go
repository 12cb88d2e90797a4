// SPDX-License-Identifier: MIT

// Package dispatch selects a kernel from the property sets of the operands
// and computes the property set of the result.
//
// One generic Dispatcher serves every matrix shape. A shape contributes a
// Table of kernels plus its Caps (which structural facts the shape can carry
// at all); the ladders in SelectMul and SelectInvert are written once.
//
//	Mul ladder (first applicable rung wins):
//	  l Identity                   → copy r
//	  r Identity                   → copy l
//	  l Translation ∧ r Affine     → MulTranslation
//	  l Affine ∧ r Affine          → MulAffine
//	  l Perspective ∧ r Affine     → MulPerspectiveAffine (result Unknown)
//	  otherwise                    → Mul (general)
//
//	Invert ladder:
//	  Identity → copy, Translation → InvertTranslation,
//	  Orthonormal → InvertOrthonormal, Affine → InvertAffine,
//	  Perspective → InvertPerspective, otherwise → Invert (general).
//
// A rung whose kernel is nil in the Table falls through to the general
// kernel, which every Table must provide. The property set attached to the
// result always comes from package props, never from the chosen kernel, so a
// fall-through can only cost speed, never correctness.
package dispatch
