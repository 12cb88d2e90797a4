// SPDX-License-Identifier: MIT

// Package props defines the property lattice carried by every lvgeom matrix.
//
// What & Why:
//
//	A Set is a conservative summary of algebraic facts a matrix instance is
//	currently known to satisfy. Operations in package mat branch on it to pick
//	cheaper formulas (transpose instead of cofactor inverse, affine multiply
//	instead of the full 4×4 product) and must hand back a Set for their result.
//	A Set may under-claim (say less than the entries support) but must never
//	over-claim.
//
// Lattice (strongest → weakest):
//
//	Identity ⊑ {Translation, Orthonormal} ⊑ Affine ⊑ ⊤ (Unknown)
//	Perspective is a separate branch, mutually exclusive with Affine.
//
// Rules live in one place:
//
//   - set.go     the value type, implications (Normalize) and predicates.
//   - combine.go pure combinators: Product, Sum, Inverse, Transpose, FromScale.
//   - state.go   the coarse State view used by diagnostics and tests.
//   - options.go numeric policy (epsilon) consumed by classifiers.
//
// Complexity:
//
//	Every function in this package is O(1) and allocation-free.
package props
