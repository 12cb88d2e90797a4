// SPDX-License-Identifier: MIT

// Package kernel holds the closed-form formulas behind the lvgeom matrices:
// products, inverses, transposes, transform builders and the property
// classifiers, one family per (operation × precondition) pair.
//
// Layout:
//
//	All shapes are column-major arrays (index = col*rows + row):
//	  M32 3 columns × 2 rows  (2×2 linear block + offset)
//	  M3  3 columns × 3 rows  (linear map)
//	  M43 4 columns × 3 rows  (3×3 linear block + offset)
//	  M4  4 columns × 4 rows  (full homogeneous transform)
//
// Contract:
//
//   - Every kernel is a pure function: inputs and outputs are passed by value,
//     so callers may write the result over either operand.
//   - A kernel is responsible only for numeric correctness under its
//     documented precondition (e.g. "b is affine"). Choosing a kernel whose
//     precondition holds is the job of package dispatch.
//   - Division by a (near-)zero determinant is not guarded: IEEE-754 Inf/NaN
//     propagate to the result and are detected downstream with IsFinite.
//
// Naming:
//
//	<Op><Precondition><Shape>, e.g. MulAffine4, InvertOrthonormal43, Classify32.
package kernel
