// SPDX-License-Identifier: MIT

// Package mat provides the property-tracked transform matrices of lvgeom:
// Mat3x2 (2D affine), Mat3 (3D linear), Mat4x3 (3D affine) and Mat4 (3D
// homogeneous, including projections).
//
// Every matrix carries a props.Set describing what it is currently known to
// be (identity, translation, orthonormal, affine, perspective). Operations
// read the sets of their operands to pick a specialized kernel and store the
// set of the result in the same assignment as the entries, so the set never
// claims more than the entries satisfy.
//
// Conventions:
//
//   - Storage is column-major; At(col, row) addresses entries, translation is
//     the last column, vectors are columns (p' = M·p).
//   - Mutators use pointer receivers and return nothing. The receiver may
//     alias any operand: m.Mul(&m, &m) squares m.
//   - Index errors are returned as ErrOutOfRange wrapped with the call site.
//     Numeric degeneracy (singular inverse, zero extents) is not an error:
//     entries become Inf/NaN and IsFinite reports it.
//   - The zero value is the all-zero matrix with an empty set, which is
//     truthful. Use Ident4 (or SetIdentity) for the identity.
//
// Property claims made by constructors are checked against
// props.DefaultEpsilon; Classify re-derives the set from the entries with
// any epsilon.
package mat
