// Package lvgeom is a 3D transform-matrix library whose matrices carry a
// conservative set of structural facts (identity, translation-only,
// orthonormal, affine, perspective) and use them to pick the cheapest
// correct kernel for every multiply, inversion and transform build.
//
// 🚀 What is lvgeom?
//
//	A small, allocation-free library that brings together:
//		• Property lattice: facts, implications, combinators (props)
//		• Kernels: per-shape arithmetic with documented preconditions (kernel)
//		• Dispatch: one ladder over shape capabilities (dispatch)
//		• Matrices: Mat4, Mat4x3, Mat3, Mat3x2 with tracked facts (mat)
//		• Pipelines: YAML transform chains, validated and traced (pipeline)
//		• Audit: random sequences cross-checked against a dense reference (audit)
//
// ✨ Guarantees
//
//   - A tracked fact always holds for the entries (never over-claims).
//   - Identity products and inverses are bit-exact copies.
//   - Degenerate inputs yield Inf/NaN, detected with IsFinite; misuse of
//     indices returns wrapped sentinel errors.
//
// Under the hood, everything is organized under these subpackages:
//
//	props/    Set, State, Normalize, Product/Inverse/Transpose/Sum
//	kernel/   Mul/Invert/Transpose/Build/Classify per shape
//	dispatch/ MulPath/InvertPath ladders and the generic Dispatcher
//	vec/      Vec3, Vec4, Quat, AxisAngle
//	mat/      public matrix types and their operations
//	dense/    plain row-major float64 reference algebra (LU, inverse)
//	pipeline/ YAML pipelines evaluated through mat
//	audit/    parallel invariant audit with Prometheus metrics
//	cmd/lvgeom/ eval, classify and audit commands
//
// Quick example:
//
//	var m mat.Mat4
//	m.SetTranslation(1, 2, 3)
//	m.RotateY(0.5)          // orthonormal|affine, rotation kernel
//	var inv mat.Mat4
//	inv.Invert(&m)          // transpose + translation fix-up, no cofactors
//
//	go get github.com/katalvlaran/lvgeom
package lvgeom
