// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/props"
)

// Caps describes which structural facts a shape can carry.
type Caps struct {
	// Name is used in panic messages and metrics labels ("mat4", "mat3x2", ...).
	Name string
	// HasTranslation is false for shapes without an offset column (3×3);
	// there Translation coincides with Identity.
	HasTranslation bool
	// HasProjectiveRow is false for shapes whose last row is implicit
	// (4×3, 3×2); they are always Affine and never Perspective.
	HasProjectiveRow bool
}

// Fit clamps s to what the shape can represent and normalizes it.
func (c Caps) Fit(s props.Set) props.Set {
	s = props.Normalize(s)
	if !c.HasProjectiveRow {
		s = props.Normalize(s&^props.Perspective | props.Affine)
	}
	if !c.HasTranslation && s.Has(props.Translation) {
		s = props.Normalize(s | props.Identity)
	}

	return s
}

// Table is the kernel set of one shape. Identity, Mul, Invert and Classify
// are required; every other kernel is optional.
type Table[T any] struct {
	Identity T

	Mul                  func(a, b T) T
	MulAffine            func(a, b T) T
	MulTranslation       func(a, b T) T
	MulPerspectiveAffine func(a, b T) T

	Invert            func(a T) T
	InvertAffine      func(a T) T
	InvertOrthonormal func(a T) T
	InvertTranslation func(a T) T
	InvertPerspective func(a T) T

	Transpose func(a T) T
	Add       func(a, b T) T

	Classify func(a T, eps float64) props.Set
}

// Dispatcher routes operations on one shape through its Table.
// A Dispatcher is immutable after New and safe for concurrent use.
type Dispatcher[T any] struct {
	caps Caps
	tab  Table[T]
}

// New validates tab and returns a Dispatcher for it.
// It panics when a required kernel is missing: tables are package-level
// wiring, so a bad one is a programming error.
func New[T any](caps Caps, tab Table[T]) *Dispatcher[T] {
	switch {
	case tab.Mul == nil:
		panic(fmt.Sprintf("dispatch: %s table has no Mul kernel", caps.Name))
	case tab.Invert == nil:
		panic(fmt.Sprintf("dispatch: %s table has no Invert kernel", caps.Name))
	case tab.Classify == nil:
		panic(fmt.Sprintf("dispatch: %s table has no Classify kernel", caps.Name))
	}

	return &Dispatcher[T]{caps: caps, tab: tab}
}

// Caps returns the shape capabilities.
func (d *Dispatcher[T]) Caps() Caps { return d.caps }

// Identity returns the identity value of the shape with its property set.
func (d *Dispatcher[T]) Identity() (T, props.Set) {
	return d.tab.Identity, d.caps.Fit(props.Identity)
}

// Mul returns l × r and its property set.
func (d *Dispatcher[T]) Mul(l T, pl props.Set, r T, pr props.Set) (T, props.Set) {
	out := d.caps.Fit(props.Product(pl, pr))

	switch SelectMul(pl, pr) {
	case MulIdentityLeft:
		return r, out
	case MulIdentityRight:
		return l, out
	case MulTranslationLeft:
		return pick2(d.tab.MulTranslation, d.tab.MulAffine, d.tab.Mul)(l, r), out
	case MulAffineBoth:
		return pick2(d.tab.MulAffine, d.tab.Mul)(l, r), out
	case MulPerspectiveAffine:
		return pick2(d.tab.MulPerspectiveAffine, d.tab.Mul)(l, r), out
	default:
		return d.tab.Mul(l, r), out
	}
}

// Invert returns a⁻¹ and its property set. A singular a yields non-finite
// entries rather than an error.
func (d *Dispatcher[T]) Invert(a T, pa props.Set) (T, props.Set) {
	out := d.caps.Fit(props.Inverse(pa))

	switch SelectInvert(pa) {
	case InvertIdentity:
		return a, out
	case InvertTranslation:
		return pick1(d.tab.InvertTranslation, d.tab.InvertOrthonormal, d.tab.InvertAffine, d.tab.Invert)(a), out
	case InvertOrthonormal:
		return pick1(d.tab.InvertOrthonormal, d.tab.InvertAffine, d.tab.Invert)(a), out
	case InvertAffine:
		return pick1(d.tab.InvertAffine, d.tab.Invert)(a), out
	case InvertPerspective:
		return pick1(d.tab.InvertPerspective, d.tab.Invert)(a), out
	default:
		return d.tab.Invert(a), out
	}
}

// Transpose returns aᵀ. It panics when the shape has no Transpose kernel.
// On a shape without translation column the whole matrix is the linear
// block, so orthonormality survives.
func (d *Dispatcher[T]) Transpose(a T, pa props.Set) (T, props.Set) {
	if d.tab.Transpose == nil {
		panic(fmt.Sprintf("dispatch: %s table has no Transpose kernel", d.caps.Name))
	}
	if pa.Has(props.Identity) {
		return a, d.caps.Fit(pa)
	}
	out := props.Transpose(pa)
	if !d.caps.HasTranslation {
		out = props.TransposeLinear(pa)
	}

	return d.tab.Transpose(a), d.caps.Fit(out)
}

// Add returns the element-wise sum. It panics when the shape has no Add kernel.
func (d *Dispatcher[T]) Add(a T, pa props.Set, b T, pb props.Set) (T, props.Set) {
	if d.tab.Add == nil {
		panic(fmt.Sprintf("dispatch: %s table has no Add kernel", d.caps.Name))
	}

	return d.tab.Add(a, b), d.caps.Fit(props.Sum(pa, pb))
}

// Classify returns the strongest property set a satisfies, clamped to the shape.
func (d *Dispatcher[T]) Classify(a T, eps float64) props.Set {
	return d.caps.Fit(d.tab.Classify(a, eps))
}

// Apply returns a × op (op applied first to vectors), its property set and
// the rung that computed it.
//
// Implementation:
//   - Stage 1: an Identity receiver is replaced by the op matrix itself.
//   - Stage 2: ops with a Post kernel run it directly on a.
//   - Stage 3: otherwise the op matrix is built and fed to the Mul ladder.
func (d *Dispatcher[T]) Apply(a T, pa props.Set, op Op[T]) (T, props.Set, MulPath) {
	if pa.Has(props.Identity) {
		return op.Build(), d.caps.Fit(op.Props), MulBuildOnIdentity
	}
	if op.Post != nil {
		return op.Post(a), d.caps.Fit(props.Product(pa, op.Props)), MulPostKernel
	}
	r, s := d.Mul(a, pa, op.Build(), op.Props)

	return r, s, SelectMul(pa, op.Props)
}

// ApplyLocal returns op × a (op applied last to vectors), its property set
// and the rung that computed it.
func (d *Dispatcher[T]) ApplyLocal(a T, pa props.Set, op Op[T]) (T, props.Set, MulPath) {
	if pa.Has(props.Identity) {
		return op.Build(), d.caps.Fit(op.Props), MulBuildOnIdentity
	}
	if op.Pre != nil {
		return op.Pre(a), d.caps.Fit(props.Product(op.Props, pa)), MulPreKernel
	}
	r, s := d.Mul(op.Build(), op.Props, a, pa)

	return r, s, SelectMul(op.Props, pa)
}

func pick2[T any](fns ...func(a, b T) T) func(a, b T) T {
	for _, fn := range fns {
		if fn != nil {
			return fn
		}
	}

	return nil
}

func pick1[T any](fns ...func(a T) T) func(a T) T {
	for _, fn := range fns {
		if fn != nil {
			return fn
		}
	}

	return nil
}
