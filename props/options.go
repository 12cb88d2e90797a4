// SPDX-License-Identifier: MIT

// Package props: functional configuration of the numeric policy used by the
// classifiers. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - Gather, which resolves a list of options into effective Options.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package props

import "math"

// DefaultEpsilon is the tolerance of the orthonormality test performed by the
// classifiers when the exact structural short-circuit does not apply.
const DefaultEpsilon = 1e-9

// ClaimEpsilon caps the orthonormality tolerance whenever a classification
// is stored as a tracked claim rather than only reported. Dispatch trusts
// tracked facts exactly (an orthonormal claim selects the transpose inverse),
// so a stored claim admits rounding noise of a few ulps and nothing more.
const ClaimEpsilon = 64 * 0x1p-52

const panicEpsilonInvalid = "props: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the tolerance eps of the orthonormality test.
//
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is NaN, ±Inf or negative.
//
// Notes:
//   - eps == 0 disables the tolerance test: only exact signed permutations
//     (and exact Gram products) are classified orthonormal.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options { return Options{eps: DefaultEpsilon} }

// Gather applies opts over DefaultOptions in order; later options win.
func Gather(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Epsilon returns the configured orthonormality tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ClaimTolerance returns the tolerance used when a classification becomes a
// matrix's tracked claim: the configured eps, capped at ClaimEpsilon.
func (o Options) ClaimTolerance() float64 { return math.Min(o.eps, ClaimEpsilon) }
