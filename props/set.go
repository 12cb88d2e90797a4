// SPDX-License-Identifier: MIT

package props

import "strings"

// Set is an immutable bitset of matrix properties.
// The zero value is Unknown (⊤): nothing is claimed.
//
// Any integer is a legal encoding, but only normalized values (see Normalize)
// are produced by this package and by the matrix types.
type Set uint8

// Named facts. Bit positions are internal and not stable across versions.
const (
	// Perspective marks the zero pattern of a frustum projection (4×4 only).
	Perspective Set = 1 << iota
	// Affine marks a last row equal to the identity row.
	Affine
	// Translation marks an identity linear block; only the offset may differ.
	Translation
	// Identity marks the exact identity matrix.
	Identity
	// Orthonormal marks a linear block with unit, mutually orthogonal columns.
	Orthonormal
)

// Unknown is ⊤: no property is claimed.
const Unknown Set = 0

// all is the union of every named fact.
const all = Perspective | Affine | Translation | Identity | Orthonormal

// names is ordered from strongest to weakest for String.
var names = [...]struct {
	bit  Set
	name string
}{
	{Identity, "identity"},
	{Translation, "translation"},
	{Orthonormal, "orthonormal"},
	{Affine, "affine"},
	{Perspective, "perspective"},
}

// Has reports whether every fact in q is present in s.
// Has(Unknown) is always true.
func (s Set) Has(q Set) bool { return s&q == q }

// Any reports whether at least one fact in q is present in s.
func (s Set) Any(q Set) bool { return s&q != 0 }

// With returns s with the facts in q added and the result normalized.
func (s Set) With(q Set) Set { return Normalize(s | q) }

// Without returns s with the facts in q removed.
//
// Removing a weak fact also removes every fact that implies it, so the result
// stays consistent: Without(Affine) drops Identity, Translation and
// Orthonormal as well.
func (s Set) Without(q Set) Set {
	s &^= q
	if q.Any(Affine) {
		s &^= Identity | Translation | Orthonormal
	}
	if q.Any(Orthonormal) {
		s &^= Identity | Translation
	}
	if q.Any(Translation) {
		s &^= Identity
	}

	return s
}

// Normalize closes s under the lattice implications.
//
// Implementation:
//   - Stage 1: drop unknown bits.
//   - Stage 2: Identity ⇒ Translation; Translation ⇒ Orthonormal; Orthonormal ⇒ Affine.
//   - Stage 3: Affine and Perspective together are contradictory; both are
//     dropped (with everything that implies Affine), leaving the safe ⊤.
//
// Complexity: O(1).
func Normalize(s Set) Set {
	s &= all
	if s.Has(Identity) {
		s |= Translation
	}
	if s.Has(Translation) {
		s |= Orthonormal
	}
	if s.Has(Orthonormal) {
		s |= Affine
	}
	if s.Has(Affine | Perspective) {
		return Unknown
	}

	return s
}

// Valid reports whether s is already closed under the lattice rules.
func (s Set) Valid() bool { return Normalize(s) == s }

// Implies reports whether every fact claimed by s is also claimed by q.
// It is the under-claim check: tracked.Implies(classified) must hold for every
// matrix reachable through the engine.
func (s Set) Implies(q Set) bool { return q.Has(s) }

// String renders s as "identity|translation|..." or "unknown".
func (s Set) String() string {
	if s == Unknown {
		return "unknown"
	}
	var parts []string
	for _, n := range names {
		if s.Has(n.bit) {
			parts = append(parts, n.name)
		}
	}
	if rest := s &^ all; rest != 0 {
		parts = append(parts, "invalid")
	}

	return strings.Join(parts, "|")
}

// Parse is the inverse of String for the named facts.
// Unknown names are ignored; "unknown" and "" yield Unknown.
func Parse(text string) Set {
	var s Set
	for _, part := range strings.Split(text, "|") {
		part = strings.TrimSpace(strings.ToLower(part))
		for _, n := range names {
			if n.name == part {
				s |= n.bit
			}
		}
	}

	return Normalize(s)
}
