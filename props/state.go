// SPDX-License-Identifier: MIT

package props

// State is the coarse position of a Set in the lattice.
//
// Over a matrix's lifetime the state moves monotonically toward stronger
// states while operations preserve properties, and falls to Unknown when an
// operation's result cannot be classified cheaply. Unknown is absorbing until
// the matrix is reclassified or rebuilt by a constructor.
type State uint8

const (
	// StateUnknown: nothing is known; only general kernels apply.
	StateUnknown State = iota
	// StatePerspective: frustum-shaped projection.
	StatePerspective
	// StateGeneralAffine: affine with a scaled or sheared linear block.
	StateGeneralAffine
	// StateOrthonormalAffine: rotation/reflection plus offset.
	StateOrthonormalAffine
	// StateTranslation: identity linear block plus offset.
	StateTranslation
	// StateIdentity: exactly the identity.
	StateIdentity
)

var stateNames = [...]string{
	StateUnknown:           "unknown",
	StatePerspective:       "perspective",
	StateGeneralAffine:     "general-affine",
	StateOrthonormalAffine: "orthonormal-affine",
	StateTranslation:       "translation",
	StateIdentity:          "identity",
}

// StateOf maps a Set onto its strongest State.
func StateOf(s Set) State {
	s = Normalize(s)
	switch {
	case s.Has(Identity):
		return StateIdentity
	case s.Has(Translation):
		return StateTranslation
	case s.Has(Orthonormal):
		return StateOrthonormalAffine
	case s.Has(Affine):
		return StateGeneralAffine
	case s.Has(Perspective):
		return StatePerspective
	default:
		return StateUnknown
	}
}

// Set returns the canonical Set of the state.
func (st State) Set() Set {
	switch st {
	case StateIdentity:
		return Normalize(Identity)
	case StateTranslation:
		return Normalize(Translation)
	case StateOrthonormalAffine:
		return Normalize(Orthonormal)
	case StateGeneralAffine:
		return Affine
	case StatePerspective:
		return Perspective
	default:
		return Unknown
	}
}

// String returns the state name.
func (st State) String() string {
	if int(st) < len(stateNames) {
		return stateNames[st]
	}

	return "invalid"
}
