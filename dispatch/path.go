// SPDX-License-Identifier: MIT

package dispatch

import "github.com/katalvlaran/lvgeom/props"

// MulPath names a rung of the multiply ladder.
type MulPath uint8

const (
	MulGeneral MulPath = iota
	MulIdentityLeft
	MulIdentityRight
	MulTranslationLeft
	MulAffineBoth
	MulPerspectiveAffine

	// Rungs taken only by Dispatcher.Apply and ApplyLocal.

	// MulBuildOnIdentity: the receiver is the identity, the op is built directly.
	MulBuildOnIdentity
	// MulPostKernel: the op's Post kernel ran on the receiver (a × op).
	MulPostKernel
	// MulPreKernel: the op's Pre kernel ran on the receiver (op × a).
	MulPreKernel
)

var mulPathNames = [...]string{
	MulGeneral:           "general",
	MulIdentityLeft:      "identity_left",
	MulIdentityRight:     "identity_right",
	MulTranslationLeft:   "translation_left",
	MulAffineBoth:        "affine",
	MulPerspectiveAffine: "perspective_affine",
	MulBuildOnIdentity:   "identity",
	MulPostKernel:        "post",
	MulPreKernel:         "pre",
}

// String returns a stable snake_case label (used as a metrics label).
func (p MulPath) String() string {
	if int(p) < len(mulPathNames) {
		return mulPathNames[p]
	}

	return "invalid"
}

// SelectMul returns the multiply rung for l × r. It is a pure function of the
// two property sets.
func SelectMul(l, r props.Set) MulPath {
	switch {
	case l.Has(props.Identity):
		return MulIdentityLeft
	case r.Has(props.Identity):
		return MulIdentityRight
	case l.Has(props.Translation) && r.Has(props.Affine):
		return MulTranslationLeft
	case l.Has(props.Affine) && r.Has(props.Affine):
		return MulAffineBoth
	case l.Has(props.Perspective) && r.Has(props.Affine):
		return MulPerspectiveAffine
	default:
		return MulGeneral
	}
}

// InvertPath names a rung of the invert ladder.
type InvertPath uint8

const (
	InvertGeneral InvertPath = iota
	InvertIdentity
	InvertTranslation
	InvertOrthonormal
	InvertAffine
	InvertPerspective
)

var invertPathNames = [...]string{
	InvertGeneral:     "general",
	InvertIdentity:    "identity",
	InvertTranslation: "translation",
	InvertOrthonormal: "orthonormal",
	InvertAffine:      "affine",
	InvertPerspective: "perspective",
}

// String returns a stable snake_case label.
func (p InvertPath) String() string {
	if int(p) < len(invertPathNames) {
		return invertPathNames[p]
	}

	return "invalid"
}

// SelectInvert returns the invert rung for a matrix carrying s.
func SelectInvert(s props.Set) InvertPath {
	switch {
	case s.Has(props.Identity):
		return InvertIdentity
	case s.Has(props.Translation):
		return InvertTranslation
	case s.Has(props.Orthonormal):
		return InvertOrthonormal
	case s.Has(props.Affine):
		return InvertAffine
	case s.Has(props.Perspective):
		return InvertPerspective
	default:
		return InvertGeneral
	}
}
