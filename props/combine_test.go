// SPDX-License-Identifier: MIT
package props_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/props"
)

var (
	id    = props.Normalize(props.Identity)
	tr    = props.Normalize(props.Translation)
	ortho = props.Normalize(props.Orthonormal)
	aff   = props.Affine
	persp = props.Perspective
	unk   = props.Unknown
)

// everyState lists one canonical Set per lattice state.
var everyState = []props.Set{id, tr, ortho, aff, persp, unk}

func TestProduct_Ladder(t *testing.T) {
	cases := []struct {
		name string
		l, r props.Set
		want props.Set
	}{
		{"identity left copies right", id, persp, persp},
		{"identity right copies left", unk, id, unk},
		{"translation*translation", tr, tr, tr},
		{"translation*orthonormal", tr, ortho, ortho},
		{"translation*affine", tr, aff, aff},
		{"orthonormal*orthonormal", ortho, ortho, ortho},
		{"orthonormal*translation", ortho, tr, ortho},
		{"orthonormal*affine", ortho, aff, aff},
		{"affine*orthonormal", aff, ortho, aff},
		{"perspective*affine", persp, aff, unk},
		{"affine*perspective", aff, persp, unk},
		{"translation*perspective", tr, persp, unk},
		{"unknown*affine", unk, aff, unk},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, props.Product(tc.l, tc.r))
		})
	}
}

// TestProduct_NeverStrongerThanInputs checks the result is always valid and
// never claims a fact that neither operand claims.
func TestProduct_NeverStrongerThanInputs(t *testing.T) {
	for _, l := range everyState {
		for _, r := range everyState {
			got := props.Product(l, r)
			assert.True(t, got.Valid(), "%s*%s=%s", l, r, got)
			if !l.Has(props.Identity) && !r.Has(props.Identity) {
				assert.True(t, got.Implies(l|r), "%s*%s=%s", l, r, got)
				assert.False(t, got.Has(props.Identity), "%s*%s=%s", l, r, got)
			}
		}
	}
}

func TestInverse(t *testing.T) {
	require.Equal(t, id, props.Inverse(id))
	require.Equal(t, tr, props.Inverse(tr))
	require.Equal(t, ortho, props.Inverse(ortho))
	require.Equal(t, aff, props.Inverse(aff))
	require.Equal(t, unk, props.Inverse(persp))
	require.Equal(t, unk, props.Inverse(unk))
}

func TestTranspose(t *testing.T) {
	require.Equal(t, id, props.Transpose(id))
	require.Equal(t, unk, props.Transpose(tr))
	require.Equal(t, unk, props.Transpose(ortho))

	require.Equal(t, id, props.TransposeLinear(id))
	require.Equal(t, id, props.TransposeLinear(tr))
	require.Equal(t, ortho, props.TransposeLinear(ortho))
	require.Equal(t, aff, props.TransposeLinear(aff))
	require.Equal(t, aff, props.TransposeLinear(unk))
	require.Equal(t, aff, props.TransposeLinear(persp))
}

func TestSum(t *testing.T) {
	require.Equal(t, aff, props.Sum(id, id))
	require.Equal(t, aff, props.Sum(ortho, aff))
	require.Equal(t, unk, props.Sum(aff, unk))
	require.Equal(t, unk, props.Sum(persp, persp))
}

func TestFromScale(t *testing.T) {
	require.Equal(t, id, props.FromScale(1, 1, 1))
	require.Equal(t, ortho, props.FromScale(1, 1, -1))
	require.Equal(t, ortho, props.FromScale(-1, -1))
	require.Equal(t, aff, props.FromScale(2, 2, 2))
	require.Equal(t, aff, props.FromScale(1, 1, 0.9999999))
	require.Equal(t, aff, props.FromScale(1, 0, 1))
}

func TestFromOffset(t *testing.T) {
	require.Equal(t, id, props.FromOffset(0, 0, 0))
	require.Equal(t, tr, props.FromOffset(0, 2, 0))
}
