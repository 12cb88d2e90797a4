// SPDX-License-Identifier: MIT
package props_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/props"
)

func TestNormalize_Implications(t *testing.T) {
	cases := []struct {
		name string
		in   props.Set
		want props.Set
	}{
		{"unknown", props.Unknown, props.Unknown},
		{"identity", props.Identity, props.Identity | props.Translation | props.Orthonormal | props.Affine},
		{"translation", props.Translation, props.Translation | props.Orthonormal | props.Affine},
		{"orthonormal", props.Orthonormal, props.Orthonormal | props.Affine},
		{"affine", props.Affine, props.Affine},
		{"perspective", props.Perspective, props.Perspective},
		{"contradiction", props.Affine | props.Perspective, props.Unknown},
		{"identity+perspective", props.Identity | props.Perspective, props.Unknown},
		{"stray bits", props.Set(0xE0) | props.Affine, props.Affine},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := props.Normalize(tc.in)
			require.Equal(t, tc.want, got, "got %s", got)
			require.True(t, got.Valid())
		})
	}
}

func TestWithout_DropsImplyingFacts(t *testing.T) {
	id := props.Normalize(props.Identity)

	require.Equal(t, props.Unknown, id.Without(props.Affine))
	require.Equal(t, props.Affine, id.Without(props.Orthonormal))
	require.Equal(t, props.Orthonormal|props.Affine, id.Without(props.Translation))
	require.Equal(t, props.Translation|props.Orthonormal|props.Affine, id.Without(props.Identity))

	for _, s := range []props.Set{id, id.Without(props.Affine), id.Without(props.Orthonormal), id.Without(props.Translation)} {
		require.True(t, s.Valid(), "%s", s)
	}
}

func TestHasAnyImplies(t *testing.T) {
	ortho := props.Normalize(props.Orthonormal)

	require.True(t, ortho.Has(props.Affine))
	require.True(t, ortho.Has(props.Unknown))
	require.False(t, ortho.Has(props.Translation))
	require.True(t, ortho.Any(props.Translation|props.Affine))

	// tracked ⊑ classified: weaker claims imply stronger facts.
	require.True(t, props.Affine.Implies(ortho))
	require.False(t, ortho.Implies(props.Affine))
	require.True(t, props.Unknown.Implies(props.Unknown))
}

func TestStringParseRoundTrip(t *testing.T) {
	for _, s := range []props.Set{
		props.Unknown,
		props.Affine,
		props.Perspective,
		props.Normalize(props.Orthonormal),
		props.Normalize(props.Translation),
		props.Normalize(props.Identity),
	} {
		require.Equal(t, s, props.Parse(s.String()), "%s", s)
	}
	require.Equal(t, "unknown", props.Unknown.String())
	require.Equal(t, "orthonormal|affine", props.Normalize(props.Orthonormal).String())
	require.Equal(t, props.Normalize(props.Translation), props.Parse(" Translation "))
}

func TestStateOf(t *testing.T) {
	cases := []struct {
		in   props.Set
		want props.State
	}{
		{props.Unknown, props.StateUnknown},
		{props.Perspective, props.StatePerspective},
		{props.Affine, props.StateGeneralAffine},
		{props.Orthonormal, props.StateOrthonormalAffine},
		{props.Translation, props.StateTranslation},
		{props.Identity, props.StateIdentity},
	}
	for _, tc := range cases {
		st := props.StateOf(tc.in)
		require.Equal(t, tc.want, st, "%s", tc.in)
		require.Equal(t, st, props.StateOf(st.Set()))
	}
	require.Equal(t, "orthonormal-affine", props.StateOrthonormalAffine.String())
	require.Equal(t, "invalid", props.State(42).String())
}
