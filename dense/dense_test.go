// SPDX-License-Identifier: MIT
package dense_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvgeom/dense"
)

// DenseSuite groups the reference-algebra checks around a shared random
// source so failures are reproducible.
type DenseSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *DenseSuite) SetupTest() { s.rng = rand.New(rand.NewSource(99)) }

func (s *DenseSuite) random(n int) *dense.Dense {
	m, err := dense.New(n, n)
	s.Require().NoError(err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s.Require().NoError(m.Set(i, j, s.rng.Float64()*2-1))
		}
	}

	return m
}

// 1) TestInverseRoundTrip verifies A·A⁻¹ ≈ I on random matrices.
func (s *DenseSuite) TestInverseRoundTrip() {
	for _, n := range []int{2, 3, 4, 6} {
		a := s.random(n)
		inv, err := dense.Inverse(a)
		s.Require().NoError(err)
		prod, err := dense.Mul(a, inv)
		s.Require().NoError(err)
		id, _ := dense.Identity(n)
		s.Less(prod.MaxAbsDiff(id), 1e-9, "n=%d", n)
	}
}

// 2) TestPivotingHandlesZeroLeadingEntry uses a rotation by π/2, which has a
// zero in the top-left corner and defeats non-pivoting LU.
func (s *DenseSuite) TestPivotingHandlesZeroLeadingEntry() {
	a, err := dense.FromColumnMajor(3, 3, []float64{0, 1, 0, -1, 0, 0, 0, 0, 1})
	s.Require().NoError(err)
	inv, err := dense.Inverse(a)
	s.Require().NoError(err)
	at, err := dense.Transpose(a)
	s.Require().NoError(err)
	s.Equal(0.0, inv.MaxAbsDiff(at))

	det, err := dense.Det(a)
	s.Require().NoError(err)
	s.Equal(1.0, det)
}

// 3) TestSingular checks the sentinel and the zero determinant.
func (s *DenseSuite) TestSingular() {
	a, err := dense.FromColumnMajor(2, 2, []float64{1, 2, 2, 4})
	s.Require().NoError(err)
	_, err = dense.Inverse(a)
	s.ErrorIs(err, dense.ErrSingular)
	s.Equal("dense.Inverse: dense.LU: dense: singular matrix", err.Error())

	det, err := dense.Det(a)
	s.NoError(err)
	s.Equal(0.0, det)
}

// 4) TestDeterminantSign checks the permutation parity.
func (s *DenseSuite) TestDeterminantSign() {
	a, err := dense.FromColumnMajor(2, 2, []float64{0, 1, 1, 0})
	s.Require().NoError(err)
	det, err := dense.Det(a)
	s.Require().NoError(err)
	s.Equal(-1.0, det)
}

func TestDenseSuite(t *testing.T) { suite.Run(t, new(DenseSuite)) }

func TestColumnMajorRoundTrip(t *testing.T) {
	e := []float64{1, 2, 3, 4, 5, 6}
	m, err := dense.FromColumnMajor(2, 3, e)
	require.NoError(t, err)

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
	require.Equal(t, e, m.ColumnMajor())
	require.Equal(t, "[1, 3, 5]\n[2, 4, 6]\n", m.String())
}

func TestErrors(t *testing.T) {
	_, err := dense.New(0, 3)
	require.ErrorIs(t, err, dense.ErrInvalidDimensions)

	_, err = dense.FromColumnMajor(2, 2, []float64{1})
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)

	a, _ := dense.New(2, 3)
	b, _ := dense.New(2, 3)
	_, err = dense.Mul(a, b)
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
	_, err = dense.Inverse(a)
	require.ErrorIs(t, err, dense.ErrNonSquare)

	_, err = a.At(2, 0)
	require.ErrorIs(t, err, dense.ErrOutOfRange)
	require.Equal(t, "Dense.At(2,0): dense: index out of range", err.Error())
	require.ErrorIs(t, a.Set(0, -1, 1), dense.ErrOutOfRange)

	sum, err := dense.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, 0.0, sum.MaxAbsDiff(a))
}

func TestMaxAbsDiff_NaN(t *testing.T) {
	a, _ := dense.FromColumnMajor(1, 1, []float64{math.NaN()})
	b, _ := dense.FromColumnMajor(1, 1, []float64{0})
	require.True(t, math.IsInf(a.MaxAbsDiff(b), 1))
}
