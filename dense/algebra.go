// SPDX-License-Identifier: MIT

package dense

import "math"

// Mul returns a × b.
//
// Implementation:
//   - Stage 1: validate a.Cols == b.Rows.
//   - Stage 2: i-k-j triple loop over the flat slices.
//
// Complexity: O(n·m·p) time, O(n·p) space.
func Mul(a, b *Dense) (*Dense, error) {
	if a.c != b.r {
		return nil, denseErrorf(opMul, ErrDimensionMismatch)
	}
	res, err := New(a.r, b.c)
	if err != nil {
		return nil, denseErrorf(opMul, err)
	}
	for i := 0; i < a.r; i++ {
		rowA, rowR := i*a.c, i*b.c
		for k := 0; k < a.c; k++ {
			av := a.data[rowA+k]
			rowB := k * b.c
			for j := 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Add returns a + b.
func Add(a, b *Dense) (*Dense, error) {
	if a.r != b.r || a.c != b.c {
		return nil, denseErrorf(opAdd, ErrDimensionMismatch)
	}
	res := a.Clone()
	for i, v := range b.data {
		res.data[i] += v
	}

	return res, nil
}

// Transpose returns mᵀ.
func Transpose(m *Dense) (*Dense, error) {
	res, err := New(m.c, m.r)
	if err != nil {
		return nil, denseErrorf(opTranspose, err)
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// LU factors P·m = L·U with partial pivoting.
// L is unit lower triangular, U upper triangular; perm[i] is the row of m
// that ended up in row i, and sign is the parity of the permutation (±1).
//
// Implementation:
//   - Stage 1: validate squareness; copy m into the working matrix.
//   - Stage 2: for each column pick the row with the largest |pivot|; an
//     exactly zero column means the matrix is singular.
//   - Stage 3: eliminate below the pivot, storing multipliers in L.
//
// Errors:
//   - ErrNonSquare, ErrSingular (wrapped with "dense.LU").
//
// Complexity: O(n³) time, O(n²) space.
func LU(m *Dense) (l, u *Dense, perm []int, sign float64, err error) {
	if m.r != m.c {
		return nil, nil, nil, 0, denseErrorf(opLU, ErrNonSquare)
	}
	n := m.r
	u = m.Clone()
	l, _ = Identity(n)
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign = 1

	for k := 0; k < n; k++ {
		// Stage 2: pivot search
		p, best := k, math.Abs(u.data[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(u.data[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == 0 || math.IsNaN(best) {
			return nil, nil, nil, 0, denseErrorf(opLU, ErrSingular)
		}
		if p != k {
			swapRows(u, p, k, 0, n)
			swapRows(l, p, k, 0, k)
			perm[p], perm[k] = perm[k], perm[p]
			sign = -sign
		}

		// Stage 3: elimination
		pivot := u.data[k*n+k]
		for i := k + 1; i < n; i++ {
			f := u.data[i*n+k] / pivot
			l.data[i*n+k] = f
			u.data[i*n+k] = 0
			for j := k + 1; j < n; j++ {
				u.data[i*n+j] -= f * u.data[k*n+j]
			}
		}
	}

	return l, u, perm, sign, nil
}

// swapRows exchanges columns [from, to) of rows a and b.
func swapRows(m *Dense, a, b, from, to int) {
	for j := from; j < to; j++ {
		m.data[a*m.c+j], m.data[b*m.c+j] = m.data[b*m.c+j], m.data[a*m.c+j]
	}
}

// Inverse returns m⁻¹ computed from LU by one forward and one backward
// substitution per column of the identity.
//
// Errors:
//   - ErrNonSquare, ErrSingular (wrapped with "dense.Inverse").
//
// Complexity: O(n³) time, O(n²) space.
func Inverse(m *Dense) (*Dense, error) {
	l, u, perm, _, err := LU(m)
	if err != nil {
		return nil, denseErrorf(opInverse, err)
	}
	n := m.r
	inv, _ := New(n, n)
	y := make([]float64, n)
	x := make([]float64, n)
	for col := 0; col < n; col++ {
		// Forward substitution: L·y = P·e_col
		for i := 0; i < n; i++ {
			var sum float64
			for k := 0; k < i; k++ {
				sum += l.data[i*n+k] * y[k]
			}
			e := 0.0
			if perm[i] == col {
				e = 1
			}
			y[i] = e - sum
		}
		// Backward substitution: U·x = y
		for i := n - 1; i >= 0; i-- {
			var sum float64
			for k := i + 1; k < n; k++ {
				sum += u.data[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / u.data[i*n+i]
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Det returns the determinant of m. A singular m has determinant 0 and no
// error.
func Det(m *Dense) (float64, error) {
	if m.r != m.c {
		return 0, denseErrorf(opDet, ErrNonSquare)
	}
	_, u, _, sign, err := LU(m)
	if err != nil {
		return 0, nil
	}
	det := sign
	for i := 0; i < m.r; i++ {
		det *= u.data[i*m.r+i]
	}

	return det, nil
}
