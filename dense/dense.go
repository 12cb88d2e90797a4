// SPDX-License-Identifier: MIT

// Package dense provides a small row-major dense matrix with textbook
// algorithms (triple-loop product, LU with partial pivoting, inverse by
// triangular solves).
//
// It shares no code with the specialized kernels and serves as the
// independent slow path that the fast paths are cross-checked against.
// Values are copied in and out; nothing here aliases a caller's storage.
package dense

import (
	"fmt"
	"math"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int
	data []float64
}

// New creates an r×c zero matrix.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf(opNew, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// FromColumnMajor builds a rows×cols matrix from column-major entries, the
// storage order of the fixed-size matrix types.
func FromColumnMajor(rows, cols int, e []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf(opFrom, ErrInvalidDimensions)
	}
	if len(e) != rows*cols {
		return nil, denseErrorf(opFrom, ErrDimensionMismatch)
	}
	m := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			m.data[r*cols+c] = e[c*rows+r]
		}
	}

	return m, nil
}

// ColumnMajor returns a fresh column-major copy of the entries.
func (m *Dense) ColumnMajor() []float64 {
	out := make([]float64, len(m.data))
	for r := 0; r < m.r; r++ {
		for c := 0; c < m.c; c++ {
			out[c*m.r+r] = m.data[r*m.c+c]
		}
	}

	return out
}

func (m *Dense) Rows() int { return m.r }
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// MaxAbsDiff returns the largest entry-wise |m − o|, or +Inf when the shapes
// differ or any compared entry is NaN.
func (m *Dense) MaxAbsDiff(o *Dense) float64 {
	if m.r != o.r || m.c != o.c {
		return math.Inf(1)
	}
	var worst float64
	for i := range m.data {
		d := math.Abs(m.data[i] - o.data[i])
		if math.IsNaN(d) {
			return math.Inf(1)
		}
		if d > worst {
			worst = d
		}
	}

	return worst
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
