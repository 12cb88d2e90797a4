// SPDX-License-Identifier: MIT
// Package mat: sentinel error set.
// Every message is prefixed with "mat: ...". Public accessors return these
// sentinels wrapped with the call site (fmt.Errorf("Mat4.Row(5): %w", ...));
// callers match them with errors.Is.

package mat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrOutOfRange indicates that a column or row index is outside the shape.
	// Accessors check indices before any mutation.
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrDimensionMismatch indicates a slice whose length does not match the
	// number of entries of the target shape.
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")
)

// outOfRange wraps ErrOutOfRange with "Type.Method(args)".
func outOfRange(typ, method string, idx ...int) error {
	return fmt.Errorf("%s.%s(%s): %w", typ, method, joinInts(idx), ErrOutOfRange)
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, ", ")
}

// checkCell validates 0 ≤ col < cols and 0 ≤ row < rows.
func checkCell(typ, method string, cols, rows, col, row int) error {
	if col < 0 || col >= cols || row < 0 || row >= rows {
		return outOfRange(typ, method, col, row)
	}

	return nil
}

// checkLine validates 0 ≤ i < n for Row/Col style accessors.
func checkLine(typ, method string, n, i int) error {
	if i < 0 || i >= n {
		return outOfRange(typ, method, i)
	}

	return nil
}
