// SPDX-License-Identifier: MIT

package mat

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvgeom/props"
)

// approxEqual reports whether a and b have the same length and every pair of
// entries differs by at most eps. NaN never compares equal.
func approxEqual(a, b []float64, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !(math.Abs(a[i]-b[i]) <= eps) {
			return false
		}
	}

	return true
}

// format renders a column-major matrix row by row:
//
//	Mat4[affine|orthonormal]
//	  1 0 0 5
//	  0 1 0 0
//	  ...
func format(typ string, e []float64, cols, rows int, p props.Set) string {
	var sb strings.Builder
	sb.WriteString(typ)
	sb.WriteByte('[')
	sb.WriteString(p.String())
	sb.WriteString("]\n")
	for r := 0; r < rows; r++ {
		sb.WriteString(" ")
		for c := 0; c < cols; c++ {
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatFloat(e[c*rows+r], 'g', 6, 64))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
