// SPDX-License-Identifier: MIT

package dispatch

import "github.com/katalvlaran/lvgeom/props"

// Op describes a transform to be composed onto a matrix.
//
// Build and Props are required: Build returns the op as a standalone matrix
// and Props must be a sound (never over-claiming) description of it. Post and
// Pre are optional shortcuts computing a×op and op×a without materializing
// the op; they must be valid for any receiver.
type Op[T any] struct {
	Name  string
	Build func() T
	Props props.Set
	Post  func(a T) T
	Pre   func(a T) T
}
