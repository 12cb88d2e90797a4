// SPDX-License-Identifier: MIT

package pipeline

import "errors"

var (
	// ErrUnknownOp is returned when a step names an operation that does not exist.
	ErrUnknownOp = errors.New("pipeline: unknown operation")

	// ErrInvalidPipeline is returned when a document does not decode or a step
	// misses or misuses one of its parameters.
	ErrInvalidPipeline = errors.New("pipeline: invalid pipeline")
)
