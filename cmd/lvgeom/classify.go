// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgeom/mat"
	"github.com/katalvlaran/lvgeom/props"
)

// epsilon is the value of the classify --epsilon flag.
var epsilon float64

func newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify v0 .. v15",
		Short: "Classify a raw 4x4 matrix",
		Long: `Classifies the 4x4 matrix given as 16 column-major entries (the translation
is v12 v13 v14) and prints the strongest property set it satisfies.`,
		Args: cobra.ExactArgs(16),
		RunE: runClassify,
	}
	cmd.Flags().Float64Var(&epsilon, "epsilon", props.DefaultEpsilon, "tolerance of the orthonormality test")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	e := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("lvgeom: classify: entry v%d: %w", i, err)
		}
		e[i] = v
	}
	if !(epsilon >= 0) || math.IsInf(epsilon, 0) {
		return fmt.Errorf("lvgeom: classify: --epsilon must be finite and >= 0, got %g", epsilon)
	}

	opt := props.WithEpsilon(epsilon)
	m, err := mat.Mat4FromSlice(e, opt)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printMatrix(out, newStyles(out), &m, opt)

	return nil
}
