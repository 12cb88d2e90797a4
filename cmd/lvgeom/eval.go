// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgeom/mat"
	"github.com/katalvlaran/lvgeom/pipeline"
	"github.com/katalvlaran/lvgeom/props"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval FILE",
		Short: "Evaluate a YAML transform pipeline",
		Long: `Evaluates the pipeline in FILE from the identity, printing the dispatch path
and tracked property set after every step, then the final matrix with its
tracked and classified sets.`,
		Args: cobra.ExactArgs(1),
		RunE: runEval,
	}
}

func runEval(cmd *cobra.Command, args []string) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}

	p, err := pipeline.Load(args[0])
	if err != nil {
		return err
	}
	log.Debug("pipeline loaded", "name", p.Name, "steps", len(p.Steps))

	m, traces := p.Eval()

	out := cmd.OutOrStdout()
	st := newStyles(out)
	fmt.Fprintf(out, "%s %s\n", st.Title("pipeline"), p.Name)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\top\tpath\tprops")
	for _, tr := range traces {
		path := tr.Path
		if path == "" {
			path = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", tr.Index, tr.Op, path, tr.Props)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("lvgeom: eval: %w", err)
	}

	printMatrix(out, st, &m)
	log.Info("pipeline evaluated", "name", p.Name, "state", m.State().String())

	return nil
}

// printMatrix writes m with its tracked and classified sets.
func printMatrix(out io.Writer, st styles, m *mat.Mat4, opts ...props.Option) {
	fmt.Fprintln(out, st.Box(strings.TrimRight(m.String(), "\n")))

	tracked, classified := m.Properties(), m.Classified(opts...)
	fmt.Fprintf(out, "%s %v (%v)\n", st.Label("tracked:   "), tracked, m.State())
	fmt.Fprintf(out, "%s %v\n", st.Label("classified:"), classified)
	if !m.IsFinite() {
		fmt.Fprintln(out, st.Bad("matrix has non-finite entries"))
	}
}
