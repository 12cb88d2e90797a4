// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgeom/audit"
)

// ErrViolations is returned by the audit command when any check failed.
var ErrViolations = errors.New("lvgeom: audit found violations")

// auditFlags holds the audit command's flag values.
type auditFlags struct {
	runs        int
	steps       int
	seed        int64
	workers     int
	tolerance   float64
	metricsFile string
}

func newAuditCmd() *cobra.Command {
	var f auditFlags
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit the engine over random operation sequences",
		Long: `Replays random operation sequences through the engine and checks after every
step that the tracked property set never claims more than the entries satisfy
and that the entries match a dense reference. Optionally writes Prometheus
metrics in the textfile collector format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error { return runAudit(cmd, f) },
	}

	fl := cmd.Flags()
	fl.IntVar(&f.runs, "runs", audit.DefaultRuns, "number of random sequences")
	fl.IntVar(&f.steps, "steps", audit.DefaultSteps, "operations per sequence")
	fl.Int64Var(&f.seed, "seed", audit.DefaultSeed, "base seed; run i uses seed+i")
	fl.IntVar(&f.workers, "workers", runtime.GOMAXPROCS(0), "sequences evaluated concurrently")
	fl.Float64Var(&f.tolerance, "tolerance", audit.DefaultTolerance, "relative cross-check tolerance")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")

	return cmd
}

func runAudit(cmd *cobra.Command, f auditFlags) error {
	if f.runs <= 0 || f.steps <= 0 || f.workers <= 0 {
		return errors.New("lvgeom: audit: --runs, --steps and --workers must be > 0")
	}
	if !(f.tolerance > 0) || math.IsInf(f.tolerance, 0) {
		return fmt.Errorf("lvgeom: audit: --tolerance must be finite and > 0, got %g", f.tolerance)
	}

	log, err := newLogger(cmd)
	if err != nil {
		return err
	}

	a := audit.New(
		audit.WithRuns(f.runs),
		audit.WithSteps(f.steps),
		audit.WithSeed(f.seed),
		audit.WithWorkers(f.workers),
		audit.WithTolerance(f.tolerance),
		audit.WithLogger(log),
	)
	rep, err := a.Run(cmd.Context())
	if err != nil {
		return err
	}

	if f.metricsFile != "" {
		if err := a.WriteMetrics(f.metricsFile); err != nil {
			return err
		}
		log.Info("metrics written", "path", f.metricsFile)
	}

	out := cmd.OutOrStdout()
	st := newStyles(out)
	fmt.Fprintf(out, "%s %d runs x %d steps, seed %d\n", st.Title("audit"), rep.Runs, rep.Steps, rep.Seed)
	fmt.Fprintf(out, "%s %d ops, %d cross-checked, %d resets, max relative error %.3g\n",
		st.Label("checked:"), rep.Ops, rep.Checked, rep.Resets, rep.MaxRelErr)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, k := range rep.PathKeys() {
		fmt.Fprintf(tw, "%d\t %s\n", rep.Paths[k], k)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("lvgeom: audit: %w", err)
	}

	if rep.OK() {
		fmt.Fprintln(out, st.OK("no violations"))
		return nil
	}
	for _, v := range rep.Violations {
		fmt.Fprintln(out, st.Warn(v.String()))
	}
	fmt.Fprintln(out, st.Bad(fmt.Sprintf("%d violations", len(rep.Violations))))

	return fmt.Errorf("%w: %d", ErrViolations, len(rep.Violations))
}
