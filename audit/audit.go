// SPDX-License-Identifier: MIT

// Package audit replays random operation sequences through the matrix engine
// and checks two things after every step:
//
//   - the tracked property set never claims more than the classifier derives
//     from the entries (under-claim check);
//   - the entries agree with a plain dense float64 reference computed without
//     any fast path (cross-check).
//
// Sequences are independent and run concurrently; the report is merged in
// run order, so the same options always produce the same report.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvgeom/dense"
	"github.com/katalvlaran/lvgeom/mat"
	"github.com/katalvlaran/lvgeom/pipeline"
	"github.com/katalvlaran/lvgeom/props"
)

// Violation kinds.
const (
	KindUnderClaim = "under_claim"
	KindCrossCheck = "cross_check"
)

// pathNone labels steps that bypass the dispatch ladders.
const pathNone = "none"

// Violation describes one failed check.
type Violation struct {
	Run  int
	Step int
	Op   string
	Kind string

	// Tracked and Classified are the sets seen by the under-claim check.
	Tracked    props.Set
	Classified props.Set

	// RelErr is the relative difference seen by the cross-check.
	RelErr float64
}

func (v Violation) String() string {
	if v.Kind == KindUnderClaim {
		return fmt.Sprintf("run %d step %d %s: tracked %v claims more than classified %v",
			v.Run, v.Step, v.Op, v.Tracked, v.Classified)
	}

	return fmt.Sprintf("run %d step %d %s: relative error %.3g", v.Run, v.Step, v.Op, v.RelErr)
}

// Report summarizes an audit.
type Report struct {
	Runs  int
	Steps int
	Seed  int64

	// Ops is the number of executed operations; Checked counts those that
	// also had a dense reference.
	Ops     int
	Checked int
	Resets  int

	MaxRelErr float64

	// Paths counts executed operations keyed by "op/path".
	Paths map[string]int

	Violations []Violation
}

// OK reports whether no check failed.
func (r *Report) OK() bool { return len(r.Violations) == 0 }

// PathKeys returns the keys of Paths in sorted order.
func (r *Report) PathKeys() []string {
	keys := make([]string, 0, len(r.Paths))
	for k := range r.Paths {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Auditor runs audits and accumulates their metrics.
type Auditor struct {
	o Options
	m *metrics
}

// New builds an Auditor. Invalid option values panic in the WithX setters.
func New(opts ...Option) *Auditor {
	return &Auditor{o: gatherOptions(opts...), m: newMetrics()}
}

// Run executes the configured number of sequences and returns the merged
// report. It stops early with ctx.Err() when the context is cancelled.
func (a *Auditor) Run(ctx context.Context) (*Report, error) {
	log := a.o.logger
	results := make([]runResult, a.o.runs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.o.workers)
	for i := 0; i < a.o.runs; i++ {
		i := i // per-iteration copy; go.mod targets go 1.21 loop semantics
		g.Go(func() error {
			res, err := a.runOne(gctx, i)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("audit: %w", err)
	}

	rep := &Report{Runs: a.o.runs, Steps: a.o.steps, Seed: a.o.seed, Paths: map[string]int{}}
	for _, res := range results {
		rep.Ops += res.ops
		rep.Checked += res.checked
		rep.Resets += res.resets
		rep.MaxRelErr = math.Max(rep.MaxRelErr, res.maxRelErr)
		for k, n := range res.paths {
			rep.Paths[k] += n
		}
		rep.Violations = append(rep.Violations, res.violations...)
	}

	for _, v := range rep.Violations {
		log.Warn("audit violation",
			slog.Int("run", v.Run),
			slog.Int("step", v.Step),
			slog.String("op", v.Op),
			slog.String("kind", v.Kind),
			slog.String("tracked", v.Tracked.String()),
			slog.String("classified", v.Classified.String()),
			slog.Float64("rel_err", v.RelErr),
		)
	}
	log.Info("audit finished",
		slog.Int("runs", rep.Runs),
		slog.Int("ops", rep.Ops),
		slog.Int("checked", rep.Checked),
		slog.Int("resets", rep.Resets),
		slog.Float64("max_rel_err", rep.MaxRelErr),
		slog.Int("violations", len(rep.Violations)),
	)

	return rep, nil
}

// runResult is the outcome of one sequence.
type runResult struct {
	ops, checked, resets int
	maxRelErr            float64
	paths                map[string]int
	violations           []Violation
}

func (a *Auditor) runOne(ctx context.Context, run int) (runResult, error) {
	rng := rand.New(rand.NewSource(a.o.seed + int64(run)))
	res := runResult{paths: map[string]int{}}

	m := mat.Ident4()
	for step := 0; step < a.o.steps; step++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		s := RandomStep(rng)
		prev := m
		path := pipeline.Apply(&m, s)
		if path == "" {
			path = pathNone
		}
		res.ops++
		res.paths[s.Op+"/"+path]++
		a.m.steps.WithLabelValues(s.Op, path).Inc()

		if m.IsFinite() {
			tracked, actual := m.Properties(), m.Classified(a.o.classify...)
			if !tracked.Implies(actual) {
				a.m.violations.WithLabelValues(KindUnderClaim).Inc()
				res.violations = append(res.violations, Violation{
					Run: run, Step: step, Op: s.Op, Kind: KindUnderClaim,
					Tracked: tracked, Classified: actual,
				})
			}

			if ref, allow, ok := reference(&prev, s); ok {
				rel := relErr(&m, ref)
				res.checked++
				res.maxRelErr = math.Max(res.maxRelErr, rel)
				a.m.relErr.Observe(rel)
				if rel > math.Max(a.o.tolerance, allow) {
					a.m.violations.WithLabelValues(KindCrossCheck).Inc()
					res.violations = append(res.violations, Violation{
						Run: run, Step: step, Op: s.Op, Kind: KindCrossCheck, RelErr: rel,
					})
				}
			}
		}

		if !m.IsFinite() || maxAbs(m.Raw()) > DefaultMaxMagnitude {
			m.SetIdentity()
			res.resets++
			a.m.resets.Inc()
		}
	}

	return res, nil
}

// reference recomputes step s on prev with the dense package. allow is an
// extra tolerance for ill-conditioned inversions. ok is false when the step
// has no reference (normal matrix, 3×3 transpose, singular input).
func reference(prev *mat.Mat4, s pipeline.Step) (ref *dense.Dense, allow float64, ok bool) {
	p := toDense(prev)

	if operand, isProduct := pipeline.Operand(s); isProduct {
		o := toDense(&operand)
		if s.Premultiplies() {
			ref, _ = dense.Mul(o, p)
		} else {
			ref, _ = dense.Mul(p, o)
		}
		return ref, 0, ref != nil
	}

	switch s.Op {
	case pipeline.OpIdentity:
		ref, _ = dense.Identity(4)
	case pipeline.OpClassify:
		ref = p
	case pipeline.OpTranspose:
		ref, _ = dense.Transpose(p)
	case pipeline.OpInvert:
		inv, err := dense.Inverse(p)
		if err != nil {
			return nil, 0, false
		}
		cond := normInf(p) * normInf(inv)
		if math.IsNaN(cond) || math.IsInf(cond, 0) {
			return nil, 0, false
		}
		return inv, cond * 1e-12, true
	}

	return ref, 0, ref != nil
}

func toDense(m *mat.Mat4) *dense.Dense {
	raw := m.Raw()
	d, _ := dense.FromColumnMajor(4, 4, raw[:])
	return d
}

// relErr is max|m−ref| scaled by max(1, max|ref|).
func relErr(m *mat.Mat4, ref *dense.Dense) float64 {
	e := ref.ColumnMajor()
	scale := 1.0
	for _, v := range e {
		scale = math.Max(scale, math.Abs(v))
	}

	return toDense(m).MaxAbsDiff(ref) / scale
}

// normInf is the maximum absolute row sum.
func normInf(d *dense.Dense) float64 {
	var n float64
	for i := 0; i < d.Rows(); i++ {
		var sum float64
		for j := 0; j < d.Cols(); j++ {
			v, _ := d.At(i, j)
			sum += math.Abs(v)
		}
		n = math.Max(n, sum)
	}

	return n
}

func maxAbs(e [16]float64) float64 {
	var n float64
	for _, v := range e {
		n = math.Max(n, math.Abs(v))
	}

	return n
}
