// SPDX-License-Identifier: MIT

package experiment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/multicut/core"
	"github.com/katalvlaran/multicut/counter"
	"github.com/katalvlaran/multicut/matching"
)

// Status of a single run.
type Status string

const (
	StatusOK      Status = "ok"
	StatusTimeout Status = "timeout"
	StatusError   Status = "error"
)

// Result is the outcome of one (instance, repetition) run.
type Result struct {
	RunID      uuid.UUID
	Instance   string
	Repetition int
	Seed       int64
	Nodes      int
	Edges      int
	// MatchingSize is the size of the final matching of a full solve, or -1
	// for threshold queries and failed runs.
	MatchingSize int
	// AtLeast and Satisfied describe a threshold query; AtLeast is 0 for a
	// full solve.
	AtLeast   int
	Satisfied bool
	Ops       map[counter.Op]int64
	Duration  time.Duration
	Status    Status
	Err       string
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the structured logger (default: no-op).
func WithLogger(l *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithSink forwards every run's operation counts to sink as well, e.g. a
// counter.PrometheusSink.
func WithSink(sink counter.Sink) RunnerOption {
	return func(r *Runner) {
		if sink != nil {
			r.sink = sink
		}
	}
}

// Runner executes the runs of a Config.
type Runner struct {
	cfg    Config
	logger *zap.Logger
	sink   counter.Sink
}

// NewRunner validates cfg and returns a Runner for it.
func NewRunner(cfg Config, opts ...RunnerOption) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{cfg: cfg, logger: zap.NewNop(), sink: counter.Discard}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

type job struct {
	inst Instance
	rep  int
}

// Run executes every run and returns the results in configuration order
// (instance, then repetition). Failed and timed-out runs are reported in
// their Result; Run itself only fails when ctx is cancelled.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	var jobs []job
	for _, inst := range r.cfg.Instances {
		for rep := 0; rep < inst.Repetitions; rep++ {
			jobs = append(jobs, job{inst: inst, rep: rep})
		}
	}

	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Parallelism)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.runOne(gctx, j)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}

type outcome struct {
	size      int
	satisfied bool
	err       error
}

func (r *Runner) runOne(ctx context.Context, j job) Result {
	res := Result{
		RunID:        uuid.New(),
		Instance:     j.inst.Name,
		Repetition:   j.rep,
		Seed:         j.inst.Seed + int64(j.rep),
		MatchingSize: -1,
		AtLeast:      j.inst.AtLeast,
	}
	log := r.logger.With(
		zap.String("run_id", res.RunID.String()),
		zap.String("instance", res.Instance),
		zap.Int("repetition", res.Repetition),
	)

	g, err := j.inst.Build(j.rep)
	if err != nil {
		res.Status, res.Err = StatusError, err.Error()
		log.Error("build failed", zap.Error(err))
		return res
	}
	res.Nodes, res.Edges = g.NodeCount(), g.EdgeCount()

	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	ops := counter.New()
	start := time.Now()
	// The engine never polls ctx; a run that overruns keeps its goroutine
	// until it finishes and its outcome is dropped.
	done := make(chan outcome, 1)
	go func() {
		done <- solve(g, j.inst.AtLeast, matching.WithCounter(counter.Multi(ops, r.sink)))
	}()

	select {
	case out := <-done:
		res.Duration = time.Since(start)
		res.Ops = ops.Snapshot()
		if out.err != nil {
			res.Status, res.Err = StatusError, out.err.Error()
			log.Error("solve failed", zap.Error(out.err))
			return res
		}
		res.Status = StatusOK
		res.Satisfied = out.satisfied
		if j.inst.AtLeast == 0 {
			res.MatchingSize = out.size
		}
	case <-ctx.Done():
		res.Duration = time.Since(start)
		res.Ops = ops.Snapshot()
		res.Status, res.Err = StatusTimeout, ctx.Err().Error()
		log.Warn("run timed out", zap.Duration("after", res.Duration))
		return res
	}

	log.Info("run finished",
		zap.Int("nodes", res.Nodes),
		zap.Int("edges", res.Edges),
		zap.Int("matching_size", res.MatchingSize),
		zap.Duration("duration", res.Duration),
	)

	return res
}

func solve(g *core.Graph, atLeast int, opts ...matching.Option) outcome {
	if atLeast > 0 {
		ok, err := matching.HasMatchingOfAtLeast(g, atLeast, opts...)
		return outcome{satisfied: ok, err: err}
	}
	m, err := matching.FindMaximumMatching(g, opts...)
	if err != nil {
		return outcome{err: err}
	}

	return outcome{size: m.Size(), satisfied: true}
}
