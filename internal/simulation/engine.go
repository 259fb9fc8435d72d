package simulation

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"
	"sync/atomic"

	"github.com/alexanderramin/teamsim/internal/domain"
	"github.com/alexanderramin/teamsim/internal/projection"
	"golang.org/x/sync/errgroup"
)

// baselineStream is the PCG stream reserved for baseline projections. Trial
// streams use the trial number, which never reaches it.
const baselineStream = math.MaxUint64

// Result is the outcome of a completed run.
type Result struct {
	// Seed reproduces the run when passed back through WithSeed.
	Seed   uint64
	Labels []string
	// Baselines holds one projection per label, in label order.
	Baselines []float64
	Records   []domain.TrialRecord
}

// Len returns the number of collected trial records.
func (r *Result) Len() int {
	return len(r.Records)
}

// Baseline returns the projection the trials were centred on for label.
func (r *Result) Baseline(label string) (float64, bool) {
	for i, l := range r.Labels {
		if l == label {
			return r.Baselines[i], true
		}
	}
	return 0, false
}

// Column returns every trial's duration for label, in trial order.
func (r *Result) Column(label string) []float64 {
	col := make([]float64, 0, len(r.Records))
	for _, rec := range r.Records {
		if w, ok := rec.Weeks(label); ok {
			col = append(col, w)
		}
	}
	return col
}

// Engine runs Monte Carlo trials over a fixed team configuration.
type Engine struct {
	params   projection.Params
	sampling SamplingParams
	workers  int
	seed     uint64
	seeded   bool
	progress func(done, total int)
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers caps the number of trials running at once. Non-positive values
// keep the default of GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithSeed fixes the run seed so the record collection is reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.seed = seed
		e.seeded = true
	}
}

// WithStdDev overrides the spread used when resampling baselines.
func WithStdDev(stdDev float64) Option {
	return func(e *Engine) {
		e.sampling.StdDev = stdDev
	}
}

// WithProjectionParams replaces the constants of the projection model used for
// baselines.
func WithProjectionParams(p projection.Params) Option {
	return func(e *Engine) {
		e.params = p
	}
}

// WithProgress registers a callback invoked after each completed trial. It may
// be called from several goroutines at once.
func WithProgress(fn func(done, total int)) Option {
	return func(e *Engine) {
		e.progress = fn
	}
}

// NewEngine creates an Engine with the reference constants.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		params:   projection.DefaultParams(),
		sampling: DefaultSamplingParams(),
		workers:  runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Baselines computes one projection per team, in order, drawing from src.
func (e *Engine) Baselines(teams []domain.Team, src projection.Source) ([]float64, error) {
	model := projection.NewModel(src, projection.WithParams(e.params))
	baselines := make([]float64, len(teams))
	for i, t := range teams {
		w, err := model.Project(t.Composition)
		if err != nil {
			return nil, fmt.Errorf("projecting team %q: %w", t.Label, err)
		}
		baselines[i] = w
	}
	return baselines, nil
}

// Run computes the baselines once and then executes trials independent trials
// concurrently. Any failing trial aborts the whole run.
func (e *Engine) Run(ctx context.Context, teams []domain.Team, trials int) (*Result, error) {
	if trials <= 0 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidTrialCount, trials)
	}
	if err := domain.ValidateTeams(teams); err != nil {
		return nil, err
	}

	seed := e.seed
	if !e.seeded {
		seed = rand.Uint64()
	}

	baselines, err := e.Baselines(teams, rand.New(rand.NewPCG(seed, baselineStream)))
	if err != nil {
		return nil, err
	}

	collector := NewCollector(trials)
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for trial := 1; trial <= trials; trial++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src := rand.New(rand.NewPCG(seed, uint64(trial)))
			rec, err := e.runTrial(trial, teams, baselines, src)
			if err != nil {
				return fmt.Errorf("trial %d: %w", trial, err)
			}
			collector.Add(rec)
			if e.progress != nil {
				e.progress(int(done.Add(1)), trials)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n := collector.Len(); n != trials {
		return nil, fmt.Errorf("collected %d records for %d trials", n, trials)
	}

	return &Result{
		Seed:      seed,
		Labels:    domain.Labels(teams),
		Baselines: baselines,
		Records:   collector.Records(),
	}, nil
}

func (e *Engine) runTrial(trial int, teams []domain.Team, baselines []float64, src Float64Source) (domain.TrialRecord, error) {
	rec := domain.TrialRecord{
		Trial:     trial,
		Durations: make([]domain.TeamDuration, len(teams)),
	}
	for i, t := range teams {
		p := e.sampling.DrawProbability(src)
		x, err := Quantile(baselines[i], e.sampling.StdDev, p)
		if err != nil {
			return domain.TrialRecord{}, fmt.Errorf("team %q: %w", t.Label, err)
		}
		rec.Durations[i] = domain.TeamDuration{Label: t.Label, Weeks: RoundWeeks(x)}
	}
	return rec, nil
}
