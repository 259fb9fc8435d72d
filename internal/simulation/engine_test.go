package simulation

import (
	"context"
	"math"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/teamsim/internal/domain"
	"github.com/alexanderramin/teamsim/internal/projection"
	"github.com/alexanderramin/teamsim/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func hasAtMostTwoDecimals(v float64) bool {
	scaled := v * 100
	return math.Abs(scaled-math.Round(scaled)) < 1e-6
}

func TestRun_ReferenceTeams(t *testing.T) {
	teams := domain.ReferenceTeams()
	e := NewEngine(WithSeed(42), WithWorkers(4))

	res, err := e.Run(context.Background(), teams, 500)
	require.NoError(t, err)

	assert.Equal(t, 500, res.Len())
	assert.Equal(t, uint64(42), res.Seed)
	assert.Equal(t, []string{"mega", "giga", "peta"}, res.Labels)
	require.Len(t, res.Baselines, 3)

	for i, rec := range res.Records {
		assert.Equal(t, i+1, rec.Trial)
		require.Len(t, rec.Durations, 3)
		for j, d := range rec.Durations {
			assert.Equal(t, res.Labels[j], d.Label)
			assert.True(t, hasAtMostTwoDecimals(d.Weeks), "value %v has more than 2 decimals", d.Weeks)
			assert.GreaterOrEqual(t, d.Weeks, 0.0)
			assert.False(t, math.IsNaN(d.Weeks) || math.IsInf(d.Weeks, 0))
		}
	}
}

func TestRun_SamplesStayNearBaseline(t *testing.T) {
	res, err := NewEngine(WithSeed(7)).Run(context.Background(), domain.ReferenceTeams(), 300)
	require.NoError(t, err)

	// p is clamped to [0.01, 0.99), so samples stay within ~2.33 sigma.
	for _, label := range res.Labels {
		base, ok := res.Baseline(label)
		require.True(t, ok)
		for _, w := range res.Column(label) {
			assert.InDelta(t, base, w, 2.33*0.5+0.01)
		}
	}
}

func TestRun_SameSeedReproduces(t *testing.T) {
	teams := domain.ReferenceTeams()

	a, err := NewEngine(WithSeed(1234), WithWorkers(8)).Run(context.Background(), teams, 200)
	require.NoError(t, err)
	b, err := NewEngine(WithSeed(1234), WithWorkers(1)).Run(context.Background(), teams, 200)
	require.NoError(t, err)

	assert.Equal(t, a.Baselines, b.Baselines)
	assert.Equal(t, a.Records, b.Records)
}

func TestRun_DifferentSeedsDiffer(t *testing.T) {
	teams := domain.ReferenceTeams()

	a, err := NewEngine(WithSeed(1)).Run(context.Background(), teams, 100)
	require.NoError(t, err)
	b, err := NewEngine(WithSeed(2)).Run(context.Background(), teams, 100)
	require.NoError(t, err)

	assert.NotEqual(t, a.Records, b.Records)
	for _, res := range []*Result{a, b} {
		for _, rec := range res.Records {
			for _, v := range rec.Values() {
				assert.GreaterOrEqual(t, v, 0.0)
			}
		}
	}
}

func TestRun_UnseededPicksSeed(t *testing.T) {
	res, err := NewEngine().Run(context.Background(), domain.ReferenceTeams(), 3)
	require.NoError(t, err)

	again, err := NewEngine(WithSeed(res.Seed)).Run(context.Background(), domain.ReferenceTeams(), 3)
	require.NoError(t, err)
	assert.Equal(t, res.Records, again.Records)
}

func TestRun_ConfigurationErrors(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(WithSeed(1))

	_, err := e.Run(ctx, domain.ReferenceTeams(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidTrialCount)

	_, err = e.Run(ctx, domain.ReferenceTeams(), -3)
	assert.ErrorIs(t, err, domain.ErrInvalidTrialCount)

	_, err = e.Run(ctx, nil, 10)
	assert.ErrorIs(t, err, domain.ErrNoTeams)

	_, err = e.Run(ctx, []domain.Team{testutil.NewTestTeam(testutil.WithDevelopers(0))}, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidTeam)
}

func TestRun_DegenerateDistributionIsFatal(t *testing.T) {
	e := NewEngine(WithSeed(1), WithStdDev(0))

	res, err := e.Run(context.Background(), domain.ReferenceTeams(), 50)
	assert.ErrorIs(t, err, ErrDistribution)
	assert.Nil(t, res)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEngine(WithSeed(1)).Run(ctx, domain.ReferenceTeams(), 100)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_ReportsProgress(t *testing.T) {
	var calls atomic.Int64
	var maxDone atomic.Int64
	e := NewEngine(WithSeed(3), WithProgress(func(done, total int) {
		calls.Add(1)
		assert.Equal(t, 64, total)
		for {
			cur := maxDone.Load()
			if int64(done) <= cur || maxDone.CompareAndSwap(cur, int64(done)) {
				break
			}
		}
	}))

	_, err := e.Run(context.Background(), domain.ReferenceTeams(), 64)
	require.NoError(t, err)
	assert.Equal(t, int64(64), calls.Load())
	assert.Equal(t, int64(64), maxDone.Load())
}

func TestBaselines_OnePerTeam(t *testing.T) {
	teams := domain.ReferenceTeams()
	// Velocity 5 for every developer, variance 0.75.
	src := testutil.NewScriptedSource([]int{2}, []float64{0})

	got, err := NewEngine().Baselines(teams, src)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// mega: 400h * 0.75 * 2.3 + 200 = 890h.
	assert.InDelta(t, 890.0/40, got[0], 1e-9)
	// giga: 800h * 0.75 * 0.55 + 400 = 730h.
	assert.InDelta(t, 730.0/40, got[1], 1e-9)
	// peta: 0.375 points/h -> 267h * 0.75 * 0.55, no QA.
	assert.InDelta(t, 267*0.75*0.55/40, got[2], 1e-9)
}

func TestRun_CollectionSizeProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		trials := rapid.IntRange(1, 150).Draw(t, "trials")
		workers := rapid.IntRange(1, 8).Draw(t, "workers")
		teamCount := rapid.IntRange(1, 5).Draw(t, "teams")

		teams := make([]domain.Team, teamCount)
		for i := range teams {
			teams[i] = testutil.NewTestTeam(
				testutil.WithDevelopers(rapid.IntRange(1, 6).Draw(t, "developers")),
				testutil.WithQATesters(rapid.IntRange(0, 2).Draw(t, "qa")),
				testutil.WithProjectManagers(rapid.IntRange(0, 2).Draw(t, "pm")),
			)
		}

		e := NewEngine(WithSeed(rapid.Uint64().Draw(t, "seed")), WithWorkers(workers))
		res, err := e.Run(context.Background(), teams, trials)
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
		if res.Len() != trials {
			t.Fatalf("got %d records for %d trials", res.Len(), trials)
		}
		seen := make(map[int]bool, trials)
		for _, rec := range res.Records {
			if seen[rec.Trial] {
				t.Fatalf("trial %d collected twice", rec.Trial)
			}
			seen[rec.Trial] = true
			if len(rec.Durations) != teamCount {
				t.Fatalf("trial %d has %d values for %d teams", rec.Trial, len(rec.Durations), teamCount)
			}
			for _, d := range rec.Durations {
				if !hasAtMostTwoDecimals(d.Weeks) || d.Weeks < 0 {
					t.Fatalf("invalid duration %v", d.Weeks)
				}
			}
		}
	})
}

func TestRun_ProjectionParamsDriveBaselines(t *testing.T) {
	params := projection.DefaultParams()
	params.MinWeeklyVelocity = 40
	params.MaxWeeklyVelocity = 41
	params.VarianceMin = 1
	params.VarianceMax = 1

	teams := []domain.Team{domain.NewTeam("solo", 1, 0, 1)}
	res, err := NewEngine(WithSeed(1), WithProjectionParams(params)).Run(context.Background(), teams, 20)
	require.NoError(t, err)

	// 100 points at 1 point/hour, managed: 100h * 0.55 / 40.
	baseline, ok := res.Baseline("solo")
	require.True(t, ok)
	assert.InDelta(t, 1.375, baseline, 1e-9)
}
