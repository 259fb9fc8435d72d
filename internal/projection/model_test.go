package projection

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/alexanderramin/teamsim/internal/domain"
	"github.com/alexanderramin/teamsim/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestCompute_ReferenceScenario(t *testing.T) {
	// 2 developers at 5 points/week, 1 QA, no PM, 100 points, variance 1.0.
	team := domain.NewTeamComposition(2, 1, 0)

	b, err := Compute(team, []float64{5, 5}, 1.0, DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, 0.125, b.Developers[0].PointsPerHour)
	assert.Equal(t, 0.25, b.TeamPointsPerHour)
	assert.Equal(t, 400, b.DeveloperHours)
	assert.InDelta(t, 400, b.VariedHours, 1e-9)
	assert.InDelta(t, 920, b.ManagedHours, 1e-9)
	assert.InDelta(t, 200, b.QAHours, 1e-9)
	assert.InDelta(t, 1120, b.TotalHours, 1e-9)
	assert.InDelta(t, 28.0, b.Weeks, 1e-9)
}

func TestCompute_ManagerAndNoQA(t *testing.T) {
	// 3 developers at 4 points/week burn 0.3 points/hour: 334 hours to 100.
	team := domain.NewTeamComposition(3, 0, 1)

	b, err := Compute(team, []float64{4, 4, 4}, 1.0, DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, 334, b.DeveloperHours)
	assert.InDelta(t, 334*0.55, b.ManagedHours, 1e-9)
	assert.Zero(t, b.QAHours)
	assert.InDelta(t, 334*0.55/40, b.Weeks, 1e-9)
}

func TestCompute_VarianceScalesBeforeManagement(t *testing.T) {
	team := domain.NewTeamComposition(1, 1, 1)

	b, err := Compute(team, []float64{5}, 1.2, DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, 800, b.DeveloperHours)
	assert.InDelta(t, 960, b.VariedHours, 1e-9)
	assert.InDelta(t, 960*0.55, b.ManagedHours, 1e-9)
	// QA overhead uses the pre-variance developer hours.
	assert.InDelta(t, 400, b.QAHours, 1e-9)
}

func TestCompute_VelocityCountMismatch(t *testing.T) {
	_, err := Compute(domain.NewTeamComposition(2, 0, 0), []float64{5}, 1.0, DefaultParams())
	assert.ErrorIs(t, err, domain.ErrInvalidTeam)
}

func TestCompute_ZeroVelocityRejected(t *testing.T) {
	_, err := Compute(domain.NewTeamComposition(1, 0, 0), []float64{0}, 1.0, DefaultParams())
	assert.ErrorIs(t, err, domain.ErrInvalidTeam)
}

func TestCompute_HourLimit(t *testing.T) {
	p := DefaultParams()
	p.MaxDeveloperHours = 10

	_, err := Compute(domain.NewTeamComposition(1, 0, 0), []float64{3}, 1.0, p)
	assert.ErrorIs(t, err, ErrHourLimitExceeded)
}

func TestApplyManagement(t *testing.T) {
	p := DefaultParams()
	assert.InDelta(t, 55, ApplyManagement(100, true, p), 1e-9)
	assert.InDelta(t, 230, ApplyManagement(100, false, p), 1e-9)
}

func TestQAHours(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, 50.0, QAHours(100, true, p))
	assert.Zero(t, QAHours(100, false, p))
}

func TestModel_ProjectWithScriptedDraws(t *testing.T) {
	// IntN(5) == 2 yields velocity 5; Float64 == 0 yields variance 0.75.
	src := testutil.NewScriptedSource([]int{2}, []float64{0})
	m := NewModel(src)

	b, err := m.Breakdown(domain.NewTeamComposition(2, 1, 0))
	require.NoError(t, err)

	assert.Equal(t, 400, b.DeveloperHours)
	assert.Equal(t, 0.75, b.Variance)
	assert.InDelta(t, (300*2.3+200)/40, b.Weeks, 1e-9)
}

func TestModel_ProjectRejectsZeroDevelopers(t *testing.T) {
	m := NewModel(rand.New(rand.NewPCG(1, 2)))

	_, err := m.Project(domain.NewTeamComposition(0, 1, 1))
	assert.ErrorIs(t, err, domain.ErrInvalidTeam)
}

func TestModel_ProjectIsNonDeterministic(t *testing.T) {
	m := NewModel(rand.New(rand.NewPCG(7, 11)))
	team := domain.NewTeamComposition(3, 1, 1)

	seen := make(map[float64]struct{})
	for i := 0; i < 20; i++ {
		w, err := m.Project(team)
		require.NoError(t, err)
		seen[w] = struct{}{}
	}
	assert.Greater(t, len(seen), 1, "repeated projections should differ")
}

func TestModel_WithParams(t *testing.T) {
	p := DefaultParams()
	p.HoursPerWeek = 20
	m := NewModel(testutil.NewScriptedSource([]int{2}, []float64{0}), WithParams(p))
	assert.Equal(t, 20.0, m.Params().HoursPerWeek)
}

func TestModel_ProjectionProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		team := domain.TeamComposition{
			Developers:      rapid.IntRange(1, 8).Draw(t, "developers"),
			QATesters:       rapid.IntRange(0, 3).Draw(t, "qa"),
			ProjectManagers: rapid.IntRange(0, 3).Draw(t, "pm"),
			TotalPoints:     float64(rapid.IntRange(1, 400).Draw(t, "points")),
		}
		seed := rapid.Uint64().Draw(t, "seed")
		m := NewModel(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))

		b, err := m.Breakdown(team)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if math.IsNaN(b.Weeks) || math.IsInf(b.Weeks, 0) || b.Weeks < 0 {
			t.Fatalf("weeks must be finite and non-negative, got %v", b.Weeks)
		}
		for _, d := range b.Developers {
			if d.WeeklyVelocity < 3 || d.WeeklyVelocity > 7 {
				t.Fatalf("velocity %v outside [3, 8)", d.WeeklyVelocity)
			}
		}
		if b.Variance < 0.75 || b.Variance >= 1.2 {
			t.Fatalf("variance %v outside [0.75, 1.2)", b.Variance)
		}
		// The burn-down stops on the first hour that reaches the total.
		if float64(b.DeveloperHours)*b.TeamPointsPerHour < team.TotalPoints-1e-9 {
			t.Fatalf("%d hours at %v/h does not reach %v points", b.DeveloperHours, b.TeamPointsPerHour, team.TotalPoints)
		}
		if float64(b.DeveloperHours-1)*b.TeamPointsPerHour >= team.TotalPoints+1e-9 {
			t.Fatalf("%d hours overshoots %v points", b.DeveloperHours, team.TotalPoints)
		}
	})
}

func TestModel_ManagementAndQAProperties(t *testing.T) {
	p := DefaultParams()
	rapid.Check(t, func(t *rapid.T) {
		hours := rapid.IntRange(1, 100_000).Draw(t, "hours")
		variance := rapid.Float64Range(p.VarianceMin, p.VarianceMax).Draw(t, "variance")
		varied := float64(hours) * variance

		if ApplyManagement(varied, true, p) >= varied {
			t.Fatalf("project manager must reduce hours")
		}
		if ApplyManagement(varied, false, p) <= varied {
			t.Fatalf("missing project manager must add hours")
		}
		if QAHours(hours, true, p) <= 0 {
			t.Fatalf("QA must add hours")
		}
	})
}
