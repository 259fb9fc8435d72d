package projection

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexanderramin/teamsim/internal/domain"
)

// ErrHourLimitExceeded indicates the burn-down loop hit MaxDeveloperHours
// before the team finished its story points.
var ErrHourLimitExceeded = errors.New("developer hour limit exceeded")

// Source is the random generator a Model draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// DeveloperSample is one developer's drawn velocity for a single projection.
type DeveloperSample struct {
	WeeklyVelocity float64
	PointsPerHour  float64
}

// Breakdown exposes every intermediate step of a projection.
type Breakdown struct {
	Developers []DeveloperSample
	// TeamPointsPerHour is the summed hourly burn rate of all developers.
	TeamPointsPerHour float64
	DeveloperHours    int
	Variance          float64
	VariedHours       float64
	ManagedHours      float64
	QAHours           float64
	TotalHours        float64
	Weeks             float64
}

// Model projects team compositions into expected durations in weeks. A Model
// is not safe for concurrent use since it owns its Source.
type Model struct {
	params Params
	src    Source
}

// Option configures a Model.
type Option func(*Model)

// WithParams replaces the default model constants.
func WithParams(p Params) Option {
	return func(m *Model) {
		m.params = p
	}
}

// NewModel creates a Model drawing from src.
func NewModel(src Source, opts ...Option) *Model {
	m := &Model{
		params: DefaultParams(),
		src:    src,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Params returns the constants the model runs with.
func (m *Model) Params() Params {
	return m.params
}

// Project returns the expected duration in weeks for team. Repeated calls on
// the same composition differ because every call draws fresh velocities and
// a fresh variance multiplier.
func (m *Model) Project(team domain.TeamComposition) (float64, error) {
	b, err := m.Breakdown(team)
	if err != nil {
		return 0, err
	}
	return b.Weeks, nil
}

// Breakdown draws the random inputs for team and computes the projection.
func (m *Model) Breakdown(team domain.TeamComposition) (Breakdown, error) {
	if err := team.Validate(); err != nil {
		return Breakdown{}, err
	}
	velocities := make([]float64, team.Developers)
	for i := range velocities {
		velocities[i] = m.drawVelocity()
	}
	return Compute(team, velocities, m.drawVariance(), m.params)
}

func (m *Model) drawVelocity() float64 {
	span := m.params.MaxWeeklyVelocity - m.params.MinWeeklyVelocity
	return float64(m.params.MinWeeklyVelocity + m.src.IntN(span))
}

func (m *Model) drawVariance() float64 {
	return m.params.VarianceMin + m.src.Float64()*(m.params.VarianceMax-m.params.VarianceMin)
}

// Compute is the deterministic part of the model: given one weekly velocity
// per developer and a variance multiplier it derives the projection.
func Compute(team domain.TeamComposition, velocities []float64, variance float64, p Params) (Breakdown, error) {
	if len(velocities) != team.Developers {
		return Breakdown{}, fmt.Errorf("%w: %d velocities for %d developers",
			domain.ErrInvalidTeam, len(velocities), team.Developers)
	}

	b := Breakdown{
		Developers: make([]DeveloperSample, len(velocities)),
		Variance:   variance,
	}
	for i, v := range velocities {
		pph := v / p.HoursPerWeek
		b.Developers[i] = DeveloperSample{WeeklyVelocity: v, PointsPerHour: pph}
		b.TeamPointsPerHour += pph
	}

	hours, err := burnDown(b.TeamPointsPerHour, team.TotalPoints, p.MaxDeveloperHours)
	if err != nil {
		return Breakdown{}, err
	}
	b.DeveloperHours = hours

	b.VariedHours = float64(hours) * variance
	b.ManagedHours = ApplyManagement(b.VariedHours, team.HasProjectManager(), p)
	b.QAHours = QAHours(hours, team.HasQA(), p)
	b.TotalHours = b.ManagedHours + b.QAHours
	b.Weeks = b.TotalHours / p.HoursPerWeek
	return b, nil
}

// burnDown counts the simulated hours needed to accumulate totalPoints at
// rate points per hour.
func burnDown(rate, totalPoints float64, maxHours int) (int, error) {
	if rate <= 0 || math.IsNaN(rate) {
		return 0, fmt.Errorf("%w: team burns no points", domain.ErrInvalidTeam)
	}
	points := 0.0
	hours := 0
	for points < totalPoints {
		if hours >= maxHours {
			return 0, fmt.Errorf("%w: %d hours for %.2f points", ErrHourLimitExceeded, hours, totalPoints)
		}
		points += rate
		hours++
	}
	return hours, nil
}

// ApplyManagement scales hours down when the team has a project manager and
// up when it has none.
func ApplyManagement(hours float64, hasManager bool, p Params) float64 {
	if hasManager {
		return hours - hours*p.ManagerReduction
	}
	return hours + hours*p.MissingManagerDrag
}

// QAHours is the QA overhead, based on the developer hours before variance.
func QAHours(developerHours int, hasQA bool, p Params) float64 {
	if !hasQA {
		return 0
	}
	return float64(developerHours) * p.QAFactor
}
