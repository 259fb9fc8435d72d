package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/teamsim/internal/domain"
)

var testLabelCounter atomic.Int64

// Team options
type TeamOption func(*domain.Team)

func WithDevelopers(n int) TeamOption {
	return func(t *domain.Team) {
		t.Composition.Developers = n
	}
}

func WithQATesters(n int) TeamOption {
	return func(t *domain.Team) {
		t.Composition.QATesters = n
	}
}

func WithProjectManagers(n int) TeamOption {
	return func(t *domain.Team) {
		t.Composition.ProjectManagers = n
	}
}

func WithTotalPoints(points float64) TeamOption {
	return func(t *domain.Team) {
		t.Composition.TotalPoints = points
	}
}

func WithLabel(label string) TeamOption {
	return func(t *domain.Team) {
		t.Label = label
	}
}

// NewTestTeam returns a valid single-developer team with a unique label.
func NewTestTeam(opts ...TeamOption) domain.Team {
	n := testLabelCounter.Add(1)
	t := domain.NewTeam(fmt.Sprintf("team-%02d", n), 1, 0, 0)
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// NewTestTeams returns count valid teams with distinct labels.
func NewTestTeams(count int, opts ...TeamOption) []domain.Team {
	teams := make([]domain.Team, count)
	for i := range teams {
		teams[i] = NewTestTeam(opts...)
	}
	return teams
}
