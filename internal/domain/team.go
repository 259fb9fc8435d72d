package domain

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// DefaultTotalPoints is the story point total used when a team omits one.
const DefaultTotalPoints = 100.0

// TeamComposition is the staffing mix of a team. Values are never mutated
// once a simulation starts.
type TeamComposition struct {
	Developers      int     `json:"developers" validate:"gte=1"`
	QATesters       int     `json:"qaTesters" validate:"gte=0"`
	ProjectManagers int     `json:"projectManagers" validate:"gte=0"`
	TotalPoints     float64 `json:"totalPoints" validate:"gt=0"`
}

// NewTeamComposition returns a composition with the default point total.
func NewTeamComposition(developers, qaTesters, projectManagers int) TeamComposition {
	return TeamComposition{
		Developers:      developers,
		QATesters:       qaTesters,
		ProjectManagers: projectManagers,
		TotalPoints:     DefaultTotalPoints,
	}
}

// HasProjectManager reports whether the team carries at least one PM.
func (c TeamComposition) HasProjectManager() bool {
	return c.ProjectManagers > 0
}

// HasQA reports whether the team carries at least one QA tester.
func (c TeamComposition) HasQA() bool {
	return c.QATesters > 0
}

// Validate checks the composition against its field constraints. A team needs
// at least one developer: with none, the point burn-down never completes.
func (c TeamComposition) Validate() error {
	if err := validate().Struct(c); err != nil {
		return translateValidation(err)
	}
	return nil
}

// Team is a labelled composition, one entry of the ordered team configuration.
type Team struct {
	Label       string          `json:"label" validate:"required"`
	Composition TeamComposition `json:"composition"`
}

// NewTeam builds a team with the default point total.
func NewTeam(label string, developers, qaTesters, projectManagers int) Team {
	return Team{
		Label:       label,
		Composition: NewTeamComposition(developers, qaTesters, projectManagers),
	}
}

// Validate checks the label and the composition.
func (t Team) Validate() error {
	if strings.TrimSpace(t.Label) == "" {
		return fmt.Errorf("%w: label is required", ErrInvalidTeam)
	}
	if err := t.Composition.Validate(); err != nil {
		return fmt.Errorf("team %q: %w", t.Label, err)
	}
	return nil
}

// ValidateTeams checks every team and that labels are unique.
func ValidateTeams(teams []Team) error {
	if len(teams) == 0 {
		return ErrNoTeams
	}
	seen := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		if err := t.Validate(); err != nil {
			return err
		}
		if _, dup := seen[t.Label]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, t.Label)
		}
		seen[t.Label] = struct{}{}
	}
	return nil
}

// Labels returns the team labels in configuration order.
func Labels(teams []Team) []string {
	labels := make([]string, len(teams))
	for i, t := range teams {
		labels[i] = t.Label
	}
	return labels
}

// ReferenceTeams returns the three reference team configurations.
func ReferenceTeams() []Team {
	return []Team{
		NewTeam("mega", 2, 1, 0),
		NewTeam("giga", 1, 1, 1),
		NewTeam("peta", 3, 0, 1),
	}
}

var (
	validateOnce  sync.Once
	validatorInst *validator.Validate
)

func validate() *validator.Validate {
	validateOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validatorInst
}

func translateValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidTeam, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s must be %s %s", fe.Field(), ruleText(fe.Tag()), fe.Param()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidTeam, strings.Join(msgs, "; "))
}

func ruleText(tag string) string {
	switch tag {
	case "gte":
		return ">="
	case "gt":
		return ">"
	default:
		return tag
	}
}
