package config

import (
	"fmt"
	"os"

	"github.com/alexanderramin/teamsim/internal/domain"
	"sigs.k8s.io/yaml"
)

type teamFile struct {
	Teams []teamEntry `json:"teams"`
}

type teamEntry struct {
	Label           string   `json:"label"`
	Developers      int      `json:"developers"`
	QATesters       int      `json:"qaTesters"`
	ProjectManagers int      `json:"projectManagers"`
	TotalPoints     *float64 `json:"totalPoints,omitempty"`
}

// LoadTeams reads a YAML team file:
//
//	teams:
//	  - label: mega
//	    developers: 2
//	    qaTesters: 1
//	    projectManagers: 0
//	    totalPoints: 100
//
// totalPoints defaults to 100. Unknown keys are rejected.
func LoadTeams(path string) ([]domain.Team, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading team file: %w", err)
	}
	teams, err := ParseTeams(data)
	if err != nil {
		return nil, fmt.Errorf("team file %s: %w", path, err)
	}
	return teams, nil
}

// ParseTeams decodes and validates YAML team definitions.
func ParseTeams(data []byte) ([]domain.Team, error) {
	var tf teamFile
	if err := yaml.UnmarshalStrict(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing teams: %w", err)
	}

	teams := make([]domain.Team, len(tf.Teams))
	for i, e := range tf.Teams {
		points := domain.DefaultTotalPoints
		if e.TotalPoints != nil {
			points = *e.TotalPoints
		}
		teams[i] = domain.Team{
			Label: e.Label,
			Composition: domain.TeamComposition{
				Developers:      e.Developers,
				QATesters:       e.QATesters,
				ProjectManagers: e.ProjectManagers,
				TotalPoints:     points,
			},
		}
	}
	if err := domain.ValidateTeams(teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// MarshalTeams encodes teams in the format ParseTeams reads.
func MarshalTeams(teams []domain.Team) ([]byte, error) {
	tf := teamFile{Teams: make([]teamEntry, len(teams))}
	for i, t := range teams {
		points := t.Composition.TotalPoints
		tf.Teams[i] = teamEntry{
			Label:           t.Label,
			Developers:      t.Composition.Developers,
			QATesters:       t.Composition.QATesters,
			ProjectManagers: t.Composition.ProjectManagers,
			TotalPoints:     &points,
		}
	}
	return yaml.Marshal(tf)
}
