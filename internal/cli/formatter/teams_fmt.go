package formatter

import (
	"fmt"

	"github.com/alexanderramin/teamsim/internal/domain"
)

// FormatTeams lists team compositions in configuration order.
func FormatTeams(teams []domain.Team) string {
	rows := make([][]string, len(teams))
	for i, t := range teams {
		c := t.Composition
		rows[i] = []string{
			Bold(t.Label),
			fmt.Sprintf("%d", c.Developers),
			fmt.Sprintf("%d", c.QATesters),
			fmt.Sprintf("%d", c.ProjectManagers),
			fmt.Sprintf("%g", c.TotalPoints),
		}
	}
	return RenderAlignedTable(
		[]string{"TEAM", "DEVS", "QA", "PMS", "POINTS"},
		rows,
		[]Align{AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight},
	)
}
