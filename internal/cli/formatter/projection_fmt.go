package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/teamsim/internal/app"
)

// FormatProjection renders a single projection step by step, from the drawn
// developer velocities down to the final week count.
func FormatProjection(resp *app.ProjectResponse) string {
	c := resp.Team.Composition
	bd := resp.Breakdown

	var b strings.Builder
	b.WriteString(Header(resp.Team.Label))
	b.WriteString("\n")
	b.WriteString(KeyValues([][2]string{
		{"Team", fmt.Sprintf("%d dev, %d qa, %d pm", c.Developers, c.QATesters, c.ProjectManagers)},
		{"Points", fmt.Sprintf("%g", c.TotalPoints)},
		{"Seed", fmt.Sprintf("%d", resp.Seed)},
	}))
	b.WriteString("\n\n")

	rows := make([][]string, len(bd.Developers))
	for i, d := range bd.Developers {
		rows[i] = []string{
			fmt.Sprintf("dev %d", i+1),
			fmt.Sprintf("%g", d.WeeklyVelocity),
			fmt.Sprintf("%.4f", d.PointsPerHour),
		}
	}
	b.WriteString(RenderAlignedTable(
		[]string{"DEVELOPER", "PTS/WEEK", "PTS/HOUR"},
		rows,
		[]Align{AlignLeft, AlignRight, AlignRight},
	))
	b.WriteString("\n")

	management := "no project manager"
	if c.ProjectManagers > 0 {
		management = "project manager"
	}
	qa := Dim("none")
	if c.QATesters > 0 {
		qa = "+" + Hours(bd.QAHours)
	}

	b.WriteString(KeyValues([][2]string{
		{"Burn rate", fmt.Sprintf("%.4f pts/hour", bd.TeamPointsPerHour)},
		{"Developer hours", fmt.Sprintf("%dh", bd.DeveloperHours)},
		{"Variance", fmt.Sprintf("x%.3f = %s", bd.Variance, Hours(bd.VariedHours))},
		{"Management", fmt.Sprintf("%s = %s", management, Hours(bd.ManagedHours))},
		{"QA", qa},
		{"Total", Hours(bd.TotalHours)},
	}))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Projected duration: %s\n", Bold(Weeks(bd.Weeks))))
	return b.String()
}
