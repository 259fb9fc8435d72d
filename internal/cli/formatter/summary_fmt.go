package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/teamsim/internal/app"
	"github.com/alexanderramin/teamsim/internal/summary"
)

// FormatRunSummary renders the result of a simulation run: run metadata, the
// per-team distribution table and the export location.
func FormatRunSummary(resp *app.RunResponse) string {
	var b strings.Builder

	meta := [][2]string{
		{"Run", resp.RunID.String()},
		{"Seed", fmt.Sprintf("%d", resp.Seed)},
		{"Trials", fmt.Sprintf("%d", resp.Trials)},
		{"Simulated in", Elapsed(resp.SimElapsed)},
	}
	b.WriteString(RenderBox("Simulation", KeyValues(meta)))
	b.WriteString("\n\n")

	b.WriteString(FormatSummaryTable(resp.Summaries))

	if label, ok := summary.Fastest(resp.Summaries); ok {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Fastest on average: %s\n", StyleGreen.Render(label)))
	}

	b.WriteString("\n")
	if resp.ExportPath == "" {
		b.WriteString(Dim("Export skipped") + "\n")
	} else {
		b.WriteString(fmt.Sprintf("%s %s %s\n", Dim("Results written to"), resp.ExportPath, Dim("("+Elapsed(resp.WriteElapsed)+")")))
	}
	return b.String()
}

// FormatSummaryTable renders one row per team with its baseline, spread and
// percentiles, all in weeks.
func FormatSummaryTable(summaries []summary.TeamSummary) string {
	headers := []string{"TEAM", "BASELINE", "MEAN", "STD DEV", "MIN"}
	for _, q := range summary.Percentiles {
		headers = append(headers, fmt.Sprintf("P%.0f", q*100))
	}
	headers = append(headers, "MAX")

	align := make([]Align, len(headers))
	for i := 1; i < len(align); i++ {
		align[i] = AlignRight
	}

	fastest := fastestMean(summaries)
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		row := []string{
			Bold(s.Label),
			Weeks(s.Baseline),
			PaceColor(s.Mean, fastest).Render(Weeks(s.Mean)),
			fmt.Sprintf("%.2f", s.StdDev),
			Weeks(s.Min),
		}
		for _, q := range summary.Percentiles {
			row = append(row, Weeks(s.Percentile(q)))
		}
		row = append(row, Weeks(s.Max))
		rows = append(rows, row)
	}
	return RenderAlignedTable(headers, rows, align)
}

func fastestMean(summaries []summary.TeamSummary) float64 {
	best := 0.0
	for i, s := range summaries {
		if i == 0 || s.Mean < best {
			best = s.Mean
		}
	}
	return best
}
