package cli

import (
	"fmt"
	"strings"

	teamsimapp "github.com/alexanderramin/teamsim/internal/app"
	"github.com/alexanderramin/teamsim/internal/cli/formatter"
	"github.com/alexanderramin/teamsim/internal/export"
	"github.com/spf13/cobra"
)

const progressWidth = 24

func newRunCmd(app *App) *cobra.Command {
	cfg := app.config()

	var (
		trials    int
		workers   int
		seed      uint64
		stdDev    float64
		outDir    string
		teamsFile string
		noExport  bool
	)
	format := newFormatValue(cfg.Format)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate every team and export the trial results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			teams, err := loadTeams(cfg, teamsFile)
			if err != nil {
				return err
			}

			req := teamsimapp.NewRunRequest(teams)
			req.Trials = trials
			req.Workers = workers
			req.StdDev = stdDev
			req.Format = format.format
			req.OutputDir = outDir
			req.NoExport = noExport
			if cmd.Flags().Changed("seed") || cfg.Seed != 0 {
				req.Seed = &seed
			}

			stopProgress := func() {}
			if app.interactive() {
				sp := formatter.NewSpinner(cmd.ErrOrStderr(), "Simulating "+strings.Join(teamsLabels(req), ", "))
				req.Progress = func(done, total int) {
					sp.SetMessage(formatter.RenderProgress(done, total, progressWidth))
				}
				sp.Start()
				stopProgress = sp.Stop
			}

			resp, err := app.Simulation.Run(cmd.Context(), req)
			stopProgress()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRunSummary(resp))
			return nil
		},
	}

	formats := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		formats = append(formats, f.String())
	}

	cmd.Flags().IntVarP(&trials, "trials", "n", cfg.Trials, "Number of Monte Carlo trials")
	cmd.Flags().IntVar(&workers, "workers", cfg.Workers, "Concurrent trials (0 = GOMAXPROCS)")
	cmd.Flags().Uint64Var(&seed, "seed", cfg.Seed, "Seed for a reproducible run")
	cmd.Flags().Float64Var(&stdDev, "std-dev", cfg.StdDev, "Standard deviation of each trial around the baseline, in weeks")
	cmd.Flags().Var(format, "format", "Export format ("+strings.Join(formats, "|")+")")
	cmd.Flags().StringVarP(&outDir, "out", "o", cfg.OutputDir, "Directory for the export file")
	cmd.Flags().StringVar(&teamsFile, "teams", cfg.TeamsFile, "YAML team file (default: reference teams)")
	cmd.Flags().BoolVar(&noExport, "no-export", false, "Print the summary without writing a file")

	return cmd
}

func teamsLabels(req teamsimapp.RunRequest) []string {
	labels := make([]string, len(req.Teams))
	for i, t := range req.Teams {
		labels[i] = t.Label
	}
	return labels
}
