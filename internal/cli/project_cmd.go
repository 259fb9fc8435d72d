package cli

import (
	"fmt"

	teamsimapp "github.com/alexanderramin/teamsim/internal/app"
	"github.com/alexanderramin/teamsim/internal/cli/formatter"
	"github.com/alexanderramin/teamsim/internal/config"
	"github.com/alexanderramin/teamsim/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cfg := app.config()

	var (
		developers int
		qa         int
		pm         int
		points     float64
		label      string
		seed       uint64
		teamsFile  string
	)

	cmd := &cobra.Command{
		Use:   "project [team]",
		Short: "Show a single projection step by step",
		Long: `Project one team's duration and show every intermediate step.

With a team label the composition comes from the configured teams; otherwise
it is built from --developers, --qa, --pm and --points.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			team := domain.Team{
				Label: label,
				Composition: domain.TeamComposition{
					Developers:      developers,
					QATesters:       qa,
					ProjectManagers: pm,
					TotalPoints:     points,
				},
			}
			if len(args) == 1 {
				var err error
				team, err = findTeam(cfg, teamsFile, args[0])
				if err != nil {
					return err
				}
			}

			req := teamsimapp.ProjectRequest{Team: team}
			if cmd.Flags().Changed("seed") {
				req.Seed = &seed
			}

			resp, err := app.Projection.Project(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProjection(resp))
			return nil
		},
	}

	cmd.Flags().IntVarP(&developers, "developers", "d", 1, "Number of developers")
	cmd.Flags().IntVar(&qa, "qa", 0, "Number of QA testers")
	cmd.Flags().IntVar(&pm, "pm", 0, "Number of project managers")
	cmd.Flags().Float64Var(&points, "points", domain.DefaultTotalPoints, "Story points to deliver")
	cmd.Flags().StringVar(&label, "label", "adhoc", "Label for an ad-hoc team")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible projection")
	cmd.Flags().StringVar(&teamsFile, "teams", cfg.TeamsFile, "YAML team file to look team labels up in")

	return cmd
}

func findTeam(cfg config.Config, teamsFile, label string) (domain.Team, error) {
	teams, err := loadTeams(cfg, teamsFile)
	if err != nil {
		return domain.Team{}, err
	}
	for _, t := range teams {
		if t.Label == label {
			return t, nil
		}
	}
	return domain.Team{}, fmt.Errorf("%w: no team labelled %q (have %v)", domain.ErrInvalidTeam, label, domain.Labels(teams))
}
