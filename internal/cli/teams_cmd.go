package cli

import (
	"fmt"

	"github.com/alexanderramin/teamsim/internal/cli/formatter"
	"github.com/alexanderramin/teamsim/internal/config"
	"github.com/spf13/cobra"
)

func newTeamsCmd(app *App) *cobra.Command {
	cfg := app.config()

	var (
		teamsFile string
		asYAML    bool
	)

	cmd := &cobra.Command{
		Use:   "teams",
		Short: "List the configured teams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			teams, err := loadTeams(cfg, teamsFile)
			if err != nil {
				return err
			}

			if asYAML {
				data, err := config.MarshalTeams(teams)
				if err != nil {
					return fmt.Errorf("encoding teams: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTeams(teams))
			return nil
		},
	}

	cmd.Flags().StringVar(&teamsFile, "teams", cfg.TeamsFile, "YAML team file (default: reference teams)")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print as a team file that --teams accepts")

	return cmd
}
