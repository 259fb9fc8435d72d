package cli

import (
	"github.com/alexanderramin/teamsim/internal/config"
	"github.com/alexanderramin/teamsim/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings shared by CLI commands.
type App struct {
	Simulation service.SimulationService
	Projection service.ProjectionService
	// Config supplies flag defaults; nil means config.Default().
	Config *config.Config
	// IsInteractive reports whether progress can be animated on stderr.
	IsInteractive func() bool
}

func (a *App) config() config.Config {
	if a.Config == nil {
		return *config.Default()
	}
	return *a.Config
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "teamsim" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "teamsim",
		Short:         "Monte Carlo project duration simulator for team compositions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRunCmd(app),
		newProjectCmd(app),
		newTeamsCmd(app),
	)

	return root
}
