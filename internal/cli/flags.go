package cli

import (
	"github.com/alexanderramin/teamsim/internal/config"
	"github.com/alexanderramin/teamsim/internal/domain"
	"github.com/alexanderramin/teamsim/internal/export"
	"github.com/spf13/pflag"
)

// formatValue is a pflag.Value that only accepts known export formats.
type formatValue struct {
	format export.Format
}

var _ pflag.Value = (*formatValue)(nil)

func newFormatValue(def string) *formatValue {
	f, err := export.ParseFormat(def)
	if err != nil {
		f = export.FormatCSV
	}
	return &formatValue{format: f}
}

func (v *formatValue) String() string { return v.format.String() }

func (v *formatValue) Set(s string) error {
	f, err := export.ParseFormat(s)
	if err != nil {
		return err
	}
	v.format = f
	return nil
}

func (v *formatValue) Type() string { return "format" }

// loadTeams returns the teams in path, or the configured defaults when path
// is empty.
func loadTeams(cfg config.Config, path string) ([]domain.Team, error) {
	cfg.TeamsFile = path
	return cfg.Teams()
}
