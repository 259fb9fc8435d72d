package app

import (
	"time"

	"github.com/alexanderramin/teamsim/internal/domain"
	"github.com/alexanderramin/teamsim/internal/export"
	"github.com/alexanderramin/teamsim/internal/summary"
	"github.com/google/uuid"
)

type RunRequest struct {
	Teams  []domain.Team
	Trials int
	// Seed fixes the run when non-nil.
	Seed    *uint64
	Workers int
	StdDev  float64
	Format  export.Format
	// OutputDir receives the export file; ignored when NoExport is set.
	OutputDir string
	NoExport  bool
	// Progress, when set, is called after each finished trial.
	Progress func(done, total int)
}

func NewRunRequest(teams []domain.Team) RunRequest {
	return RunRequest{
		Teams:     teams,
		Trials:    500,
		StdDev:    0.5,
		Format:    export.FormatCSV,
		OutputDir: ".",
	}
}

type RunResponse struct {
	RunID     uuid.UUID
	Seed      uint64
	Trials    int
	Labels    []string
	Summaries []summary.TeamSummary
	// ExportPath is empty when the export was skipped.
	ExportPath string
	SimElapsed time.Duration
	// WriteElapsed is zero when the export was skipped.
	WriteElapsed time.Duration
}
