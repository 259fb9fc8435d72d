package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/teamsim/internal/app"
	"github.com/alexanderramin/teamsim/internal/config"
	"github.com/alexanderramin/teamsim/internal/domain"
	"github.com/alexanderramin/teamsim/internal/export"
	"github.com/alexanderramin/teamsim/internal/projection"
	"github.com/alexanderramin/teamsim/internal/simulation"
	"github.com/alexanderramin/teamsim/internal/summary"
	"github.com/google/uuid"
)

type simulationService struct {
	params   projection.Params
	observer UseCaseObserver
	newRunID func() uuid.UUID
}

func NewSimulationService(params projection.Params, observers ...UseCaseObserver) SimulationService {
	return &simulationService{
		params:   params,
		observer: useCaseObserverOrNoop(observers),
		newRunID: uuid.New,
	}
}

func (s *simulationService) Run(ctx context.Context, req app.RunRequest) (*app.RunResponse, error) {
	if err := validateRunRequest(req); err != nil {
		return nil, err
	}

	runID := s.newRunID()
	labels := domain.Labels(req.Teams)

	result, simElapsed, err := s.simulate(ctx, runID, req)
	if err != nil {
		return nil, err
	}

	resp := &app.RunResponse{
		RunID:      runID,
		Seed:       result.Seed,
		Trials:     result.Len(),
		Labels:     labels,
		Summaries:  summary.Summarize(result.Labels, result.Baselines, result.Records),
		SimElapsed: simElapsed,
	}
	if req.NoExport {
		return resp, nil
	}

	resp.ExportPath, resp.WriteElapsed, err = s.export(ctx, runID, req, result)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *simulationService) simulate(ctx context.Context, runID uuid.UUID, req app.RunRequest) (result *simulation.Result, elapsed time.Duration, err error) {
	opts := []simulation.Option{
		simulation.WithWorkers(req.Workers),
		simulation.WithStdDev(req.StdDev),
		simulation.WithProjectionParams(s.params),
	}
	if req.Seed != nil {
		opts = append(opts, simulation.WithSeed(*req.Seed))
	}
	if req.Progress != nil {
		opts = append(opts, simulation.WithProgress(req.Progress))
	}

	fields := map[string]any{
		"run_id": runID.String(),
		"trials": req.Trials,
		"teams":  len(req.Teams),
	}
	s.observer.ObserveUseCase(ctx, milestone("simulation-start", fields))

	startedAt := time.Now().UTC()
	defer func() {
		elapsed = time.Since(startedAt)
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "simulation-complete",
			StartedAt: startedAt,
			Duration:  elapsed,
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	result, err = simulation.NewEngine(opts...).Run(ctx, req.Teams, req.Trials)
	if err != nil {
		return nil, 0, fmt.Errorf("running simulation: %w", err)
	}
	fields["seed"] = result.Seed
	return result, 0, nil
}

func (s *simulationService) export(ctx context.Context, runID uuid.UUID, req app.RunRequest, result *simulation.Result) (path string, elapsed time.Duration, err error) {
	fields := map[string]any{
		"run_id": runID.String(),
		"format": req.Format.String(),
		"rows":   result.Len(),
	}
	s.observer.ObserveUseCase(ctx, milestone("export-start", fields))

	startedAt := time.Now().UTC()
	defer func() {
		elapsed = time.Since(startedAt)
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "export-complete",
			StartedAt: startedAt,
			Duration:  elapsed,
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	path, err = export.WriteFile(req.OutputDir, runID, req.Format, export.NewTable(result.Labels, result.Records))
	if err != nil {
		return "", 0, fmt.Errorf("exporting results: %w", err)
	}
	fields["path"] = path
	return path, 0, nil
}

func validateRunRequest(req app.RunRequest) error {
	if req.Trials <= 0 {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidTrialCount, req.Trials)
	}
	if req.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", config.ErrInvalidConfig, req.Workers)
	}
	if !(req.StdDev > 0) || math.IsInf(req.StdDev, 0) {
		return fmt.Errorf("%w: std dev must be a positive number, got %v", config.ErrInvalidConfig, req.StdDev)
	}
	if err := domain.ValidateTeams(req.Teams); err != nil {
		return err
	}
	if !req.NoExport {
		if _, err := export.ParseFormat(string(req.Format)); err != nil {
			return err
		}
	}
	return nil
}
