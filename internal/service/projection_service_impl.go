package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/alexanderramin/teamsim/internal/app"
	"github.com/alexanderramin/teamsim/internal/projection"
)

type projectionService struct {
	params   projection.Params
	observer UseCaseObserver
}

func NewProjectionService(params projection.Params, observers ...UseCaseObserver) ProjectionService {
	return &projectionService{
		params:   params,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *projectionService) Project(ctx context.Context, req app.ProjectRequest) (resp *app.ProjectResponse, err error) {
	seed := resolveSeed(req.Seed)
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"team": req.Team.Label,
		"seed": seed,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "project",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err = req.Team.Validate(); err != nil {
		return nil, err
	}

	model := projection.NewModel(rand.New(rand.NewPCG(seed, 0)), projection.WithParams(s.params))
	b, err := model.Breakdown(req.Team.Composition)
	if err != nil {
		return nil, fmt.Errorf("projecting team %q: %w", req.Team.Label, err)
	}
	fields["weeks"] = b.Weeks

	return &app.ProjectResponse{
		Team:      req.Team,
		Seed:      seed,
		Breakdown: b,
	}, nil
}
