package service

import (
	"context"

	"github.com/alexanderramin/teamsim/internal/app"
)

type SimulationService interface {
	Run(ctx context.Context, req app.RunRequest) (*app.RunResponse, error)
}

type ProjectionService interface {
	Project(ctx context.Context, req app.ProjectRequest) (*app.ProjectResponse, error)
}
