package app

import (
	"github.com/alexanderramin/teamsim/internal/domain"
	"github.com/alexanderramin/teamsim/internal/projection"
)

type ProjectRequest struct {
	Team domain.Team
	Seed *uint64
}

type ProjectResponse struct {
	Team      domain.Team
	Seed      uint64
	Breakdown projection.Breakdown
}
