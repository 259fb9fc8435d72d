package domain

import "errors"

var (
	// ErrInvalidTeam indicates a team composition that cannot be simulated,
	// such as a negative head count, zero developers or a non-positive
	// story point total.
	ErrInvalidTeam = errors.New("invalid team composition")

	// ErrNoTeams indicates an empty team configuration.
	ErrNoTeams = errors.New("no teams configured")

	// ErrDuplicateLabel indicates two teams sharing the same label.
	ErrDuplicateLabel = errors.New("duplicate team label")

	// ErrInvalidTrialCount indicates a non-positive trial count.
	ErrInvalidTrialCount = errors.New("trial count must be positive")
)
