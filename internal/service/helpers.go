package service

import (
	"math/rand/v2"
	"time"
)

// resolveSeed returns the requested seed, or a fresh random one.
func resolveSeed(seed *uint64) uint64 {
	if seed != nil {
		return *seed
	}
	return rand.Uint64()
}

// milestone builds a zero-length milestone such as the start of a phase.
func milestone(name string, fields map[string]any) UseCaseEvent {
	return UseCaseEvent{
		Name:      name,
		StartedAt: time.Now().UTC(),
		Success:   true,
		Fields:    fields,
	}
}
