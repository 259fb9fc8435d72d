package simulation

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// ErrDistribution indicates a normal distribution that cannot be evaluated.
var ErrDistribution = errors.New("invalid distribution")

// SamplingParams controls how each trial resamples a team's baseline.
type SamplingParams struct {
	// StdDev is the spread of the normal distribution centred on a baseline.
	StdDev float64
	// The cumulative probability fed to the quantile function is drawn
	// uniformly from [MinProbability, MaxProbability).
	MinProbability float64
	MaxProbability float64
}

// DefaultSamplingParams returns the reference sampling constants.
func DefaultSamplingParams() SamplingParams {
	return SamplingParams{
		StdDev:         0.5,
		MinProbability: 0.01,
		MaxProbability: 0.99,
	}
}

// Float64Source yields uniform draws in [0, 1).
type Float64Source interface {
	Float64() float64
}

// DrawProbability draws a cumulative probability inside the clamp band, which
// keeps the quantile away from the distribution's infinite tails.
func (p SamplingParams) DrawProbability(src Float64Source) float64 {
	return p.MinProbability + src.Float64()*(p.MaxProbability-p.MinProbability)
}

// Quantile returns the value at which the CDF of N(mean, stdDev) equals p.
func Quantile(mean, stdDev, p float64) (float64, error) {
	switch {
	case math.IsNaN(mean) || math.IsInf(mean, 0):
		return 0, fmt.Errorf("%w: mean %v", ErrDistribution, mean)
	case !(stdDev > 0) || math.IsInf(stdDev, 0):
		return 0, fmt.Errorf("%w: standard deviation %v", ErrDistribution, stdDev)
	case !(p > 0 && p < 1):
		return 0, fmt.Errorf("%w: probability %v outside (0, 1)", ErrDistribution, p)
	}

	x := stats.NormalDist{Mu: mean, Sigma: stdDev}.InvCDF(p)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%w: quantile of N(%v, %v) at %v is %v", ErrDistribution, mean, stdDev, p, x)
	}
	return x, nil
}

// RoundWeeks rounds a simulated duration to 2 decimal places. A duration never
// goes below zero, even when the tail of the distribution does.
func RoundWeeks(v float64) float64 {
	r := math.Round(v*100) / 100
	if r <= 0 {
		return 0
	}
	return r
}
