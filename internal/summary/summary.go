package summary

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/alexanderramin/teamsim/internal/domain"
)

// Percentiles reported for every team.
var Percentiles = []float64{0.50, 0.85, 0.95}

// TeamSummary describes the distribution of one team's simulated durations.
type TeamSummary struct {
	Label    string
	Baseline float64
	Trials   int
	Mean     float64
	StdDev   float64
	Min      float64
	Max      float64
	// P maps each entry of Percentiles to its quantile, in the same order.
	P []float64
}

// Percentile returns the quantile stored for q, or NaN when q was not computed.
func (s TeamSummary) Percentile(q float64) float64 {
	for i, pq := range Percentiles {
		if pq == q && i < len(s.P) {
			return s.P[i]
		}
	}
	return math.NaN()
}

// Summarize computes per-team statistics over records, in label order.
// baselines may be nil; otherwise it must align with labels.
func Summarize(labels []string, baselines []float64, records []domain.TrialRecord) []TeamSummary {
	out := make([]TeamSummary, len(labels))
	for i, label := range labels {
		xs := make([]float64, 0, len(records))
		for _, r := range records {
			if w, ok := r.Weeks(label); ok {
				xs = append(xs, w)
			}
		}
		out[i] = summarizeColumn(label, xs)
		if i < len(baselines) {
			out[i].Baseline = baselines[i]
		}
	}
	return out
}

func summarizeColumn(label string, xs []float64) TeamSummary {
	s := TeamSummary{Label: label, Trials: len(xs)}
	if len(xs) == 0 {
		s.Mean, s.StdDev, s.Min, s.Max = math.NaN(), math.NaN(), math.NaN(), math.NaN()
		s.P = make([]float64, len(Percentiles))
		for i := range s.P {
			s.P[i] = math.NaN()
		}
		return s
	}

	sample := (&stats.Sample{Xs: xs}).Sort()
	s.Mean = sample.Mean()
	s.StdDev = sample.StdDev()
	s.Min, s.Max = sample.Bounds()
	s.P = make([]float64, len(Percentiles))
	for i, q := range Percentiles {
		s.P[i] = sample.Quantile(q)
	}
	return s
}

// Fastest returns the label with the lowest mean duration.
func Fastest(summaries []TeamSummary) (string, bool) {
	best := -1
	for i, s := range summaries {
		if math.IsNaN(s.Mean) {
			continue
		}
		if best < 0 || s.Mean < summaries[best].Mean {
			best = i
		}
	}
	if best < 0 {
		return "", false
	}
	return summaries[best].Label, true
}
