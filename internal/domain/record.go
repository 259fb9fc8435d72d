package domain

// TeamDuration is one team's simulated duration within a trial.
type TeamDuration struct {
	Label string
	Weeks float64
}

// TrialRecord holds the outcome of a single trial: one duration per team, in
// configuration order. A record is built by exactly one trial and never
// modified after it has been collected.
type TrialRecord struct {
	Trial     int
	Durations []TeamDuration
}

// Weeks returns the simulated duration for label.
func (r TrialRecord) Weeks(label string) (float64, bool) {
	for _, d := range r.Durations {
		if d.Label == label {
			return d.Weeks, true
		}
	}
	return 0, false
}

// Values returns the durations in label order.
func (r TrialRecord) Values() []float64 {
	vals := make([]float64, len(r.Durations))
	for i, d := range r.Durations {
		vals[i] = d.Weeks
	}
	return vals
}
