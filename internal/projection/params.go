package projection

// Params holds the model constants. They are fixed by the model author and
// kept here so each factor can be audited and tested in isolation.
type Params struct {
	// Weekly velocity per developer is drawn from the integer range
	// [MinWeeklyVelocity, MaxWeeklyVelocity).
	MinWeeklyVelocity int
	MaxWeeklyVelocity int

	HoursPerWeek float64

	// Variance multiplier band [VarianceMin, VarianceMax).
	VarianceMin float64
	VarianceMax float64

	// ManagerReduction is the fraction of hours removed when the team has a
	// project manager; MissingManagerDrag the fraction added when it has none.
	ManagerReduction   float64
	MissingManagerDrag float64

	// QAFactor scales the developer hours added when the team has QA.
	QAFactor float64

	// MaxDeveloperHours bounds the hour-by-hour burn-down loop.
	MaxDeveloperHours int
}

// DefaultParams returns the reference model constants.
func DefaultParams() Params {
	return Params{
		MinWeeklyVelocity:  3,
		MaxWeeklyVelocity:  8,
		HoursPerWeek:       40,
		VarianceMin:        0.75,
		VarianceMax:        1.2,
		ManagerReduction:   0.45,
		MissingManagerDrag: 1.3,
		QAFactor:           0.5,
		MaxDeveloperHours:  1 << 24,
	}
}
