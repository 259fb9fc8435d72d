package testutil

// ScriptedSource replays fixed draws so tests can hold the model's randomness
// constant. Each sequence cycles once exhausted; an empty sequence yields 0.
type ScriptedSource struct {
	ints   []int
	floats []float64
	ii, fi int
}

func NewScriptedSource(ints []int, floats []float64) *ScriptedSource {
	return &ScriptedSource{ints: ints, floats: floats}
}

// IntN returns the next scripted int, reduced modulo n.
func (s *ScriptedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	return v % n
}

func (s *ScriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}
