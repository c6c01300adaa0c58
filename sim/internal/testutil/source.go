package testutil

// ScriptedSource replays a fixed sequence of uniform samples.
// After the sequence is exhausted it starts again from the beginning;
// Calls reports how many samples were drawn in total.
type ScriptedSource struct {
	values []float64
	next   int
	calls  int
}

// NewScriptedSource returns a source that yields values in order.
func NewScriptedSource(values ...float64) *ScriptedSource {
	return &ScriptedSource{values: values}
}

// Float64 returns the next scripted sample.
func (s *ScriptedSource) Float64() float64 {
	s.calls++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}

// Calls returns the number of samples drawn so far.
func (s *ScriptedSource) Calls() int {
	return s.calls
}

// ConstantSource always returns the same sample.
type ConstantSource float64

// Float64 returns the constant.
func (c ConstantSource) Float64() float64 {
	return float64(c)
}
