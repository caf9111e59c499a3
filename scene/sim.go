package scene

// SimContext carries the simulation time scale. The game owns one and
// threads it into every world update; 0 freezes the simulation.
type SimContext struct {
	TimeScale float64
}

func NewSimContext() *SimContext {
	return &SimContext{TimeScale: 1}
}

// Scale converts a real frame delta into simulation time.
func (s *SimContext) Scale(dt float64) float64 {
	if s == nil {
		return dt
	}
	return dt * s.TimeScale
}

// Frozen reports whether the simulation is stopped.
func (s *SimContext) Frozen() bool {
	return s != nil && s.TimeScale == 0
}
