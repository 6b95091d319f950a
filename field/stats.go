package field

// Stats summarizes the store contents
type Stats struct {
	Stars         int
	ShootingStars int
	Types         map[Category]int

	// Counts of stars eligible for each effect
	Twinkle int
	Glow    int
	Pulse   int
}

// Performance reports the engine's health
type Performance struct {
	FPS           float64
	Stars         int
	ShootingStars int
	Running       bool
	State         State
}

// Stats counts stars by category and effect eligibility
func (e *Engine) Stats() Stats {
	st := Stats{
		Stars:         len(e.store.Stars),
		ShootingStars: len(e.store.ShootingStars),
		Types:         make(map[Category]int, len(Categories)),
	}
	for _, s := range e.store.Stars {
		if s == nil {
			continue
		}
		st.Types[s.Category]++
		if s.Twinkle {
			st.Twinkle++
		}
		if s.Glow {
			st.Glow++
		}
		if s.Pulse {
			st.Pulse++
		}
	}
	return st
}

// Performance returns the current frame rate estimate and loop status
func (e *Engine) Performance() Performance {
	return Performance{
		FPS:           e.monitor.Current(e.now),
		Stars:         len(e.store.Stars),
		ShootingStars: len(e.store.ShootingStars),
		Running:       e.ticker.Running(),
		State:         e.State(),
	}
}
