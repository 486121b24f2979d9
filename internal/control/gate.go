package control

// ResumeGate waits, one tick at a time, for the players to press something
// and let go again before the next rally starts.
type ResumeGate struct {
	pressed bool
}

// Reset arms the gate for a new pause.
func (g *ResumeGate) Reset() {
	g.pressed = false
}

// Poll samples all sources for this tick and reports whether the gate opened.
func (g *ResumeGate) Poll(sources ...Source) bool {
	active := false
	for _, s := range sources {
		if s.Any() {
			active = true
		}
	}

	if !g.pressed {
		g.pressed = active
		return false
	}
	return !active
}
