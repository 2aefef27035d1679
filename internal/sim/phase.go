package sim

// Phase is the lifecycle state of a game session. Transitions only happen
// through PrimaryInput and through collisions detected during Update.
type Phase int

const (
	// PhaseSplash shows the title card; the world is frozen.
	PhaseSplash Phase = iota
	// PhaseReady waits for the starting flap; the world is frozen.
	PhaseReady
	// PhaseActive runs physics, scrolling, scoring, and collision checks.
	PhaseActive
	// PhaseEnded shows the final score; input begins the next round.
	PhaseEnded
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "splash"
	case PhaseReady:
		return "ready"
	case PhaseActive:
		return "active"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}
