package sim

// ScoreStore persists the high score across sessions. The simulation treats
// the store as best-effort: a Load failure means starting from zero, a Save
// failure is ignored and retried on the next new high score.
type ScoreStore interface {
	// Load returns the persisted high score, or 0 if none exists.
	Load() (int, error)
	// Save persists a new high score.
	Save(score int) error
}
