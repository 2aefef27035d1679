package storage

import (
	"github.com/charmbracelet/log"

	"flaptty/internal/sim"
)

// HighScores adapts the store to the simulation's score interface. The
// simulation treats persistence as best-effort; this adapter is where
// failures get logged before being waved through.
type HighScores struct {
	store  *Store
	logger *log.Logger
}

// NewHighScores wraps a store for use by the simulation. A nil logger
// falls back to the package default.
func NewHighScores(store *Store, logger *log.Logger) *HighScores {
	if logger == nil {
		logger = log.Default()
	}
	return &HighScores{store: store, logger: logger}
}

// Load returns the persisted high score.
func (h *HighScores) Load() (int, error) {
	score, err := h.store.HighScore()
	if err != nil {
		h.logger.Warn("could not load high score", "error", err)
		return 0, err
	}
	return score, nil
}

// Save persists a new high score.
func (h *HighScores) Save(score int) error {
	if err := h.store.SetHighScore(score); err != nil {
		h.logger.Warn("could not persist high score", "score", score, "error", err)
		return err
	}
	return nil
}

// Ensure HighScores implements sim.ScoreStore
var _ sim.ScoreStore = (*HighScores)(nil)
