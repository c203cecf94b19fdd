package game

import (
	"github.com/LeJamon/goMFS/internal/core/state"
	"github.com/LeJamon/goMFS/internal/snapshot"
)

// State returns a deep copy of the game state.
func (g *Game) State() *state.State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Clone()
}

// Restore replaces the game state with a copy of s.
func (g *Game) Restore(s *state.State) {
	c := s.Clone()

	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = c
}

// Snapshot encodes the state between ticks and stamps the save time.
func (g *Game) Snapshot(f snapshot.Format) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	g.state.LastSaveTime = now
	return snapshot.Encode(g.state, now, f)
}

// Load replaces the state with a decoded save.
func (g *Game) Load(data []byte, f snapshot.Format) error {
	s, err := snapshot.Decode(data, f)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = s
	return nil
}

// Export renders the state as a portable string.
func (g *Game) Export() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return snapshot.Export(g.state, g.now())
}

// Import replaces the state with one produced by Export. A malformed string
// leaves the game untouched and returns false.
func (g *Game) Import(text string) bool {
	s, err := snapshot.Import(text)
	if err != nil {
		g.logger.Warn("import rejected", "err", err)
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = s
	g.logger.Info("save imported", "tier", s.CurrentTier, "multiverses", s.ParallelMultiverses)
	return true
}
