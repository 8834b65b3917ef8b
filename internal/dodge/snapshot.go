package dodge

import "github.com/vovakirdan/endless-dodge/internal/core"

// Snapshot is the read-only view of the simulation handed to the
// presentation layer once per frame. Mutating it has no effect on the game.
type Snapshot struct {
	State     State
	Player    core.Rect
	Obstacles []core.Rect
	Score     int
	HighScore int
	Dodged    int
	Elapsed   float64
}

// Snapshot captures the current frame's state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:     g.state,
		Player:    g.player.Rect(),
		Obstacles: g.pool.ActiveRects(),
		Score:     g.score,
		HighScore: g.highScore,
		Dodged:    g.dodged,
		Elapsed:   g.elapsed,
	}
}
