package dodge

import (
	"github.com/vovakirdan/endless-dodge/internal/config"
	"github.com/vovakirdan/endless-dodge/internal/core"
)

// MaxTickSeconds caps the per-tick delta. A stalled frame (debugger pause,
// terminal freeze) otherwise produces one huge step that lets obstacles
// tunnel through the paddle.
const MaxTickSeconds = 0.1

// HighScoreStore is the persistence contract consumed by the simulation.
// Load returns 0 if no score was ever stored or the record is unreadable.
// Save failures are the adapter's problem (logged, not fatal); the in-memory
// high score is promoted regardless.
type HighScoreStore interface {
	Load() int
	Save(score int)
}

// Game owns the whole simulation: the state machine, the paddle, the
// obstacle pool, scoring, and high-score promotion. It is single-threaded by
// contract: the platform loop calls Tick once per frame and reads Snapshot.
type Game struct {
	cfg    config.Config
	scores HighScoreStore // may be nil; high score then lives in memory only

	state  State
	player Player
	pool   *Pool

	score     int
	highScore int
	dodged    int     // obstacles that fell past without hitting, this run
	elapsed   float64 // seconds since run start, accrues only while playing

	spawnIntervalMs float64
	lastSpawnMs     float64 // simulated-ms timestamp of the last successful spawn

	seed int64
	runs int64 // completed run resets, used to vary the per-run seed
}

// New creates a game in the menu state and loads the stored high score.
func New(cfg config.Config, seed int64, scores HighScoreStore) *Game {
	g := &Game{
		cfg:    cfg,
		scores: scores,
		state:  StateMenu,
		pool:   NewPool(seed, cfg),
		seed:   seed,
	}
	if scores != nil {
		g.highScore = scores.Load()
	}
	g.resetRun()
	return g
}

// resetRun restores all per-run state for a fresh run. The high score and
// the FSM state are deliberately not touched here.
func (g *Game) resetRun() {
	g.score = 0
	g.dodged = 0
	g.elapsed = 0
	g.spawnIntervalMs = g.cfg.Obstacles.BaseIntervalMs
	g.lastSpawnMs = 0

	g.player = NewPlayer(g.cfg)
	g.pool.Reset(g.seed + g.runs)
	g.runs++
}

// Tick advances the simulation by dt seconds of wall time, clamped to
// MaxTickSeconds. FSM events from the intents are applied first; the
// gameplay step below only runs while in the playing state.
func (g *Game) Tick(dt float64, in core.Intents) {
	if dt < 0 {
		dt = 0
	}
	if dt > MaxTickSeconds {
		dt = MaxTickSeconds
	}

	g.applyIntents(in)

	if g.state != StatePlaying {
		return
	}

	g.elapsed += dt

	// Continuous time-based scoring, independent of obstacles dodged.
	g.score += int(dt * g.cfg.Scoring.PointsPerSecond)

	g.player.Update(dt, in.MoveLeftHeld, in.MoveRightHeld, g.cfg.World.Width)

	// Bottom-out is the dodge reward: a bonus per obstacle that exits.
	dodged := g.pool.Advance(dt)
	g.dodged += dodged
	g.score += dodged * g.cfg.Scoring.DodgeBonus

	g.maybeSpawn()

	if g.pool.Collides(g.player.Rect()) {
		g.state, _ = g.state.Next(EventCollision)
		g.promoteHighScore()
	}
}

// applyIntents feeds edge-triggered events into the state machine. Illegal
// events in the current state are no-ops. Starting a run (from the menu or
// after game over) performs a full run reset.
func (g *Game) applyIntents(in core.Intents) {
	if in.ConfirmPressed {
		if next, ok := g.state.Next(EventConfirm); ok {
			g.resetRun()
			g.state = next
		}
	}
	if in.PausePressed {
		g.state, _ = g.state.Next(EventPause)
	}
}

// maybeSpawn spawns one obstacle when the simulated clock has moved past the
// current spawn interval. Only a successful spawn resets the timer and decays
// the interval; a saturated pool leaves both untouched so the spawn is
// retried next tick.
func (g *Game) maybeSpawn() {
	nowMs := g.elapsed * 1000
	if nowMs-g.lastSpawnMs < g.spawnIntervalMs {
		return
	}
	if !g.pool.Spawn(g.elapsed) {
		return
	}

	g.lastSpawnMs = nowMs

	g.spawnIntervalMs *= g.cfg.Obstacles.IntervalDecay
	if g.spawnIntervalMs < g.cfg.Obstacles.MinIntervalMs {
		g.spawnIntervalMs = g.cfg.Obstacles.MinIntervalMs
	}
}

// promoteHighScore updates the high score and persists it, once, at the
// moment of game over. The save is synchronous but best-effort: a failed
// write never rolls back the in-memory value or interrupts anything.
func (g *Game) promoteHighScore() {
	if g.score <= g.highScore {
		return
	}
	g.highScore = g.score
	if g.scores != nil {
		g.scores.Save(g.highScore)
	}
}

// Title returns the display name for the window title and HUD.
func (g *Game) Title() string {
	return "Endless Dodge"
}

// State returns the current FSM state.
func (g *Game) State() State {
	return g.state
}

// Score returns the current run's score.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best score seen, including the one loaded at startup.
func (g *Game) HighScore() int {
	return g.highScore
}

// Elapsed returns seconds of play time in the current run.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}
