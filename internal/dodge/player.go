package dodge

import (
	"github.com/vovakirdan/endless-dodge/internal/config"
	"github.com/vovakirdan/endless-dodge/internal/core"
)

// Player is the paddle near the bottom of the world. It only ever moves
// horizontally and is always clamped fully inside the world.
type Player struct {
	X, Y  float64
	W, H  float64
	Speed float64 // world units per second
}

// NewPlayer creates a paddle centered at the bottom of the world.
func NewPlayer(cfg config.Config) Player {
	return Player{
		X:     (cfg.World.Width - cfg.Player.Width) / 2,
		Y:     cfg.World.Height - cfg.Player.Height - cfg.Player.BottomOffset,
		W:     cfg.Player.Width,
		H:     cfg.Player.Height,
		Speed: cfg.Player.Speed,
	}
}

// Update moves the paddle by the held direction for dt seconds and clamps it
// into [0, worldW - W]. Holding both directions cancels to zero movement.
// Pure function of current state and the held flags; no internal timers.
func (p *Player) Update(dt float64, leftHeld, rightHeld bool, worldW float64) {
	dir := 0.0
	if leftHeld {
		dir -= 1
	}
	if rightHeld {
		dir += 1
	}

	p.X += dir * p.Speed * dt
	p.X = core.ClampF(p.X, 0, worldW-p.W)
}

// Rect returns the paddle's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}
