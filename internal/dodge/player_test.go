package dodge

import (
	"testing"

	"github.com/vovakirdan/endless-dodge/internal/config"
)

func TestNewPlayerCenteredAtBottom(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)

	if p.X != (cfg.World.Width-cfg.Player.Width)/2 {
		t.Errorf("player X = %v, expected centered", p.X)
	}
	wantY := cfg.World.Height - cfg.Player.Height - cfg.Player.BottomOffset
	if p.Y != wantY {
		t.Errorf("player Y = %v, expected %v", p.Y, wantY)
	}
}

func TestPlayerMovesByHeldDirection(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)
	startX := p.X

	p.Update(0.1, false, true, cfg.World.Width)
	if p.X != startX+p.Speed*0.1 {
		t.Errorf("right held: X = %v, expected %v", p.X, startX+p.Speed*0.1)
	}

	p.Update(0.1, true, false, cfg.World.Width)
	if p.X != startX {
		t.Errorf("left held: X = %v, expected back at %v", p.X, startX)
	}
}

func TestPlayerBothHeldCancels(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)
	startX := p.X

	p.Update(1.0, true, true, cfg.World.Width)

	if p.X != startX {
		t.Errorf("both held should cancel to zero movement, X moved from %v to %v", startX, p.X)
	}
}

func TestPlayerClampedAtLeftEdge(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)
	p.X = 0

	// One full second at speed 500 pushing left stays clamped at zero.
	p.Update(1.0, true, false, cfg.World.Width)

	if p.X != 0 {
		t.Errorf("X = %v, expected clamped at 0", p.X)
	}
}

func TestPlayerClampedAtRightEdge(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)

	for i := 0; i < 100; i++ {
		p.Update(0.1, false, true, cfg.World.Width)

		if p.X < 0 || p.X > cfg.World.Width-p.W {
			t.Fatalf("X = %v escaped [0, %v]", p.X, cfg.World.Width-p.W)
		}
	}

	if p.X != cfg.World.Width-p.W {
		t.Errorf("X = %v, expected pinned at right edge %v", p.X, cfg.World.Width-p.W)
	}
}
