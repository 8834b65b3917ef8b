package dodge

import (
	"math/rand"

	"github.com/vovakirdan/endless-dodge/internal/config"
	"github.com/vovakirdan/endless-dodge/internal/core"
)

// Obstacle is one falling block. Once spawned it is never resized or
// repositioned except by falling; its speed is fixed for its lifetime.
type Obstacle struct {
	X, Y   float64
	W, H   float64
	Speed  float64 // world units per second, assigned at spawn
	Active bool
}

// Rect returns the obstacle's collision rectangle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Pool is a fixed-capacity arena of obstacle slots. Spawning claims the
// first inactive slot by index, which keeps runs deterministic for a given
// seed and makes saturation behavior trivial to test.
type Pool struct {
	slots  []Obstacle
	rng    *rand.Rand
	cfg    config.Obstacles
	worldW float64
	worldH float64
}

// NewPool creates a pool with cfg.MaxCount slots, all inactive.
func NewPool(seed int64, cfg config.Config) *Pool {
	return &Pool{
		slots:  make([]Obstacle, cfg.Obstacles.MaxCount),
		rng:    rand.New(rand.NewSource(seed)),
		cfg:    cfg.Obstacles,
		worldW: cfg.World.Width,
		worldH: cfg.World.Height,
	}
}

// Reset deactivates every slot and reseeds the RNG for a new run.
func (p *Pool) Reset(seed int64) {
	for i := range p.slots {
		p.slots[i].Active = false
	}
	p.rng = rand.New(rand.NewSource(seed))
}

// Spawn activates the first free slot with a randomized width and position.
// The obstacle starts just above the visible area and is always fully
// on-screen horizontally. Speed scales linearly with elapsed seconds:
// base + base*increment*elapsed, applied once at spawn time.
// Returns false when every slot is active; a saturated pool is back-pressure,
// not an error, and nothing is mutated.
func (p *Pool) Spawn(elapsed float64) bool {
	idx := -1
	for i := range p.slots {
		if !p.slots[i].Active {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}

	o := &p.slots[idx]
	o.W = core.RandRange(p.rng, p.cfg.MinWidth, p.cfg.MaxWidth)
	o.H = p.cfg.Height
	o.X = core.RandRange(p.rng, 0, p.worldW-o.W)
	o.Y = -o.H
	o.Speed = p.cfg.BaseSpeed + p.cfg.BaseSpeed*p.cfg.SpeedIncrement*elapsed
	o.Active = true
	return true
}

// Advance moves every active obstacle down by speed*dt and deactivates those
// that fall past the bottom of the world. Returns the number deactivated this
// tick so the caller can award dodge bonuses exactly once per obstacle.
func (p *Pool) Advance(dt float64) int {
	dodged := 0
	for i := range p.slots {
		o := &p.slots[i]
		if !o.Active {
			continue
		}

		o.Y += o.Speed * dt

		if o.Y > p.worldH {
			o.Active = false
			dodged++
		}
	}
	return dodged
}

// Collides reports whether any active obstacle overlaps the given rectangle.
// Returns on the first overlap found.
func (p *Pool) Collides(r core.Rect) bool {
	for i := range p.slots {
		o := &p.slots[i]
		if !o.Active {
			continue
		}
		if r.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}

// ActiveCount returns the number of active slots.
func (p *Pool) ActiveCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active {
			n++
		}
	}
	return n
}

// ActiveRects returns the rectangles of all active obstacles, in slot order.
func (p *Pool) ActiveRects() []core.Rect {
	rects := make([]core.Rect, 0, len(p.slots))
	for i := range p.slots {
		if p.slots[i].Active {
			rects = append(rects, p.slots[i].Rect())
		}
	}
	return rects
}
