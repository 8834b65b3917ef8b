// Package config provides YAML-based tuning and difficulty presets for the
// game. All gameplay constants live here so they are configuration, not
// architecture.
package config

// Config contains all tuning for Endless Dodge. Positions and speeds are in
// world units (the simulation runs in a continuous 800x600 space; the
// terminal renderer scales it down to cells).
type Config struct {
	World     World     `yaml:"world"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
	Scoring   Scoring   `yaml:"scoring"`
}

// World defines the simulation coordinate space.
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Player defines the paddle's shape and movement.
type Player struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // world units per second
	BottomOffset float64 `yaml:"bottom_offset"` // gap between paddle and world bottom
}

// Obstacles defines spawn pacing and the difficulty ramp.
type Obstacles struct {
	MaxCount       int     `yaml:"max_count"` // fixed pool capacity
	MinWidth       float64 `yaml:"min_width"`
	MaxWidth       float64 `yaml:"max_width"`
	Height         float64 `yaml:"height"`
	BaseSpeed      float64 `yaml:"base_speed"`      // world units per second at t=0
	SpeedIncrement float64 `yaml:"speed_increment"` // fraction of base speed added per elapsed second
	BaseIntervalMs float64 `yaml:"base_interval_ms"`
	MinIntervalMs  float64 `yaml:"min_interval_ms"`
	IntervalDecay  float64 `yaml:"interval_decay"` // interval multiplier after each spawn
}

// Scoring defines how points are awarded.
type Scoring struct {
	PointsPerSecond float64 `yaml:"points_per_second"`
	DodgeBonus      int     `yaml:"dodge_bonus"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
