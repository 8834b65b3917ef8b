package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultYAML []byte

// Default returns the built-in tuning, mirroring defaults/dodge.yaml.
// Used as the last-resort fallback if the embedded YAML fails to parse.
func Default() Config {
	return Config{
		World: World{
			Width:  800,
			Height: 600,
		},
		Player: Player{
			Width:        80,
			Height:       20,
			Speed:        500,
			BottomOffset: 40,
		},
		Obstacles: Obstacles{
			MaxCount:       64,
			MinWidth:       40,
			MaxWidth:       140,
			Height:         20,
			BaseSpeed:      200,
			SpeedIncrement: 0.03,
			BaseIntervalMs: 700,
			MinIntervalMs:  140,
			IntervalDecay:  0.985,
		},
		Scoring: Scoring{
			PointsPerSecond: 20,
			DodgeBonus:      10,
		},
	}
}
