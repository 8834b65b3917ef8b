package config

// ApplyPreset adjusts spawn pacing and the difficulty ramp for a named
// preset. The scoring constants are left alone so scores stay comparable
// across presets. Unknown presets leave the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.BaseIntervalMs = 900
		cfg.Obstacles.MinIntervalMs = 220
		cfg.Obstacles.IntervalDecay = 0.992
		cfg.Obstacles.SpeedIncrement = 0.02
	case DifficultyNormal:
		// Defaults are the normal preset.
	case DifficultyHard:
		cfg.Obstacles.BaseIntervalMs = 500
		cfg.Obstacles.MinIntervalMs = 110
		cfg.Obstacles.IntervalDecay = 0.975
		cfg.Obstacles.SpeedIncrement = 0.045
	case DifficultyFixed:
		// No ramp: interval and obstacle speed stay at their base values.
		cfg.Obstacles.IntervalDecay = 1.0
		cfg.Obstacles.SpeedIncrement = 0
	}
}

// ParsePreset maps a CLI string to a preset. Empty and unknown values return
// ok=false and the caller keeps the config's defaults.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}
