package config

import (
	_ "embed"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the built-in constants.
// Mirrors defaults/catch.yaml and is used when the embedded document is unreadable.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:        100,
			Height:       40,
			Speed:        10,
			BottomMargin: 20,
		},
		Objects: ObjectsConfig{
			Radius:                24,
			FallSeconds:           3.2,
			FrameRate:             60,
			HazardChance:          0.15,
			HazardSpeedMultiplier: 1.2,
		},
		Spawn: SpawnConfig{
			IntervalMS:  1800,
			MinDistance: 220,
			MaxOnScreen: 4,
			MaxAttempts: 10,
		},
		Hard: HardConfig{
			SpeedJitter:   0.1,
			DriftFraction: 0.5,
		},
	}
}

// DefaultYAML returns the embedded default document.
func DefaultYAML() []byte {
	return defaultCatchYAML
}
