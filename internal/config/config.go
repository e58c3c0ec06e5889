// Package config provides YAML-based loading of the catcher's numeric
// constants and the difficulty-dependent motion policy derived from them.
package config

import (
	"errors"
	"fmt"
)

// CatchConfig contains every tunable constant of the catcher simulation.
type CatchConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Player  PlayerConfig  `yaml:"player"`
	Objects ObjectsConfig `yaml:"objects"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Hard    HardConfig    `yaml:"hard"`
}

// FieldConfig defines the play area in field units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the paddle.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Units per frame
	BottomMargin float64 `yaml:"bottom_margin"` // Gap below the paddle
}

// ObjectsConfig defines falling objects.
type ObjectsConfig struct {
	Radius                float64 `yaml:"radius"`
	FallSeconds           float64 `yaml:"fall_seconds"`
	FrameRate             int     `yaml:"frame_rate"`
	HazardChance          float64 `yaml:"hazard_chance"`           // 0.0 - 1.0
	HazardSpeedMultiplier float64 `yaml:"hazard_speed_multiplier"` // Applied to vy
}

// SpawnConfig defines the spawn planner policy.
type SpawnConfig struct {
	IntervalMS  int     `yaml:"interval_ms"`
	MinDistance float64 `yaml:"min_distance"` // Minimum horizontal gap between centers
	MaxOnScreen int     `yaml:"max_on_screen"`
	MaxAttempts int     `yaml:"max_attempts"`
}

// HardConfig defines the extra motion randomness of the hard level.
type HardConfig struct {
	SpeedJitter   float64 `yaml:"speed_jitter"`
	DriftFraction float64 `yaml:"drift_fraction"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid value")

// Validate checks that all constants describe a playable field.
func (c CatchConfig) Validate() error {
	positives := []struct {
		name string
		v    float64
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.speed", c.Player.Speed},
		{"objects.radius", c.Objects.Radius},
		{"objects.fall_seconds", c.Objects.FallSeconds},
		{"objects.frame_rate", float64(c.Objects.FrameRate)},
		{"objects.hazard_speed_multiplier", c.Objects.HazardSpeedMultiplier},
		{"spawn.interval_ms", float64(c.Spawn.IntervalMS)},
		{"spawn.max_on_screen", float64(c.Spawn.MaxOnScreen)},
		{"spawn.max_attempts", float64(c.Spawn.MaxAttempts)},
	}
	for _, p := range positives {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}

	if c.Player.Width > c.Field.Width {
		return fmt.Errorf("%w: player.width %v exceeds field.width %v", ErrInvalidConfig, c.Player.Width, c.Field.Width)
	}
	if 2*c.Objects.Radius > c.Field.Width {
		return fmt.Errorf("%w: objects.radius %v too large for field", ErrInvalidConfig, c.Objects.Radius)
	}
	if c.Player.BottomMargin < 0 || c.Player.BottomMargin+c.Player.Height > c.Field.Height {
		return fmt.Errorf("%w: player.bottom_margin %v out of range", ErrInvalidConfig, c.Player.BottomMargin)
	}
	if c.Objects.HazardChance < 0 || c.Objects.HazardChance > 1 {
		return fmt.Errorf("%w: objects.hazard_chance must be within [0, 1], got %v", ErrInvalidConfig, c.Objects.HazardChance)
	}
	if c.Spawn.MinDistance < 0 {
		return fmt.Errorf("%w: spawn.min_distance must not be negative", ErrInvalidConfig)
	}
	if c.Hard.SpeedJitter < 0 || c.Hard.SpeedJitter >= 1 {
		return fmt.Errorf("%w: hard.speed_jitter must be within [0, 1), got %v", ErrInvalidConfig, c.Hard.SpeedJitter)
	}
	if c.Hard.DriftFraction < 0 {
		return fmt.Errorf("%w: hard.drift_fraction must not be negative", ErrInvalidConfig)
	}
	return nil
}
