package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseCatch(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != DefaultCatchConfig() {
		t.Errorf("embedded defaults differ from DefaultCatchConfig():\n%+v\n%+v", cfg, DefaultCatchConfig())
	}
}

func TestLoadCatchSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	// Nothing on disk: embedded default
	cfg, err := LoadCatch("")
	if err != nil {
		t.Fatalf("LoadCatch() failed: %v", err)
	}
	if cfg.Spawn.IntervalMS != 1800 {
		t.Errorf("expected embedded interval 1800, got %d", cfg.Spawn.IntervalMS)
	}

	// Local configs directory overrides the embedded default
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", catchFile), []byte("spawn:\n  interval_ms: 900\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadCatch("")
	if cfg.Spawn.IntervalMS != 900 {
		t.Errorf("expected local interval 900, got %d", cfg.Spawn.IntervalMS)
	}
	if cfg.Spawn.MinDistance != 220 {
		t.Errorf("unset values should keep defaults, got min_distance %v", cfg.Spawn.MinDistance)
	}

	// User directory wins over local
	userDir := filepath.Join(home, ".bunny", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, catchFile), []byte("spawn:\n  interval_ms: 1200\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadCatch("")
	if cfg.Spawn.IntervalMS != 1200 {
		t.Errorf("expected user interval 1200, got %d", cfg.Spawn.IntervalMS)
	}

	// Explicit path wins over everything
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(custom, []byte("spawn:\n  max_on_screen: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadCatch(custom)
	if err != nil {
		t.Fatalf("LoadCatch(custom) failed: %v", err)
	}
	if cfg.Spawn.MaxOnScreen != 6 || cfg.Spawn.IntervalMS != 1800 {
		t.Errorf("custom config not applied on top of defaults: %+v", cfg.Spawn)
	}
}

func TestLoadCatchCustomErrors(t *testing.T) {
	if _, err := LoadCatch(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("objects:\n  hazard_chance: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadCatch(bad)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CatchConfig)
		valid  bool
	}{
		{"defaults", func(*CatchConfig) {}, true},
		{"zero width", func(c *CatchConfig) { c.Field.Width = 0 }, false},
		{"negative speed", func(c *CatchConfig) { c.Player.Speed = -1 }, false},
		{"paddle wider than field", func(c *CatchConfig) { c.Player.Width = 900 }, false},
		{"hazard chance above one", func(c *CatchConfig) { c.Objects.HazardChance = 1.5 }, false},
		{"hazard chance zero", func(c *CatchConfig) { c.Objects.HazardChance = 0 }, true},
		{"jitter of one", func(c *CatchConfig) { c.Hard.SpeedJitter = 1 }, false},
		{"no attempts", func(c *CatchConfig) { c.Spawn.MaxAttempts = 0 }, false},
		{"huge radius", func(c *CatchConfig) { c.Objects.Radius = 500 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCatchConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestDerivedMotion(t *testing.T) {
	cfg := DefaultCatchConfig()

	// (600 + 48) / (3.2 * 60)
	if got := cfg.BaseFallSpeed(); math.Abs(got-3.375) > 1e-9 {
		t.Errorf("BaseFallSpeed() = %v, expected 3.375", got)
	}
	// (800 / 2) / (3.2 * 60)
	if got := cfg.MaxDriftSpeed(); math.Abs(got-400.0/192.0) > 1e-9 {
		t.Errorf("MaxDriftSpeed() = %v, expected %v", got, 400.0/192.0)
	}
	lo, hi := cfg.FallSpeedRange()
	if math.Abs(lo-3.0375) > 1e-9 || math.Abs(hi-3.7125) > 1e-9 {
		t.Errorf("FallSpeedRange() = (%v, %v)", lo, hi)
	}
	if cfg.SpawnInterval() != 1800*time.Millisecond {
		t.Errorf("SpawnInterval() = %v", cfg.SpawnInterval())
	}
	if cfg.FrameDuration() != time.Second/60 {
		t.Errorf("FrameDuration() = %v", cfg.FrameDuration())
	}
}
