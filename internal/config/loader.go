package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const catchFile = "catch.yaml"

// LoadCatch loads the catcher constants.
// Search order: customPath -> ~/.bunny/configs/catch.yaml -> ./configs/catch.yaml -> embedded default.
// Documents only need to set the values they override; the rest keep their defaults.
func LoadCatch(customPath string) (CatchConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CatchConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseCatch(data)
		if err != nil {
			return CatchConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(catchFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseCatch(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", catchFile)); err == nil {
		if cfg, err := parseCatch(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseCatch(defaultCatchYAML)
	if err != nil {
		return DefaultCatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseCatch decodes a document on top of the defaults and validates the result.
func parseCatch(data []byte) (CatchConfig, error) {
	cfg := DefaultCatchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CatchConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return CatchConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bunny", "configs", filename)
}
