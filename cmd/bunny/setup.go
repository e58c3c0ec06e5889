package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bunny-catch/internal/config"
	"github.com/vovakirdan/bunny-catch/internal/storage"
)

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// newLogger builds the structured logger. With an empty path it writes to w.
// The returned closer releases the log file, if any.
func newLogger(path string, w io.Writer) (*log.Logger, io.Closer, error) {
	var closer io.Closer = io.NopCloser(nil)

	if path != "" {
		resolved, err := expandHome(path)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(resolved, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "bunny",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// loadConfig reads the game constants honouring --config.
func loadConfig(logger *log.Logger) (config.CatchConfig, error) {
	cfg, err := config.LoadCatch(flagConfig)
	if err != nil {
		return config.CatchConfig{}, err
	}
	logger.Debug("config loaded",
		"field", fmt.Sprintf("%gx%g", cfg.Field.Width, cfg.Field.Height),
		"spawn_interval", cfg.SpawnInterval(),
		"fall_speed", cfg.BaseFallSpeed(),
	)
	return cfg, nil
}

// openStore opens the scores database. Failure is logged and play continues
// without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// resolveSeed returns the --seed value, or a time-based seed when unset.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
