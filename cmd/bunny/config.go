package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game constants",
	Long: `Print the game constants as YAML after applying the config search order:
--config, ~/.bunny/configs/catch.yaml, ./configs/catch.yaml, built-in defaults.

The output is a valid config file and can be edited and passed back with --config.

Examples:
  bunny config
  bunny config > ~/.bunny/configs/catch.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	logger, logCloser, err := newLogger("", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Flush to stdout
	enc.Close()

	lo, hi := cfg.FallSpeedRange()
	fmt.Printf("# derived: fall %.3f/frame (hard %.3f-%.3f), max drift %.3f/frame\n",
		cfg.BaseFallSpeed(), lo, hi, cfg.MaxDriftSpeed())
}
