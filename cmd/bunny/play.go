package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bunny-catch/internal/core"
	"github.com/vovakirdan/bunny-catch/internal/games/catch"
	"github.com/vovakirdan/bunny-catch/internal/platform/tui"
)

var (
	flagLevel string
	flagQuiet bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Bunny Catch in the terminal.

Controls:
  Left/A, Right/D  - Move the paddle
  1/E, 2/H         - Start on easy or hard (menu)
  P/Esc            - Pause and resume
  Enter/Space/R    - Back to the menu after game over
  Tab              - High scores (menu)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Levels:
  easy  - Objects fall straight at a constant speed
  hard  - Fall speed varies and objects drift, bouncing off the walls

Examples:
  bunny play
  bunny play --level hard
  bunny play --seed 42 --debug
  bunny play --config ./my-catch.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Skip the menu and start on this level: easy, hard")
	playCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Disable the terminal bell")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, logCloser, err := newLogger(flagLogFile, io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	catchCfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     resolveSeed(),
	}

	game := catch.New(catchCfg, cfg.Seed)
	if flagLevel != "" {
		level, levelErr := catch.ParseLevel(flagLevel)
		if levelErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", levelErr)
			os.Exit(1)
		}
		game.HandleInput(selectAction(level))
	}

	opts := tui.Options{Logger: logger}
	if !flagQuiet {
		opts.Bell = os.Stderr
	}

	var scores tui.ScoreReader
	store := openStore(logger)
	if store != nil {
		opts.Store = store
		scores = store
	}

	logger.Info("session started", "seed", cfg.Seed, "fps", cfg.TickRate, "level", flagLevel)

	runErr := play(game, cfg, opts, scores)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("terminal program failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	logger.Info("session ended", "high_score", game.HighScore())
}

// play alternates between the game and the scoreboard until the user quits.
func play(game *catch.Game, cfg core.RuntimeConfig, opts tui.Options, scores tui.ScoreReader) error {
	for {
		wantsScores, err := tui.Run(game, cfg, opts)
		if err != nil || !wantsScores {
			return err
		}

		goBack, err := tui.RunScoreboard(scores, cfg.ScreenW, cfg.ScreenH)
		if err != nil || !goBack {
			return err
		}
	}
}

// selectAction maps a level to the menu action that starts it.
func selectAction(level catch.Level) core.Action {
	if level == catch.LevelHard {
		return core.ActionSelectHard
	}
	return core.ActionSelectEasy
}
