package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bunny-catch/internal/config"
	"github.com/vovakirdan/bunny-catch/internal/core"
	"github.com/vovakirdan/bunny-catch/internal/games/catch"
	"github.com/vovakirdan/bunny-catch/internal/platform/tui"
	"github.com/vovakirdan/bunny-catch/internal/storage"
)

var (
	flagSimTicks  int
	flagSimLevel  string
	flagSimRuns   int
	flagSimSave   bool
	flagSimRender bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session driven by the autopilot",
	Long: `Run the simulation without a terminal UI. The autopilot chases the lowest
carrot and sidesteps bombs. Each tick advances one nominal frame, so the same
seed always produces the same result.

Logs go to stderr unless --log-file is given explicitly.

Examples:
  bunny sim
  bunny sim --level hard --runs 10 --seed 7
  bunny sim --ticks 600 --render
  bunny sim --save --debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 60*60*10, "Maximum number of ticks to simulate")
	simCmd.Flags().StringVar(&flagSimLevel, "level", "easy", "Level to play: easy, hard")
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs to play before stopping")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store finished runs in the scores database")
	simCmd.Flags().BoolVar(&flagSimRender, "render", false, "Print the final frame as text")
}

// simResult summarises one finished or interrupted run.
type simResult struct {
	Level  catch.Level
	Score  int
	Reason catch.GameOverReason
	Ticks  uint64
	Snap   catch.Snapshot
}

func runSim(cmd *cobra.Command, _ []string) {
	logPath := ""
	if cmd.Flags().Changed("log-file") {
		logPath = flagLogFile
	}
	logger, logCloser, err := newLogger(logPath, os.Stderr)
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

	level, err := catch.ParseLevel(flagSimLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var store *storage.Store
	if flagSimSave {
		store = openStore(logger)
		if store != nil {
			defer store.Close()
		}
	}

	seed := resolveSeed()
	logger.Info("simulation started", "seed", seed, "level", level, "ticks", flagSimTicks, "runs", flagSimRuns)

	results := simulate(catchCfg, seed, level, flagSimTicks, flagSimRuns, logger)

	for i, r := range results {
		fmt.Printf("run %d: level=%s score=%d ticks=%d ended=%s\n", i+1, r.Level, r.Score, r.Ticks, r.Reason)
		if store != nil && r.Reason != catch.ReasonNone {
			run := storage.Run{Level: r.Level.String(), Score: r.Score, Reason: r.Reason.String(), Duration: r.Snap.RunTime}
			if _, err := store.SaveRun(run); err != nil {
				logger.Warn("could not save score", "error", err)
			}
		}
	}

	if len(results) == 0 {
		return
	}
	last := results[len(results)-1].Snap
	fmt.Printf("seed=%d high=%d hash=%016x\n", seed, last.HighScore, last.Hash())

	if flagSimRender {
		screen := core.NewScreen(80, 23)
		tui.DrawScene(screen, last)
		fmt.Println(screen.String())
	}
}

// simulate plays up to runs runs within maxTicks ticks and returns one result
// per run. A run still going when the ticks run out is reported with ReasonNone;
// a run restarted on the last tick has not played and is not reported.
func simulate(cfg config.CatchConfig, seed int64, level catch.Level, maxTicks, runs int, logger *log.Logger) []simResult {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	game := catch.New(cfg, seed)
	dt := cfg.FrameDuration()

	var results []simResult
	game.HandleInput(selectAction(level))

	for range maxTicks {
		game.HandleInput(catch.Autopilot(game.Snapshot()))
		res := game.Tick(dt)
		for _, e := range res.Events {
			logger.Debug("event", "type", e.Type, "kind", e.Kind, "x", int(e.X), "score", res.Score)
		}

		if res.Mode != catch.ModeGameOver {
			continue
		}

		snap := game.Snapshot()
		results = append(results, simResult{Level: level, Score: snap.Score, Reason: snap.Reason, Ticks: snap.Tick, Snap: snap})
		logger.Info("run over", "score", snap.Score, "reason", snap.Reason, "ticks", snap.Tick)

		if len(results) >= runs {
			return results
		}
		game.HandleInput(core.ActionAcknowledge)
		game.HandleInput(selectAction(level))
	}

	snap := game.Snapshot()
	if snap.Mode != catch.ModePlaying || snap.Tick == 0 {
		return results
	}
	results = append(results, simResult{Level: level, Score: snap.Score, Ticks: snap.Tick, Snap: snap})
	logger.Info("tick budget exhausted", "score", snap.Score, "ticks", snap.Tick)
	return results
}
