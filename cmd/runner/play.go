package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/ballrun"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagGame       string
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the runner in the terminal.

Controls:
  Space/Up/W  - Jump (tap again quickly for a double jump); starts a run
  P           - Pause
  R           - Restart (after game over)
  Tab         - Run journal (when not running)
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower start, gentle speed ramp
  normal - Config values as loaded
  hard   - Faster start, steep speed ramp
  fixed  - No ramp, speed stays at the initial value

Examples:
  runner play
  runner play --difficulty easy
  runner play --seed 42 --difficulty fixed
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags that select and configure the game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagGame, "game", ballrun.GameID, "Game ID")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func gameOptions() registry.Options {
	return registry.Options{ConfigPath: flagConfig, Difficulty: flagDifficulty}
}

func runPlay(cmd *cobra.Command, args []string) {
	if !registry.Exists(flagGame) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", flagGame)
		fmt.Fprintln(os.Stderr, "Run 'runner list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog, err := newFileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(flagGame, gameOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The journal is optional; play continues without it.
		logger.Warn("could not open run journal", "path", flagDBPath, "error", err)
		store = nil
	}

	logger.Info("play", "game", flagGame, "difficulty", flagDifficulty, "seed", flagSeed)
	runErr := tui.Run(game, store, logger, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("play failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
