// runner is a terminal side-scroller: roll a ball across procedurally
// generated platforms and jump the gaps.
//
// Usage:
//
//	runner list              - List available games
//	runner play              - Play in the terminal
//	runner simulate          - Run a headless simulation
//	runner runs              - Browse the run journal
//	runner serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Host frame rate (default: 60)
//	--seed <value>       - RNG seed for reproducible layouts
//	--db <path>          - Journal path (default: ~/.runner/journal.db)
//	--log-file <path>    - Log file for interactive play (default: ~/.runner/runner.log)
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-runner/internal/games/ballrun"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Ball Runner - a rolling-ball platformer in your terminal",
	Long: `Ball Runner is a terminal side-scroller. The ball rolls on its own;
you only jump. Miss a platform and the run is over.

Available commands:
  list      - Show all available games
  play      - Play in the terminal
  simulate  - Run a headless, deterministic simulation
  runs      - Browse recorded runs
  serve     - Start SSH server for remote play

Examples:
  runner play
  runner play --difficulty hard
  runner simulate --seed 42 --autopilot
  runner runs --plain
  runner serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/journal.db", "Path to run journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.runner/runner.log", "Log file for interactive play")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, nil
}

// newFileLogger logs to --log-file so the alternate screen stays clean.
// The returned close func is never nil.
func newFileLogger() (*log.Logger, func(), error) {
	path, err := expandHome(flagLogFile)
	if err != nil {
		return nil, func() {}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, func() {}, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot open log file: %w", err)
	}

	logger, err := newLogger(f, "runner")
	if err != nil {
		f.Close()
		return nil, func() {}, err
	}
	return logger, func() { f.Close() }, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
