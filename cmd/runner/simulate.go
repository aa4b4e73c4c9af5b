package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/ballrun"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagSeconds   float64
	flagAutopilot bool
	flagJSON      bool
	flagRecord    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless simulation",
	Long: `Run one game without a terminal using virtual time. The same seed and
flags always produce the same run.

Without --autopilot no jump is ever pressed, so the ball falls into the first
gap. With --autopilot a simple pilot jumps near platform edges and spends the
double jump when the arc would fall short.

Examples:
  runner simulate --seed 7
  runner simulate --seed 7 --autopilot --seconds 120
  runner simulate --autopilot --json
  runner simulate --autopilot --record`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	addGameFlags(simulateCmd)
	simulateCmd.Flags().Float64Var(&flagSeconds, "seconds", 60, "Maximum simulated time in seconds")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the autopilot press jump")
	simulateCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the result as JSON")
	simulateCmd.Flags().BoolVar(&flagRecord, "record", false, "Write the run to the journal")
}

// simulationReport is the JSON shape of a simulation result.
type simulationReport struct {
	Seed        int64            `json:"seed"`
	Died        bool             `json:"died"`
	Ticks       uint64           `json:"ticks"`
	Distance    float64          `json:"distance"`
	Score       int              `json:"score"`
	Collected   int              `json:"collected"`
	Jumps       int              `json:"jumps"`
	DoubleJumps int              `json:"double_jumps"`
	FinalSpeed  float64          `json:"final_speed"`
	Events      []simulatedEvent `json:"events"`
}

type simulatedEvent struct {
	Tick uint64 `json:"tick"`
	Kind string `json:"kind"`
	ID   int    `json:"id,omitempty"`
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger, err := newLogger(os.Stderr, "runner")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	created, err := registry.Create(flagGame, gameOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	game, ok := created.(*ballrun.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: game %q does not support simulation\n", flagGame)
		os.Exit(1)
	}

	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	game.Reset(rc)

	tickRate := game.Config().Clock.TickRate
	steps := int(flagSeconds * float64(tickRate))

	var pilot *ballrun.Autopilot
	if flagAutopilot {
		pilot = ballrun.NewAutopilot()
	}

	start := time.Now()
	res := ballrun.Simulate(game, steps, pilot)
	logger.Debug("simulation finished", "steps", res.Summary.Ticks, "elapsed", time.Since(start))

	if flagRecord {
		recordSimulation(res)
	}

	if flagJSON {
		printJSON(res)
		return
	}
	printSummary(res, tickRate)
}

func recordSimulation(res ballrun.SimResult) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveRun(flagGame, res.Summary, res.Events); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not journal run: %v\n", err)
	}
}

func printJSON(res ballrun.SimResult) {
	report := simulationReport{
		Seed:        res.Summary.Seed,
		Died:        res.Died,
		Ticks:       res.Summary.Ticks,
		Distance:    res.Summary.Distance,
		Score:       res.Summary.Score,
		Collected:   res.Summary.Collected,
		Jumps:       res.Summary.Jumps,
		DoubleJumps: res.Summary.DoubleJumps,
		FinalSpeed:  res.Final.Speed,
		Events:      make([]simulatedEvent, len(res.Events)),
	}
	for i, e := range res.Events {
		report.Events[i] = simulatedEvent{Tick: e.Tick, Kind: string(e.Kind), ID: e.ID}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		os.Exit(1)
	}
}

func printSummary(res ballrun.SimResult, tickRate int) {
	s := res.Summary
	outcome := "survived"
	if res.Died {
		outcome = "died"
	}
	seconds := float64(s.Ticks) / float64(max(tickRate, 1))

	fmt.Printf("Seed %d: %s after %d steps (%.1fs)\n", s.Seed, outcome, s.Ticks, seconds)
	fmt.Printf("  Score:     %d\n", s.Score)
	fmt.Printf("  Distance:  %.0f\n", s.Distance)
	fmt.Printf("  Speed:     %.2f\n", res.Final.Speed)
	fmt.Printf("  Collected: %d\n", s.Collected)
	fmt.Printf("  Jumps:     %d (+%d double)\n", s.Jumps, s.DoubleJumps)
}
