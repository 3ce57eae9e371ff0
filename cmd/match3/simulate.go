package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	m3core "github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagSimMoves int
	flagSimSave  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [board]",
	Short: "Play hinted swaps without a terminal UI",
	Long: `Run a headless session that always plays the first legal swap.
Useful for checking configurations and reproducing seeds.

Each swap is logged at debug level; use --log-level debug to see them.

Examples:
  match3 simulate --seed 7
  match3 simulate match3_mini --moves 200 --difficulty easy
  match3 simulate --seed 7 --save --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimMoves, "moves", 100, "Number of swaps to play")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store the session in the database")
}

func runSimulate(_ *cobra.Command, args []string) error {
	v, err := resolveVariant(args)
	if err != nil {
		return err
	}
	mcfg, err := loadConfig(v)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	started := time.Now()
	game := match3.New(v)
	game.ResetWithConfig(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed}, mcfg)
	logger.Info("simulation started", "board", v.ID, "seed", seed, "kinds", mcfg.Board.Kinds, "moves", flagSimMoves)

	for i := 0; i < flagSimMoves; i++ {
		hint, ok := game.Hint()
		if !ok {
			logger.Info("no legal swap left", "after", i)
			break
		}
		rep, err := game.Play(hint.A, hint.B)
		switch {
		case errors.Is(err, m3core.ErrCascadeLimit):
			logger.Warn("cascade cap reached", "swap", i+1, "cycles", len(rep.Cycles))
		case err != nil:
			return fmt.Errorf("swap %d %v<->%v: %w", i+1, hint.A, hint.B, err)
		}
		logger.Debug("swap", "n", i+1, "a", hint.A, "b", hint.B,
			"cycles", len(rep.Cycles), "removed", rep.Removed())
	}

	sum := game.SessionSummary()
	fmt.Print(formatBoard(game.Board(), false))
	fmt.Println()
	fmt.Printf("board %s  seed %d\n", sum.Variant, sum.Seed)
	fmt.Printf("swaps %d  cleared %d  longest cascade x%d  reshuffles %d\n",
		sum.Swaps, sum.Cleared, sum.LongestCascade, sum.Reshuffles)

	if !flagSimSave {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.SaveSession(
		storage.SessionFromSummary(sum, started, time.Now()),
		storage.SwapRecordsFromLog(game.SwapLog()),
	)
	if err != nil {
		return err
	}
	fmt.Printf("saved session %s\n", id)
	return nil
}
