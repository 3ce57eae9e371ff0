// match3 is a terminal match-3 game with a headless engine, session history
// and an ssh server.
//
// Usage:
//
//	match3 list                - List available boards
//	match3 play [board]        - Play a board (default: match3)
//	match3 menu                - Pick boards interactively
//	match3 serve               - Start SSH server for remote play
//	match3 board [board]       - Print a generated board or analyze one
//	match3 simulate [board]    - Play hinted swaps headlessly
//	match3 history [board]     - Show stored sessions
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.match3/sessions.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

// logger is configured from --log-level before any command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "match3",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - swap tokens in your terminal",
	Long: `Match-3 is a terminal puzzle: swap two neighbouring tokens to line up
three or more of a kind. Cleared tokens fall and new ones drop in, which
can set off cascades.

Available commands:
  list      - Show all boards
  play      - Play a board directly
  menu      - Interactive board picker
  serve     - Start SSH server for remote play
  board     - Print or analyze a board
  simulate  - Play hinted swaps without a terminal UI
  history   - View stored sessions

Examples:
  match3 play
  match3 play match3_mini --difficulty easy
  match3 simulate --moves 50 --seed 7
  match3 serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.match3/sessions.db", "Path to sessions database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(historyCmd)
}

// setup applies the global flags.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	match3.SetConfigPath(flagConfig)
	match3.SetDifficulty(preset)
	return nil
}

// resolveVariant returns the variant named by args, or the classic board.
func resolveVariant(args []string) (config.Variant, error) {
	if len(args) == 0 {
		return config.VariantClassic, nil
	}
	v, ok := config.LookupVariant(args[0])
	if !ok {
		return config.Variant{}, fmt.Errorf("unknown board %q (run 'match3 list')", args[0])
	}
	return v, nil
}

// loadConfig loads the board configuration for a variant from the global
// flags.
func loadConfig(v config.Variant) (config.Match3Config, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.Match3Config{}, err
	}
	return config.Load(flagConfig, v.ID, preset)
}
