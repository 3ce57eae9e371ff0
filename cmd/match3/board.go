package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
)

var (
	flagBoardFrom  string
	flagBoardPlain bool
)

var boardCmd = &cobra.Command{
	Use:   "board [board]",
	Short: "Print a generated board or analyze one",
	Long: `Print a settled board for the given seed, or analyze a board read
from a file.

Boards use one letter per cell and '.' for an empty cell:
  C candy  K cake  S star  L lollipop  B bonbon  I ice cream  P pizza  D donut

Examples:
  match3 board --seed 42
  match3 board match3_mini --plain
  match3 board --from ./board.txt
  echo "CCK
SPC" | match3 board --from -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBoard,
}

func init() {
	boardCmd.Flags().StringVar(&flagBoardFrom, "from", "", "Analyze a board from a file ('-' for stdin)")
	boardCmd.Flags().BoolVar(&flagBoardPlain, "plain", false, "Print without colors")
}

func runBoard(_ *cobra.Command, args []string) error {
	var grid *core.Grid
	if flagBoardFrom != "" {
		g, err := readBoard(flagBoardFrom)
		if err != nil {
			return err
		}
		grid = g
	} else {
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
		r := core.NewBoard(mcfg.Board.Width, mcfg.Board.Height,
			core.NewSeededTokens(uint64(seed), mcfg.Board.Kinds),
			core.WithMaxCycles(mcfg.Rules.MaxCycles))
		if _, err := r.Settle(); err != nil {
			logger.Warn("initial board did not settle", "error", err)
		}
		grid = r.Board()
		fmt.Printf("%s, seed %d, %d kinds\n\n", v.Title, seed, mcfg.Board.Kinds)
	}

	fmt.Print(formatBoard(grid, !flagBoardPlain))
	fmt.Println()

	matches := core.Detect(grid)
	if !matches.IsEmpty() {
		fmt.Printf("Runs on the board (%d cells):\n", len(matches.Coords()))
		for _, m := range matches.All() {
			fmt.Printf("  %-10s %-9s %v\n", m.Axis, m.Token, m.Cells)
		}
		fmt.Println()
	}

	swaps := core.LegalSwaps(grid)
	if len(swaps) == 0 {
		fmt.Println("No legal swaps.")
		return nil
	}
	fmt.Printf("%d legal swaps, for example %v <-> %v\n", len(swaps), swaps[0].A, swaps[0].B)
	return nil
}

func readBoard(path string) (*core.Grid, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read board: %w", err)
	}
	return core.ParseASCII(string(data))
}

// formatBoard renders a board one row per line, optionally colored.
func formatBoard(g *core.Grid, color bool) string {
	if !color {
		return core.RenderASCII(g)
	}
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			tok, ok := g.Get(core.C(x, y))
			if !ok {
				b.WriteRune(core.EmptyGlyph)
				continue
			}
			b.WriteString(tui.Paint(string(tok.Glyph()), match3.TokenColor(tok)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
