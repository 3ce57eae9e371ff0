package match3

import (
	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

// record appends a swap attempt to the session journal.
func (g *Game) record(a, b core.Coord, outcome platformcore.SwapOutcome, rep core.Report) {
	g.journal = append(g.journal, platformcore.SwapLogEntry{
		Seq:     len(g.journal) + 1,
		AX:      a.X,
		AY:      a.Y,
		BX:      b.X,
		BY:      b.Y,
		Outcome: outcome,
		Cycles:  len(rep.Cycles),
		Removed: rep.Removed(),
	})
}

// SwapLog returns a copy of the journal.
func (g *Game) SwapLog() []platformcore.SwapLogEntry {
	out := make([]platformcore.SwapLogEntry, len(g.journal))
	copy(out, g.journal)
	return out
}

// SessionSummary returns the figures persisted when the session ends.
func (g *Game) SessionSummary() platformcore.SessionSummary {
	return platformcore.SessionSummary{
		Variant:        g.variant.ID,
		Seed:           g.seed,
		Width:          g.cfg.Board.Width,
		Height:         g.cfg.Board.Height,
		Kinds:          g.cfg.Board.Kinds,
		Swaps:          g.stats.swaps,
		Rejected:       g.stats.rejected,
		Cleared:        g.stats.cleared,
		LongestCascade: g.stats.longestCascade,
		Reshuffles:     g.stats.reshuffles,
	}
}
