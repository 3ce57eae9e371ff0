package storage

import (
	"time"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// SessionFromSummary builds a storable session from a game summary.
func SessionFromSummary(sum core.SessionSummary, started, ended time.Time) Session {
	return Session{
		Variant:        sum.Variant,
		Seed:           sum.Seed,
		Width:          sum.Width,
		Height:         sum.Height,
		Kinds:          sum.Kinds,
		Swaps:          sum.Swaps,
		Rejected:       sum.Rejected,
		Cleared:        sum.Cleared,
		LongestCascade: sum.LongestCascade,
		Reshuffles:     sum.Reshuffles,
		StartedAt:      started,
		EndedAt:        ended,
	}
}

// SwapRecordsFromLog converts a game journal to storable records.
func SwapRecordsFromLog(log []core.SwapLogEntry) []SwapRecord {
	out := make([]SwapRecord, len(log))
	for i, e := range log {
		out[i] = SwapRecord{
			Seq:     e.Seq,
			AX:      e.AX,
			AY:      e.AY,
			BX:      e.BX,
			BY:      e.BY,
			Outcome: string(e.Outcome),
			Cycles:  e.Cycles,
			Removed: e.Removed,
		}
	}
	return out
}
