package tui

import (
	"time"

	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// saveSession persists a finished session with its swap journal. Nothing is
// written without a store, for games that keep no journal, or for sessions
// without a committed swap. Returns the stored session ID, if any.
func saveSession(store *storage.Store, game registry.Game, started, ended time.Time) (string, error) {
	if store == nil {
		return "", nil
	}
	rec, ok := game.(registry.SessionRecorder)
	if !ok {
		return "", nil
	}
	sum := rec.SessionSummary()
	if sum.Swaps == 0 {
		return "", nil
	}
	return store.SaveSession(
		storage.SessionFromSummary(sum, started, ended),
		storage.SwapRecordsFromLog(rec.SwapLog()),
	)
}
