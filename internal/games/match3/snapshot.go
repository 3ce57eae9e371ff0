package match3

import "github.com/vovakirdan/tui-match3/internal/games/match3/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateAnimating   GameStateType = "animating"
	StatePaused      GameStateType = "paused"
	StateStuck       GameStateType = "stuck"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism tests and debugging.
type Snapshot struct {
	Tick           uint64
	Variant        string
	Seed           int64
	Board          string // engine board in the ASCII format
	Cursor         core.Coord
	Selected       *core.Coord
	Swaps          int
	Rejected       int
	Cleared        int
	LongestCascade int
	Reshuffles     int
	State          GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.stuck:
		state = StateStuck
	case g.anim.active():
		state = StateAnimating
	}

	snap := Snapshot{
		Tick:           g.tick,
		Variant:        g.variant.ID,
		Seed:           g.seed,
		Board:          core.RenderASCII(g.resolver.Board()),
		Cursor:         g.cursor,
		Swaps:          g.stats.swaps,
		Rejected:       g.stats.rejected,
		Cleared:        g.stats.cleared,
		LongestCascade: g.stats.longestCascade,
		Reshuffles:     g.stats.reshuffles,
		State:          state,
	}
	if g.hasSelected {
		sel := g.selected
		snap.Selected = &sel
	}
	return snap
}
