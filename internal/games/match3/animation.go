package match3

import "github.com/vovakirdan/tui-match3/internal/games/match3/core"

// phase is the stage of a cascade cycle being shown.
type phase int

const (
	phaseIdle  phase = iota
	phaseClear       // matched cells flash before they disappear
	phaseFall        // removals and gravity moves are applied
	phaseSpawn       // refilled cells appear
)

func (p phase) String() string {
	switch p {
	case phaseClear:
		return "clear"
	case phaseFall:
		return "fall"
	case phaseSpawn:
		return "spawn"
	default:
		return "idle"
	}
}

// animation replays the cycles of a resolution report onto the display
// board, one phase at a time.
type animation struct {
	cycles    []core.Cycle
	index     int
	phase     phase
	ticks     int
	highlight map[core.Coord]bool
}

func (a *animation) start(cycles []core.Cycle) {
	*a = animation{cycles: cycles}
	if len(cycles) == 0 {
		return
	}
	a.enter(phaseClear, cycles[0].Removed)
}

func (a *animation) active() bool {
	return a.phase != phaseIdle
}

func (a *animation) enter(p phase, cells []core.Coord) {
	a.phase = p
	a.ticks = 0
	a.highlight = make(map[core.Coord]bool, len(cells))
	for _, c := range cells {
		a.highlight[c] = true
	}
}

// step advances by one tick and applies the next phase to display when the
// current one has lasted perPhase ticks. It returns true once every cycle
// has been shown.
func (a *animation) step(display *core.Grid, perPhase int) bool {
	if !a.active() {
		return true
	}
	a.ticks++
	if a.ticks < perPhase {
		return false
	}

	cycle := a.cycles[a.index]
	switch a.phase {
	case phaseClear:
		cycle.ApplyRemovals(display)
		cycle.ApplyMoves(display)
		dest := make([]core.Coord, 0, len(cycle.Moves))
		for _, m := range cycle.Moves {
			dest = append(dest, m.To)
		}
		a.enter(phaseFall, dest)
	case phaseFall:
		cycle.ApplySpawns(display)
		spawned := make([]core.Coord, 0, len(cycle.Spawns))
		for _, s := range cycle.Spawns {
			spawned = append(spawned, s.At)
		}
		a.enter(phaseSpawn, spawned)
	case phaseSpawn:
		a.index++
		if a.index >= len(a.cycles) {
			*a = animation{}
			return true
		}
		a.enter(phaseClear, a.cycles[a.index].Removed)
	}
	return false
}

// highlighted reports whether c takes part in the current phase.
func (a *animation) highlighted(c core.Coord) bool {
	return a.highlight[c]
}
