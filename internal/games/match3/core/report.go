package core

// Swap is a pair of coordinates whose tokens are exchanged.
type Swap struct {
	A Coord
	B Coord
}

// Cycle holds the structural changes of one clear/collapse/refill pass.
type Cycle struct {
	Matches Matches
	Removed []Coord
	Moves   []Move
	Spawns  []Spawn
}

// ApplyRemovals empties the removed cells on g.
func (c Cycle) ApplyRemovals(g *Grid) {
	for _, at := range c.Removed {
		g.Remove(at)
	}
}

// ApplyMoves replays gravity on g. Moves are ordered bottom-up per column,
// so every destination is already empty when it is written.
func (c Cycle) ApplyMoves(g *Grid) {
	for _, m := range c.Moves {
		g.Remove(m.From)
		g.Insert(m.To, m.Token)
	}
}

// ApplySpawns inserts the spawned tokens on g.
func (c Cycle) ApplySpawns(g *Grid) {
	for _, s := range c.Spawns {
		g.Insert(s.At, s.Token)
	}
}

// Apply replays the whole cycle on g.
func (c Cycle) Apply(g *Grid) {
	c.ApplyRemovals(g)
	c.ApplyMoves(g)
	c.ApplySpawns(g)
}

// Report is the outcome of a resolution: every cycle in the order it ran.
type Report struct {
	// Swap is the exchange that triggered the resolution; zero for Settle
	// and Reshuffle.
	Swap   Swap
	Cycles []Cycle
	// Limited is set when resolution stopped at the cycle cap.
	Limited bool
}

// Removed returns the total number of cleared cells across all cycles.
func (r Report) Removed() int {
	n := 0
	for _, c := range r.Cycles {
		n += len(c.Removed)
	}
	return n
}

// Spawned returns the total number of refilled cells.
func (r Report) Spawned() int {
	n := 0
	for _, c := range r.Cycles {
		n += len(c.Spawns)
	}
	return n
}

// Stable reports whether resolution ran to a board without matches.
func (r Report) Stable() bool {
	return !r.Limited
}

// Replay applies the swap (if any) and every cycle to g, which must hold
// the board as it was before the resolution.
func (r Report) Replay(g *Grid) error {
	if r.Swap != (Swap{}) {
		if err := g.Swap(r.Swap.A, r.Swap.B); err != nil {
			return err
		}
	}
	for _, c := range r.Cycles {
		c.Apply(g)
	}
	return nil
}
