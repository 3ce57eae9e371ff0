package core

// LegalSwaps lists every adjacent swap that would create at least one run.
// Pairs are (cell, right neighbour) and (cell, lower neighbour), visited in
// row-major order. Each candidate is tried on g and undone, so g is
// unchanged on return.
func LegalSwaps(g *Grid) []Swap {
	var out []Swap
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			a := C(x, y)
			for _, d := range []Dir{DirRight, DirDown} {
				b := a.Step(d)
				if !g.InBounds(b) {
					continue
				}
				if trySwap(g, a, b) {
					out = append(out, Swap{A: a, B: b})
				}
			}
		}
	}
	return out
}

func trySwap(g *Grid, a, b Coord) bool {
	ta, okA := g.Get(a)
	tb, okB := g.Get(b)
	if !okA || !okB || ta == tb {
		return false
	}
	_ = g.Swap(a, b)
	found := !Detect(g).IsEmpty()
	_ = g.Swap(a, b)
	return found
}
