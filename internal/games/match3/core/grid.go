package core

// slot is one board cell. The zero value is an empty cell.
type slot struct {
	tok Token
	ok  bool
}

// Grid is the board: a rectangular set of cells, each either empty or
// holding exactly one token. Cells are stored in row-major order.
type Grid struct {
	w, h  int
	cells []slot
}

// NewGrid creates an empty board. Non-positive dimensions yield a 0x0 board.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		w, h = 0, 0
	}
	return &Grid{w: w, h: h, cells: make([]slot, w*h)}
}

// NewFilledGrid creates a board populated by drawing one token per cell
// from src, row by row.
func NewFilledGrid(w, h int, src TokenSource) *Grid {
	g := NewGrid(w, h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			g.Insert(C(x, y), src.Next())
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

func (g *Grid) index(c Coord) int {
	return c.Y*g.w + c.X
}

// InBounds reports whether c lies on the board.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// Get returns the token at c. The boolean is false for empty or
// out-of-bounds cells.
func (g *Grid) Get(c Coord) (Token, bool) {
	if !g.InBounds(c) {
		return 0, false
	}
	s := g.cells[g.index(c)]
	return s.tok, s.ok
}

// Insert places t at c, overwriting any previous token.
// Out-of-bounds coordinates are ignored.
func (g *Grid) Insert(c Coord, t Token) {
	if g.InBounds(c) {
		g.cells[g.index(c)] = slot{tok: t, ok: true}
	}
}

// Remove empties the cell at c.
func (g *Grid) Remove(c Coord) {
	if g.InBounds(c) {
		g.cells[g.index(c)] = slot{}
	}
}

// Swap exchanges the tokens at a and b. Both cells must be occupied;
// otherwise a *MissingTokenError is returned and nothing changes.
func (g *Grid) Swap(a, b Coord) error {
	ta, ok := g.Get(a)
	if !ok {
		return &MissingTokenError{At: a}
	}
	tb, ok := g.Get(b)
	if !ok {
		return &MissingTokenError{At: b}
	}
	g.Insert(a, tb)
	g.Insert(b, ta)
	return nil
}

// Len returns the number of occupied cells.
func (g *Grid) Len() int {
	n := 0
	for _, s := range g.cells {
		if s.ok {
			n++
		}
	}
	return n
}

// IsFull reports whether every cell holds a token.
func (g *Grid) IsFull() bool {
	return g.Len() == len(g.cells)
}

// Column returns the tokens of column x from top to bottom, skipping
// empty cells.
func (g *Grid) Column(x int) []Token {
	var out []Token
	for y := 0; y < g.h; y++ {
		if t, ok := g.Get(C(x, y)); ok {
			out = append(out, t)
		}
	}
	return out
}

// Clone returns a deep copy of the board.
func (g *Grid) Clone() *Grid {
	cells := make([]slot, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, cells: cells}
}

// Equal reports whether two boards have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.w != other.w || g.h != other.h {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Move records one token relocated by gravity.
type Move struct {
	From  Coord
	To    Coord
	Token Token
}

// Spawn records one token created by refill.
type Spawn struct {
	At    Coord
	Token Token
}

// Drop compacts every column toward the bottom row, keeping the vertical
// order of the remaining tokens. Each relocation is returned, columns left
// to right, and within a column from the bottom up.
func (g *Grid) Drop() []Move {
	var moves []Move
	for x := 0; x < g.w; x++ {
		write := g.h - 1
		for y := g.h - 1; y >= 0; y-- {
			from := C(x, y)
			t, ok := g.Get(from)
			if !ok {
				continue
			}
			if y != write {
				to := C(x, write)
				g.Remove(from)
				g.Insert(to, t)
				moves = append(moves, Move{From: from, To: to, Token: t})
			}
			write--
		}
	}
	return moves
}

// Fill places a fresh token from src into every empty cell, column by
// column and top to bottom within a column.
func (g *Grid) Fill(src TokenSource) []Spawn {
	var spawns []Spawn
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			c := C(x, y)
			if _, ok := g.Get(c); ok {
				continue
			}
			t := src.Next()
			g.Insert(c, t)
			spawns = append(spawns, Spawn{At: c, Token: t})
		}
	}
	return spawns
}
