package core

// MinRun is the shortest run of equal tokens that counts as a match.
const MinRun = 3

// Axis is the orientation of a straight match.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Match is one straight run of at least MinRun equal tokens.
// Cells are listed in scan order.
type Match struct {
	Axis  Axis
	Token Token
	Cells []Coord
}

// Len returns the run length.
func (m Match) Len() int {
	return len(m.Cells)
}

// Matches is the ordered result of one detection pass.
type Matches struct {
	items []Match
}

// Add appends a single match.
func (ms *Matches) Add(m Match) {
	ms.items = append(ms.items, m)
}

// Append merges another collection after this one.
func (ms *Matches) Append(other Matches) {
	ms.items = append(ms.items, other.items...)
}

// All returns the matches in detection order.
func (ms Matches) All() []Match {
	return ms.items
}

// Len returns the number of matches.
func (ms Matches) Len() int {
	return len(ms.items)
}

// IsEmpty reports whether no match was found.
func (ms Matches) IsEmpty() bool {
	return len(ms.items) == 0
}

// Coords flattens all matches into a set of coordinates. A cell shared by a
// horizontal and a vertical match appears once, at its first occurrence.
func (ms Matches) Coords() []Coord {
	seen := make(map[Coord]struct{})
	var out []Coord
	for _, m := range ms.items {
		for _, c := range m.Cells {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// axis describes one scan orientation as data: the number of lines, the
// number of cells per line and how to build a coordinate from
// (line, position).
type axis struct {
	kind  Axis
	lines int
	span  int
	at    func(line, pos int) Coord
}

func rowAxis(g *Grid) axis {
	return axis{
		kind:  Horizontal,
		lines: g.Height(),
		span:  g.Width(),
		at:    func(line, pos int) Coord { return C(pos, line) },
	}
}

func colAxis(g *Grid) axis {
	return axis{
		kind:  Vertical,
		lines: g.Width(),
		span:  g.Height(),
		at:    func(line, pos int) Coord { return C(line, pos) },
	}
}

// Detect scans every row left to right, then every column top to bottom,
// and returns the runs of MinRun or more equal tokens in that order.
// An empty cell ends the current run.
func Detect(g *Grid) Matches {
	var ms Matches
	ms.Append(scan(g, rowAxis(g)))
	ms.Append(scan(g, colAxis(g)))
	return ms
}

func scan(g *Grid, a axis) Matches {
	var ms Matches
	for line := 0; line < a.lines; line++ {
		var run []Coord
		var cur Token
		flush := func() {
			if len(run) >= MinRun {
				ms.Add(Match{Axis: a.kind, Token: cur, Cells: run})
			}
			run = nil
		}
		for pos := 0; pos < a.span; pos++ {
			c := a.at(line, pos)
			t, ok := g.Get(c)
			if !ok {
				flush()
				continue
			}
			if len(run) > 0 && t != cur {
				flush()
			}
			cur = t
			run = append(run, c)
		}
		flush()
	}
	return ms
}
