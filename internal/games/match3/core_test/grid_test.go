package core_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

// board parses rows (top row first) into a grid.
func board(t *testing.T, rows ...string) *core.Grid {
	t.Helper()
	g, err := core.ParseASCII(strings.Join(rows, "\n"))
	require.NoError(t, err)
	return g
}

func TestNewGrid(t *testing.T) {
	g := core.NewGrid(4, 3)

	if g.Width() != 4 || g.Height() != 3 {
		t.Errorf("expected 4x3 grid, got %dx%d", g.Width(), g.Height())
	}
	if g.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", g.Len())
	}
	if g.IsFull() {
		t.Error("empty grid should not be full")
	}

	bad := core.NewGrid(-1, 5)
	if bad.Width() != 0 || bad.Height() != 0 {
		t.Errorf("negative size should yield 0x0, got %dx%d", bad.Width(), bad.Height())
	}
}

func TestNewFilledGridRowMajor(t *testing.T) {
	src := core.NewSequenceTokens(core.Candy, core.Cake, core.Star, core.Lollipop, core.BonBon, core.IceCream)
	g := core.NewFilledGrid(3, 2, src)

	want := "CKS\nLBI\n"
	if got := core.RenderASCII(g); got != want {
		t.Errorf("RenderASCII() = %q, expected %q", got, want)
	}
	if src.Drawn() != 6 {
		t.Errorf("Drawn() = %d, expected 6", src.Drawn())
	}
}

func TestGridInBounds(t *testing.T) {
	g := core.NewGrid(5, 5)

	testCases := []struct {
		coord    core.Coord
		expected bool
	}{
		{core.C(0, 0), true},
		{core.C(4, 4), true},
		{core.C(-1, 0), false},
		{core.C(0, -1), false},
		{core.C(5, 0), false},
		{core.C(0, 5), false},
	}

	for _, tc := range testCases {
		if got := g.InBounds(tc.coord); got != tc.expected {
			t.Errorf("InBounds(%v) = %v, expected %v", tc.coord, got, tc.expected)
		}
	}
}

func TestGridInsertGetRemove(t *testing.T) {
	g := core.NewGrid(3, 3)

	g.Insert(core.C(1, 1), core.Pizza)
	if tok, ok := g.Get(core.C(1, 1)); !ok || tok != core.Pizza {
		t.Errorf("Get((1,1)) = %v,%v, expected pizza,true", tok, ok)
	}

	g.Insert(core.C(1, 1), core.Donut)
	if tok, _ := g.Get(core.C(1, 1)); tok != core.Donut {
		t.Errorf("Insert should overwrite, got %v", tok)
	}

	g.Remove(core.C(1, 1))
	if _, ok := g.Get(core.C(1, 1)); ok {
		t.Error("cell should be empty after Remove")
	}

	g.Insert(core.C(7, 7), core.Star)
	if g.Len() != 0 {
		t.Errorf("out-of-bounds Insert should be ignored, Len() = %d", g.Len())
	}
	if _, ok := g.Get(core.C(-1, 2)); ok {
		t.Error("out-of-bounds Get should report absent")
	}
}

func TestGridSwap(t *testing.T) {
	g := board(t, "CK", "SP")
	before := g.Clone()

	require.NoError(t, g.Swap(core.C(0, 0), core.C(1, 1)))
	if tok, _ := g.Get(core.C(0, 0)); tok != core.Pizza {
		t.Errorf("(0,0) = %v, expected pizza", tok)
	}
	if tok, _ := g.Get(core.C(1, 1)); tok != core.Candy {
		t.Errorf("(1,1) = %v, expected candy", tok)
	}

	// Swapping the same pair again is the identity.
	require.NoError(t, g.Swap(core.C(0, 0), core.C(1, 1)))
	if !g.Equal(before) {
		t.Errorf("double swap should restore board:\n%s", core.RenderASCII(g))
	}
}

func TestGridSwapMissingToken(t *testing.T) {
	g := board(t, "C.", "SP")
	before := g.Clone()

	testCases := []struct {
		a, b    core.Coord
		missing core.Coord
	}{
		{core.C(0, 0), core.C(1, 0), core.C(1, 0)},
		{core.C(1, 0), core.C(0, 0), core.C(1, 0)},
		{core.C(0, 0), core.C(5, 5), core.C(5, 5)},
	}

	for _, tc := range testCases {
		err := g.Swap(tc.a, tc.b)
		var mt *core.MissingTokenError
		if !errors.As(err, &mt) {
			t.Fatalf("Swap(%v,%v) error = %v, expected *MissingTokenError", tc.a, tc.b, err)
		}
		if mt.At != tc.missing {
			t.Errorf("MissingTokenError.At = %v, expected %v", mt.At, tc.missing)
		}
		if !errors.Is(err, core.ErrNoToken) {
			t.Error("MissingTokenError should match ErrNoToken")
		}
		if !g.Equal(before) {
			t.Errorf("failed swap must not modify the board:\n%s", core.RenderASCII(g))
		}
	}
}

func TestGridDropPreservesColumns(t *testing.T) {
	g := core.NewFilledGrid(6, 7, core.NewSeededTokens(11, 8))
	holes := []core.Coord{
		core.C(0, 6), core.C(0, 3), core.C(2, 0), core.C(2, 1),
		core.C(3, 4), core.C(3, 5), core.C(3, 6), core.C(5, 2),
	}
	for _, c := range holes {
		g.Remove(c)
	}

	before := make([][]core.Token, g.Width())
	for x := range before {
		before[x] = g.Column(x)
	}

	moves := g.Drop()

	for x := 0; x < g.Width(); x++ {
		if diff := cmp.Diff(before[x], g.Column(x)); diff != "" {
			t.Errorf("column %d changed under Drop (-before +after):\n%s", x, diff)
		}
		// All remaining tokens sit at the bottom of the column.
		n := len(before[x])
		for y := 0; y < g.Height(); y++ {
			_, ok := g.Get(core.C(x, y))
			if want := y >= g.Height()-n; ok != want {
				t.Errorf("after Drop (%d,%d) occupied = %v, expected %v", x, y, ok, want)
			}
		}
	}

	for _, m := range moves {
		if m.From.X != m.To.X || m.To.Y <= m.From.Y {
			t.Errorf("move %v -> %v should go straight down", m.From, m.To)
		}
	}
}

func TestGridDropMoves(t *testing.T) {
	g := board(t,
		"CK",
		"S.",
		"..",
	)

	moves := g.Drop()
	want := []core.Move{
		{From: core.C(0, 1), To: core.C(0, 2), Token: core.Star},
		{From: core.C(0, 0), To: core.C(0, 1), Token: core.Candy},
		{From: core.C(1, 0), To: core.C(1, 2), Token: core.Cake},
	}
	if diff := cmp.Diff(want, moves); diff != "" {
		t.Errorf("Drop() moves mismatch (-want +got):\n%s", diff)
	}
	if got := core.RenderASCII(g); got != "..\nC.\nSK\n" {
		t.Errorf("board after Drop = %q", got)
	}
}

func TestGridFillOccupiesEverything(t *testing.T) {
	g := board(t,
		"...",
		"C..",
		"KS.",
	)
	src := core.NewSequenceTokens(core.Donut)

	spawns := g.Fill(src)
	if !g.IsFull() {
		t.Errorf("grid should be full after Fill:\n%s", core.RenderASCII(g))
	}

	want := []core.Coord{
		core.C(0, 0),
		core.C(1, 0), core.C(1, 1),
		core.C(2, 0), core.C(2, 1), core.C(2, 2),
	}
	var got []core.Coord
	for _, s := range spawns {
		got = append(got, s.At)
		if s.Token != core.Donut {
			t.Errorf("spawn at %v has token %v, expected donut", s.At, s.Token)
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Fill() order mismatch (-want +got):\n%s", diff)
	}
}

func TestGridCloneIndependent(t *testing.T) {
	g := board(t, "CKS")
	clone := g.Clone()

	clone.Remove(core.C(0, 0))
	if _, ok := g.Get(core.C(0, 0)); !ok {
		t.Error("modifying the clone should not affect the original")
	}
	if g.Equal(clone) {
		t.Error("grids should differ after modifying the clone")
	}
}

func TestASCIIRoundTrip(t *testing.T) {
	text := "SIKP\nKSID\nIK.S\nKPPD\n"
	g, err := core.ParseASCII(text)
	require.NoError(t, err)
	if got := core.RenderASCII(g); got != text {
		t.Errorf("RenderASCII(ParseASCII(x)) = %q, expected %q", got, text)
	}

	_, err = core.ParseASCII("CK\nC")
	if err == nil {
		t.Error("ragged rows should be rejected")
	}
	_, err = core.ParseASCII("CX")
	if err == nil {
		t.Error("unknown glyph should be rejected")
	}
}

func TestTokenParsing(t *testing.T) {
	testCases := []struct {
		input    string
		expected core.Token
		ok       bool
	}{
		{"candy", core.Candy, true},
		{"Pizza", core.Pizza, true},
		{"D", core.Donut, true},
		{"l", core.Lollipop, true},
		{"icecream", core.IceCream, true},
		{"broccoli", 0, false},
	}

	for _, tc := range testCases {
		tok, err := core.ParseToken(tc.input)
		if tc.ok && err != nil {
			t.Errorf("ParseToken(%q) error: %v", tc.input, err)
			continue
		}
		if !tc.ok {
			if err == nil {
				t.Errorf("ParseToken(%q) expected error", tc.input)
			}
			continue
		}
		if tok != tc.expected {
			t.Errorf("ParseToken(%q) = %v, expected %v", tc.input, tok, tc.expected)
		}
	}

	if len(core.AllTokens()) != core.NumTokens {
		t.Errorf("AllTokens() has %d entries, expected %d", len(core.AllTokens()), core.NumTokens)
	}
}

func TestCoordAdjacent(t *testing.T) {
	a := core.C(2, 2)
	for _, d := range []core.Dir{core.DirUp, core.DirRight, core.DirDown, core.DirLeft} {
		if !a.Adjacent(a.Step(d)) {
			t.Errorf("%v should be adjacent to %v", a.Step(d), a)
		}
	}
	if a.Adjacent(core.C(3, 3)) {
		t.Error("diagonal cells are not adjacent")
	}
	if a.Adjacent(a) {
		t.Error("a cell is not adjacent to itself")
	}
}
