package core

import (
	"fmt"
	"strings"
)

// EmptyGlyph marks an empty cell in the ASCII board format.
const EmptyGlyph = '.'

// RenderASCII returns the board as text: one line per row, one glyph per
// cell, '.' for empty cells.
func RenderASCII(g *Grid) string {
	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if t, ok := g.Get(C(x, y)); ok {
				sb.WriteRune(t.Glyph())
			} else {
				sb.WriteRune(EmptyGlyph)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseASCII builds a board from the RenderASCII format. Blank lines and
// surrounding whitespace are ignored; all rows must have the same width.
func ParseASCII(s string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return NewGrid(0, 0), nil
	}

	w := len([]rune(rows[0]))
	g := NewGrid(w, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("row %d has width %d, expected %d", y, len(runes), w)
		}
		for x, r := range runes {
			if r == EmptyGlyph {
				continue
			}
			t, ok := TokenFromGlyph(r)
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown glyph %q", y, x, r)
			}
			g.Insert(C(x, y), t)
		}
	}
	return g, nil
}
