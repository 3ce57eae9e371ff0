package match3

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/config"
	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

const (
	hudHeight    = 3 // title, counters, spacer
	footerHeight = 2 // message, help
	minScreenW   = 40
)

// tokenColors assigns each token kind a distinct color.
var tokenColors = [core.NumTokens]platformcore.Color{
	core.Candy:    platformcore.ColorRed,
	core.Cake:     platformcore.ColorPink,
	core.Star:     platformcore.ColorYellow,
	core.Lollipop: platformcore.ColorMagenta,
	core.BonBon:   platformcore.ColorBlue,
	core.IceCream: platformcore.ColorCyan,
	core.Pizza:    platformcore.ColorOrange,
	core.Donut:    platformcore.ColorGreen,
}

// layout maps the board onto the screen.
type layout struct {
	fits  bool
	box   platformcore.Rect // board frame including the border
	cellW int
	cols  int
	rows  int
}

func computeLayout(screenW, screenH, cols, rows, cellW int) layout {
	if cellW < 1 {
		cellW = 1
	}
	boxW := cols*cellW + 2
	boxH := rows + 2

	l := layout{cellW: cellW, cols: cols, rows: rows}
	l.fits = screenW >= max(boxW, minScreenW) && screenH >= boxH+hudHeight+footerHeight
	l.box = platformcore.NewRect((screenW-boxW)/2, hudHeight, boxW, boxH)
	return l
}

// cellOrigin returns the screen position of the first column of a cell.
func (l layout) cellOrigin(c core.Coord) (int, int) {
	return l.box.X + 1 + c.X*l.cellW, l.box.Y + 1 + c.Y
}

// cellAt maps a screen position to a board cell.
func (l layout) cellAt(x, y int) (core.Coord, bool) {
	inner := l.box.Inset(1)
	if !inner.Contains(x, y) {
		return core.Coord{}, false
	}
	c := core.C((x-inner.X)/l.cellW, y-inner.Y)
	if c.X >= l.cols || c.Y >= l.rows {
		return core.Coord{}, false
	}
	return c, true
}

func describe(v config.Variant) string {
	return fmt.Sprintf("%dx%d board, up to %d token kinds", v.Width, v.Height, v.MaxKinds)
}

func cascadeBanner(cycles int) string {
	return fmt.Sprintf("Cascade x%d!", cycles)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(g.layout.box, platformcore.ColorGray)
	g.renderBoard(dst)
	g.renderFooter(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	need := fmt.Sprintf("Need %dx%d", max(g.layout.box.W, minScreenW), g.layout.box.H+hudHeight+footerHeight)
	dst.DrawTextCentered(y+1, need)
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	dst.DrawTextCenteredColored(0, g.variant.Title, platformcore.ColorBrightWhite)
	line := fmt.Sprintf("Swaps %d  Cleared %d  Best cascade %d", g.stats.swaps, g.stats.cleared, g.stats.longestCascade)
	if g.stats.reshuffles > 0 {
		line += fmt.Sprintf("  Reshuffles %d", g.stats.reshuffles)
	}
	dst.DrawTextCentered(1, line)
}

func (g *Game) renderBoard(dst *platformcore.Screen) {
	for y := 0; y < g.display.Height(); y++ {
		for x := 0; x < g.display.Width(); x++ {
			g.renderCell(dst, core.C(x, y))
		}
	}
}

func (g *Game) renderCell(dst *platformcore.Screen, c core.Coord) {
	px, py := g.layout.cellOrigin(c)
	w := g.layout.cellW

	tok, ok := g.display.Get(c)
	glyph, color := ' ', platformcore.ColorDefault
	if ok {
		glyph, color = tok.Glyph(), tokenColors[tok]
	}

	if g.anim.highlighted(c) {
		switch g.anim.phase {
		case phaseClear:
			if (g.anim.ticks/2)%2 == 0 {
				glyph = '*'
			}
			color = platformcore.ColorBrightWhite
		case phaseSpawn:
			color = platformcore.ColorBrightWhite
		}
	}
	dst.SetColored(px+w/2, py, glyph, color)

	if w < 3 || g.anim.active() {
		return
	}

	left, right, markColor := rune(0), rune(0), platformcore.ColorWhite
	switch {
	case g.hasSelected && g.selected == c:
		left, right, markColor = '<', '>', platformcore.ColorBrightWhite
	case g.cursor == c:
		left, right = '[', ']'
	case g.showHint && (g.hint.A == c || g.hint.B == c):
		left, right, markColor = '(', ')', platformcore.ColorYellow
	}
	if left != 0 {
		dst.SetColored(px, py, left, markColor)
		dst.SetColored(px+w-1, py, right, markColor)
	}
}

func (g *Game) renderFooter(dst *platformcore.Screen) {
	y := g.layout.box.Bottom()
	if g.message != "" {
		dst.DrawTextCenteredColored(y, g.message, platformcore.ColorYellow)
	}
	help := "arrows move  enter select  h hint  p pause  r restart  q quit"
	if !g.cfg.Display.ShowHints {
		help = "arrows move  enter select  p pause  r restart  q quit"
	}
	dst.DrawTextCenteredColored(y+1, help, platformcore.ColorGray)
}

func (g *Game) renderOverlay(dst *platformcore.Screen) {
	mid := g.layout.box.Y + g.layout.box.H/2
	switch {
	case g.paused:
		dst.DrawTextCenteredColored(mid, " PAUSED ", platformcore.ColorBrightWhite)
	case g.stuck:
		dst.DrawTextCenteredColored(mid, " NO MOVES LEFT ", platformcore.ColorRed)
		dst.DrawTextCenteredColored(mid+1, " press R to restart ", platformcore.ColorWhite)
	}
}

// TokenColor returns the color a token is drawn with.
func TokenColor(t core.Token) platformcore.Color {
	if !t.Valid() {
		return platformcore.ColorDefault
	}
	return tokenColors[t]
}
