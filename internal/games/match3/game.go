// Package match3 adapts the match-3 engine to the platform Game interface:
// cursor and pointer input, phased cascade animation and session counters.
package match3

import (
	"errors"

	"github.com/vovakirdan/tui-match3/internal/config"
	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Package-level settings applied on the next Reset.
var (
	configPath string
	difficulty config.DifficultyPreset
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficulty sets the difficulty preset for new sessions.
func SetDifficulty(preset config.DifficultyPreset) {
	difficulty = preset
}

// messageTicks is how long a banner stays on screen.
const messageTicks = 60

func init() {
	for _, v := range config.Variants() {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// Game is one match-3 session.
type Game struct {
	variant config.Variant
	cfg     config.Match3Config
	seed    int64
	tick    uint64

	resolver *core.Resolver
	display  *core.Grid // board as currently shown; lags the resolver while animating
	anim     animation

	cursor      core.Coord
	selected    core.Coord
	hasSelected bool
	dragFrom    core.Coord
	dragging    bool
	hint        core.Swap
	showHint    bool

	stats   counters
	journal []platformcore.SwapLogEntry

	message      string
	messageTicks int

	screenW, screenH int
	layout           layout

	paused   bool
	stuck    bool // no legal swap and reshuffling disabled
	tooSmall bool
}

// counters are the per-session figures shown in the HUD and persisted.
type counters struct {
	swaps          int
	rejected       int
	cleared        int
	longestCascade int
	reshuffles     int
}

// New creates a game for the given variant. Reset must be called before use.
func New(v config.Variant) *Game {
	return &Game{variant: v}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	return describe(g.variant)
}

// Reset starts a new session. Configuration is reloaded so edits to the
// config file apply on restart.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	mcfg, err := config.Load(configPath, g.variant.ID, difficulty)
	if err != nil {
		mcfg = config.DefaultMatch3Config()
		config.ApplyVariant(&mcfg, g.variant)
		config.ApplyDifficultyPreset(&mcfg, difficulty)
	}
	g.ResetWithConfig(cfg, mcfg)
}

// ResetWithConfig starts a new session with an explicit configuration.
func (g *Game) ResetWithConfig(rc platformcore.RuntimeConfig, mcfg config.Match3Config) {
	g.cfg = mcfg
	g.seed = rc.Seed
	g.tick = 0

	src := core.NewSeededTokens(uint64(rc.Seed), mcfg.Board.Kinds)
	g.resolver = core.NewBoard(mcfg.Board.Width, mcfg.Board.Height, src, core.WithMaxCycles(mcfg.Rules.MaxCycles))
	if mcfg.Rules.SettleInitial {
		// A capped settle leaves runs on the board; the first swap clears them.
		_, _ = g.resolver.Settle()
	}
	g.display = g.resolver.Board()
	g.anim = animation{}

	g.cursor = core.C(0, 0)
	g.hasSelected = false
	g.dragging = false
	g.showHint = false

	g.stats = counters{}
	g.journal = nil
	g.message = ""
	g.messageTicks = 0
	g.paused = false
	g.stuck = false

	g.Resize(rc.ScreenW, rc.ScreenH)
	g.checkStuck()
}

// Resize adapts the layout to a new screen size without losing state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout = computeLayout(w, h, g.cfg.Board.Width, g.cfg.Board.Height, g.cfg.Display.CellWidth)
	g.tooSmall = !g.layout.fits
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	// Input is ignored while a cascade is playing.
	if g.anim.active() {
		if g.anim.step(g.display, g.cfg.Display.AnimationTicks) {
			g.finishResolution()
		}
		return platformcore.StepResult{State: g.State()}
	}

	if g.stuck {
		return platformcore.StepResult{State: g.State()}
	}

	g.handleKeys(in)
	for _, ev := range in.Pointer {
		g.handlePointer(ev)
	}

	return platformcore.StepResult{State: g.State()}
}

func (g *Game) handleKeys(in platformcore.InputFrame) {
	dirs := []struct {
		action platformcore.Action
		dir    core.Dir
	}{
		{platformcore.ActionUp, core.DirUp},
		{platformcore.ActionDown, core.DirDown},
		{platformcore.ActionLeft, core.DirLeft},
		{platformcore.ActionRight, core.DirRight},
	}
	for _, d := range dirs {
		if !in.Has(d.action) {
			continue
		}
		if g.hasSelected {
			target := g.selected.Step(d.dir)
			g.hasSelected = false
			if g.display.InBounds(target) {
				g.cursor = target
				g.attemptSwap(g.selected, target)
			}
			return
		}
		g.moveCursor(d.dir)
	}

	switch {
	case in.Has(platformcore.ActionSelect):
		g.selectCell(g.cursor)
	case in.Has(platformcore.ActionBack):
		g.hasSelected = false
		g.showHint = false
	case in.Has(platformcore.ActionHint):
		g.requestHint()
	}
}

func (g *Game) moveCursor(d core.Dir) {
	next := g.cursor.Step(d)
	next.X = platformcore.Clamp(next.X, 0, g.display.Width()-1)
	next.Y = platformcore.Clamp(next.Y, 0, g.display.Height()-1)
	g.cursor = next
}

// selectCell implements click/enter semantics: the first cell is selected,
// an adjacent second cell triggers a swap, anything else moves the selection.
func (g *Game) selectCell(c core.Coord) {
	switch {
	case !g.hasSelected:
		g.selected = c
		g.hasSelected = true
	case g.selected == c:
		g.hasSelected = false
	case g.selected.Adjacent(c):
		g.hasSelected = false
		g.attemptSwap(g.selected, c)
	default:
		g.selected = c
	}
}

func (g *Game) handlePointer(ev platformcore.PointerEvent) {
	cell, ok := g.layout.cellAt(ev.X, ev.Y)
	switch ev.Kind {
	case platformcore.PointerPress:
		if !ok {
			g.dragging = false
			return
		}
		g.cursor = cell
		g.dragFrom = cell
		g.dragging = true
	case platformcore.PointerRelease:
		if !g.dragging {
			return
		}
		g.dragging = false
		if !ok || cell == g.dragFrom {
			// A click without movement behaves like Enter.
			g.selectCell(g.dragFrom)
			return
		}
		target := g.dragFrom.Step(dragDir(g.dragFrom, cell))
		g.hasSelected = false
		g.cursor = target
		g.attemptSwap(g.dragFrom, target)
	}
}

// dragDir reduces a drag to the dominant axis of movement.
func dragDir(from, to core.Coord) core.Dir {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if dx*dx >= dy*dy {
		if dx > 0 {
			return core.DirRight
		}
		return core.DirLeft
	}
	if dy > 0 {
		return core.DirDown
	}
	return core.DirUp
}

func (g *Game) requestHint() {
	if !g.cfg.Display.ShowHints {
		return
	}
	hint, ok := g.resolver.Hint()
	if !ok {
		return
	}
	g.hint = hint
	g.showHint = true
	g.cursor = hint.A
}

// attemptSwap hands a swap to the engine, records it and starts the
// cascade animation.
func (g *Game) attemptSwap(a, b core.Coord) {
	before := g.resolver.Board()
	rep, err := g.play(a, b)
	if err != nil && !errors.Is(err, core.ErrCascadeLimit) {
		return
	}

	if g.cfg.Display.AnimationTicks <= 0 {
		g.finishResolution()
		return
	}
	_ = before.Swap(a, b)
	g.display = before
	g.anim.start(rep.Cycles)
}

// play applies a swap to the engine and updates the session counters and
// journal.
func (g *Game) play(a, b core.Coord) (core.Report, error) {
	g.showHint = false

	rep, err := g.resolver.ApplySwap(a, b)
	outcome := outcomeOf(err)
	g.record(a, b, outcome, rep)

	if !outcome.Committed() {
		g.stats.rejected++
		if outcome == platformcore.OutcomeNoMatches {
			g.flash("No match")
		}
		return rep, err
	}

	g.stats.swaps++
	g.stats.cleared += rep.Removed()
	if n := len(rep.Cycles); n > g.stats.longestCascade {
		g.stats.longestCascade = n
	}
	if n := len(rep.Cycles); n >= 3 {
		g.flash(cascadeBanner(n))
	}
	return rep, err
}

// Play applies a swap without animation, as if it had been entered by the
// player. Used by headless runs.
func (g *Game) Play(a, b core.Coord) (core.Report, error) {
	rep, err := g.play(a, b)
	if err == nil || errors.Is(err, core.ErrCascadeLimit) {
		g.finishResolution()
	}
	return rep, err
}

// Hint returns a legal swap on the current board.
func (g *Game) Hint() (core.Swap, bool) {
	return g.resolver.Hint()
}

func outcomeOf(err error) platformcore.SwapOutcome {
	switch {
	case err == nil:
		return platformcore.OutcomeOK
	case errors.Is(err, core.ErrCascadeLimit):
		return platformcore.OutcomeLimit
	case errors.Is(err, core.ErrNoToken):
		return platformcore.OutcomeNoToken
	default:
		return platformcore.OutcomeNoMatches
	}
}

// finishResolution syncs the display with the engine and deals with a
// board that has no legal swap left.
func (g *Game) finishResolution() {
	g.anim = animation{}
	g.display = g.resolver.Board()
	g.checkStuck()
}

func (g *Game) checkStuck() {
	if g.resolver.HasLegalSwap() {
		g.stuck = false
		return
	}
	if !g.cfg.Rules.ReshuffleWhenStuck {
		g.stuck = true
		g.flash("No moves left")
		return
	}
	// Reshuffle until a legal swap exists; a handful of tries is plenty for
	// any board with three or more kinds.
	for i := 0; i < 16 && !g.resolver.HasLegalSwap(); i++ {
		_, _ = g.resolver.Reshuffle()
		g.stats.reshuffles++
	}
	g.display = g.resolver.Board()
	g.stuck = !g.resolver.HasLegalSwap()
	g.flash("No moves left, board reshuffled")
}

func (g *Game) flash(msg string) {
	g.message = msg
	g.messageTicks = messageTicks
}

// State returns the current game state. Score is the number of tokens
// cleared so far.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.stats.cleared,
		GameOver: g.stuck,
		Paused:   g.paused || g.tooSmall,
	}
}

// Board returns a copy of the engine board.
func (g *Game) Board() *core.Grid {
	return g.resolver.Board()
}

// Animating reports whether a cascade is being played back.
func (g *Game) Animating() bool {
	return g.anim.active()
}
