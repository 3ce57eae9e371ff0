package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// recorderGame is a minimal game that keeps a journal.
type recorderGame struct {
	resets  int
	swaps   int
	resized [2]int
	state   core.GameState

	// input seen by the last Step
	sawLeft  bool
	pointers []core.PointerEvent
	empty    bool
}

func (g *recorderGame) ID() string    { return "stub" }
func (g *recorderGame) Title() string { return "Stub" }

func (g *recorderGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.swaps = 0
}

func (g *recorderGame) Step(in core.InputFrame) core.StepResult {
	g.sawLeft = in.Has(core.ActionLeft)
	g.pointers = append([]core.PointerEvent(nil), in.Pointer...)
	g.empty = in.Empty()
	return core.StepResult{State: g.state}
}

func (g *recorderGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }
func (g *recorderGame) State() core.GameState   { return g.state }
func (g *recorderGame) Resize(w, h int)         { g.resized = [2]int{w, h} }

func (g *recorderGame) SessionSummary() core.SessionSummary {
	return core.SessionSummary{Variant: "stub", Seed: 1, Width: 3, Height: 3, Kinds: 3, Swaps: g.swaps, Cleared: 3 * g.swaps}
}

func (g *recorderGame) SwapLog() []core.SwapLogEntry {
	log := make([]core.SwapLogEntry, g.swaps)
	for i := range log {
		log[i] = core.SwapLogEntry{Seq: i + 1, BX: 1, Outcome: core.OutcomeOK, Cycles: 1, Removed: 3}
	}
	return log
}

var testTime = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 30, Seed: 5}
}

func TestModelQuitSavesSession(t *testing.T) {
	store := openTestStore(t)
	game := &recorderGame{swaps: 2}
	m := NewModel(game, store, testConfig())

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)

	if !m.IsQuitting() || cmd == nil {
		t.Fatal("q should quit")
	}
	if m.Err() != nil {
		t.Fatalf("save error: %v", m.Err())
	}
	id := m.LastSavedSession()
	if id == "" {
		t.Fatal("session should be saved on quit")
	}

	sess, err := store.SessionByID(id)
	require.NoError(t, err)
	if sess.Variant != "stub" || sess.Swaps != 2 || sess.Cleared != 6 {
		t.Errorf("stored session = %+v", sess)
	}
	swaps, err := store.SessionSwaps(id)
	require.NoError(t, err)
	if len(swaps) != 2 {
		t.Errorf("stored %d swaps, expected 2", len(swaps))
	}
}

func TestModelRestartSavesAndResets(t *testing.T) {
	store := openTestStore(t)
	game := &recorderGame{swaps: 3}
	m := NewModel(game, store, testConfig())

	next, _ := m.Update(runeKey('r'))
	next, _ = next.(Model).Update(TickMsg{})
	m = next.(Model)

	if game.resets != 1 {
		t.Errorf("resets = %d, expected 1", game.resets)
	}
	if m.LastSavedSession() == "" {
		t.Error("restart should save the finished session")
	}

	// The fresh session has no swaps and is not stored on quit.
	_, _ = m.Update(runeKey('q'))

	sessions, err := store.RecentSessions(10)
	require.NoError(t, err)
	if len(sessions) != 1 {
		t.Errorf("stored %d sessions, expected 1", len(sessions))
	}
}

func TestModelGameOverSavesOnce(t *testing.T) {
	store := openTestStore(t)
	game := &recorderGame{swaps: 1, state: core.GameState{GameOver: true}}
	m := NewModel(game, store, testConfig())

	var next tea.Model = m
	for i := 0; i < 3; i++ {
		next, _ = next.(Model).Update(TickMsg{})
	}

	sessions, err := store.RecentSessions(10)
	require.NoError(t, err)
	if len(sessions) != 1 {
		t.Errorf("stored %d sessions, expected 1", len(sessions))
	}
}

func TestModelBackToMenu(t *testing.T) {
	game := &recorderGame{}
	m := NewModel(game, nil, testConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if next.(Model).BackToMenu() {
		t.Error("esc during play should only reach the game")
	}

	game.state.Paused = true
	next, _ = next.(Model).Update(TickMsg{})
	next, _ = next.(Model).Update(tea.KeyMsg{Type: tea.KeyEscape})
	if !next.(Model).BackToMenu() {
		t.Error("esc while paused should go back to the menu")
	}
}

func TestModelForwardsInput(t *testing.T) {
	game := &recorderGame{}
	m := NewModel(game, nil, testConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	next, _ = next.(Model).Update(tea.MouseMsg{X: 2, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	next, _ = next.(Model).Update(TickMsg{})

	if !game.sawLeft {
		t.Error("key action should reach the game")
	}
	if len(game.pointers) != 1 || game.pointers[0].X != 2 {
		t.Errorf("pointer events = %+v", game.pointers)
	}

	// Input is cleared after each tick.
	_, _ = next.(Model).Update(TickMsg{})
	if !game.empty {
		t.Error("frame should be cleared between ticks")
	}
}

func TestModelResizeKeepsState(t *testing.T) {
	game := &recorderGame{}
	m := NewModel(game, nil, testConfig())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if game.resized != [2]int{100, 30} {
		t.Errorf("Resize got %v", game.resized)
	}
	if game.resets != 0 {
		t.Error("a Resizer should not be reset on resize")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen is %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestSaveSessionSkips(t *testing.T) {
	store := openTestStore(t)

	id, err := saveSession(nil, &recorderGame{swaps: 1}, testTime, testTime)
	if err != nil || id != "" {
		t.Errorf("nil store should skip, got (%q, %v)", id, err)
	}

	id, err = saveSession(store, &recorderGame{}, testTime, testTime)
	if err != nil || id != "" {
		t.Errorf("session without swaps should skip, got (%q, %v)", id, err)
	}
}
