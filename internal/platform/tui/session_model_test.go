package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/registry"
)

func init() {
	registry.Register("stub", func() registry.Game { return &recorderGame{} })
}

func TestSessionModelFlow(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "alice", "")
	if m.ID() == "" {
		t.Fatal("session ID should be generated")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SessionModel)
	if m.screen != screenGame || m.game == nil {
		t.Fatalf("Enter should start the selected game, screen = %v", m.screen)
	}

	next, _ = m.Update(runeKey('q'))
	m = next.(SessionModel)
	if !m.quitting {
		t.Error("q in game should end the session")
	}
	if m.View() != "" {
		t.Error("a quitting session renders nothing")
	}
}

func TestSessionModelHistory(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "bob", "conn-1")
	if m.ID() != "conn-1" {
		t.Errorf("ID() = %q, expected conn-1", m.ID())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(SessionModel)
	if m.screen != screenHistory {
		t.Fatalf("Tab should open history, screen = %v", m.screen)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = next.(SessionModel)
	if m.screen != screenMenu {
		t.Errorf("Esc in history should return to the menu, screen = %v", m.screen)
	}
}
