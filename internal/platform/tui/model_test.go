package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-eco/internal/config"
	"github.com/vovakirdan/tui-eco/internal/core"
	"github.com/vovakirdan/tui-eco/internal/registry"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	topo, err := config.Load(config.DefaultScenario)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	inst, err := config.Instantiate(topo, nil)
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}

	cfg := core.DefaultConfig()
	cfg.FixedDelta = time.Second
	return NewModel(inst, cfg)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return mm
}

func TestModelTickAdvancesEngine(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, TickMsg(time.Now()))

	if got := m.inst.Engine.Ticks(); got != 1 {
		t.Fatalf("Ticks() = %d, expected 1", got)
	}
	if got := m.SimTime(); got != 1 {
		t.Errorf("SimTime() = %v, expected 1", got)
	}
	expected := "Cooling : 89.80\nEnergy : 110.00\nMass : 0.00"
	if got := m.inst.Readout.String(); got != expected {
		t.Errorf("readout = %q, expected %q", got, expected)
	}
}

func TestModelPauseStopsTicks(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRune('p'))
	if !m.Paused() {
		t.Fatal("expected paused after p")
	}

	m = update(t, m, TickMsg(time.Now()))
	if got := m.inst.Engine.Ticks(); got != 0 {
		t.Errorf("Ticks() while paused = %d, expected 0", got)
	}

	m = update(t, m, keyRune('p'))
	m = update(t, m, TickMsg(time.Now()))
	if got := m.inst.Engine.Ticks(); got != 1 {
		t.Errorf("Ticks() after resume = %d, expected 1", got)
	}
}

func TestModelBackAndQuit(t *testing.T) {
	m := newTestModel(t)
	back := update(t, m, keyRune('b'))
	if !back.BackToMenu() || back.IsQuitting() {
		t.Errorf("back: BackToMenu=%v IsQuitting=%v, expected true/false", back.BackToMenu(), back.IsQuitting())
	}

	m.quitOnBack = true
	standalone := update(t, m, keyRune('b'))
	if !standalone.IsQuitting() {
		t.Error("back without a picker should quit")
	}

	quit := update(t, newTestModel(t), keyRune('q'))
	if !quit.IsQuitting() {
		t.Error("q should quit")
	}
	if quit.View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestMenuSelect(t *testing.T) {
	scenarios := registry.List()
	if len(scenarios) < 2 {
		t.Fatalf("expected built-in scenarios, got %d", len(scenarios))
	}

	m := NewMenuModel(core.DefaultConfig())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	menu := next.(MenuModel)

	if menu.Selected() == nil {
		t.Fatal("expected a selection")
	}
	if got := menu.Selected().ScenarioID; got != scenarios[1].ID {
		t.Errorf("selected %q, expected %q", got, scenarios[1].ID)
	}
}

func TestSessionMenuViewerRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := core.DefaultConfig()
	cfg.FixedDelta = time.Second
	s := NewSessionModel(nil, cfg, "alice", nil)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.viewer == nil {
		t.Fatalf("expected viewer after selecting, err=%v", s.err)
	}

	next, _ = s.Update(TickMsg(time.Now()))
	s = next.(SessionModel)
	if got := s.viewer.inst.Engine.Ticks(); got != 1 {
		t.Errorf("Ticks() = %d, expected 1", got)
	}

	next, _ = s.Update(keyRune('b'))
	s = next.(SessionModel)
	if s.viewer != nil {
		t.Error("expected picker after back")
	}
	if s.quitting {
		t.Error("back should not end the session")
	}
}
