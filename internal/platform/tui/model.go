package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-eco/internal/config"
	"github.com/vovakirdan/tui-eco/internal/core"
	"github.com/vovakirdan/tui-eco/internal/eco"
)

// Model is the Bubble Tea model for the readout viewer. The Bubble Tea event
// loop is the only goroutine that ticks the engine.
type Model struct {
	inst       *config.Instance
	clock      *core.Clock
	config     core.RuntimeConfig
	keys       ViewerKeyMap
	help       help.Model
	simTime    float64
	paused     bool
	quitting   bool
	backToMenu bool
	quitOnBack bool // No picker to return to
}

// NewModel creates a viewer for the given simulation instance.
func NewModel(inst *config.Instance, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		inst:   inst,
		clock:  core.NewClock(cfg),
		config: cfg,
		keys:   DefaultViewerKeyMap(),
		help:   h,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.quitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		if !m.paused {
			// Do not simulate the time spent paused.
			m.clock.Reset()
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleTick advances the simulation by the clock's delta.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	if !m.paused {
		dt := m.clock.Delta(now)
		m.inst.Engine.Tick(dt)
		m.simTime += dt
	}

	return m, tickCmd(m.config.TickInterval())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	panel := Panel{
		Title:       m.inst.Topology.Name,
		Description: m.inst.Topology.Description,
		Readout:     m.inst.Readout.String(),
		Readings:    eco.Readings(m.inst.Network()),
		Tick:        m.inst.Engine.Ticks(),
		SimTime:     m.simTime,
		Paused:      m.paused,
		Fixed:       m.clock.Fixed(),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderPanel(panel, m.config.ScreenW),
		"",
		m.help.View(m.keys),
	)
}

// Paused reports whether ticking is suspended.
func (m Model) Paused() bool {
	return m.paused
}

// SimTime returns the simulated seconds so far.
func (m Model) SimTime() float64 {
	return m.simTime
}

// BackToMenu reports whether the user asked to return to the picker.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a single instance. With fromMenu
// set, the back key ends the program and reports true so the caller can
// show the picker again; otherwise back quits.
func Run(inst *config.Instance, cfg core.RuntimeConfig, fromMenu bool) (backToMenu bool, err error) {
	model := NewModel(inst, cfg)
	model.quitOnBack = !fromMenu

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	return ok && m.BackToMenu(), nil
}
