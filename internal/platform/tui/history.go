package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-eco/internal/storage"
)

// History browser limits
const (
	maxRuns     = 100  // Max runs to list
	maxReadings = 5000 // Max readings to load for one run
)

// HistoryModel is the Bubble Tea model for browsing recorded runs.
// Enter opens a run's readings; back returns to the run list.
type HistoryModel struct {
	store    *storage.Store
	runs     []storage.Run
	readings []storage.ReadingEntry
	openRun  *storage.Run // Non-nil while showing readings
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	width    int
	height   int
	err      error
	quitting bool
}

// NewHistoryModel creates a history browser over store.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		help:   help.New(),
		keys:   DefaultMenuKeyMap(),
		width:  width,
		height: height,
	}
	m.runs, m.err = store.Runs(maxRuns)
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a table with columns for the current mode.
func (m *HistoryModel) createTable() table.Model {
	var columns []table.Column
	if m.openRun == nil {
		columns = []table.Column{
			{Title: "Run", Width: 6},
			{Title: "Scenario", Width: 14},
			{Title: "Host", Width: 12},
			{Title: "Readings", Width: 9},
			{Title: "Started", Width: 18},
		}
	} else {
		columns = []table.Column{
			{Title: "Tick", Width: 8},
			{Title: "Stockpile", Width: 16},
			{Title: "Amount", Width: 14},
			{Title: "Capacity", Width: 10},
		}
	}

	height := m.height - 6 // Title, help and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table for the current mode.
func (m *HistoryModel) updateTableRows() {
	var rows []table.Row
	if m.openRun == nil {
		rows = make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", r.ID),
				r.Scenario,
				r.Host,
				strconv.Itoa(r.Readings),
				r.CreatedAt.Format("Jan 02 15:04:05"),
			}
		}
	} else {
		rows = make([]table.Row, len(m.readings))
		for i, rd := range m.readings {
			capacity := "-"
			if rd.Capacity.Valid {
				capacity = strconv.FormatFloat(rd.Capacity.Float64, 'f', -1, 64)
			}
			rows[i] = table.Row{
				strconv.FormatUint(rd.Tick, 10),
				rd.Label,
				strconv.FormatFloat(rd.Amount, 'f', 4, 64),
				capacity,
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.openRun == nil {
				m.quitting = true
				return m, tea.Quit
			}
			m.openRun = nil
			m.readings = nil
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if m.openRun == nil && len(m.runs) > 0 {
				run := m.runs[m.table.Cursor()]
				m.openRun = &run
				m.readings, m.err = m.store.Readings(run.ID, maxReadings)
				m.table = m.createTable()
				m.updateTableRows()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "HISTORY"
	if m.openRun != nil {
		title = fmt.Sprintf("HISTORY - run #%d (%s)", m.openRun.ID, m.openRun.Scenario)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(fmt.Sprintf("Error: %v", m.err))
	case m.openRun == nil && len(m.runs) == 0:
		b.WriteString("No runs recorded yet. Start one with 'eco run'.")
	default:
		b.WriteString(m.table.View())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// RunHistory starts the history browser.
func RunHistory(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
