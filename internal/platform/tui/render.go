package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-eco/internal/eco"
)

const (
	gaugeWidth   = 20
	labelPadding = 2
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
	gaugeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	fullStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	overflowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pausedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")).Padding(0, 1)
)

// Panel is everything the viewer draws for one frame.
type Panel struct {
	Title       string
	Description string
	Readout     string        // Text buffer written by the reporter
	Readings    []eco.Reading // Same stockpiles, used for gauges
	Tick        uint64
	SimTime     float64 // Simulated seconds
	Paused      bool
	Fixed       bool // Fixed-delta clock
}

// RenderGauge draws a bar of width cells filled to fraction in [0, 1].
func RenderGauge(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	if fraction < 0 || math.IsNaN(fraction) {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// RenderPanel converts a Panel to a styled string for display.
func RenderPanel(p Panel, width int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(p.Title))
	if p.Description != "" {
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render(p.Description))
	}
	b.WriteString("\n\n")

	lines := strings.Split(p.Readout, "\n")
	labelW := 0
	for _, line := range lines {
		if n := lipgloss.Width(line); n > labelW {
			labelW = n
		}
	}

	var body strings.Builder
	for i, line := range lines {
		if i > 0 {
			body.WriteString("\n")
		}
		body.WriteString(line)
		if i < len(p.Readings) {
			if g := gaugeFor(p.Readings[i]); g != "" {
				body.WriteString(strings.Repeat(" ", labelW-lipgloss.Width(line)+labelPadding))
				body.WriteString(g)
			}
		}
	}

	panel := panelStyle
	if width > 4 {
		panel = panel.MaxWidth(width)
	}
	b.WriteString(panel.Render(body.String()))
	b.WriteString("\n")

	status := fmt.Sprintf("tick %d  t=%.1fs", p.Tick, p.SimTime)
	if p.Fixed {
		status += "  fixed dt"
	}
	b.WriteString(statusStyle.Render(status))
	if p.Paused {
		b.WriteString(" ")
		b.WriteString(pausedStyle.Render("PAUSED"))
	}

	return b.String()
}

// gaugeFor renders a fill gauge for capacitated readings.
func gaugeFor(rd eco.Reading) string {
	if rd.Capacity == nil {
		return ""
	}
	limit := *rd.Capacity
	if limit <= 0 {
		return fullStyle.Render(RenderGauge(1, gaugeWidth))
	}

	fraction := rd.Amount / limit
	bar := RenderGauge(fraction, gaugeWidth)
	switch {
	case rd.Amount > limit:
		// Converters may overshoot until the next cap pass.
		return overflowStyle.Render(bar + " +")
	case rd.Amount >= limit:
		return fullStyle.Render(bar)
	default:
		return gaugeStyle.Render(bar)
	}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
