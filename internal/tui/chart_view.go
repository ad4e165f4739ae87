// Package tui provides the interactive terminal chart for doselog.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eskelund/doselog/internal/chart"
	"github.com/eskelund/doselog/internal/model"
)

// Styles for the chart view chrome.
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	styleHelp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			MarginTop(1)

	styleRange = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// ChartConfig holds configuration for the chart view.
type ChartConfig struct {
	Entries    []*model.Entry // weight-bearing, chronological
	WindowSize int
}

// ChartModel is the bubbletea model for the interactive chart.
type ChartModel struct {
	entries []*model.Entry
	window  chart.Window
	full    bool
	width   int
}

// NewChartModel creates a new chart model with a trailing window.
func NewChartModel(cfg ChartConfig) *ChartModel {
	size := cfg.WindowSize
	if size == 0 {
		size = chart.DefaultWindow
	}
	return &ChartModel{
		entries: cfg.Entries,
		window:  chart.NewWindow(size, len(cfg.Entries)),
	}
}

// Init initializes the model.
func (m *ChartModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m *ChartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h", "p":
			m.full = false
			m.window = m.window.Prev(len(m.entries))
		case "right", "l", "n":
			m.full = false
			m.window = m.window.Next(len(m.entries))
		case "a", "r":
			// Toggle between the full series and the trailing window.
			m.full = !m.full
			if !m.full {
				m.window = chart.NewWindow(m.window.Size, len(m.entries))
			}
		}
		return m, nil
	}

	return m, nil
}

// View renders the chart with its header and help bar.
func (m *ChartModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	visible := m.entries
	if !m.full {
		visible = m.window.Slice(m.entries)
	}

	cfg := chart.DefaultConfig()
	cfg.Color = true
	if m.width < cfg.Width {
		cfg.Width = m.width
	}

	header := styleTitle.Render("Weight chart") + "  " + styleRange.Render(m.rangeLabel(visible))
	help := styleHelp.Render("←/→ page   a all/window   q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		chart.Render(visible, cfg),
		help,
	)
}

func (m *ChartModel) rangeLabel(visible []*model.Entry) string {
	if len(m.entries) == 0 {
		return "no entries"
	}
	if m.full || len(visible) == len(m.entries) {
		return "all entries"
	}
	end := m.window.Start + len(visible)
	return fmt.Sprintf("points %d-%d of %d", m.window.Start+1, end, len(m.entries))
}

// Run starts the interactive chart.
func Run(cfg ChartConfig) error {
	p := tea.NewProgram(NewChartModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
