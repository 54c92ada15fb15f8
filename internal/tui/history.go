package tui

import (
	"fmt"

	"pacer/internal/pace"
	"pacer/internal/service"
	"pacer/internal/store"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
)

// chrome is the number of lines taken by header, nav and footer
const chrome = 7

// HistoryModel is the session history screen
type HistoryModel struct {
	session  *service.Session
	entries  []store.Entry
	viewport viewport.Model
	err      error
	width    int
	height   int
	ready    bool
}

// NewHistoryModel creates a new history model
func NewHistoryModel(s *service.Session, width, height int) HistoryModel {
	m := HistoryModel{
		session: s,
		width:   width,
		height:  height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-chrome)
		m.ready = true
	}

	return m
}

// Init loads the history
func (m HistoryModel) Init() tea.Cmd {
	return m.loadHistory
}

type historyLoadedMsg struct {
	entries []store.Entry
	err     error
}

func (m HistoryModel) loadHistory() tea.Msg {
	entries, err := m.session.History(service.DefaultHistoryLimit)
	return historyLoadedMsg{entries: entries, err: err}
}

// Update handles messages
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.err = msg.err
		m.entries = msg.entries
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chrome)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chrome
		}
		m.viewport.SetContent(m.renderContent())

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.loadHistory
		case "c":
			if err := m.session.ClearHistory(); err != nil {
				return m, setStatus(fmt.Sprintf("Error: %v", err), true)
			}
			return m, tea.Batch(m.loadHistory, setStatus("History cleared", false))
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the history screen
func (m HistoryModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	content := m.renderContent()
	if m.ready {
		content = m.viewport.View()
	}

	footer := statusStyle.Render("  j/k or arrows: scroll  r: refresh  c: clear")
	return lipgloss.JoinVertical(lipgloss.Left, content, footer)
}

func (m HistoryModel) renderContent() string {
	var sections []string
	sections = append(sections, cardTitleStyle.Render("Session History"))

	if len(m.entries) == 0 {
		sections = append(sections, mutedStyle.Render("  Nothing yet. Turn a wheel or press / to enter a pace."))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if chart := m.renderChart(); chart != "" {
		sections = append(sections, cardStyle.Render(chart), "")
	}

	header := fmt.Sprintf("  %-14s  %-8s  %-22s  %10s", "When", "Source", "Input", "Pace")
	sections = append(sections, tableHeaderStyle.Render(header))
	for _, e := range m.entries {
		sections = append(sections, tableRowStyle.Render(fmt.Sprintf("  %-14s  %-8s  %-22s  %10s",
			humanize.Time(e.CreatedAt),
			e.Source,
			truncate(e.Input, 22),
			formatWithUnit(e.MinPerMile, pace.MinPerMile),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderChart plots min/mi pace oldest to newest
func (m HistoryModel) renderChart() string {
	if len(m.entries) < 2 {
		return ""
	}

	series := make([]float64, len(m.entries))
	for i, e := range m.entries {
		series[len(m.entries)-1-i] = e.MinPerMile
	}

	width := 60
	if m.width > 0 && m.width-12 < width {
		width = max(m.width-12, 10)
	}

	return asciigraph.Plot(series,
		asciigraph.Height(8),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.Caption("pace (min/mi)"),
	)
}

func truncate(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "…"
}
