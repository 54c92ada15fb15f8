package tui

import (
	"fmt"
	"strings"

	"pacer/internal/pace"
	"pacer/internal/service"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// clipboardWriteAll is swapped out in tests
var clipboardWriteAll = clipboard.WriteAll

// clipboardCopyMsg is sent after a clipboard copy
type clipboardCopyMsg struct {
	what string
	err  error
}

func copyToClipboard(what, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardCopyMsg{what: what, err: clipboardWriteAll(text)}
	}
}

// RacesModel is the race finish times screen
type RacesModel struct {
	session *service.Session
	cursor  int
}

// NewRacesModel creates a new races model
func NewRacesModel(s *service.Session) RacesModel {
	return RacesModel{session: s}
}

// Init initializes the races screen
func (m RacesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m RacesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		times := m.session.RaceTimes()
		switch key.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(times)-1 {
				m.cursor++
			}
		case "y":
			rt := times[m.cursor]
			return m, copyToClipboard(rt.Name+" time", rt.Time)
		case "Y":
			text := raceClipboardText(m.session.State().Precise.MinPerMile, times)
			return m, copyToClipboard("race times", text)
		}
	}
	return m, nil
}

// View renders the races screen
func (m RacesModel) View() string {
	state := m.session.State()

	var lines []string
	lines = append(lines, cardTitleStyle.Render("Race Finish Times"))
	lines = append(lines, mutedStyle.Render("  At "+formatWithUnit(state.Precise.MinPerMile, pace.MinPerMile)+
		" ("+formatWithUnit(state.Precise.MinPerKm, pace.MinPerKm)+")"))
	lines = append(lines, "")

	header := fmt.Sprintf("  %-15s  %-20s  %10s", "Race", "Distance", "Finish")
	lines = append(lines, tableHeaderStyle.Render(header))
	lines = append(lines, mutedStyle.Render("  "+strings.Repeat("─", 49)))

	for i, rt := range m.session.RaceTimes() {
		row := fmt.Sprintf("  %-15s  %-20s  %10s", rt.Name, pace.RaceTooltip(rt.Race.Miles), rt.Time)
		if i == m.cursor {
			lines = append(lines, tableSelectedStyle.Render(row))
		} else {
			lines = append(lines, tableRowStyle.Render(row))
		}
	}

	lines = append(lines, "")
	lines = append(lines, statusStyle.Render("  j/k: move  y: copy time  Y: copy all"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
