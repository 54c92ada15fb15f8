package tui

import (
	"errors"
	"strings"

	"pacer/internal/pace"
	"pacer/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConverterModel is the four-wheel converter screen
type ConverterModel struct {
	session *service.Session
	focus   int // index into pace.Units
}

// NewConverterModel creates a converter focused on the session's active unit
func NewConverterModel(s *service.Session) ConverterModel {
	m := ConverterModel{session: s}
	for i, u := range pace.Units {
		if u == s.State().Active {
			m.focus = i
		}
	}
	return m
}

// Init initializes the converter
func (m ConverterModel) Init() tea.Cmd {
	return nil
}

// Focused returns the unit of the focused wheel
func (m ConverterModel) Focused() pace.Unit {
	return pace.Units[m.focus]
}

// Update handles messages
func (m ConverterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "left", "h", "shift+tab":
		m.focus = (m.focus + len(pace.Units) - 1) % len(pace.Units)
	case "right", "l", "tab":
		m.focus = (m.focus + 1) % len(pace.Units)
	case "up", "k":
		return m, m.nudge(-service.NudgeStep)
	case "down", "j":
		return m, m.nudge(service.NudgeStep)
	case "pgup":
		return m, m.nudge(-service.NudgePageStep)
	case "pgdown":
		return m, m.nudge(service.NudgePageStep)
	case "enter":
		// Promote the focused wheel to authoritative at its current option.
		return m, m.nudge(0)
	}
	return m, nil
}

func (m ConverterModel) nudge(steps int) tea.Cmd {
	if err := m.session.Nudge(m.Focused(), steps); err != nil {
		return setStatus(statusForError(err), true)
	}
	return nil
}

// View renders the converter
func (m ConverterModel) View() string {
	wheels := m.session.Wheels()

	columns := make([]string, 0, len(wheels))
	for i, w := range wheels {
		columns = append(columns, m.renderWheel(w, i == m.focus))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	state := m.session.State()
	active := mutedStyle.Render("Editing " + state.Active.Label() + "  ·  " + summaryLine(state.Precise))

	return lipgloss.JoinVertical(lipgloss.Left,
		row,
		"",
		active,
		"",
		m.renderRaceStrip(),
	)
}

func (m ConverterModel) renderWheel(w pace.Wheel, focused bool) string {
	options := m.session.Options(w.Unit)
	prev, next := neighbors(w.Value, options)

	selected := wheelSelectedStyle
	if w.Active {
		selected = wheelActiveStyle
	}

	lines := []string{
		wheelLabelStyle.Width(wheelWidth).Render(w.Unit.Label()),
		wheelNeighborStyle.Width(wheelWidth).Render(prev),
		selected.Width(wheelWidth).Render(w.Label),
		wheelNeighborStyle.Width(wheelWidth).Render(next),
		overlayStyle.Width(wheelWidth).Render(overlayText(w)),
	}

	card := cardStyle
	if focused {
		card = activeCardStyle
	}
	return card.Render(strings.Join(lines, "\n"))
}

func (m ConverterModel) renderRaceStrip() string {
	var parts []string
	for _, rt := range m.session.RaceTimes() {
		parts = append(parts, helpDescStyle.Render(rt.Name+" ")+tableRowStyle.Render(rt.Time))
	}
	return strings.Join(parts, "   ")
}

// statusForError turns a rejected input into a status line
func statusForError(err error) string {
	switch {
	case errors.Is(err, pace.ErrNotRecognized):
		return "Not recognized. Try 7:30 min/mi, 8.5 mph, 22:15 5k or 25:00 for 4 miles"
	case errors.Is(err, pace.ErrInvalidInput):
		return "Invalid value: " + err.Error()
	}
	return "Error: " + err.Error()
}
