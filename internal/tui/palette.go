package tui

import (
	"errors"
	"strings"

	"pacer/internal/pace"
	"pacer/internal/service"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const paletteBrowsePlaceholder = "Search entries or type 7:30 /km, 8.5 mph, 22:15 5k..."

// paletteClosedMsg is sent when the palette should be dismissed
type paletteClosedMsg struct{}

func closePalette() tea.Msg {
	return paletteClosedMsg{}
}

// PaletteModel is the command palette. It filters the quick entries as
// the user types and also accepts a full free-text command. Picking an
// entry switches the input to that entry's value.
type PaletteModel struct {
	session  *service.Session
	input    textinput.Model
	entries  []pace.QuickEntry
	cursor   int
	selected *pace.QuickEntry
}

// NewPaletteModel creates a new palette model
func NewPaletteModel(s *service.Session) PaletteModel {
	ti := textinput.New()
	ti.Placeholder = paletteBrowsePlaceholder
	ti.CharLimit = 64
	ti.Width = 56
	ti.Prompt = "› "

	return PaletteModel{
		session: s,
		input:   ti,
		entries: pace.QuickEntries,
	}
}

// Open resets the palette and focuses its input
func (m PaletteModel) Open() (PaletteModel, tea.Cmd) {
	m.selected = nil
	m.cursor = 0
	m.entries = pace.QuickEntries
	m.input.Reset()
	m.input.Placeholder = paletteBrowsePlaceholder
	return m, m.input.Focus()
}

// Awaiting returns the entry whose value is being typed, if any
func (m PaletteModel) Awaiting() (pace.QuickEntry, bool) {
	if m.selected == nil {
		return pace.QuickEntry{}, false
	}
	return *m.selected, true
}

// Update handles messages
func (m PaletteModel) Update(msg tea.Msg) (PaletteModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			if m.selected != nil {
				m.selected = nil
				m.input.Reset()
				m.input.Placeholder = paletteBrowsePlaceholder
				m.entries = pace.QuickEntries
				return m, nil
			}
			m.input.Blur()
			return m, closePalette
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.selected == nil {
		m.entries = pace.FilterQuickEntries(m.input.Value())
		if m.cursor >= len(m.entries) {
			m.cursor = max(len(m.entries)-1, 0)
		}
	}
	return m, cmd
}

func (m PaletteModel) submit() (PaletteModel, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())

	if m.selected != nil {
		if err := m.session.SubmitEntry(m.selected.ID, text); err != nil {
			return m, setStatus(statusForError(err), true)
		}
		return m.done()
	}

	// Filter text that is no command picks the entry under the cursor
	// without a rejected submit.
	if text != "" {
		_, err := pace.ParseCommandInput(text)
		if !errors.Is(err, pace.ErrNotRecognized) || len(m.entries) == 0 {
			if _, err := m.session.SubmitCommand(text); err != nil {
				return m, setStatus(statusForError(err), true)
			}
			return m.done()
		}
	}

	if len(m.entries) == 0 {
		return m, nil
	}
	entry := m.entries[m.cursor]
	m.selected = &entry
	m.input.Reset()
	m.input.Placeholder = entry.Placeholder
	return m, nil
}

func (m PaletteModel) done() (PaletteModel, tea.Cmd) {
	m.input.Blur()
	status := "Set " + summaryLine(m.session.State().Precise)
	return m, tea.Batch(closePalette, setStatus(status, false))
}

// View renders the palette
func (m PaletteModel) View() string {
	var lines []string

	entry, awaiting := m.Awaiting()
	title := "Quick Entry"
	if awaiting {
		title = entry.Label
	}
	lines = append(lines, cardTitleStyle.Render(title))
	lines = append(lines, m.input.View())
	lines = append(lines, "")

	if awaiting {
		lines = append(lines, mutedStyle.Render("enter: apply  esc: back"))
		return activeCardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	group := ""
	for i, e := range m.entries {
		if e.Group != group {
			group = e.Group
			lines = append(lines, sectionStyle.Render(group))
		}
		row := "  " + e.Label
		if i == m.cursor {
			row = tableSelectedStyle.Render(row + " ")
		} else {
			row = tableRowStyle.Render(row)
		}
		lines = append(lines, row)
	}
	if len(m.entries) == 0 {
		lines = append(lines, mutedStyle.Render("  No matching entries. Press enter to parse as a command."))
	}

	lines = append(lines, "")
	lines = append(lines, mutedStyle.Render("↑/↓: select  enter: choose or apply  esc: close"))
	return activeCardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
