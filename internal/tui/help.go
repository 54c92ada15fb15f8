package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	// Navigation section
	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Converter"},
		{"2", "Race finish times"},
		{"3", "Session history"},
		{"/ or :", "Command palette"},
		{"t", "Toggle light / dark theme"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	// Converter keys
	convSection := m.renderSection("Converter", []keyHelp{
		{"h / l, tab", "Focus previous / next wheel"},
		{"k / up", "Previous option"},
		{"j / down", "Next option"},
		{"pgup / pgdn", "Jump ten options"},
		{"enter", "Use the focused wheel's option"},
	})
	sections = append(sections, convSection)

	// Races keys
	racesSection := m.renderSection("Race Times", []keyHelp{
		{"j / k", "Move cursor"},
		{"y", "Copy selected finish time"},
		{"Y", "Copy all finish times"},
	})
	sections = append(sections, racesSection)

	// History keys
	histSection := m.renderSection("History", []keyHelp{
		{"r", "Refresh"},
		{"c", "Clear this session's history"},
	})
	sections = append(sections, histSection)

	sections = append(sections, m.renderCommandHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderCommandHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render("Commands"))

	commands := []struct {
		example string
		desc    string
	}{
		{"7:30 min/mi, 4:40 /km", "Pace per mile or kilometer"},
		{"8.5 mph, 13.7 km/h", "Speed"},
		{"22:15 5k, 1:45:30 half", "Race finish time"},
		{"25:00 for 4 miles", "Finish time over any distance"},
	}

	for _, c := range commands {
		lines = append(lines, "  "+helpKeyStyle.Render(c.example))
		lines = append(lines, "  "+mutedStyle.Render(c.desc))
	}

	return strings.Join(lines, "\n")
}
