package tui

import "github.com/charmbracelet/lipgloss"

// palette is one color theme
type palette struct {
	primary   lipgloss.Color
	secondary lipgloss.Color
	warning   lipgloss.Color
	danger    lipgloss.Color
	muted     lipgloss.Color
	text      lipgloss.Color
	onPrimary lipgloss.Color
}

var (
	darkPalette = palette{
		primary:   lipgloss.Color("#7C3AED"), // Purple
		secondary: lipgloss.Color("#10B981"), // Green
		warning:   lipgloss.Color("#F59E0B"), // Amber
		danger:    lipgloss.Color("#EF4444"), // Red
		muted:     lipgloss.Color("#6B7280"), // Gray
		text:      lipgloss.Color("#F9FAFB"), // Light gray
		onPrimary: lipgloss.Color("#F9FAFB"),
	}

	lightPalette = palette{
		primary:   lipgloss.Color("#6D28D9"),
		secondary: lipgloss.Color("#047857"),
		warning:   lipgloss.Color("#B45309"),
		danger:    lipgloss.Color("#B91C1C"),
		muted:     lipgloss.Color("#4B5563"),
		text:      lipgloss.Color("#111827"),
		onPrimary: lipgloss.Color("#FFFFFF"),
	}
)

// Styles of the active theme, rebuilt by applyTheme
var (
	// App chrome
	headerStyle      lipgloss.Style
	navStyle         lipgloss.Style
	navActiveStyle   lipgloss.Style
	navInactiveStyle lipgloss.Style

	// Cards and boxes
	cardStyle       lipgloss.Style
	activeCardStyle lipgloss.Style
	cardTitleStyle  lipgloss.Style
	sectionStyle    lipgloss.Style

	// Wheels
	wheelLabelStyle    lipgloss.Style
	wheelSelectedStyle lipgloss.Style
	wheelActiveStyle   lipgloss.Style
	wheelNeighborStyle lipgloss.Style
	overlayStyle       lipgloss.Style

	// Table
	tableHeaderStyle   lipgloss.Style
	tableRowStyle      lipgloss.Style
	tableSelectedStyle lipgloss.Style

	// Status
	statusStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
	errorStyle   lipgloss.Style
	successStyle lipgloss.Style

	// Help
	helpKeyStyle  lipgloss.Style
	helpDescStyle lipgloss.Style
)

func init() {
	applyPalette(darkPalette)
}

// resolveDark decides whether a theme name renders dark. "system" asks
// the terminal for its background color.
func resolveDark(theme string) bool {
	switch theme {
	case "light":
		return false
	case "dark":
		return true
	}
	return lipgloss.HasDarkBackground()
}

// applyTheme switches every style to the light or dark palette
func applyTheme(dark bool) {
	if dark {
		applyPalette(darkPalette)
		return
	}
	applyPalette(lightPalette)
}

func applyPalette(p palette) {
	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.onPrimary).
		Background(p.primary).
		Padding(0, 1).
		MarginBottom(1)

	navStyle = lipgloss.NewStyle().
		Foreground(p.muted).
		MarginBottom(1)

	navActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.primary)

	navInactiveStyle = lipgloss.NewStyle().
		Foreground(p.muted)

	cardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.muted).
		Padding(0, 1)

	activeCardStyle = cardStyle.
		BorderForeground(p.primary)

	cardTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.primary).
		MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.secondary)

	wheelLabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.muted).
		Align(lipgloss.Center)

	wheelSelectedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.text).
		Align(lipgloss.Center)

	wheelActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.onPrimary).
		Background(p.primary).
		Align(lipgloss.Center)

	wheelNeighborStyle = lipgloss.NewStyle().
		Foreground(p.muted).
		Align(lipgloss.Center)

	overlayStyle = lipgloss.NewStyle().
		Foreground(p.warning).
		Align(lipgloss.Center)

	tableHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.primary)

	tableRowStyle = lipgloss.NewStyle().
		Foreground(p.text)

	tableSelectedStyle = lipgloss.NewStyle().
		Bold(true).
		Background(p.primary).
		Foreground(p.onPrimary)

	statusStyle = lipgloss.NewStyle().
		Foreground(p.muted).
		MarginTop(1)

	mutedStyle = lipgloss.NewStyle().
		Foreground(p.muted)

	errorStyle = lipgloss.NewStyle().
		Foreground(p.danger)

	successStyle = lipgloss.NewStyle().
		Foreground(p.secondary)

	helpKeyStyle = lipgloss.NewStyle().
		Foreground(p.primary).
		Bold(true)

	helpDescStyle = lipgloss.NewStyle().
		Foreground(p.muted)
}

// RenderKeyHelp renders a key binding help item
func RenderKeyHelp(key, desc string) string {
	return helpKeyStyle.Render(key) + " " + helpDescStyle.Render(desc)
}
