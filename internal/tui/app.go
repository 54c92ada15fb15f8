package tui

import (
	"pacer/internal/config"
	"pacer/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenConverter Screen = iota
	ScreenRaces
	ScreenHistory
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	converter ConverterModel
	races     RacesModel
	history   HistoryModel
	help      HelpModel

	// Command palette overlay
	palette     PaletteModel
	paletteOpen bool

	session *service.Session
	dark    bool

	// Window dimensions
	width  int
	height int

	// Status message
	status    string
	statusErr bool
}

// NewApp creates a new App around a session
func NewApp(session *service.Session, display config.DisplayConfig) *App {
	dark := resolveDark(display.Theme)
	applyTheme(dark)

	return &App{
		screen:    ScreenConverter,
		session:   session,
		dark:      dark,
		converter: NewConverterModel(session),
		races:     NewRacesModel(session),
		history:   NewHistoryModel(session, 0, 0),
		help:      NewHelpModel(),
		palette:   NewPaletteModel(session),
	}
}

// statusMsg sets the footer status line
type statusMsg struct {
	text  string
	isErr bool
}

func setStatus(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isErr: isErr}
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.converter.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		if a.paletteOpen {
			var cmd tea.Cmd
			a.palette, cmd = a.palette.Update(msg)
			return a, cmd
		}

		a.status = ""
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "1":
			a.screen = ScreenConverter
			return a, nil
		case "2":
			a.screen = ScreenRaces
			return a, nil
		case "3":
			a.screen = ScreenHistory
			return a, a.history.Init()
		case "/", ":", "ctrl+k":
			a.paletteOpen = true
			var cmd tea.Cmd
			a.palette, cmd = a.palette.Open()
			return a, cmd
		case "t":
			a.dark = !a.dark
			applyTheme(a.dark)
			return a, nil
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
				a.screen = ScreenHelp
			}
			return a, nil
		case "esc":
			if a.screen == ScreenHelp {
				a.screen = a.prevScreen
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// History sizes its viewport regardless of the visible screen.
		m, cmd := a.history.Update(msg)
		a.history = m.(HistoryModel)
		return a, cmd

	case statusMsg:
		a.status = msg.text
		a.statusErr = msg.isErr
		return a, nil

	case paletteClosedMsg:
		a.paletteOpen = false
		if a.screen == ScreenHistory {
			return a, a.history.Init()
		}
		return a, nil

	case clipboardCopyMsg:
		if msg.err != nil {
			a.status, a.statusErr = "Clipboard unavailable: "+msg.err.Error(), true
		} else {
			a.status, a.statusErr = "Copied "+msg.what, false
		}
		return a, nil

	case historyLoadedMsg:
		m, cmd := a.history.Update(msg)
		a.history = m.(HistoryModel)
		return a, cmd
	}

	if a.paletteOpen {
		var cmd tea.Cmd
		a.palette, cmd = a.palette.Update(msg)
		return a, cmd
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenConverter:
		var m tea.Model
		m, cmd = a.converter.Update(msg)
		a.converter = m.(ConverterModel)
	case ScreenRaces:
		var m tea.Model
		m, cmd = a.races.Update(msg)
		a.races = m.(RacesModel)
	case ScreenHistory:
		var m tea.Model
		m, cmd = a.history.Update(msg)
		a.history = m.(HistoryModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenConverter:
		content = a.converter.View()
	case ScreenRaces:
		content = a.races.View()
	case ScreenHistory:
		content = a.history.View()
	case ScreenHelp:
		content = a.help.View()
	}

	if a.paletteOpen {
		content = a.palette.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Pacer · pace and speed converter")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Converter", ScreenConverter},
		{"2", "Races", ScreenRaces},
		{"3", "History", ScreenHistory},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen && !a.paletteOpen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[/] Enter") + "  " + navInactiveStyle.Render("[t] Theme") + "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status == "" {
		return ""
	}
	if a.statusErr {
		return errorStyle.MarginTop(1).Render(a.status)
	}
	return successStyle.MarginTop(1).Render(a.status)
}
