package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/robotrun/internal/scene"
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))
	menuCursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true)
	menuDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	levels   []scene.Scheme
	cursor   int
	width    int
	height   int
	keys     KeyMap
	quitting bool
	selected *scene.Scheme
}

// NewMenuModel creates a picker over levels.
func NewMenuModel(levels []scene.Scheme, width, height int) MenuModel {
	return MenuModel{
		levels: levels,
		width:  width,
		height: height,
		keys:   DefaultKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Toggle):
		if len(m.levels) > 0 {
			selected := m.levels[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the level
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("R O B O T   R U N"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level", m.width))
	b.WriteString("\n\n")

	for i, l := range m.levels {
		line := fmt.Sprintf("  %s  %s", l.Name, menuDimStyle.Render(fmt.Sprintf("(%d objects)", l.ItemCount())))
		if i == m.cursor {
			line = menuCursorStyle.Render("> "+l.Name) + "  " + menuDimStyle.Render(fmt.Sprintf("(%d objects)", l.ItemCount()))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Up/Down: Navigate  |  Enter: Play  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected level, or nil if none was picked.
func (m MenuModel) Selected() *scene.Scheme {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunMenu shows the level picker and returns the chosen level.
// ok is false when the user quit without choosing.
func RunMenu(levels []scene.Scheme) (s scene.Scheme, ok bool, err error) {
	w, h := TerminalSize()
	p := tea.NewProgram(
		NewMenuModel(levels, w, h),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return scene.Scheme{}, false, err
	}

	m, isMenu := final.(MenuModel)
	if !isMenu || m.Selected() == nil {
		return scene.Scheme{}, false, nil
	}
	return *m.Selected(), true, nil
}
