package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/robotrun/internal/core"
	"github.com/vovakirdan/robotrun/internal/engine"
	"github.com/vovakirdan/robotrun/internal/object"
	"github.com/vovakirdan/robotrun/internal/scene"
)

// Model is the Bubble Tea model driving a controller. Bubble Tea owns the
// loop: ticks advance the logic and View draws the frame.
type Model struct {
	ctrl     *engine.Controller
	win      *Window
	rend     *Renderer
	keys     KeyMap
	tickRate int
	quitting bool
	err      error
}

// NewModel creates a model for a controller built on win and rend.
func NewModel(ctrl *engine.Controller, win *Window, rend *Renderer, tickRate int) Model {
	return Model{
		ctrl:     ctrl,
		win:      win,
		rend:     rend,
		keys:     DefaultKeyMap(),
		tickRate: tickRate,
	}
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.win.Show()
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := mapMouse(msg); ok {
			m.win.Click(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// Last row is the status bar
		m.rend.Screen().Resize(msg.Width, max(1, msg.Height-1))
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.win.Close()
		return m, tea.Quit
	}
	if k != core.KeyUnknown {
		var mods core.ModifierKey
		if msg.Alt {
			mods |= core.ModAlt
		}
		m.win.Press(k, mods)
	}
	return m, nil
}

// handleTick advances the game by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.win.ShouldClose() {
		return m, tea.Quit
	}

	m.win.PollEvents()
	if err := m.ctrl.Tick(); err != nil {
		if !errors.Is(err, engine.ErrTerminated) {
			m.err = err
		}
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.tickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.ctrl.Render()
	return RenderScreen(m.rend.Screen()) + "\n" + m.statusBar()
}

func (m Model) statusBar() string {
	var parts []string
	parts = append(parts, m.ctrl.Scheme().Name)

	for i, rb := range m.ctrl.Robots() {
		label := fmt.Sprintf("robot %d: %s", i+1, rb.Status())
		switch rb.Status() {
		case object.StatusDead:
			label = deadStyle.Render(label)
		case object.StatusStopped:
			label = finishStyle.Render(label)
		}
		parts = append(parts, label)
	}

	var help []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	parts = append(parts, strings.Join(help, " · "))

	return statusStyle.Width(m.rend.Screen().Width()).Render(strings.Join(parts, "  │  "))
}

// TerminalSize returns the size of the terminal on stdout, or 80x24 when
// stdout is not a terminal.
func TerminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// Run builds a controller for the scheme on a terminal screen and plays it
// until the user quits.
func Run(cfg core.RuntimeConfig, s scene.Scheme, opts ...engine.Option) error {
	w, h := TerminalSize()
	screen := core.NewScreen(w, max(1, h-1))
	win := NewWindow()
	rend := NewRenderer(screen)

	ctrl, err := engine.New(cfg, s, win, rend, opts...)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	p := tea.NewProgram(
		NewModel(ctrl, win, rend, cfg.TickRate),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse clicks reach the input queue
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

