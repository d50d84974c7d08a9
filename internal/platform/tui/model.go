package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/session"
)

// Model is the Bubble Tea model for running a game session.
type Model struct {
	session       *session.Session
	screen        *core.Screen
	held          *HeldKeys
	keys          KeyMap
	help          help.Model
	quitRequested bool
	quitting      bool
	now           func() time.Time
}

// NewModel creates a new Bubble Tea model for the given session.
// The screen is one row shorter than the terminal to leave room for the help line.
func NewModel(s *session.Session, hold time.Duration) Model {
	cfg := s.Config()
	return Model{
		session: s,
		screen:  core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		held:    NewHeldKeys(hold),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		now:     time.Now,
	}
}

// Init starts the tick loop. The session has already reset the game.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.Config().TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		// Delivered with the next tick, before entity updates
		m.quitRequested = true
	case core.ActionNone:
	default:
		m.held.Press(action, m.now())
	}
	return m, nil
}

// handleResize processes window resize events.
// Game geometry is in field pixels, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := m.held.Frame(now)
	if m.quitRequested {
		frame.Set(core.ActionQuit)
	}

	m.session.Tick(frame)

	if m.session.Done() {
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.session.Config().TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.session.Game().Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the session and blocks until it ends.
func Run(s *session.Session, hold time.Duration) error {
	p := tea.NewProgram(
		NewModel(s, hold),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
