package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/control"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Options configures the Bubble Tea host.
type Options struct {
	Session SessionOptions
	ScreenW int
	ScreenH int
}

// Model is the Bubble Tea model running one pong match.
type Model struct {
	session   *Session
	screen    *core.Screen
	drawer    *ScreenDrawer
	indicator *Indicator
	keys      KeyMap
	help      help.Model
	tickRate  int

	keyboard []core.PlayerID // Players steered by the keyboard, in binding order
	wheel    core.PlayerID   // Player steered by the mouse wheel, if any
	lit      bool
	quitting bool
}

// NewModel creates the model and its session.
func NewModel(opts Options) (Model, error) {
	session, err := NewSession(opts.Session)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		session:   session,
		indicator: NewIndicator(DefaultBlinkPeriod, DefaultBlinkUnitTicks),
		help:      help.New(),
		tickRate:  opts.Session.Config.TickRate,
	}
	if m.tickRate <= 0 {
		m.tickRate = core.DefaultConfig().TickRate
	}

	for _, id := range []core.PlayerID{core.Player1, core.Player2} {
		switch session.Kind(id) {
		case config.ControlKeys:
			m.keyboard = append(m.keyboard, id)
		case config.ControlWheel:
			if m.wheel == 0 {
				m.wheel = id
			}
		}
	}
	m.keys = DefaultKeyMap(len(m.keyboard) > 1)

	fieldW, fieldH := session.Field()
	m.screen = core.NewScreen(opts.ScreenW, screenRows(opts.ScreenH))
	m.drawer = NewScreenDrawer(m.screen, fieldW, fieldH)
	m.help.Width = opts.ScreenW
	return m, nil
}

// screenRows leaves the bottom terminal row for the help footer.
func screenRows(height int) int {
	return max(1, height-1)
}

// Session returns the session driven by the model.
func (m Model) Session() *Session {
	return m.session
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Serve):
		m.session.PressResume()
		return m, nil
	}

	// Player1 bindings come first so a lone keyboard player also gets the arrows.
	bindings := []struct {
		index int
		keys  key.Binding
		dir   control.Direction
	}{
		{0, m.keys.P1Up, control.Up},
		{0, m.keys.P1Down, control.Down},
		{1, m.keys.P2Up, control.Up},
		{1, m.keys.P2Down, control.Down},
	}
	for _, b := range bindings {
		if b.index < len(m.keyboard) && key.Matches(msg, b.keys) {
			m.session.Press(m.keyboard[b.index], b.dir)
			break
		}
	}
	return m, nil
}

// handleMouse turns wheel events into encoder counts.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.wheel == 0 {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.session.Turn(m.wheel, 1)
	case tea.MouseButtonWheelDown:
		m.session.Turn(m.wheel, -1)
	}
	return m, nil
}

// handleResize resizes the screen buffer. The simulation field keeps its size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, screenRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one session tick and updates the pause indicator.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	out := m.session.Tick()

	switch {
	case out.Resumed:
		m.indicator.Reset()
		m.lit = false
	case m.session.Waiting():
		m.lit = m.indicator.Tick()
	}

	return m, tickCmd(m.tickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.drawer.DrawNet()
	m.session.Render(m.drawer)

	if m.session.Waiting() && m.lit {
		score := m.session.Score()
		m.screen.DrawTextCentered(m.screen.Height()/2-1,
			fmt.Sprintf(" %d : %d ", score.Player1, score.Player2), core.ColorYellow)
		m.screen.DrawTextCentered(m.screen.Height()/2+1, " PRESS SPACE ", core.ColorYellow)
	}

	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse wheel steers wheel players
	)

	_, err = p.Run()
	return err
}
