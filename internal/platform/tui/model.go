// Package tui provides the Bubble Tea integration: the render controller that
// owns the terminal, the outer round state machine, and the SSH server for
// remote play.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/game"
)

// sessionState is the outer state machine: Menu -> Playing -> RoundEnd and
// back to Menu keys, until a quit.
type sessionState int

const (
	stateMenu sessionState = iota
	statePlaying
	stateRoundEnd
)

const ballGlyph = 'o'

// eventMsg delivers one engine event to the update loop.
type eventMsg game.Event

// waitEvent blocks on the engine's event channel. Exactly one of these
// commands is outstanding at a time, so events reach Update strictly in
// emission order with a single consumer.
func waitEvent(ch <-chan game.Event) tea.Cmd {
	return func() tea.Msg {
		return eventMsg(<-ch)
	}
}

// Model is the render controller: the only code that touches the screen
// buffer. Activities communicate intent through the event channel and never
// draw themselves.
type Model struct {
	engine *game.Engine
	screen *core.Screen
	keys   KeyMap
	help   help.Model

	state    sessionState
	width    int
	height   int
	quitting bool
}

// NewModel creates the session model for the given engine and terminal size.
func NewModel(eng *game.Engine, width, height int) Model {
	return Model{
		engine: eng,
		screen: core.NewScreen(width, height),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
}

// Init implements tea.Model. The intro menu is rendered by View; nothing to
// start until the player presses space.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and drives the state machine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case eventMsg:
		return m.handleEvent(game.Event(msg))
	}
	return m, nil
}

// handleKey processes keyboard input per state. During play, keys are not
// applied here: they are forwarded to the input activity, which owns the
// paddle.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == statePlaying {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.engine.Press(game.CommandMoveUp)
		case key.Matches(msg, m.keys.Down):
			m.engine.Press(game.CommandMoveDown)
		case key.Matches(msg, m.keys.Quit):
			// Routed through the input activity: it sets the exit flag and
			// emits the sentinel that unblocks the event wait.
			m.engine.Press(game.CommandQuit)
		}
		return m, nil
	}

	// Menu and round-end share bindings: space starts, q quits.
	switch {
	case key.Matches(msg, m.keys.Start):
		return m.startRound()
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// startRound resets the shared state, spawns the round activities and arms
// the event wait. The previous round's activities were joined when the round
// ended, so the reset never races them.
func (m Model) startRound() (tea.Model, tea.Cmd) {
	m.engine.StartRound()
	m.state = statePlaying
	m.drawField()
	return m, waitEvent(m.engine.Events())
}

// handleResize recomputes field bounds and redraws. The engine pulls any
// now-invalid position back into range before the next collision check.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width
	m.engine.Resize(msg.Width, msg.Height)
	m.screen.Resize(msg.Width, msg.Height)

	switch m.state {
	case statePlaying:
		m.drawField()
	case stateRoundEnd:
		m.drawField()
		m.drawBanner()
	}
	return m, nil
}

// handleEvent consumes one engine event: re-read state under the lock, erase
// the old glyphs, draw the new ones. RoundOver and Quit end the Playing
// state; everything else re-arms the wait.
func (m Model) handleEvent(ev game.Event) (tea.Model, tea.Cmd) {
	if m.state != statePlaying {
		// Stale event from a round that already ended; the engine drains
		// leftovers before the next round starts.
		return m, nil
	}

	switch ev {
	case game.EventPlayerMoved:
		m.redrawPlayer()
	case game.EventAIMoved:
		m.redrawAI()
	case game.EventBallMoved:
		m.redrawBall()
	case game.EventRoundOver, game.EventQuit:
		m.engine.StopRound()
		if m.engine.Exiting() {
			m.quitting = true
			return m, tea.Quit
		}
		m.state = stateRoundEnd
		m.drawBanner()
		return m, nil
	}
	return m, waitEvent(m.engine.Events())
}

// drawField redraws the whole field: both paddles and the ball.
func (m Model) drawField() {
	s := m.engine.State()
	m.screen.Clear()
	s.Lock()
	m.drawPaddle(s.Player, s.PaddleWidth, core.ColorPaddle)
	m.drawPaddle(s.AI, s.PaddleWidth, core.ColorAI)
	m.screen.Set(s.Ball.Col, s.Ball.Row, ballGlyph, core.ColorBall)
	s.Unlock()
}

// redrawPlayer moves the player paddle glyphs from the previous row to the
// current one. The lock spans the whole erase-and-draw so no other redraw or
// activity write interleaves with it.
func (m Model) redrawPlayer() {
	s := m.engine.State()
	s.Lock()
	m.erasePaddle(s.Player, s.PaddleWidth)
	m.drawPaddle(s.Player, s.PaddleWidth, core.ColorPaddle)
	s.Unlock()
}

// redrawAI does the same for the AI paddle.
func (m Model) redrawAI() {
	s := m.engine.State()
	s.Lock()
	m.erasePaddle(s.AI, s.PaddleWidth)
	m.drawPaddle(s.AI, s.PaddleWidth, core.ColorAI)
	s.Unlock()
}

// redrawBall erases the ball at its previous position and draws it at the
// current one.
func (m Model) redrawBall() {
	s := m.engine.State()
	s.Lock()
	m.screen.Erase(s.Ball.PrevCol, s.Ball.PrevRow)
	m.screen.Set(s.Ball.Col, s.Ball.Row, ballGlyph, core.ColorBall)
	s.Unlock()
}

// erasePaddle blanks the paddle cells at its previous row.
func (m Model) erasePaddle(p game.Paddle, width int) {
	half := width / 2
	for i := -half; i <= half; i++ {
		m.screen.Erase(p.Col, p.PrevRow+i)
	}
}

// drawPaddle draws the paddle as a column of background-colored cells.
func (m Model) drawPaddle(p game.Paddle, width int, c core.Color) {
	half := width / 2
	for i := -half; i <= half; i++ {
		m.screen.Set(p.Col, p.Row+i, ' ', c)
	}
}

// drawBanner superimposes the endgame message on the field.
func (m Model) drawBanner() {
	s := m.engine.State()
	s.Lock()
	winner := s.Winner
	s.Unlock()

	msg := "GAME WON"
	if winner == game.SideAI {
		msg = "GAME LOST"
	}
	y := m.screen.Height() / 2
	m.screen.DrawTextCentered(y, msg, core.ColorTitle)
	m.screen.DrawTextCentered(y+1, "press space to restart, q to quit", core.ColorTitle)
}

var titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.state == stateMenu {
		return m.menuView()
	}
	return RenderScreen(m.screen)
}

// menuView renders the intro screen with a help footer.
func (m Model) menuView() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("P O N G"),
		"",
		"use the arrow keys to move the paddle",
		"press space to start, q to quit",
	)
	content := lipgloss.Place(m.width, core.Max(m.height-1, 1), lipgloss.Center, lipgloss.Center, body)
	return content + "\n" + m.help.View(m.keys)
}

// Run starts the local game UI and blocks until the player quits. Always
// stops any round still running so no activity outlives the UI.
func Run(eng *game.Engine, width, height int) error {
	p := tea.NewProgram(NewModel(eng, width, height), tea.WithAltScreen())
	_, err := p.Run()
	eng.StopRound()
	return err
}
