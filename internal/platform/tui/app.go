package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnookala/flappy-claude/internal/games/flappy"
	"github.com/bnookala/flappy-claude/internal/storage"
)

// SessionFactory builds a fresh game session for the chosen mode.
type SessionFactory func(mode flappy.Mode) *flappy.Session

type appScreen int

const (
	screenMenu appScreen = iota
	screenGame
	screenScores
)

// App manages the full flow: menu -> game -> menu, with the scoreboard one
// key away. It is the top-level model for `flappy menu` and SSH sessions.
type App struct {
	newSession SessionFactory
	scores     flappy.HighScoreStore // May be nil
	history    *storage.Store        // May be nil
	opts       Options
	screen     appScreen
	menu       MenuModel
	game       Model
	board      ScoreboardModel
	width      int
	height     int
	quitting   bool
}

// NewApp creates the menu-driven app.
func NewApp(newSession SessionFactory, scores flappy.HighScoreStore, history *storage.Store, width, height int, opts Options) App {
	opts.Standalone = false
	m := App{
		newSession: newSession,
		scores:     scores,
		history:    history,
		opts:       opts,
		width:      width,
		height:     height,
	}
	m.menu = NewMenuModel(width, height, m.highScore())
	return m
}

// highScore reads the current record for display; failures show 0.
func (m App) highScore() int {
	if m.scores == nil {
		return 0
	}
	high, err := m.scores.Load()
	if err != nil {
		return 0
	}
	return high
}

// Init initializes the app.
func (m App) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the current screen.
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceScores:
		m.board = NewScoreboardModel(m.history, m.highScore(), m.width, m.height)
		m.screen = screenScores
		return m, m.board.Init()

	case ChoicePlay:
		m.game = NewModel(m.newSession(m.menu.Mode()), m.opts)
		m.game.width, m.game.height = m.width, m.height
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m App) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = gameModel
	}

	if m.game.ReturnRequested() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.Finished() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m App) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.board.Update(msg)
	if board, ok := newBoard.(ScoreboardModel); ok {
		m.board = board
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.board.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

func (m App) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.width, m.height, m.highScore())
	return m, m.menu.Init()
}

// View renders the current screen.
func (m App) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.board.View()
	default:
		return m.menu.View()
	}
}

// RunApp runs the menu-driven app in the alternate screen.
func RunApp(app App) error {
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
