package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnookala/flappy-claude/internal/core"
	"github.com/bnookala/flappy-claude/internal/games/flappy"
)

// inputBuffer is how many key presses may wait for the next frame.
const inputBuffer = 4

// Options tunes a game model.
type Options struct {
	// ScreenshotDir receives Ctrl+S captures. Empty disables screenshots.
	ScreenshotDir string

	// Standalone ends the Bubble Tea program when the session exits.
	// Embedded models just report Finished.
	Standalone bool
}

// Model is the Bubble Tea model that drives one flappy.Session at a fixed
// frame rate.
type Model struct {
	session  *flappy.Session
	screen   *core.Screen
	keys     KeyMap
	queue    *core.InputQueue
	interval time.Duration
	width    int // Terminal size, 0 until the first resize
	height   int
	opts     Options
	lastShot string
	finished bool
}

// NewModel creates a model around an already constructed session.
func NewModel(session *flappy.Session, opts Options) Model {
	cfg := session.Config()
	w, h := flappy.ScreenSize(cfg.Field.Width, cfg.Field.Height)

	return Model{
		session:  session,
		screen:   core.NewScreen(w, h),
		keys:     DefaultKeyMap(),
		queue:    core.NewInputQueue(inputBuffer),
		interval: cfg.FrameDuration(),
		opts:     opts,
	}
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err == nil {
			m.lastShot = path
		}
		return m, nil
	}

	m.queue.Push(m.keys.Input(msg))
	return m, nil
}

// handleTick runs one simulation frame with at most one queued input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}

	m.session.Step(m.queue.Pop())

	if m.session.Done() {
		m.finished = true
		if m.opts.Standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, tickCmd(m.interval)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	if m.opts.ScreenshotDir == "" {
		return "", fmt.Errorf("tui: screenshots disabled")
	}
	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		return "", err
	}

	flappy.Render(m.session.Snapshot(), m.screen)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("flappy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current frame, centered in the terminal.
func (m Model) View() string {
	if m.finished && m.opts.Standalone {
		return ""
	}

	if m.width > 0 && (m.width < m.screen.Width() || m.height < m.screen.Height()) {
		msg := fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d\nResize or press q to quit",
			m.screen.Width(), m.screen.Height(), m.width, m.height)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	flappy.Render(m.session.Snapshot(), m.screen)
	frame := RenderScreen(m.screen)
	if m.width == 0 {
		return frame
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
}

// Finished reports whether the session has exited.
func (m Model) Finished() bool {
	return m.finished
}

// ReturnRequested reports whether the player left the game to go back to
// the assistant.
func (m Model) ReturnRequested() bool {
	return m.session.Confirmed()
}

// LastScreenshot returns the path of the most recent screenshot, if any.
func (m Model) LastScreenshot() string {
	return m.lastShot
}

// Run plays a session in the alternate screen until it exits.
func Run(session *flappy.Session, opts Options) error {
	opts.Standalone = true

	p := tea.NewProgram(
		NewModel(session, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
