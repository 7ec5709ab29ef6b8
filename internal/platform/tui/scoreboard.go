package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnookala/flappy-claude/internal/storage"
)

const (
	maxLives      = 100
	tableMinWidth = 44
	dateFormat    = "Jan 02 15:04"
)

var scoreboardStyles = struct {
	title, dim, empty, frame lipgloss.Style
}{
	title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	dim:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	empty: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true).Padding(2, 4),
	frame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("6")).Padding(0, 1),
}

// ScoreboardKeyMap defines the key bindings for the scoreboard. Scroll is
// handled by the table itself and only listed for help.
type ScoreboardKeyMap struct {
	Scroll  key.Binding
	Refresh key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Refresh, k.Back, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll:  key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Back:    key.NewBinding(key.WithKeys("esc", "b", "tab"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the best recorded lives.
type ScoreboardModel struct {
	store     *storage.Store // nil when no history is kept
	highScore int
	lives     []storage.LifeEntry
	stats     *storage.Stats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int

	quitting   bool
	goingBack  bool
	standalone bool
}

func NewScoreboardModel(store *storage.Store, highScore, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:     store,
		highScore: highScore,
		keys:      DefaultScoreboardKeyMap(),
		help:      help.New(),
		width:     width,
		height:    height,
	}
	m.help.Width = width
	m.resize(width, height)
	m.reload()
	return m
}

// resize rebuilds the table for a new terminal size. The date column
// takes whatever width is left.
func (m *ScoreboardModel) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	dateWidth := 14
	if avail := width - 4; avail > tableMinWidth {
		dateWidth = min(avail-26, 20)
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Mode", Width: 8},
			{Title: "Date", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-11, 3)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("14")).
		BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color("245"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	t.SetStyles(styles)

	m.table = t
	m.fillRows()
}

// reload reads lives and stats from the store. Read errors leave the
// board empty.
func (m *ScoreboardModel) reload() {
	m.lives, m.stats = nil, nil
	if m.store != nil {
		if lives, err := m.store.TopLives(maxLives); err == nil {
			m.lives = lives
		}
		if stats, err := m.store.Stats(); err == nil {
			m.stats = stats
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	rows := make([]table.Row, 0, len(m.lives))
	for i, life := range m.lives {
		rank := fmt.Sprintf("#%d", i+1)
		if life.Score >= m.highScore && m.highScore > 0 {
			rank += " *"
		}
		rows = append(rows, table.Row{rank, fmt.Sprint(life.Score), life.Mode, life.CreatedAt.Format(dateFormat)})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, m.exit()

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, m.exit()

		case key.Matches(msg, m.keys.Refresh):
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) exit() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return nil
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.standalone && (m.quitting || m.goingBack) {
		return ""
	}

	st := scoreboardStyles
	lines := []string{
		"",
		centerText(st.title.Render(fmt.Sprintf("HIGH SCORES - Best: %d", m.highScore)), m.width),
		centerText(st.dim.Render(m.statsLine()), m.width),
		"",
	}

	body := m.table.View()
	if len(m.lives) == 0 {
		body = st.empty.Render("No lives recorded yet.\nPlay a game to set a high score!")
	}
	lines = append(lines,
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, st.frame.Render(body)),
		centerText(st.dim.Render(m.help.View(m.keys)), m.width),
	)
	return strings.Join(lines, "\n")
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.Lives == 0 {
		return ""
	}
	line := fmt.Sprintf("%d lives in %d runs, average %.1f", m.stats.Lives, m.stats.Runs, m.stats.AvgScore)
	if !m.stats.LastPlayed.IsZero() {
		line += ", last played " + m.stats.LastPlayed.Format(dateFormat)
	}
	return line
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard on its own.
func RunScoreboard(store *storage.Store, highScore, width, height int) error {
	board := NewScoreboardModel(store, highScore, width, height)
	board.standalone = true
	_, err := tea.NewProgram(board, tea.WithAltScreen()).Run()
	return err
}
