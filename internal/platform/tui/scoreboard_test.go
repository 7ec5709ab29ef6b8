package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnookala/flappy-claude/internal/storage"
)

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 0, 80, 24)
	if !containsText(m.View(), "No lives recorded yet.") {
		t.Errorf("expected the empty message:\n%s", m.View())
	}
}

func TestScoreboardListsLives(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	a, b := store.StartRun(), store.StartRun()
	a.RecordLife("auto", 4)
	a.RecordLife("auto", 9)
	b.RecordLife("single", 2)

	m := NewScoreboardModel(store, 9, 100, 30)
	if len(m.lives) != 3 || m.lives[0].Score != 9 {
		t.Fatalf("lives = %v, expected 3 ordered by score", m.lives)
	}

	view := m.View()
	for _, want := range []string{"Best: 9", "3 lives in 2 runs", "single"} {
		if !containsText(view, want) {
			t.Errorf("scoreboard missing %q:\n%s", want, view)
		}
	}
}

func TestScoreboardStandaloneQuits(t *testing.T) {
	m := NewScoreboardModel(nil, 0, 80, 24)
	m.standalone = true

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	board := next.(ScoreboardModel)
	if !board.IsQuitting() || cmd == nil {
		t.Fatal("expected quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("standalone scoreboard should quit the program")
	}
}

func TestScoreboardRefresh(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	run := store.StartRun()
	run.RecordLife("auto", 3)

	m := NewScoreboardModel(store, 3, 100, 30)
	run.RecordLife("auto", 7)
	if len(m.lives) != 1 {
		t.Fatalf("lives = %d before refresh, expected 1", len(m.lives))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	board := next.(ScoreboardModel)
	if len(board.lives) != 2 || board.lives[0].Score != 7 {
		t.Errorf("lives after refresh = %v, expected best 7 first", board.lives)
	}
}
