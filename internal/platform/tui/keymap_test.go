package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnookala/flappy-claude/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapInput(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Input
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.InputFlap},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.InputFlap},
		{"w", runeKey('w'), core.InputFlap},
		{"q", runeKey('q'), core.InputQuit},
		{"Q", runeKey('Q'), core.InputQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.InputQuit},
		{"y", runeKey('y'), core.InputConfirm},
		{"Y", runeKey('Y'), core.InputConfirm},
		{"n", runeKey('n'), core.InputDecline},
		{"N", runeKey('N'), core.InputDecline},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.InputNone},
		{"x", runeKey('x'), core.InputAnyKey},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.InputAnyKey},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Input(tc.msg); got != tc.expected {
				t.Errorf("Input(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 || len(keys.FullHelp()) == 0 {
		t.Error("help bindings should not be empty")
	}
}
