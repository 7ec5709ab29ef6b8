package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/bnookala/flappy-claude/internal/config"
)

func defaultConfig() *config.Config {
	cfg := config.Default()
	return &cfg
}

// containsText matches against the view with styling removed.
func containsText(view, text string) bool {
	return strings.Contains(ansi.Strip(view), text)
}
