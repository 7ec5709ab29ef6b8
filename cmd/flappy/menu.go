package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bnookala/flappy-claude/internal/config"
	"github.com/bnookala/flappy-claude/internal/games/flappy"
	"github.com/bnookala/flappy-claude/internal/ipc"
	"github.com/bnookala/flappy-claude/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker and scoreboard",
	Long: `Start Flappy Claude in interactive menu mode.

Pick auto restart or single life, or browse the best recorded lives.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scores
  Q            - Quit

Examples:
  flappy menu
  flappy menu --difficulty hard`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	if err := menu(cfg, width, height); err != nil {
		fail("%v", err)
	}
}

func menu(cfg *config.Config, width, height int) error {
	logger, closeLog := newLogger(cfg)
	defer closeLog()

	signal := ipc.NewFileSignal(cfg.Paths.Signal)
	if err := signal.Touch(); err != nil {
		logger.Warn("could not create signal file", "path", cfg.Paths.Signal, "error", err)
	}
	defer signal.Remove()

	st := openStores(cfg, logger)
	defer st.close()

	run := st.startRun()
	seed := flagSeed
	factory := func(mode flappy.Mode) *flappy.Session {
		opts := append(st.sessionOptions(logger, run), flappy.WithReadySignal(signal))
		s := flappy.NewSession(cfg, mode, seed, opts...)
		if seed != 0 {
			seed++ // Reproducible but not identical games
		}
		return s
	}

	app := tui.NewApp(factory, st.highScores, st.history, width, height,
		tui.Options{ScreenshotDir: screenshotDir()})
	return tui.RunApp(app)
}
