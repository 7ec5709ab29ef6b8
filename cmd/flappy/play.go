package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bnookala/flappy-claude/internal/config"
	"github.com/bnookala/flappy-claude/internal/games/flappy"
	"github.com/bnookala/flappy-claude/internal/ipc"
	"github.com/bnookala/flappy-claude/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flappy Claude",
	Long: `Start playing immediately.

Controls:
  Space/Up   - Flap
  Y / N      - Return to the session / keep playing (when Claude is ready)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Modes:
  auto    - Restart a second after every death (default)
  single  - One life; any key exits after game over

Examples:
  flappy play
  flappy play --mode single
  flappy play --difficulty easy
  flappy play --config ./my-flappy.yaml`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	mode, err := flappy.ParseMode(flagMode)
	if err != nil {
		fail("%v", err)
	}

	// Refuse to start in a terminal that cannot show the whole field
	needW, needH := flappy.ScreenSize(cfg.Field.Width, cfg.Field.Height)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		fail("terminal too small: need %dx%d, have %dx%d", needW, needH, w, h)
	}

	if err := play(cfg, mode); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// play runs one game session. The signal file exists for exactly as long
// as the game does.
func play(cfg *config.Config, mode flappy.Mode) error {
	logger, closeLog := newLogger(cfg)
	defer closeLog()

	signal := ipc.NewFileSignal(cfg.Paths.Signal)
	if err := signal.Touch(); err != nil {
		logger.Warn("could not create signal file", "path", cfg.Paths.Signal, "error", err)
	}
	defer func() {
		if err := signal.Remove(); err != nil {
			logger.Warn("could not remove signal file", "path", cfg.Paths.Signal, "error", err)
		}
	}()

	st := openStores(cfg, logger)
	defer st.close()

	opts := append(st.sessionOptions(logger, st.startRun()), flappy.WithReadySignal(signal))
	session := flappy.NewSession(cfg, mode, flagSeed, opts...)

	err := tui.Run(session, tui.Options{ScreenshotDir: screenshotDir()})

	final := session.State()
	logger.Info("game finished", "score", final.Score, "high_score", final.HighScore)
	return err
}
