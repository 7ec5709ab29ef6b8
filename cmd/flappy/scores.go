package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bnookala/flappy-claude/internal/platform/tui"
	"github.com/bnookala/flappy-claude/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresInteractive bool
	flagScoresClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded lives",
	Long: `Display the high score and the best recorded lives.

Every life that scores at least one point is kept in the SQLite history
(see --db), whichever high score backend is configured.

Examples:
  flappy scores
  flappy scores --limit 25
  flappy scores --interactive
  flappy scores --clear`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of lives to show")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse in a scrollable table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the life history (keeps the high score)")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog := newLogger(cfg)
	defer closeLog()

	st := openStores(cfg, logger)
	defer st.close()

	high := 0
	if st.highScores != nil {
		if loaded, err := st.highScores.Load(); err == nil {
			high = loaded
		}
	}

	if flagScoresClear {
		if st.history == nil {
			fail("scores database unavailable: %s", cfg.Paths.Database)
		}
		if err := st.history.ClearLives(); err != nil {
			fail("%v", err)
		}
		fmt.Println("Life history cleared.")
		return
	}

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(st.history, high, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	fmt.Println("High Scores - Flappy Claude")
	fmt.Println()
	fmt.Printf("Best: %d\n", high)
	fmt.Println()

	var lives []storage.LifeEntry
	if st.history != nil {
		lives, err = st.history.TopLives(flagScoresLimit)
		if err != nil {
			fail("retrieving scores: %v", err)
		}
	}

	if len(lives) == 0 {
		fmt.Println("No lives recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "Rank", "Score", "Mode", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "----", "-----", "----", "----")

	for i, entry := range lives {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6s  %s\n", i+1, entry.Score, entry.Mode, dateStr)
	}

	if stats, err := st.history.Stats(); err == nil && stats.Lives > 0 {
		fmt.Println()
		fmt.Printf("%d lives over %d runs, average %.1f\n", stats.Lives, stats.Runs, stats.AvgScore)
	}
}
