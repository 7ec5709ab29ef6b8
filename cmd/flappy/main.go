// flappy is a Flappy Bird clone for the terminal, played while Claude works.
//
// Usage:
//
//	flappy                   - Play (same as flappy play)
//	flappy play              - Play until quit, or until Claude is ready
//	flappy menu              - Mode picker with the scoreboard
//	flappy scores            - Show the best recorded lives
//	flappy serve             - Start SSH server for remote play
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Config YAML (default: ~/.flappy-claude/config.yaml)
//	--difficulty <name>  - easy, normal or hard
//	--fps <rate>         - Override the frame rate
//	--seed <value>       - RNG seed for reproducible pipes
//	--db <path>          - SQLite database for history
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig        string
	flagDifficulty    string
	flagFPS           int
	flagSeed          int64
	flagMode          string
	flagSignalFile    string
	flagHighScoreFile string
	flagDBPath        string
	flagBackend       string
	flagLogFile       string
	flagLogLevel      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Claude - flap through pipes while you wait",
	Long: `Flappy Claude is a terminal Flappy Bird clone meant to be played while an
AI assistant works. When the assistant writes "ready" to the signal file,
the game asks whether to return to the session.

Available commands:
  play     - Play directly (default)
  menu     - Pick a mode, browse scores
  scores   - View the best recorded lives
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  flappy
  flappy play --mode single
  flappy play --difficulty hard --seed 42
  flappy menu
  flappy serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagMode, "mode", "auto", "After a death: auto (restart) or single (exit)")
	pf.StringVar(&flagSignalFile, "signal-file", "", "Ready signal file (default from config)")
	pf.StringVar(&flagHighScoreFile, "high-score-file", "", "High score file for the file backend")
	pf.StringVar(&flagDBPath, "db", "", "Path to SQLite database")
	pf.StringVar(&flagBackend, "backend", "", "High score backend: file or sqlite")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
