package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/bnookala/flappy-claude/internal/config"
	"github.com/bnookala/flappy-claude/internal/games/flappy"
	"github.com/bnookala/flappy-claude/internal/logging"
	"github.com/bnookala/flappy-claude/internal/storage"
)

// fail prints an error and exits like every other command.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig builds the effective configuration: file, preset, then flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return nil, err
	}
	cfg = config.ApplyPreset(cfg, preset)

	if flagFPS > 0 {
		cfg.Timing.FPS = flagFPS
	}
	if flagSignalFile != "" {
		cfg.Paths.Signal = flagSignalFile
	}
	if flagHighScoreFile != "" {
		cfg.Paths.HighScore = flagHighScoreFile
	}
	if flagDBPath != "" {
		cfg.Paths.Database = flagDBPath
	}
	if flagBackend != "" {
		cfg.Storage.Backend = flagBackend
	}
	if flagLogFile != "" {
		cfg.Paths.Log = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg, err = cfg.Resolve()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// newLogger opens the log file named in the config, if any.
func newLogger(cfg *config.Config) (*log.Logger, func() error) {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		fail("%v", err)
	}
	logger, closeFn, err := logging.New(cfg.Paths.Log, level)
	if err != nil {
		fail("%v", err)
	}
	return logger, closeFn
}

// stores holds the persistence a game needs. Any field may be nil.
type stores struct {
	highScores flappy.HighScoreStore
	history    *storage.Store
}

// openStores opens the high score backend and, best effort, the SQLite
// history. Problems are logged; the game runs without them.
func openStores(cfg *config.Config, logger *log.Logger) stores {
	var s stores

	db, err := storage.Open(cfg.Paths.Database)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
	} else {
		s.history = db
	}

	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		if s.history != nil {
			s.highScores = s.history
		}
	default:
		fileStore, err := storage.NewFileStore(cfg.Paths.HighScore)
		if err != nil {
			logger.Warn("could not open high score file", "error", err)
		} else {
			s.highScores = fileStore
		}
	}
	return s
}

// close releases the database.
func (s stores) close() {
	if s.history != nil {
		s.history.Close()
	}
}

// sessionOptions returns the options every local session gets.
func (s stores) sessionOptions(logger *log.Logger, run *storage.Run) []flappy.Option {
	opts := []flappy.Option{flappy.WithLogger(logger)}
	if s.highScores != nil {
		opts = append(opts, flappy.WithHighScoreStore(s.highScores))
	}
	if run != nil {
		opts = append(opts, flappy.WithLifeRecorder(run))
	}
	return opts
}

// startRun opens a history run if the database is available.
func (s stores) startRun() *storage.Run {
	if s.history == nil {
		return nil
	}
	return s.history.StartRun()
}

// screenshotDir returns ~/.flappy-claude/screenshots, or empty if home is unknown.
func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy-claude", "screenshots")
}
