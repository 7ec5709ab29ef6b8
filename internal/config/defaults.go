package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/flappy.yaml and is the fallback when that fails to parse.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:          0.5,
			FlapStrength:     -2.0,
			TerminalVelocity: 8.0,
		},
		Pipes: Pipes{
			Speed:   1,
			Gap:     7,
			Spacing: 25,
			Width:   4,
		},
		Field: Field{
			Width:  60,
			Height: 20,
			BirdX:  10,
		},
		Timing: Timing{
			FPS:          30,
			DeathDisplay: time.Second,
		},
		Paths: Paths{
			HighScore: "~/.flappy-claude/highscore",
			Signal:    "/tmp/flappy-claude-signal",
			Database:  "~/.flappy-claude/scores.db",
		},
		Storage: Storage{
			Backend: BackendFile,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
