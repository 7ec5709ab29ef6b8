package config

import "fmt"

// DifficultyPreset is a named adjustment applied to the pipe parameters at
// load time. Presets never change a config once the session has started.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Minimum gap that still leaves room to pass.
const minPlayableGap = 3

// ParseDifficulty converts a flag value into a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset returns a copy of cfg adjusted for the preset.
// Easy widens gaps and spacing; hard narrows both and speeds pipes up.
func ApplyPreset(cfg Config, preset DifficultyPreset) Config {
	switch preset {
	case DifficultyEasy:
		cfg.Pipes.Gap += 2
		cfg.Pipes.Spacing += 5
	case DifficultyHard:
		cfg.Pipes.Gap -= 2
		cfg.Pipes.Spacing -= 5
		cfg.Pipes.Speed *= 1.5
	}

	if cfg.Pipes.Gap < minPlayableGap {
		cfg.Pipes.Gap = minPlayableGap
	}
	if cfg.Pipes.Spacing < cfg.Pipes.Width+1 {
		cfg.Pipes.Spacing = cfg.Pipes.Width + 1
	}
	// Keep the gap on-screen for small fields
	for cfg.Pipes.Gap > minPlayableGap && 2*cfg.GapMargin() > cfg.Field.Height {
		cfg.Pipes.Gap--
	}
	return cfg
}
