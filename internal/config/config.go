// Package config provides YAML-based configuration loading and difficulty
// presets. A Config is loaded once and treated as read-only afterwards.
package config

import (
	"fmt"
	"math"
	"time"
)

// Config is the complete, immutable parameter set of a game session.
type Config struct {
	Physics Physics `yaml:"physics"`
	Pipes   Pipes   `yaml:"pipes"`
	Field   Field   `yaml:"field"`
	Timing  Timing  `yaml:"timing"`
	Paths   Paths   `yaml:"paths"`
	Storage Storage `yaml:"storage"`
}

// Physics defines the bird's motion parameters, in rows and frames.
type Physics struct {
	Gravity          float64 `yaml:"gravity"`
	FlapStrength     float64 `yaml:"flap_strength"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
}

// Pipes defines obstacle parameters.
type Pipes struct {
	Speed   float64 `yaml:"speed"`
	Gap     int     `yaml:"gap"`
	Spacing int     `yaml:"spacing"`
	Width   int     `yaml:"width"`
}

// Field defines the playing field geometry.
type Field struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	BirdX  int `yaml:"bird_x"`
}

// Timing defines frame cadence and screen durations.
type Timing struct {
	FPS          int           `yaml:"fps"`
	DeathDisplay time.Duration `yaml:"death_display"`
}

// Paths locates the files a session touches. "~" is expanded by Resolve.
type Paths struct {
	HighScore string `yaml:"high_score"`
	Signal    string `yaml:"signal"`
	Database  string `yaml:"database"`
	Log       string `yaml:"log"`
}

// Storage selects the high-score backend.
type Storage struct {
	Backend string `yaml:"backend"`
}

// High-score backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// FrameDuration returns the length of one simulation frame.
func (c *Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.Timing.FPS)
}

// DeathFrames returns the death display delay expressed in whole frames.
// It is never less than one frame.
func (c *Config) DeathFrames() int {
	frames := int(math.Ceil(c.Timing.DeathDisplay.Seconds() * float64(c.Timing.FPS)))
	if frames < 1 {
		frames = 1
	}
	return frames
}

// GapMargin returns the minimum distance between a gap center and the
// field edges: half the gap plus a two-row buffer.
func (c *Config) GapMargin() int {
	return c.Pipes.Gap/2 + 2
}

// Validate checks that the configuration describes a playable field.
func (c *Config) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("config: field must be positive, got %dx%d", c.Field.Width, c.Field.Height)
	case c.Field.BirdX < 0 || c.Field.BirdX >= c.Field.Width:
		return fmt.Errorf("config: bird_x %d outside field width %d", c.Field.BirdX, c.Field.Width)
	case c.Timing.FPS <= 0:
		return fmt.Errorf("config: fps must be positive, got %d", c.Timing.FPS)
	case c.Timing.DeathDisplay < 0:
		return fmt.Errorf("config: death_display must not be negative, got %s", c.Timing.DeathDisplay)
	case c.Pipes.Width <= 0:
		return fmt.Errorf("config: pipe width must be positive, got %d", c.Pipes.Width)
	case c.Pipes.Gap <= 0:
		return fmt.Errorf("config: pipe gap must be positive, got %d", c.Pipes.Gap)
	case c.Pipes.Speed <= 0:
		return fmt.Errorf("config: pipe speed must be positive, got %g", c.Pipes.Speed)
	case c.Pipes.Spacing < c.Pipes.Width:
		return fmt.Errorf("config: pipe spacing %d narrower than pipe width %d", c.Pipes.Spacing, c.Pipes.Width)
	case 2*c.GapMargin() > c.Field.Height:
		return fmt.Errorf("config: gap %d does not fit a field of height %d", c.Pipes.Gap, c.Field.Height)
	case c.Physics.TerminalVelocity <= 0:
		return fmt.Errorf("config: terminal_velocity must be positive, got %g", c.Physics.TerminalVelocity)
	case math.Abs(c.Physics.FlapStrength) > c.Physics.TerminalVelocity:
		return fmt.Errorf("config: |flap_strength| %g exceeds terminal_velocity %g",
			c.Physics.FlapStrength, c.Physics.TerminalVelocity)
	}

	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}
