// Package flappy implements the Flappy Claude simulation: a bird under
// constant gravity flies through a stream of scrolling pipes until it hits one.
//
// Everything in this package is deterministic for a given seed and input
// sequence. Terminal handling, timing and persistence live in the platform
// layer and reach the simulation only through Session's collaborators.
package flappy

import (
	"math"

	"github.com/bnookala/flappy-claude/internal/config"
)

// Bird is the player. X is a fixed column; Y and Velocity are in rows and
// rows per frame, positive downward.
type Bird struct {
	X        int
	Y        float64
	Velocity float64
}

// NewBird places a resting bird at its column, halfway down the field.
func NewBird(cfg *config.Config) Bird {
	return Bird{
		X: cfg.Field.BirdX,
		Y: float64(cfg.Field.Height) / 2,
	}
}

// Row returns the screen row the bird occupies.
func (b Bird) Row() int {
	return int(math.Floor(b.Y))
}

// ApplyGravity advances the bird one frame: velocity gains gravity, capped at
// terminal velocity, then the position moves by the new velocity.
// The position is not bounded here; leaving the field is a collision.
func ApplyGravity(b Bird, cfg *config.Config) Bird {
	b.Velocity = math.Min(b.Velocity+cfg.Physics.Gravity, cfg.Physics.TerminalVelocity)
	b.Y += b.Velocity
	return b
}

// Flap replaces the bird's velocity with the flap impulse. The position does
// not change until the bird next moves.
func Flap(b Bird, cfg *config.Config) Bird {
	b.Velocity = cfg.Physics.FlapStrength
	return b
}

// Move advances the position by the current velocity without acceleration.
// A frame with a flap uses this instead of ApplyGravity.
func Move(b Bird) Bird {
	b.Y += b.Velocity
	return b
}
