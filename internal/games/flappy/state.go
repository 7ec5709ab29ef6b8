package flappy

import (
	"fmt"

	"github.com/bnookala/flappy-claude/internal/config"
	"github.com/bnookala/flappy-claude/internal/core"
)

// Status is the session's position in its state machine.
type Status int

const (
	StatusPlaying  Status = iota // Bird in flight
	StatusDead                   // Life ended, death screen up
	StatusPrompted               // Ready signal seen, asking the player to leave
	StatusExiting                // Terminal; no further steps
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusDead:
		return "dead"
	case StatusPrompted:
		return "prompted"
	case StatusExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// Mode decides what follows a death.
type Mode int

const (
	ModeAutoRestart Mode = iota // Reset after the death display delay
	ModeSingleLife              // Exit on the next key press
)

// String returns the flag spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeAutoRestart:
		return "auto"
	case ModeSingleLife:
		return "single"
	default:
		return "unknown"
	}
}

// ParseMode converts a flag value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "auto", "auto-restart", "":
		return ModeAutoRestart, nil
	case "single", "single-life":
		return ModeSingleLife, nil
	default:
		return 0, fmt.Errorf("flappy: unknown mode %q (want auto or single)", s)
	}
}

// State is the full simulation state of a session.
type State struct {
	Bird       Bird
	Pipes      []Pipe // Spawn order == left-to-right screen order
	Score      int
	HighScore  int
	Status     Status
	Mode       Mode
	Ready      bool // Ready signal consumed this life
	DeadFrames int  // Frames spent in StatusDead
	Frame      int  // Playing frames this life
}

// NewState returns the initial state of a session.
func NewState(cfg *config.Config, mode Mode, highScore int) State {
	if highScore < 0 {
		highScore = 0
	}
	return State{
		Bird:      NewBird(cfg),
		HighScore: highScore,
		Status:    StatusPlaying,
		Mode:      mode,
	}
}

// Clone returns a deep copy that shares no memory with s.
func (s State) Clone() State {
	if s.Pipes != nil {
		s.Pipes = append([]Pipe(nil), s.Pipes...)
	}
	return s
}

// Reset starts a new life: score, pipes, bird, ready flag and counters are
// cleared. High score and mode survive.
func (s State) Reset(cfg *config.Config) State {
	return NewState(cfg, s.Mode, s.HighScore)
}

// handleInput applies the input half of the transition table.
// It returns the new state and whether the bird flapped.
func handleInput(s State, in core.Input) (State, bool) {
	if in == core.InputQuit {
		s.Status = StatusExiting
		return s, false
	}

	switch s.Status {
	case StatusPlaying:
		return s, in == core.InputFlap
	case StatusPrompted:
		switch in {
		case core.InputConfirm:
			s.Status = StatusExiting
		case core.InputDecline:
			s.Ready = false
			s.Status = StatusPlaying
		}
	case StatusDead:
		if s.Mode == ModeSingleLife && in.Pressed() {
			s.Status = StatusExiting
		}
	}
	return s, false
}
