package flappy

import (
	"github.com/bnookala/flappy-claude/internal/config"
	"github.com/bnookala/flappy-claude/internal/core"
)

// Events lists what happened during one Advance call that the owner of the
// state may need to act on.
type Events struct {
	Passed    int  // Pipes scored this frame
	NewRecord bool // HighScore rose; persist it before the next frame
	Died      bool // The life ended this frame
	LifeScore int  // Final score of the life that ended
	Prompted  bool // Ready signal consumed
	Restarted bool // Dead -> Playing reset happened
}

// Advance computes the next frame from the current state, the frame's input
// token and whether the ready signal is asserted. The input state is not
// modified. Every combination of arguments yields a valid state; unknown
// input tokens are ignored.
//
// Order within a frame: input transition, ready check (Playing only),
// then either the flight update or the death countdown.
func Advance(s State, cfg *config.Config, rng RNG, in core.Input, ready bool) (State, Events) {
	var ev Events
	next := s.Clone()
	if next.Status == StatusExiting {
		return next, ev
	}
	if !in.Valid() {
		in = core.InputNone
	}

	wasPrompted := next.Status == StatusPrompted
	next, flapped := handleInput(next, in)
	declined := wasPrompted && next.Status == StatusPlaying

	if next.Status == StatusPlaying && !next.Ready && ready && !declined {
		next.Ready = true
		next.Status = StatusPrompted
		ev.Prompted = true
	}

	switch {
	case next.Status == StatusPlaying:
		next = fly(next, cfg, rng, flapped, &ev)
	case next.Status == StatusDead && s.Status == StatusDead && next.Mode == ModeAutoRestart:
		next.DeadFrames++
		if next.DeadFrames >= cfg.DeathFrames() {
			next = next.Reset(cfg)
			ev.Restarted = true
		}
	}
	return next, ev
}

// fly runs one Playing frame: bird, pipes, scoring, collision.
func fly(s State, cfg *config.Config, rng RNG, flapped bool, ev *Events) State {
	if flapped {
		s.Bird = Move(Flap(s.Bird, cfg))
	} else {
		s.Bird = ApplyGravity(s.Bird, cfg)
	}

	s.Pipes = UpdatePipes(s.Pipes, cfg, rng)

	ev.Passed = ScorePasses(s.Bird, s.Pipes)
	s.Score += ev.Passed
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		ev.NewRecord = true
	}

	if CheckCollision(s.Bird, s.Pipes, cfg.Field.Height) {
		s.Status = StatusDead
		s.DeadFrames = 0
		ev.Died = true
		ev.LifeScore = s.Score
	}

	s.Frame++
	return s
}
