package flappy

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bnookala/flappy-claude/internal/config"
	"github.com/bnookala/flappy-claude/internal/core"
)

// HighScoreStore persists the single best score.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// ReadySignal is polled once per Playing frame. Implementations must not
// block and should report false on any read problem.
type ReadySignal interface {
	Ready() bool
}

// LifeRecorder receives the final score of every finished life.
type LifeRecorder interface {
	RecordLife(mode string, score int) error
}

// Session owns a State and the collaborators around it: it polls the ready
// signal, runs Advance once per Step, and persists new records before the
// step returns. A Session is not safe for concurrent use; one goroutine
// drives it frame by frame.
type Session struct {
	cfg      *config.Config
	rng      *rand.Rand
	state    State
	scores   HighScoreStore
	signal   ReadySignal
	recorder LifeRecorder
	logger   *log.Logger

	confirmed bool // Exited by accepting the ready prompt
}

// Option configures a Session.
type Option func(*Session)

// WithHighScoreStore loads the high score from store and saves every new record to it.
func WithHighScoreStore(store HighScoreStore) Option {
	return func(s *Session) { s.scores = store }
}

// WithReadySignal enables the Playing -> Prompted transition.
func WithReadySignal(signal ReadySignal) Option {
	return func(s *Session) { s.signal = signal }
}

// WithLifeRecorder records each finished life.
func WithLifeRecorder(recorder LifeRecorder) Option {
	return func(s *Session) { s.recorder = recorder }
}

// WithLogger sets the logger for swallowed collaborator failures.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// NewSession creates a session in StatusPlaying. A zero seed is replaced
// by the current time. The high score is loaded once here; a failed load
// counts as zero.
func NewSession(cfg *config.Config, mode Mode, seed int64, opts ...Option) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	high := 0
	if s.scores != nil {
		loaded, err := s.scores.Load()
		if err != nil {
			s.logger.Warn("could not load high score", "error", err)
		} else {
			high = loaded
		}
	}

	s.state = NewState(cfg, mode, high)
	s.logger.Debug("session started", "mode", mode, "seed", seed, "high_score", high)
	return s
}

// Step advances the session by one frame and returns the resulting snapshot.
// Once the session is exiting, Step is a no-op.
func (s *Session) Step(in core.Input) Snapshot {
	if s.Done() {
		return s.Snapshot()
	}

	ready := false
	if s.signal != nil && s.state.Status == StatusPlaying && !s.state.Ready {
		ready = s.signal.Ready()
	}

	prev := s.state.Status
	next, ev := Advance(s.state, s.cfg, s.rng, in, ready)
	s.state = next
	s.confirmed = prev == StatusPrompted && in == core.InputConfirm && next.Status == StatusExiting
	s.handleEvents(ev)

	return s.Snapshot()
}

// handleEvents carries out the side effects of a frame. Failures are logged
// and never change the simulation.
func (s *Session) handleEvents(ev Events) {
	if ev.NewRecord && s.scores != nil {
		if err := s.scores.Save(s.state.HighScore); err != nil {
			s.logger.Warn("could not save high score", "score", s.state.HighScore, "error", err)
		}
	}

	if ev.Prompted {
		s.logger.Info("ready signal observed", "score", s.state.Score)
	}

	if ev.Died {
		s.logger.Info("life ended", "score", ev.LifeScore, "high_score", s.state.HighScore)
		if s.recorder != nil && ev.LifeScore > 0 {
			if err := s.recorder.RecordLife(s.state.Mode.String(), ev.LifeScore); err != nil {
				s.logger.Warn("could not record life", "score", ev.LifeScore, "error", err)
			}
		}
	}

	if ev.Restarted {
		s.logger.Debug("session restarted", "high_score", s.state.HighScore)
	}
}

// Done reports whether the session has reached StatusExiting.
func (s *Session) Done() bool {
	return s.state.Status == StatusExiting
}

// Confirmed reports whether the session exited because the player accepted
// the "return to session" prompt. Quitting from the prompt does not count.
func (s *Session) Confirmed() bool {
	return s.confirmed
}

// State returns a copy of the current state.
func (s *Session) State() State {
	return s.state.Clone()
}

// Config returns the session's configuration.
func (s *Session) Config() *config.Config {
	return s.cfg
}

// Snapshot returns the renderer's view of the current frame.
func (s *Session) Snapshot() Snapshot {
	return NewSnapshot(s.state, s.cfg)
}
