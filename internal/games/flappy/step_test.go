package flappy

import (
	"testing"

	"github.com/bnookala/flappy-claude/internal/core"
)

// playing returns a fresh state with a pipe far to the right so nothing
// collides or spawns on the first frames.
func playing(mode Mode) State {
	s := NewState(testConfig(), mode, 0)
	s.Pipes = []Pipe{{X: 50, GapCenter: 10, GapSize: 7, Width: 4}}
	return s
}

func TestAdvanceFlapScenario(t *testing.T) {
	cfg := testConfig()
	s := playing(ModeAutoRestart)

	s, _ = Advance(s, cfg, fixedRNG{0}, core.InputFlap, false)
	if s.Bird.Velocity != -2.0 {
		t.Errorf("Velocity = %f, expected flap impulse -2.0", s.Bird.Velocity)
	}
	if s.Bird.Y != 8.0 {
		t.Errorf("Y = %f, expected 10 + (-2.0) = 8.0", s.Bird.Y)
	}

	// Gravity resumes on the next frame
	s, _ = Advance(s, cfg, fixedRNG{0}, core.InputNone, false)
	if s.Bird.Velocity != -1.5 || s.Bird.Y != 6.5 {
		t.Errorf("after gravity: %+v, expected velocity -1.5 at 6.5", s.Bird)
	}
}

func TestAdvanceDoesNotModifyInput(t *testing.T) {
	cfg := testConfig()
	s := playing(ModeAutoRestart)
	before := s.Clone()

	Advance(s, cfg, fixedRNG{0}, core.InputFlap, true)

	if s.Bird != before.Bird || s.Status != before.Status || s.Pipes[0] != before.Pipes[0] {
		t.Error("Advance modified its input state")
	}
}

func TestAdvancePipesScrollAndSpawn(t *testing.T) {
	cfg := testConfig()
	s := NewState(cfg, ModeAutoRestart, 0)

	s, _ = Advance(s, cfg, fixedRNG{0}, core.InputNone, false)
	if len(s.Pipes) != 1 || s.Pipes[0].X != 60 {
		t.Fatalf("expected first pipe spawned at 60, got %+v", s.Pipes)
	}

	s, _ = Advance(s, cfg, fixedRNG{0}, core.InputFlap, false)
	if s.Pipes[0].X != 59 {
		t.Errorf("pipe at %f, expected 59", s.Pipes[0].X)
	}
	if s.Frame != 2 {
		t.Errorf("Frame = %d, expected 2", s.Frame)
	}
}

func TestAdvanceScoresAndRaisesHighScore(t *testing.T) {
	cfg := testConfig()
	s := playing(ModeAutoRestart)
	s.Score = 3
	s.HighScore = 3
	s.Pipes = []Pipe{{X: 7, GapCenter: 10, GapSize: 7, Width: 4}}

	s, ev := Advance(s, cfg, fixedRNG{0}, core.InputNone, false)

	if ev.Passed != 1 || s.Score != 4 {
		t.Errorf("Passed=%d Score=%d, expected one pass to 4", ev.Passed, s.Score)
	}
	if !ev.NewRecord || s.HighScore != 4 {
		t.Errorf("NewRecord=%v HighScore=%d, expected new record 4", ev.NewRecord, s.HighScore)
	}
	if !s.Pipes[0].Passed {
		t.Error("scored pipe should be marked passed")
	}

	// The same pipe never scores again
	s, ev = Advance(s, cfg, fixedRNG{0}, core.InputNone, false)
	if ev.Passed != 0 || s.Score != 4 || ev.NewRecord {
		t.Errorf("pipe scored twice: Passed=%d Score=%d", ev.Passed, s.Score)
	}
}

func TestAdvanceNoRecordBelowHighScore(t *testing.T) {
	cfg := testConfig()
	s := playing(ModeAutoRestart)
	s.HighScore = 10
	s.Pipes = []Pipe{{X: 7, GapCenter: 10, GapSize: 7, Width: 4}}

	s, ev := Advance(s, cfg, fixedRNG{0}, core.InputNone, false)
	if ev.NewRecord || s.HighScore != 10 || s.Score != 1 {
		t.Errorf("unexpected record: %+v score=%d high=%d", ev, s.Score, s.HighScore)
	}
}

// dying returns a state that collides with the bottom edge on the next frame.
func dying(mode Mode) State {
	s := playing(mode)
	s.Bird.Y = 19.6
	return s
}

func TestAutoRestartScenario(t *testing.T) {
	cfg := testConfig()
	s := dying(ModeAutoRestart)
	s.Score = 4
	s.HighScore = 3
	s.Pipes = []Pipe{{X: 7, GapCenter: 10, GapSize: 7, Width: 4}}

	s, ev := Advance(s, cfg, fixedRNG{0}, core.InputNone, false)

	if s.Status != StatusDead || !ev.Died {
		t.Fatalf("Status = %v, expected dead", s.Status)
	}
	if s.Score != 5 || s.HighScore != 5 || !ev.NewRecord {
		t.Errorf("Score=%d HighScore=%d NewRecord=%v, expected record 5", s.Score, s.HighScore, ev.NewRecord)
	}
	if ev.LifeScore != 5 {
		t.Errorf("LifeScore = %d, expected 5", ev.LifeScore)
	}

	frames := cfg.DeathFrames()
	for i := 1; i < frames; i++ {
		s, ev = Advance(s, cfg, fixedRNG{0}, core.InputFlap, false)
		if s.Status != StatusDead || ev.Restarted {
			t.Fatalf("restarted after %d of %d frames", i, frames)
		}
	}

	s, ev = Advance(s, cfg, fixedRNG{0}, core.InputNone, false)
	if s.Status != StatusPlaying || !ev.Restarted {
		t.Fatalf("Status = %v after %d frames, expected playing", s.Status, frames)
	}
	if s.Score != 0 || s.HighScore != 5 {
		t.Errorf("after reset Score=%d HighScore=%d, expected 0 and 5", s.Score, s.HighScore)
	}
	if len(s.Pipes) != 0 || s.Bird != NewBird(cfg) || s.Ready || s.DeadFrames != 0 || s.Frame != 0 {
		t.Errorf("reset left stale state: %+v", s)
	}
}

func TestSingleLifeScenario(t *testing.T) {
	cfg := testConfig()
	s, _ := Advance(dying(ModeSingleLife), cfg, fixedRNG{0}, core.InputNone, false)
	if s.Status != StatusDead {
		t.Fatalf("Status = %v, expected dead", s.Status)
	}

	// No key: the game over screen stays up, no reset
	for i := 0; i < cfg.DeathFrames()*3; i++ {
		s, _ = Advance(s, cfg, fixedRNG{0}, core.InputNone, false)
	}
	if s.Status != StatusDead {
		t.Fatalf("Status = %v without input, expected dead", s.Status)
	}

	// Unknown tokens are ignored
	s, _ = Advance(s, cfg, fixedRNG{0}, core.Input(42), false)
	if s.Status != StatusDead {
		t.Fatalf("unknown input changed status to %v", s.Status)
	}

	for _, in := range []core.Input{core.InputAnyKey, core.InputFlap, core.InputConfirm, core.InputDecline} {
		next, _ := Advance(s, cfg, fixedRNG{0}, in, false)
		if next.Status != StatusExiting {
			t.Errorf("%v after game over gave %v, expected exiting", in, next.Status)
		}
	}
}

func TestReadySignalPrompts(t *testing.T) {
	cfg := testConfig()
	s := playing(ModeAutoRestart)
	bird := s.Bird

	s, ev := Advance(s, cfg, fixedRNG{0}, core.InputNone, true)
	if s.Status != StatusPrompted || !s.Ready || !ev.Prompted {
		t.Fatalf("Status=%v Ready=%v, expected prompted", s.Status, s.Ready)
	}
	if s.Bird != bird {
		t.Error("the simulation should not advance on the prompting frame")
	}

	// Flap and other keys do nothing while prompted
	for _, in := range []core.Input{core.InputFlap, core.InputAnyKey, core.InputNone} {
		next, _ := Advance(s, cfg, fixedRNG{0}, in, true)
		if next.Status != StatusPrompted || next.Bird != bird {
			t.Errorf("%v while prompted changed state: %v", in, next.Status)
		}
	}
}

func TestPromptConfirmExits(t *testing.T) {
	cfg := testConfig()
	s, _ := Advance(playing(ModeAutoRestart), cfg, fixedRNG{0}, core.InputNone, true)

	s, _ = Advance(s, cfg, fixedRNG{0}, core.InputConfirm, true)
	if s.Status != StatusExiting {
		t.Errorf("Status = %v, expected exiting", s.Status)
	}
}

func TestPromptDeclineResumes(t *testing.T) {
	cfg := testConfig()
	s, _ := Advance(playing(ModeAutoRestart), cfg, fixedRNG{0}, core.InputNone, true)

	// Signal still asserted: decline still returns to playing this frame
	s, ev := Advance(s, cfg, fixedRNG{0}, core.InputDecline, true)
	if s.Status != StatusPlaying || s.Ready || ev.Prompted {
		t.Fatalf("Status=%v Ready=%v, expected playing with the flag cleared", s.Status, s.Ready)
	}

	// Later frames can fire again
	s, ev = Advance(s, cfg, fixedRNG{0}, core.InputNone, true)
	if s.Status != StatusPrompted || !ev.Prompted {
		t.Errorf("Status = %v, expected the signal to fire again", s.Status)
	}
}

func TestCollisionWithoutSignalNeverPrompts(t *testing.T) {
	cfg := testConfig()
	s, ev := Advance(dying(ModeAutoRestart), cfg, fixedRNG{0}, core.InputNone, false)

	if s.Status != StatusDead || ev.Prompted || s.Ready {
		t.Errorf("Status=%v Prompted=%v, expected a plain death", s.Status, ev.Prompted)
	}
}

func TestReadySignalIgnoredWhileDead(t *testing.T) {
	cfg := testConfig()
	s, _ := Advance(dying(ModeSingleLife), cfg, fixedRNG{0}, core.InputNone, false)

	s, ev := Advance(s, cfg, fixedRNG{0}, core.InputNone, true)
	if s.Status != StatusDead || ev.Prompted {
		t.Errorf("Status = %v, the signal is only checked while playing", s.Status)
	}
}

func TestQuitFromAnyStatus(t *testing.T) {
	cfg := testConfig()

	prompted, _ := Advance(playing(ModeAutoRestart), cfg, fixedRNG{0}, core.InputNone, true)
	dead, _ := Advance(dying(ModeAutoRestart), cfg, fixedRNG{0}, core.InputNone, false)

	states := map[string]State{
		"playing":  playing(ModeAutoRestart),
		"prompted": prompted,
		"dead":     dead,
	}

	for name, s := range states {
		t.Run(name, func(t *testing.T) {
			next, _ := Advance(s, cfg, fixedRNG{0}, core.InputQuit, true)
			if next.Status != StatusExiting {
				t.Errorf("Status = %v, expected exiting", next.Status)
			}
		})
	}
}

func TestExitingIsTerminal(t *testing.T) {
	cfg := testConfig()
	s := playing(ModeAutoRestart)
	s.Status = StatusExiting

	for _, in := range []core.Input{core.InputNone, core.InputFlap, core.InputDecline, core.InputQuit} {
		next, ev := Advance(s, cfg, fixedRNG{0}, in, true)
		if next.Status != StatusExiting || next.Bird != s.Bird || ev != (Events{}) {
			t.Errorf("%v changed an exiting state", in)
		}
	}
}

func TestUnknownInputIsNoop(t *testing.T) {
	cfg := testConfig()
	s := playing(ModeAutoRestart)

	withUnknown, _ := Advance(s, cfg, fixedRNG{0}, core.Input(-3), false)
	withNone, _ := Advance(s, cfg, fixedRNG{0}, core.InputNone, false)

	if withUnknown.Bird != withNone.Bird || withUnknown.Status != withNone.Status {
		t.Errorf("unknown input behaved differently from no input")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in       string
		expected Mode
	}{
		{"", ModeAutoRestart},
		{"auto", ModeAutoRestart},
		{"single", ModeSingleLife},
		{"single-life", ModeSingleLife},
	}

	for _, tc := range tests {
		got, err := ParseMode(tc.in)
		if err != nil || got != tc.expected {
			t.Errorf("ParseMode(%q) = %v, %v; expected %v", tc.in, got, err, tc.expected)
		}
	}
	if _, err := ParseMode("forever"); err == nil {
		t.Error("ParseMode should reject unknown modes")
	}
}
