package flappy

import "github.com/bnookala/flappy-claude/internal/config"

// Snapshot is an immutable picture of one frame: everything a renderer needs
// without keeping history.
type Snapshot struct {
	Bird        Bird
	Pipes       []Pipe
	Score       int
	HighScore   int
	Status      Status
	Mode        Mode
	Ready       bool
	DeadFrames  int
	DeathFrames int // Frames the death screen stays up in auto-restart mode
	Frame       int
	FieldWidth  int
	FieldHeight int
}

// NewSnapshot copies the state into a snapshot.
func NewSnapshot(s State, cfg *config.Config) Snapshot {
	return Snapshot{
		Bird:        s.Bird,
		Pipes:       append([]Pipe(nil), s.Pipes...),
		Score:       s.Score,
		HighScore:   s.HighScore,
		Status:      s.Status,
		Mode:        s.Mode,
		Ready:       s.Ready,
		DeadFrames:  s.DeadFrames,
		DeathFrames: cfg.DeathFrames(),
		Frame:       s.Frame,
		FieldWidth:  cfg.Field.Width,
		FieldHeight: cfg.Field.Height,
	}
}
