package flappy

import (
	"github.com/bnookala/flappy-claude/internal/config"
)

// RNG is the randomness a pipe stream needs. *rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
}

// Pipe is a vertical obstacle with a passable gap. Width and gap size are
// fixed at spawn; X only ever decreases.
type Pipe struct {
	X         float64 // Left edge column
	GapCenter int     // Row at the middle of the gap
	GapSize   int     // Rows in the gap
	Width     int     // Columns
	Passed    bool    // Set once the bird clears the trailing edge
}

// GapTop returns the first open row. Rows from GapTop to GapBottom inclusive are open.
func (p Pipe) GapTop() int {
	return p.GapCenter - p.GapSize/2
}

// GapBottom returns the last open row.
func (p Pipe) GapBottom() int {
	return p.GapCenter + p.GapSize/2
}

// Right returns the exclusive right edge column.
func (p Pipe) Right() float64 {
	return p.X + float64(p.Width)
}

// Expired reports whether the pipe has scrolled fully off the left edge.
func (p Pipe) Expired() bool {
	return p.X <= -float64(p.Width)
}

// SpawnPipe creates a pipe at the right edge of the field with its gap
// center drawn uniformly from [margin, height-margin].
func SpawnPipe(cfg *config.Config, rng RNG) Pipe {
	margin := cfg.GapMargin()
	lo, hi := margin, cfg.Field.Height-margin

	center := cfg.Field.Height / 2
	if hi >= lo {
		center = lo + rng.Intn(hi-lo+1)
	}

	return Pipe{
		X:         float64(cfg.Field.Width),
		GapCenter: center,
		GapSize:   cfg.Pipes.Gap,
		Width:     cfg.Pipes.Width,
	}
}

// AdvancePipe scrolls a pipe left by one frame's worth of movement.
func AdvancePipe(p Pipe, cfg *config.Config) Pipe {
	p.X -= cfg.Pipes.Speed
	return p
}

// ShouldSpawn reports whether the stream needs a new pipe: it is empty, or
// the newest pipe has moved more than the spacing away from the right edge.
func ShouldSpawn(pipes []Pipe, cfg *config.Config) bool {
	if len(pipes) == 0 {
		return true
	}
	newest := pipes[len(pipes)-1]
	return newest.X < float64(cfg.Field.Width-cfg.Pipes.Spacing)
}

// UpdatePipes runs one frame of the stream: advance every pipe, retire the
// expired ones, then spawn at most one new pipe. The input slice is not
// modified. Order is spawn order, which is also left-to-right.
func UpdatePipes(pipes []Pipe, cfg *config.Config, rng RNG) []Pipe {
	next := make([]Pipe, 0, len(pipes)+1)
	for _, p := range pipes {
		p = AdvancePipe(p, cfg)
		if p.Expired() {
			continue
		}
		next = append(next, p)
	}

	if ShouldSpawn(next, cfg) {
		next = append(next, SpawnPipe(cfg, rng))
	}
	return next
}
