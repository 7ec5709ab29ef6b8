package flappy

// IsInsidePipe reports whether the bird overlaps a pipe's solid part: its
// column is within [X, X+Width) and its row is outside the gap band. Rows
// exactly on the gap edges are open.
func IsInsidePipe(b Bird, p Pipe) bool {
	col := float64(b.X)
	if col < p.X || col >= p.Right() {
		return false
	}
	row := b.Row()
	return row < p.GapTop() || row > p.GapBottom()
}

// OutOfBounds reports whether the bird has left the field vertically.
func OutOfBounds(b Bird, fieldHeight int) bool {
	return b.Y < 0 || b.Y > float64(fieldHeight-1)
}

// CheckCollision reports whether the bird is out of bounds or inside any pipe.
// The bird's column is fixed, so there is no horizontal bound check.
func CheckCollision(b Bird, pipes []Pipe, fieldHeight int) bool {
	if OutOfBounds(b, fieldHeight) {
		return true
	}
	for _, p := range pipes {
		if IsInsidePipe(b, p) {
			return true
		}
	}
	return false
}

// CheckPassed reports whether the bird has just cleared a pipe's trailing
// edge and the pipe has not been scored yet.
func CheckPassed(b Bird, p Pipe) bool {
	return !p.Passed && float64(b.X) >= p.Right()
}

// ScorePasses marks every newly passed pipe and returns how many there were.
// Each pipe scores at most once.
func ScorePasses(b Bird, pipes []Pipe) int {
	passed := 0
	for i := range pipes {
		if CheckPassed(b, pipes[i]) {
			pipes[i].Passed = true
			passed++
		}
	}
	return passed
}
