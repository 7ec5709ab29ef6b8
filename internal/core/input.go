package core

// Input is the single input token delivered to the simulation per frame.
// The platform translates physical keys into these; the zero value means
// no key was pressed this frame.
type Input int

const (
	InputNone    Input = iota
	InputFlap          // Space
	InputQuit          // q, Ctrl+C
	InputConfirm       // y
	InputDecline       // n
	InputAnyKey        // any other key
)

// String returns a human-readable name for the input.
func (i Input) String() string {
	switch i {
	case InputNone:
		return "None"
	case InputFlap:
		return "Flap"
	case InputQuit:
		return "Quit"
	case InputConfirm:
		return "Confirm"
	case InputDecline:
		return "Decline"
	case InputAnyKey:
		return "AnyKey"
	default:
		return "Unknown"
	}
}

// Valid reports whether the token is one of the known inputs.
func (i Input) Valid() bool {
	return i >= InputNone && i <= InputAnyKey
}

// Pressed reports whether the token is a known key press.
// Unknown values are treated like no input at all.
func (i Input) Pressed() bool {
	return i != InputNone && i.Valid()
}

// InputQueue buffers key presses between ticks so each frame consumes at
// most one token, in arrival order. Quit jumps the queue.
type InputQueue struct {
	pending []Input
	limit   int
}

// NewInputQueue creates a queue that keeps at most limit pending tokens.
func NewInputQueue(limit int) *InputQueue {
	if limit <= 0 {
		limit = 1
	}
	return &InputQueue{pending: make([]Input, 0, limit), limit: limit}
}

// Push enqueues a token. InputNone is ignored; tokens beyond the limit are
// dropped, except Quit which always replaces the queue.
func (q *InputQueue) Push(in Input) {
	switch {
	case in == InputNone:
		return
	case in == InputQuit:
		q.pending = append(q.pending[:0], InputQuit)
	case len(q.pending) < q.limit:
		q.pending = append(q.pending, in)
	}
}

// Pop returns the oldest pending token, or InputNone if the queue is empty.
func (q *InputQueue) Pop() Input {
	if len(q.pending) == 0 {
		return InputNone
	}
	in := q.pending[0]
	q.pending = append(q.pending[:0], q.pending[1:]...)
	return in
}

// Len returns the number of pending tokens.
func (q *InputQueue) Len() int {
	return len(q.pending)
}
