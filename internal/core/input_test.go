package core

import "testing"

func TestInputQueueOrder(t *testing.T) {
	q := NewInputQueue(4)
	q.Push(InputFlap)
	q.Push(InputNone)
	q.Push(InputConfirm)

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2 (None is not queued)", q.Len())
	}
	if got := q.Pop(); got != InputFlap {
		t.Errorf("first Pop() = %v, expected Flap", got)
	}
	if got := q.Pop(); got != InputConfirm {
		t.Errorf("second Pop() = %v, expected Confirm", got)
	}
	if got := q.Pop(); got != InputNone {
		t.Errorf("empty Pop() = %v, expected None", got)
	}
}

func TestInputQueueLimit(t *testing.T) {
	q := NewInputQueue(2)
	q.Push(InputFlap)
	q.Push(InputFlap)
	q.Push(InputFlap)

	if q.Len() != 2 {
		t.Errorf("Len() = %d, expected queue capped at 2", q.Len())
	}
}

func TestInputQueueQuitJumpsQueue(t *testing.T) {
	q := NewInputQueue(3)
	q.Push(InputFlap)
	q.Push(InputFlap)
	q.Push(InputQuit)

	if got := q.Pop(); got != InputQuit {
		t.Errorf("Pop() = %v, expected Quit first", got)
	}
	if q.Len() != 0 {
		t.Errorf("Quit should flush the queue, %d left", q.Len())
	}
}

func TestInputString(t *testing.T) {
	tests := []struct {
		in       Input
		expected string
	}{
		{InputNone, "None"},
		{InputFlap, "Flap"},
		{InputQuit, "Quit"},
		{InputConfirm, "Confirm"},
		{InputDecline, "Decline"},
		{InputAnyKey, "AnyKey"},
		{Input(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.in.String(); got != tc.expected {
			t.Errorf("Input(%d).String() = %q, expected %q", int(tc.in), got, tc.expected)
		}
	}
}

func TestInputPressed(t *testing.T) {
	if InputNone.Pressed() {
		t.Error("None should not count as a key press")
	}
	if !InputAnyKey.Pressed() || !InputFlap.Pressed() {
		t.Error("known keys should count as key presses")
	}
	if Input(42).Pressed() || Input(-1).Valid() {
		t.Error("unknown tokens should be neither valid nor pressed")
	}
}
