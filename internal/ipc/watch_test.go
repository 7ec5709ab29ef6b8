package ipc

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached")
}

func TestWatchMirrorsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signal")
	sig := NewFileSignal(path)
	var flag Flag

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, sig, &flag, 10*time.Millisecond) }()

	if err := os.WriteFile(path, []byte("ready"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, flag.Ready)

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	waitFor(t, func() bool { return !flag.Ready() })

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v, expected nil on cancel", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}
