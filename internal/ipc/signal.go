// Package ipc carries the "Claude is ready" notification from the assistant
// process to the game. The only transport is a well-known file whose trimmed
// content is the word "ready".
package ipc

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"
)

// ReadyToken is the file content that asserts the signal.
const ReadyToken = "ready"

// FileSignal polls a signal file.
type FileSignal struct {
	Path string
}

// NewFileSignal returns a signal reading path.
func NewFileSignal(path string) *FileSignal {
	return &FileSignal{Path: path}
}

// Ready reports whether the file exists and contains the ready token.
// Missing files and read errors count as not ready.
func (f *FileSignal) Ready() bool {
	if f == nil || f.Path == "" {
		return false
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return false
	}
	return string(bytes.TrimSpace(data)) == ReadyToken
}

// Touch creates an empty signal file so the writer side can see a game is
// running. An existing file is truncated, clearing any "ready" left over
// from before the game started.
func (f *FileSignal) Touch() error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.Path, nil, 0o644)
}

// Remove deletes the signal file. A missing file is not an error.
func (f *FileSignal) Remove() error {
	err := os.Remove(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Flag is an in-process signal, used by the SSH server and tests.
type Flag struct {
	ready atomic.Bool
}

// Set asserts the signal.
func (f *Flag) Set() { f.ready.Store(true) }

// Clear withdraws the signal.
func (f *Flag) Clear() { f.ready.Store(false) }

// Ready reports whether the flag is set.
func (f *Flag) Ready() bool { return f.ready.Load() }
