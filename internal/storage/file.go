package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bnookala/flappy-claude/internal/config"
)

// FileStore keeps the high score as a decimal integer in a text file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path. A leading ~ is expanded.
func NewFileStore(path string) (*FileStore, error) {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return &FileStore{path: expanded}, nil
}

// Path returns the file the store reads and writes.
func (f *FileStore) Path() string {
	return f.path
}

// Load returns the stored high score. A missing file is a score of 0.
func (f *FileStore) Load() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}
	score, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt high score file %s: %w", f.path, err)
	}
	return max(score, 0), nil
}

// Save writes the score, replacing the file atomically so a crash never
// leaves a half-written record.
func (f *FileStore) Save(score int) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.Itoa(score) + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}
