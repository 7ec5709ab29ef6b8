package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingFile(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "highscore"))
	if err != nil {
		t.Fatal(err)
	}

	high, err := store.Load()
	if err != nil || high != 0 {
		t.Errorf("Load() = %d, %v; expected 0 and no error", high, err)
	}
}

func TestFileStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "highscore")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Save(17); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("high score file not written: %v", err)
	}
	if string(data) != "17\n" {
		t.Errorf("file content = %q, expected %q", data, "17\n")
	}

	high, err := store.Load()
	if err != nil || high != 17 {
		t.Errorf("Load() = %d, %v; expected 17", high, err)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("expected only the high score file, found %d entries", len(entries))
	}
}

func TestFileStoreContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected int
		wantErr  bool
	}{
		{"plain", "12", 12, false},
		{"whitespace", "  12\n", 12, false},
		{"empty", "", 0, false},
		{"negative", "-5", 0, false},
		{"garbage", "twelve", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			store, _ := NewFileStore(path)

			high, err := store.Load()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tc.wantErr)
			}
			if high != tc.expected {
				t.Errorf("Load() = %d, expected %d", high, tc.expected)
			}
		})
	}
}

func TestFileStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewFileStore("~/.flappy-claude/highscore")
	if err != nil {
		t.Fatal(err)
	}
	if store.Path() != filepath.Join(home, ".flappy-claude", "highscore") {
		t.Errorf("Path() = %q", store.Path())
	}
}
