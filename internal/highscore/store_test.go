package highscore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreDefaultsToZero(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "scores.json"))
	got, err := s.Get()
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0 with no file, got %d", got)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	s := NewFileStore(path)
	if err := s.Set(17); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	// A fresh store reading the same file sees the value.
	got, err := NewFileStore(path).Get()
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != 17 {
		t.Fatalf("expected 17, got %d", got)
	}

	if err := s.Set(23); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	if got, _ := s.Get(); got != 23 {
		t.Fatalf("expected 23 after overwrite, got %d", got)
	}
}

func TestFileStoreCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "scores.json")
	s := NewFileStore(path)
	if err := s.Set(5); err != nil {
		t.Fatalf("set into missing directory failed: %v", err)
	}
	if got, _ := s.Get(); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestFileStoreRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path).Get(); err == nil {
		t.Fatal("expected an error for a corrupt file")
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()
	if got, _ := m.Get(); got != 0 {
		t.Fatalf("expected 0 initially, got %d", got)
	}
	if err := m.Set(12); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if got, _ := m.Get(); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
}
