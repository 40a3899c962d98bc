// Package highscore persists the single best level reached across sessions.
package highscore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store reads and writes the high score. Get returns 0 when nothing has
// been recorded yet.
type Store interface {
	Get() (int, error)
	Set(score int) error
}

type record struct {
	HighScore int `json:"highScore"`
}

// FileStore keeps the high score in a small JSON file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Get() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read high score file: %w", err)
	}
	var r record
	if err := json.Unmarshal(b, &r); err != nil {
		return 0, fmt.Errorf("failed to parse high score file: %w", err)
	}
	return r.HighScore, nil
}

func (f *FileStore) Set(score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	b, err := json.Marshal(record{HighScore: score})
	if err != nil {
		return fmt.Errorf("failed to encode high score: %w", err)
	}
	if err := os.WriteFile(f.path, b, 0644); err != nil {
		return fmt.Errorf("failed to write high score file: %w", err)
	}
	return nil
}

// Memory is an in-process store, used when no file path is configured and
// in tests.
type Memory struct {
	mu    sync.Mutex
	score int
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Get() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

func (m *Memory) Set(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	return nil
}
