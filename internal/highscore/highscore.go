// Package highscore persists the single best score in a small YAML file.
package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// record is the on-disk layout.
type record struct {
	Best  int       `yaml:"best"`
	SetAt time.Time `yaml:"set_at,omitempty"`
}

// Store is a file-backed high score, safe for concurrent sessions.
type Store struct {
	mu   sync.Mutex
	path string
	rec  record
	now  func() time.Time
}

// Open loads the high score at path. A missing file is a zero score.
func Open(path string) (*Store, error) {
	s := &Store{path: path, now: time.Now}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read high score: %w", err)
	}
	if err := yaml.Unmarshal(data, &s.rec); err != nil {
		return nil, fmt.Errorf("parse high score %s: %w", path, err)
	}
	if s.rec.Best < 0 {
		return nil, fmt.Errorf("parse high score %s: negative score %d", path, s.rec.Best)
	}
	return s, nil
}

// Best returns the current high score.
func (s *Store) Best() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Best
}

// Submit records score if it beats the current best and reports whether it did.
// The in-memory best is only raised once the file has been written.
func (s *Store) Submit(score int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if score <= s.rec.Best {
		return false, nil
	}
	rec := record{Best: score, SetAt: s.now().UTC()}
	if err := s.write(rec); err != nil {
		return false, err
	}
	s.rec = rec
	return true, nil
}

// write replaces the file atomically via a temp file in the same directory.
func (s *Store) write(rec record) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode high score: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create high score dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace high score: %w", err)
	}
	return nil
}
