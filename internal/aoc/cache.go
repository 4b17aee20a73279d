package aoc

import (
	"fmt"
	"os"
	"path/filepath"
)

// InputStore caches puzzle inputs under the year repository's inputs/
// directory, using the same file naming the solutions and .gitignore
// expect: dayNN.txt, dayNN_example.txt, dayNN_example_b.txt.
type InputStore struct {
	dir string
}

// NewInputStore wraps an inputs directory.
func NewInputStore(dir string) *InputStore {
	return &InputStore{dir: dir}
}

// InputPath returns the cache location for a day's real input.
func (s *InputStore) InputPath(day int) string {
	return filepath.Join(s.dir, fmt.Sprintf("day%02d.txt", day))
}

// ExamplePath returns the cache location for a day's example input.
func (s *InputStore) ExamplePath(day int, partTwo bool) string {
	if partTwo {
		return filepath.Join(s.dir, fmt.Sprintf("day%02d_example_b.txt", day))
	}
	return filepath.Join(s.dir, fmt.Sprintf("day%02d_example.txt", day))
}

// Read returns the cached content at path, with ok=false on a miss.
func (s *InputStore) Read(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return "", false
	}
	return string(data), true
}

// Write stores fetched content; the cache is write-once from the runner's
// point of view, a hit never reaches here.
func (s *InputStore) Write(path, content string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("aoc: create inputs dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("aoc: cache %s: %w", filepath.Base(path), err)
	}
	return nil
}

// HasInput reports whether the real input for a day is cached.
func (s *InputStore) HasInput(day int) bool {
	_, ok := s.Read(s.InputPath(day))
	return ok
}
