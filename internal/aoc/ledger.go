package aoc

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Ledger records confirmed answers per day and part so a star is never
// re-submitted. Stored as YAML next to the other runtime state.
type Ledger struct {
	path string
	mu   sync.Mutex
	data ledgerFile
}

type ledgerFile struct {
	Answers map[int]map[string]string `yaml:"answers"`
}

// OpenLedger loads (or initializes) the ledger at path.
func OpenLedger(path string) (*Ledger, error) {
	l := &Ledger{path: path, data: ledgerFile{Answers: map[int]map[string]string{}}}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("aoc: read ledger: %w", err)
	}
	if err := yaml.Unmarshal(raw, &l.data); err != nil {
		return nil, fmt.Errorf("aoc: parse ledger: %w", err)
	}
	if l.data.Answers == nil {
		l.data.Answers = map[int]map[string]string{}
	}
	return l, nil
}

// Answered reports whether a part already has a confirmed answer.
func (l *Ledger) Answered(day int, part string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.data.Answers[day][part]
	return ok
}

// Answer returns the confirmed answer for a part, if any.
func (l *Ledger) Answer(day int, part string) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	answer, ok := l.data.Answers[day][part]
	return answer, ok
}

// Stars counts the confirmed parts for a day (0, 1 or 2).
func (l *Ledger) Stars(day int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.data.Answers[day])
}

// Record stores a confirmed answer and persists the ledger immediately.
func (l *Ledger) Record(day int, part, answer string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.data.Answers[day] == nil {
		l.data.Answers[day] = map[string]string{}
	}
	l.data.Answers[day][part] = answer
	raw, err := yaml.Marshal(l.data)
	if err != nil {
		return fmt.Errorf("aoc: encode ledger: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("aoc: create ledger dir: %w", err)
	}
	if err := os.WriteFile(l.path, raw, 0o644); err != nil {
		return fmt.Errorf("aoc: write ledger: %w", err)
	}
	return nil
}
