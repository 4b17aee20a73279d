package aoc

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Journal persists submission history to a simple text file so past
// verdicts survive between runs and feed the status view.
type Journal struct {
	path string
	mu   sync.Mutex
}

// NewJournal creates a journal that writes to the provided path.
func NewJournal(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &Journal{path: path}, nil
}

// Path returns the file backing this journal.
func (j *Journal) Path() string {
	if j == nil {
		return ""
	}
	return j.path
}

// Record appends one submission outcome.
func (j *Journal) Record(day int, part, answer string, result SubmitResult) {
	j.append(fmt.Sprintf("day %02d part %s answer=%s verdict=%s %s",
		day, part, answer, result.Verdict, result.Message))
}

// Note appends a free-form entry (fetches, created files).
func (j *Journal) Note(format string, args ...any) {
	j.append(fmt.Sprintf(format, args...))
}

func (j *Journal) append(message string) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	line := fmt.Sprintf("%s %s\n",
		time.Now().UTC().Format(time.RFC3339),
		strings.TrimSpace(message),
	)
	file, err := os.OpenFile(j.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	defer file.Close()
	_, _ = file.WriteString(line)
}

// Tail returns up to maxLines of the most recent entries plus the total
// line count.
func (j *Journal) Tail(maxLines int) ([]string, int) {
	if j == nil || maxLines <= 0 {
		return nil, 0
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	file, err := os.Open(j.path)
	if err != nil {
		return nil, 0
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	total := len(lines)
	if total == 0 {
		return nil, 0
	}
	if total > maxLines {
		lines = lines[total-maxLines:]
	}
	return lines, total
}
