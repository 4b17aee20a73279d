package solution

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

const (
	// FirstDay and LastDay bound the advent calendar.
	FirstDay = 1
	LastDay  = 25
)

var dayFilePattern = regexp.MustCompile(`^day(\d{2})\.go$`)

// DayFromFileName extracts the day number from a dayNN.go file name.
func DayFromFileName(name string) (int, bool) {
	m := dayFilePattern.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return 0, false
	}
	day, err := strconv.Atoi(m[1])
	if err != nil || day < FirstDay || day > LastDay {
		return 0, false
	}
	return day, true
}

// Discover scans a days directory and maps day numbers to solution files.
// A missing directory is not an error: the year simply has no days yet.
func Discover(dir string) (map[int]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("solution: read %s: %w", dir, err)
	}
	days := map[int]string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		day, ok := DayFromFileName(entry.Name())
		if !ok {
			continue
		}
		days[day] = filepath.Join(dir, entry.Name())
	}
	if len(days) == 0 {
		return nil, nil
	}
	return days, nil
}

// DiscoveredDays returns the days found in dir, ascending.
func DiscoveredDays(dir string) ([]int, error) {
	files, err := Discover(dir)
	if err != nil {
		return nil, err
	}
	days := make([]int, 0, len(files))
	for day := range files {
		days = append(days, day)
	}
	sort.Ints(days)
	return days, nil
}
