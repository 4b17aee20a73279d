// Package solution defines the contract between the runner and per-day
// solver code. A day ships two entry points, one per puzzle half; day files
// under days/ are interpreted at runtime so a year repository never needs
// its own build.
package solution

import (
	"fmt"
	"strings"
)

// Part identifies a puzzle half. The service calls them level 1 and 2; the
// CLI keeps the a/b naming used in input file suffixes.
type Part string

const (
	PartOne Part = "a"
	PartTwo Part = "b"
)

// Valid reports whether p is one of the two known parts.
func (p Part) Valid() bool {
	return p == PartOne || p == PartTwo
}

// Level returns the numeric form the puzzle service expects.
func (p Part) Level() int {
	if p == PartTwo {
		return 2
	}
	return 1
}

// ParsePart normalizes user input ("a", "b", "1", "2") into a Part.
func ParsePart(s string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "1", "one":
		return PartOne, nil
	case "b", "2", "two":
		return PartTwo, nil
	}
	return "", fmt.Errorf("solution: unknown part %q (want a or b)", s)
}

// Func computes the answer for one part from the raw puzzle input.
type Func func(input string) (any, error)

// Solution holds the entry points for one day. PartTwo stays nil until the
// second half of the puzzle is unlocked and written.
type Solution struct {
	Day     int
	PartOne Func
	PartTwo Func
}

// Solve runs the requested part and stringifies the answer. An empty string
// means "no answer yet" and is never submitted.
func (s Solution) Solve(part Part, input string) (string, error) {
	fn := s.PartOne
	if part == PartTwo {
		fn = s.PartTwo
	}
	if fn == nil {
		return "", fmt.Errorf("solution: day %d has no part %s entry point", s.Day, part)
	}
	value, err := fn(input)
	if err != nil {
		return "", fmt.Errorf("solution: day %d part %s: %w", s.Day, part, err)
	}
	return Stringify(value), nil
}

// Stringify renders a solver result for display and submission. Nil and
// empty values collapse to "" so unfinished TODO solvers stay silent.
func Stringify(value any) string {
	if value == nil {
		return ""
	}
	s := strings.TrimSpace(fmt.Sprint(value))
	if s == "<nil>" {
		return ""
	}
	return s
}
