package solution

import (
	"os"
	"path/filepath"
	"testing"
)

const daySource = `package main

import "strings"

func PartOne(input string) (any, error) {
	return len(strings.Fields(input)), nil
}

func PartTwo(input string) any {
	return strings.ToUpper(strings.TrimSpace(input))
}`

const partOneOnlySource = `package main

func PartOne(input string) any {
	return "first-half"
}`

func writeDayFile(t *testing.T, name, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write day file: %v", err)
	}
	return path
}

func TestLoadDayFile(t *testing.T) {
	path := writeDayFile(t, "day01.go", daySource)
	s, err := LoadDayFile(path, 1)
	if err != nil {
		t.Fatalf("load day file: %v", err)
	}
	answer, err := s.Solve(PartOne, "a b c")
	if err != nil {
		t.Fatalf("solve part one: %v", err)
	}
	if answer != "3" {
		t.Fatalf("part one = %q, want 3", answer)
	}
	answer, err = s.Solve(PartTwo, "hello\n")
	if err != nil {
		t.Fatalf("solve part two: %v", err)
	}
	if answer != "HELLO" {
		t.Fatalf("part two = %q, want HELLO", answer)
	}
}

func TestLoadDayFileWithoutPartTwo(t *testing.T) {
	path := writeDayFile(t, "day02.go", partOneOnlySource)
	s, err := LoadDayFile(path, 2)
	if err != nil {
		t.Fatalf("load day file: %v", err)
	}
	if s.PartTwo != nil {
		t.Fatalf("expected nil PartTwo")
	}
	if _, err := s.Solve(PartTwo, ""); err == nil {
		t.Fatalf("expected error solving missing part two")
	}
}

func TestLoadDayFileMissingPartOne(t *testing.T) {
	path := writeDayFile(t, "day03.go", "package main\n")
	if _, err := LoadDayFile(path, 3); err == nil {
		t.Fatalf("expected error for missing PartOne")
	}
}

func TestLoadDayFileBadSignature(t *testing.T) {
	path := writeDayFile(t, "day04.go", `package main

func PartOne(a, b string) any { return nil }`)
	if _, err := LoadDayFile(path, 4); err == nil {
		t.Fatalf("expected error for wrong arity")
	}
}

func TestLoadDayFileSolverError(t *testing.T) {
	path := writeDayFile(t, "day05.go", `package main

import "errors"

func PartOne(input string) (any, error) {
	return nil, errors.New("not implemented")
}`)
	s, err := LoadDayFile(path, 5)
	if err != nil {
		t.Fatalf("load day file: %v", err)
	}
	if _, err := s.Solve(PartOne, ""); err == nil {
		t.Fatalf("expected solver error to propagate")
	}
}
