package solution

import (
	"os"
	"path/filepath"
	"testing"
)

func stub(day int) Solution {
	return Solution{
		Day:     day,
		PartOne: func(string) (any, error) { return day, nil },
	}
}

func TestRegistryRegisterAndResolve(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(stub(7)); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(stub(7)); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	s, ok := reg.Resolve(7)
	if !ok {
		t.Fatalf("resolve day 7 failed")
	}
	answer, err := s.Solve(PartOne, "")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if answer != "7" {
		t.Fatalf("answer = %q, want 7", answer)
	}
}

func TestRegistryRejectsOutOfRange(t *testing.T) {
	reg := NewRegistry()
	for _, day := range []int{0, 26, -3} {
		if err := reg.Register(stub(day)); err == nil {
			t.Fatalf("expected range error for day %d", day)
		}
	}
}

func TestRegistryDaysSorted(t *testing.T) {
	reg := NewRegistry()
	for _, day := range []int{12, 3, 25} {
		if err := reg.Register(stub(day)); err != nil {
			t.Fatalf("register day %d: %v", day, err)
		}
	}
	days := reg.Days()
	want := []int{3, 12, 25}
	if len(days) != len(want) {
		t.Fatalf("days = %v, want %v", days, want)
	}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("days = %v, want %v", days, want)
		}
	}
}

func TestParsePart(t *testing.T) {
	cases := map[string]Part{
		"a": PartOne, "A": PartOne, "1": PartOne, "one": PartOne,
		"b": PartTwo, "2": PartTwo, "two": PartTwo,
	}
	for in, want := range cases {
		got, err := ParsePart(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q = %v, want %v", in, got, want)
		}
	}
	if _, err := ParsePart("c"); err == nil {
		t.Fatalf("expected error for unknown part")
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"day01.go", "day12.go", "day99.go", "notes.txt", "day3.go"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("package main\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	days, err := DiscoveredDays(dir)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	want := []int{1, 12}
	if len(days) != len(want) {
		t.Fatalf("days = %v, want %v", days, want)
	}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("days = %v, want %v", days, want)
		}
	}
}

func TestDiscoverMissingDir(t *testing.T) {
	days, err := Discover(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if days != nil {
		t.Fatalf("expected nil map for missing dir, got %v", days)
	}
}

func TestStringify(t *testing.T) {
	if got := Stringify(nil); got != "" {
		t.Fatalf("nil = %q", got)
	}
	if got := Stringify(42); got != "42" {
		t.Fatalf("42 = %q", got)
	}
	if got := Stringify("  padded "); got != "padded" {
		t.Fatalf("padded = %q", got)
	}
}
