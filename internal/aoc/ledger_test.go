package aoc

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLedgerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	ledger, err := OpenLedger(path)
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	if ledger.Answered(3, "a") {
		t.Fatalf("fresh ledger should have no answers")
	}
	if err := ledger.Record(3, "a", "161"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := ledger.Record(3, "b", "48"); err != nil {
		t.Fatalf("record: %v", err)
	}

	reopened, err := OpenLedger(path)
	if err != nil {
		t.Fatalf("reopen ledger: %v", err)
	}
	if !reopened.Answered(3, "a") || !reopened.Answered(3, "b") {
		t.Fatalf("answers not persisted")
	}
	if answer, ok := reopened.Answer(3, "a"); !ok || answer != "161" {
		t.Fatalf("answer = %q, %v", answer, ok)
	}
	if stars := reopened.Stars(3); stars != 2 {
		t.Fatalf("stars = %d, want 2", stars)
	}
	if stars := reopened.Stars(4); stars != 0 {
		t.Fatalf("stars = %d, want 0", stars)
	}
}

func TestJournalRecordAndTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "journal.log")
	journal, err := NewJournal(path)
	if err != nil {
		t.Fatalf("new journal: %v", err)
	}
	for i := 0; i < 5; i++ {
		journal.Note("entry-%d", i)
	}
	journal.Record(3, "a", "161", SubmitResult{Verdict: VerdictCorrect, Message: "That's the right answer!"})
	lines, total := journal.Tail(3)
	if total != 6 {
		t.Fatalf("total = %d, want 6", total)
	}
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	last := lines[len(lines)-1]
	if !strings.Contains(last, "day 03 part a") || !strings.Contains(last, "verdict=correct") {
		t.Fatalf("last line = %q", last)
	}
}

func TestInputStorePaths(t *testing.T) {
	store := NewInputStore(t.TempDir())
	if base := filepath.Base(store.InputPath(7)); base != "day07.txt" {
		t.Fatalf("input path = %q", base)
	}
	if base := filepath.Base(store.ExamplePath(7, false)); base != "day07_example.txt" {
		t.Fatalf("example path = %q", base)
	}
	if base := filepath.Base(store.ExamplePath(7, true)); base != "day07_example_b.txt" {
		t.Fatalf("example b path = %q", base)
	}
}

func TestInputStoreReadWrite(t *testing.T) {
	store := NewInputStore(filepath.Join(t.TempDir(), "inputs"))
	path := store.InputPath(1)
	if _, ok := store.Read(path); ok {
		t.Fatalf("expected cache miss")
	}
	if store.HasInput(1) {
		t.Fatalf("expected no cached input")
	}
	if err := store.Write(path, "3 4\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	content, ok := store.Read(path)
	if !ok || content != "3 4\n" {
		t.Fatalf("read = %q, %v", content, ok)
	}
	if !store.HasInput(1) {
		t.Fatalf("expected cached input")
	}
}
