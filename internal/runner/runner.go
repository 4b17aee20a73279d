// Package runner ties the pieces together: resolve the day, load (or
// create) its solution file, feed it input, time it, and submit answers.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/MyNameIs-13/aockit/internal/aoc"
	"github.com/MyNameIs-13/aockit/internal/config"
	"github.com/MyNameIs-13/aockit/internal/scaffold"
	"github.com/MyNameIs-13/aockit/internal/solution"
)

var answerStyle = lipgloss.NewStyle().Bold(true)

// Options controls a single day run.
type Options struct {
	// Example runs against example data instead of the personal input.
	Example bool
	// Part restricts the run to one part; empty means both.
	Part solution.Part
	// NoSubmit disables submission regardless of the repo config.
	NoSubmit bool
}

// Runner executes day solutions inside one year repository.
type Runner struct {
	cfg     *config.Config
	client  *aoc.Client
	inputs  *aoc.InputStore
	ledger  *aoc.Ledger
	journal *aoc.Journal
	log     *zap.Logger
	out     io.Writer
}

// New wires a runner for the given year repository. client may be nil;
// cached inputs still run, only fetches and submissions need the service.
func New(cfg *config.Config, client *aoc.Client, log *zap.Logger) (*Runner, error) {
	if log == nil {
		log = zap.NewNop()
	}
	ledger, err := aoc.OpenLedger(cfg.AnswersPath())
	if err != nil {
		return nil, err
	}
	journal, err := aoc.NewJournal(cfg.JournalPath())
	if err != nil {
		return nil, fmt.Errorf("runner: open journal: %w", err)
	}
	return &Runner{
		cfg:     cfg,
		client:  client,
		inputs:  aoc.NewInputStore(cfg.InputsDir()),
		ledger:  ledger,
		journal: journal,
		log:     log,
		out:     os.Stdout,
	}, nil
}

// SetOutput redirects answer printing, used by tests and the watch loop.
func (r *Runner) SetOutput(w io.Writer) {
	r.out = w
}

// Journal exposes the submission journal for the status view.
func (r *Runner) Journal() *aoc.Journal {
	return r.journal
}

// Ledger exposes the answer ledger for the status view.
func (r *Runner) Ledger() *aoc.Ledger {
	return r.ledger
}

// RunOrCreate is the day dispatcher: a missing solution file is created
// from the template and the run stops there; an existing one is executed.
func (r *Runner) RunOrCreate(ctx context.Context, day int, opts Options) error {
	if _, ok := solution.Default.Resolve(day); ok {
		return r.RunDay(ctx, day, opts)
	}
	path := r.cfg.DayFile(day)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		created, err := scaffold.CreateDay(r.cfg, day, r.log)
		if err != nil {
			return err
		}
		r.journal.Note("created %s", created)
		fmt.Fprintf(r.out, "Created %s, fill in PartOne and run again.\n", created)
		return nil
	}
	return r.RunDay(ctx, day, opts)
}

// RunDay loads and executes an existing day file.
func (r *Runner) RunDay(ctx context.Context, day int, opts Options) error {
	if day < solution.FirstDay || day > solution.LastDay {
		return fmt.Errorf("runner: day %d not in advent range", day)
	}
	s, ok := solution.Default.Resolve(day)
	if !ok {
		var err error
		s, err = solution.LoadDayFile(r.cfg.DayFile(day), day)
		if err != nil {
			return err
		}
	}
	parts := []solution.Part{solution.PartOne, solution.PartTwo}
	if opts.Part != "" {
		parts = []solution.Part{opts.Part}
	}
	for _, part := range parts {
		if part == solution.PartTwo && s.PartTwo == nil {
			r.log.Debug("day has no part two yet", zap.Int("day", day))
			continue
		}
		if err := r.runPart(ctx, s, part, opts); err != nil {
			return err
		}
	}
	return nil
}

// runPart mirrors the decision points of one puzzle half: pick input,
// solve, print, maybe submit.
func (r *Runner) runPart(ctx context.Context, s solution.Solution, part solution.Part, opts Options) error {
	day := s.Day
	if part == solution.PartTwo && !opts.Example && !r.ledger.Answered(day, string(solution.PartOne)) {
		r.log.Info("part a not answered yet, skipping part b", zap.Int("day", day))
		return nil
	}
	input, err := r.input(ctx, day, part, opts.Example)
	if err != nil {
		return err
	}

	start := time.Now()
	answer, err := s.Solve(part, input)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}
	if answer == "" {
		r.log.Info("no answer yet", zap.Int("day", day), zap.String("part", string(part)))
		return nil
	}

	fmt.Fprintf(r.out, "%s\n", answerStyle.Render(fmt.Sprintf("Answer part %s: %s", part, answer)))
	fmt.Fprintf(r.out, "Solution takes %s to complete\n", FormatDuration(elapsed))

	if r.shouldSubmit(day, part, opts) {
		return r.submit(ctx, day, part, answer)
	}
	return nil
}

// shouldSubmit gates submission: real input only, enabled in config, not
// disabled by flag, part not already confirmed.
func (r *Runner) shouldSubmit(day int, part solution.Part, opts Options) bool {
	if opts.Example || opts.NoSubmit {
		return false
	}
	if !r.cfg.Year.Submit.Enabled {
		return false
	}
	return !r.ledger.Answered(day, string(part))
}

func (r *Runner) submit(ctx context.Context, day int, part solution.Part, answer string) error {
	if r.client == nil {
		return fmt.Errorf("runner: cannot submit without a session token")
	}
	result, err := r.client.Submit(ctx, r.cfg.Year.Year, day, part.Level(), answer)
	if err != nil {
		return err
	}
	r.journal.Record(day, string(part), answer, result)
	switch result.Verdict {
	case aoc.VerdictCorrect:
		if err := r.ledger.Record(day, string(part), answer); err != nil {
			return err
		}
		r.log.Info("answer confirmed", zap.Int("day", day), zap.String("part", string(part)))
	case aoc.VerdictTooRecent:
		r.log.Warn("submitted too recently", zap.String("hint", result.Message))
	default:
		r.log.Warn("submission not accepted", zap.String("verdict", string(result.Verdict)))
	}
	fmt.Fprintf(r.out, "%s\n", result.Message)
	return nil
}

// input returns the cached puzzle input for a part, fetching and caching it
// on a miss. Example data for part two prefers the page's second block.
func (r *Runner) input(ctx context.Context, day int, part solution.Part, example bool) (string, error) {
	var path string
	if example {
		path = r.inputs.ExamplePath(day, part == solution.PartTwo)
	} else {
		path = r.inputs.InputPath(day)
	}
	if cached, ok := r.inputs.Read(path); ok {
		return cached, nil
	}
	r.log.Info("loading puzzle data", zap.Int("day", day), zap.Bool("example", example))

	var content string
	if example {
		page, err := r.puzzlePage(ctx, day)
		if err != nil {
			return "", err
		}
		puzzle, err := aoc.ParsePuzzlePage(page)
		if err != nil {
			return "", err
		}
		content = puzzle.Example(part == solution.PartTwo)
	} else {
		if r.client == nil {
			return "", fmt.Errorf("runner: %s not cached and no session token available", path)
		}
		fetched, err := r.client.Input(ctx, r.cfg.Year.Year, day)
		if err != nil {
			return "", err
		}
		content = fetched
	}
	if err := r.inputs.Write(path, content); err != nil {
		return "", err
	}
	return content, nil
}

// puzzlePage returns a day's puzzle page HTML, serving the .aockit/cache
// copy when present so example runs keep working offline.
func (r *Runner) puzzlePage(ctx context.Context, day int) ([]byte, error) {
	path := filepath.Join(r.cfg.CacheDir(), fmt.Sprintf("day%02d.html", day))
	if data, err := os.ReadFile(path); err == nil && len(data) > 0 {
		return data, nil
	}
	if r.client == nil {
		return nil, fmt.Errorf("runner: puzzle page for day %d not cached and no session token available", day)
	}
	page, err := r.client.PuzzlePage(ctx, r.cfg.Year.Year, day)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, page, 0o644); err != nil {
		r.log.Warn("could not cache puzzle page", zap.Error(err))
	}
	return page, nil
}

// FormatDuration renders solve times the way the answer line expects:
// three decimals in the largest unit among s, ms and µs.
func FormatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.3fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1e3)
	default:
		return fmt.Sprintf("%.3fµs", float64(d.Nanoseconds())/1e3)
	}
}

// ResolveDay picks the day to run: explicit argument first, otherwise
// today's date during December. Outside December a day is required.
func ResolveDay(arg int, now time.Time) (int, error) {
	day := arg
	if day == 0 {
		if now.Month() != time.December {
			return 0, fmt.Errorf("runner: not December, specify a day explicitly")
		}
		day = now.Day()
	}
	if day < solution.FirstDay || day > solution.LastDay {
		return 0, fmt.Errorf("runner: day %d not in advent range (1-%d)", day, solution.LastDay)
	}
	return day, nil
}
