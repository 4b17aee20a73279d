// Package scaffold generates year repositories and per-day solution files
// from the embedded templates.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/MyNameIs-13/aockit/internal/config"
)

// SharedRepoURL is added as a git submodule so a year repo pins the shared
// tooling it was generated with.
const SharedRepoURL = "https://github.com/MyNameIs-13/aockit.git"

const gitignoreContent = `.aockit/
inputs/
`

// Scaffold creates year repositories under a parent directory.
type Scaffold struct {
	parent string
	log    *zap.Logger
}

// New returns a scaffold rooted at parentDir (year repos are created as
// siblings of the shared checkout, mirroring advent-of-code-<year>).
func New(parentDir string, log *zap.Logger) *Scaffold {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scaffold{parent: parentDir, log: log}
}

// YearDir returns the directory a year repository would occupy.
func (s *Scaffold) YearDir(year int) string {
	return filepath.Join(s.parent, fmt.Sprintf("advent-of-code-%d", year))
}

// CreateYear generates the full year repository. On any failure the
// partially created directory is removed so a retry starts clean.
func (s *Scaffold) CreateYear(year int, initGit bool) (dir string, err error) {
	if year < 2015 {
		return "", fmt.Errorf("scaffold: %d is before the first advent of code", year)
	}
	dir = s.YearDir(year)
	if _, statErr := os.Stat(dir); statErr == nil {
		return "", fmt.Errorf("scaffold: %s already exists", dir)
	}

	defer func() {
		if err == nil {
			return
		}
		s.log.Warn("rolling back partially created year repo", zap.String("dir", dir))
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			s.log.Error("rollback failed", zap.Error(rmErr))
		}
	}()

	s.log.Info("creating year repo", zap.Int("year", year), zap.String("dir", dir))
	for _, sub := range []string{"days", "inputs"} {
		if err = os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return "", fmt.Errorf("scaffold: create %s: %w", sub, err)
		}
	}

	data := TemplateData{Year: year}
	files := map[string]string{
		"README.md":       "README.md.tpl",
		config.MarkerFile: "config.yaml.tpl",
	}
	for target, tpl := range files {
		var content string
		content, err = Render(tpl, data)
		if err != nil {
			return "", err
		}
		if err = os.WriteFile(filepath.Join(dir, target), []byte(content), 0o644); err != nil {
			return "", fmt.Errorf("scaffold: write %s: %w", target, err)
		}
	}
	if err = os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignoreContent), 0o644); err != nil {
		return "", fmt.Errorf("scaffold: write .gitignore: %w", err)
	}

	if initGit {
		git := Git{Dir: dir, Log: s.log}
		if err = git.Run("init"); err != nil {
			return "", err
		}
		if err = git.Run("submodule", "add", SharedRepoURL, "shared"); err != nil {
			return "", err
		}
		if err = git.Run("add", "."); err != nil {
			return "", err
		}
		if err = git.Run("commit", "-m", fmt.Sprintf("Initialize Advent of Code %d", year)); err != nil {
			return "", err
		}
		s.log.Debug("initialized git repository", zap.String("dir", dir))
	}

	s.log.Info("year repo created", zap.Int("year", year))
	return dir, nil
}

// CreateDay renders a fresh days/dayNN.go from the template. The target
// must not exist; editing happens by hand afterwards.
func CreateDay(cfg *config.Config, day int, log *zap.Logger) (string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	path := cfg.DayFile(day)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("scaffold: %s already exists", path)
	}
	content, err := Render("day.go.tpl", TemplateData{Year: cfg.Year.Year, Day: day})
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("scaffold: create days dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("scaffold: write %s: %w", path, err)
	}
	Git{Dir: cfg.Root, Log: log}.Add(path)
	log.Info("created day script", zap.String("file", path))
	return path, nil
}
