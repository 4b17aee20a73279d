package scaffold

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Git shells out to the git binary inside a fixed working directory.
type Git struct {
	Dir string
	Log *zap.Logger
}

// Run executes one git command and surfaces its combined output on failure.
func (g Git) Run(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = g.Dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("scaffold: git %s: %w: %s",
			strings.Join(args, " "), err, bytes.TrimSpace(output))
	}
	if g.Log != nil {
		g.Log.Debug("git", zap.String("args", strings.Join(args, " ")))
	}
	return nil
}

// Add stages a path, best effort. Day creation works in repos that never
// ran `git init`, so a failure here only logs.
func (g Git) Add(path string) {
	if err := g.Run("add", path); err != nil && g.Log != nil {
		g.Log.Debug("git add skipped", zap.Error(err))
	}
}
