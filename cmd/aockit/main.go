// cmd/aockit/main.go
//
// Entry point for the aockit CLI: scaffold year repositories, run or
// create day solutions, show the calendar, manage the session token.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MyNameIs-13/aockit/internal/aoc"
	"github.com/MyNameIs-13/aockit/internal/config"
	"github.com/MyNameIs-13/aockit/internal/logging"
)

var (
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "aockit",
	Short: "Advent of Code scaffold and day runner",
	Long: `aockit generates per-year Advent of Code repositories and runs the
per-day solution files inside them.

Day files under days/ are plain Go, interpreted on the fly: no build step.
A missing day is created from the embedded template; an existing one is
executed against the (cached) puzzle input and its answers are submitted.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadConfig locates the enclosing year repository from the working
// directory.
func loadConfig() (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("determine working directory: %w", err)
	}
	root, err := config.Find(wd)
	if err != nil {
		return nil, err
	}
	return config.Load(root)
}

// newClient builds the puzzle-service client when a session token is
// available. Without one the CLI still works against cached inputs.
func newClient() *aoc.Client {
	token, err := config.Token()
	if err != nil {
		logger.Warn("no session token, running offline", zap.Error(err))
		return nil
	}
	client, err := aoc.NewClient(token)
	if err != nil {
		logger.Warn("puzzle service client unavailable", zap.Error(err))
		return nil
	}
	return client
}
