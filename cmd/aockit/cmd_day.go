package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/MyNameIs-13/aockit/internal/runner"
	"github.com/MyNameIs-13/aockit/internal/solution"
)

var (
	dayExample  bool
	dayPart     string
	dayNoSubmit bool
	dayWatch    bool
)

// dayCmd is the run-or-create dispatcher.
var dayCmd = &cobra.Command{
	Use:   "day [day]",
	Short: "Run a day's solution, creating it from the template when missing",
	Long: `Resolve the day (argument, or today's date during December), then
dispatch: a missing days/dayNN.go is rendered from the template and left
for you to fill in; an existing one is interpreted and run against the
puzzle input. Non-example answers are submitted unless disabled.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		requested := 0
		if len(args) == 1 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("please provide a valid day number: %q", args[0])
			}
			requested = parsed
		}
		day, err := runner.ResolveDay(requested, time.Now())
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		opts := runner.Options{Example: dayExample, NoSubmit: dayNoSubmit}
		if dayPart != "" {
			part, err := solution.ParsePart(dayPart)
			if err != nil {
				return err
			}
			opts.Part = part
		}

		r, err := runner.New(cfg, newClient(), logger)
		if err != nil {
			return err
		}
		if dayWatch {
			err := r.Watch(cmd.Context(), day, opts)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		return r.RunOrCreate(cmd.Context(), day, opts)
	},
}

func init() {
	dayCmd.Flags().BoolVar(&dayExample, "example", false, "run against the example input")
	dayCmd.Flags().StringVar(&dayPart, "part", "", "restrict to one part (a or b)")
	dayCmd.Flags().BoolVar(&dayNoSubmit, "no-submit", false, "never submit answers")
	dayCmd.Flags().BoolVar(&dayWatch, "watch", false, "re-run when the day file changes")
	rootCmd.AddCommand(dayCmd)
}
