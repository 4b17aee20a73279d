package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MyNameIs-13/aockit/internal/scaffold"
)

var yearNoGit bool

// yearCmd scaffolds advent-of-code-<year> next to the current directory.
var yearCmd = &cobra.Command{
	Use:   "year [year]",
	Short: "Create a new year repository",
	Long: `Create the directory skeleton for a new Advent of Code year:
days/, inputs/, aockit.yaml, README.md and .gitignore. Unless --no-git is
given the repo is git-initialized with the shared tooling as a submodule
and a first commit. Defaults to the current year.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year := time.Now().Year()
		if len(args) == 1 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("please provide a valid year number: %q", args[0])
			}
			year = parsed
		}
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determine working directory: %w", err)
		}
		dir, err := scaffold.New(wd, logger).CreateYear(year, !yearNoGit)
		if err != nil {
			return err
		}
		logger.Info("year repo ready", zap.String("dir", dir))
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", dir)
		return nil
	},
}

func init() {
	yearCmd.Flags().BoolVar(&yearNoGit, "no-git", false, "skip git init, submodule and first commit")
	rootCmd.AddCommand(yearCmd)
}
