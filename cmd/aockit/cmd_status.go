package main

import (
	"github.com/spf13/cobra"

	"github.com/MyNameIs-13/aockit/internal/aoc"
	"github.com/MyNameIs-13/aockit/internal/solution"
	"github.com/MyNameIs-13/aockit/internal/tui"
)

const journalTailLines = 5

// statusCmd renders the calendar TUI for the enclosing year repository.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the calendar for the current year repository",
	Long: `Show an interactive calendar: which days have a solution file, a
cached input, and how many stars the answer ledger records. Select a day
and press e to open it in $EDITOR.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dayFiles, err := solution.Discover(cfg.DaysDir())
		if err != nil {
			return err
		}
		ledger, err := aoc.OpenLedger(cfg.AnswersPath())
		if err != nil {
			return err
		}
		journal, err := aoc.NewJournal(cfg.JournalPath())
		if err != nil {
			return err
		}
		inputs := aoc.NewInputStore(cfg.InputsDir())

		tail, _ := journal.Tail(journalTailLines)
		status := tui.NewStatus(cfg.Year.Year, dayFiles, inputs.HasInput, ledger.Stars, tail)
		return tui.Run(status)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
