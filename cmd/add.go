package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/eskelund/doselog/internal/model"
	"github.com/eskelund/doselog/internal/output"
	"github.com/eskelund/doselog/internal/parser"
)

// Add command flags.
var (
	addFlagNote string
	addFlagDate string
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:     "add WEIGHT",
	Aliases: []string{"a", "checkin"},
	Short:   "Record a daily check-in",
	Long: `Record a daily check-in with a weight and an optional note.
Weights accept decimal comma or point, with an optional kg suffix.

Examples:
  doselog add 82.5
  doselog add "82,5 kg" --note "felt fine"
  doselog add 82.5 --date yesterday`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addFlagNote, "note", "n", "", "Note for the entry")
	addCmd.Flags().StringVarP(&addFlagDate, "date", "d", "", "Entry date (default: now)")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	weight, err := parser.Weight(args[0])
	if err != nil {
		return err
	}

	date := time.Now()
	if addFlagDate != "" {
		date, err = parser.Date(addFlagDate)
		if err != nil {
			return err
		}
	}

	entry := model.NewDaily(date, &weight, addFlagNote)
	if err := ctx.EntryRepo.Add(entry); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(&output.AddResponse{
			Status: "added",
			Entry:  output.NewEntryOutput(entry),
		})
	}

	cli := ctx.CLIFormatter()
	cli.Success("Recorded " + output.FormatWeight(weight) + " on " + output.FormatDate(date))
	return nil
}
