package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/eskelund/doselog/internal/model"
	"github.com/eskelund/doselog/internal/output"
	"github.com/eskelund/doselog/internal/parser"
)

// Dose command flags.
var (
	doseFlagWeight string
	doseFlagNote   string
	doseFlagDate   string
)

// doseCmd represents the dose command.
var doseCmd = &cobra.Command{
	Use:     "dose DOSE",
	Aliases: []string{"med", "medication"},
	Short:   "Record a medication dose",
	Long: `Record a medication dose, optionally with a weight and a note.
Doses are a number followed by mg, like 5mg or "7.5 mg".

Examples:
  doselog dose 5mg
  doselog dose "7.5 mg" --weight 82.5
  doselog dose 5mg --date "last monday" --note "injection day"`,
	Args: cobra.ExactArgs(1),
	RunE: runDose,
}

func init() {
	doseCmd.Flags().StringVarP(&doseFlagWeight, "weight", "w", "", "Weight at time of dose")
	doseCmd.Flags().StringVarP(&doseFlagNote, "note", "n", "", "Note for the entry")
	doseCmd.Flags().StringVarP(&doseFlagDate, "date", "d", "", "Entry date (default: now)")

	rootCmd.AddCommand(doseCmd)
}

func runDose(cmd *cobra.Command, args []string) error {
	dose, err := parser.Dose(args[0])
	if err != nil {
		return err
	}

	var weight *float64
	if doseFlagWeight != "" {
		w, err := parser.Weight(doseFlagWeight)
		if err != nil {
			return err
		}
		weight = &w
	}

	date := time.Now()
	if doseFlagDate != "" {
		date, err = parser.Date(doseFlagDate)
		if err != nil {
			return err
		}
	}

	entry := model.NewMedication(date, dose, weight, doseFlagNote)
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
	cli.Success("Recorded dose " + dose + " on " + output.FormatDate(date))
	return nil
}
