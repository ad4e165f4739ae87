package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eskelund/doselog/internal/errors"
	"github.com/eskelund/doselog/internal/model"
	"github.com/eskelund/doselog/internal/output"
)

// List command flags.
var (
	listFlagLimit int
	listFlagType  string
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "history"},
	Short:   "Show recorded entries, newest first",
	Long: `Show recorded entries, newest first.

Examples:
  doselog list
  doselog list --limit 10
  doselog list --type medication`,
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVarP(&listFlagLimit, "limit", "l", 0, "Maximum entries to show (0 = all)")
	listCmd.Flags().StringVarP(&listFlagType, "type", "t", "", "Filter by type: daily, medication")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	var entries []*model.Entry
	var err error

	if listFlagType != "" {
		t := model.EntryType(listFlagType)
		if !t.IsValid() {
			return errors.NewValidationErrorWithField("type", listFlagType,
				"Invalid entry type", "Use 'daily' or 'medication'")
		}
		entries, err = ctx.EntryRepo.ListByType(t)
	} else {
		entries, err = ctx.EntryRepo.List()
	}
	if err != nil {
		return err
	}

	total := len(entries)
	if listFlagLimit > 0 && len(entries) > listFlagLimit {
		entries = entries[:listFlagLimit]
	}

	if ctx.IsJSON() {
		resp := &output.ListResponse{
			Entries:    make([]*output.EntryOutput, len(entries)),
			TotalCount: total,
			ShownCount: len(entries),
		}
		for i, e := range entries {
			resp.Entries[i] = output.NewEntryOutput(e)
		}
		return ctx.JSONFormatter().JSON(resp)
	}

	cli := ctx.CLIFormatter()
	if len(entries) == 0 {
		cli.Muted("No entries recorded.")
		return nil
	}

	cli.Title("Entries")
	cli.Println("")
	for _, e := range entries {
		cli.PrintEntry(e)
	}
	if total > len(entries) {
		cli.Println("")
		cli.Muted(fmt.Sprintf("Showing %d of %d entries.", len(entries), total))
	}
	return nil
}
