package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/eskelund/doselog/internal/errors"
	"github.com/eskelund/doselog/internal/model"
	"github.com/eskelund/doselog/internal/output"
)

// deleteCmd represents the delete command.
var deleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"del", "rm"},
	Short:   "Delete an entry by ID",
	Long: `Delete a single entry by its ID. Use 'doselog list' to find IDs.
The entry: prefix may be omitted.

Examples:
  doselog delete entry:0195c2f0-5a7e-7f7b-a5d8-1c9f60b3a001
  doselog delete 0195c2f0-5a7e-7f7b-a5d8-1c9f60b3a001`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	key := args[0]
	if !strings.HasPrefix(key, model.PrefixEntry+":") {
		key = model.PrefixEntry + ":" + key
	}

	deleted, err := ctx.EntryRepo.Delete(key)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(&output.DeleteResponse{
			Status:  status(deleted),
			Deleted: deleted,
			Key:     key,
		})
	}

	cli := ctx.CLIFormatter()
	if !deleted {
		cli.Warning("No entry with that ID.")
		return errors.ErrEntryNotFound
	}
	cli.Success("Entry deleted.")
	return nil
}

func status(deleted bool) string {
	if deleted {
		return "deleted"
	}
	return "not_found"
}
