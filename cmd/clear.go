package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Clear command flags.
var clearFlagForce bool

// clearCmd represents the clear command.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all entries",
	Long: `Delete every recorded entry. Asks for confirmation unless --force
is given.

Examples:
  doselog clear
  doselog clear --force`,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&clearFlagForce, "force", false, "Skip confirmation")

	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	cli := ctx.CLIFormatter()

	if !clearFlagForce {
		cli.Printf("Delete ALL entries? This cannot be undone. [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			cli.Muted("Aborted.")
			return nil
		}
	}

	n, err := ctx.EntryRepo.Clear()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(map[string]interface{}{
			"status":  "cleared",
			"deleted": n,
		})
	}

	cli.Success(fmt.Sprintf("Deleted %d entries.", n))
	return nil
}
