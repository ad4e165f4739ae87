package cmd

import (
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/eskelund/doselog/internal/output"
)

// Export command flags.
var exportFlagOutput string

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"backup", "dump"},
	Short:   "Export all entries as JSON",
	Long: `Export the full collection as pretty-printed JSON in the backup
format: {exportDate, version, entryCount, entries}. Without -o the default
filename is stamped with the current date.

Examples:
  doselog export
  doselog export -o backup.json
  doselog export -o - (write to stdout)`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file ('-' for stdout)")

	rootCmd.AddCommand(exportCmd)
}

// exportEnvelope is the backup wrapper format.
type exportEnvelope struct {
	ExportDate string                `json:"exportDate"`
	Version    string                `json:"version"`
	EntryCount int                   `json:"entryCount"`
	Entries    []*output.EntryOutput `json:"entries"`
}

func runExport(cmd *cobra.Command, args []string) error {
	entries, err := ctx.EntryRepo.List()
	if err != nil {
		return err
	}

	envelope := &exportEnvelope{
		ExportDate: time.Now().Format(time.RFC3339),
		Version:    "1",
		EntryCount: len(entries),
		Entries:    make([]*output.EntryOutput, len(entries)),
	}
	for i, e := range entries {
		envelope.Entries[i] = output.NewEntryOutput(e)
	}

	filename := exportFlagOutput
	if filename == "" {
		filename = "doselog-export-" + time.Now().Format("2006-01-02") + ".json"
	}

	var writer *os.File
	if filename == "-" {
		writer = os.Stdout
	} else {
		f, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer f.Close()
		writer = f
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(envelope); err != nil {
		return err
	}

	if writer != os.Stdout && !ctx.IsJSON() {
		cli := ctx.CLIFormatter()
		cli.Success("Exported " + filename)
		cli.Printf("  Entries: %d\n", len(entries))
	}
	return nil
}
