package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eskelund/doselog/internal/errors"
	"github.com/eskelund/doselog/internal/importer"
	"github.com/eskelund/doselog/internal/model"
	"github.com/eskelund/doselog/internal/output"
)

// Import command flags.
var (
	importFlagYear   int
	importFlagInput  string
	importFlagDryRun bool
)

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:     "import FILE",
	Aliases: []string{"imp", "restore"},
	Short:   "Import entries from a file",
	Long: `Import entries from a free-text log or a JSON export.

The free-text format is line oriented: a date header like '01/03 - 82,5 kg'
opens a daily entry, '-' lines attach notes, and a note like 'mounjaro 5 mg'
turns the entry into a medication dose. The source format omits the year,
so --year must be given. JSON imports accept a bare entry array or the
backup wrapper with an 'entries' array.

Invalid lines and entries are skipped with a warning; the import fails
only when nothing valid remains. Re-importing the same data is safe:
duplicates collapse on (day, type, dose-or-weight).

Examples:
  doselog import old-log.txt --year 2025
  doselog import backup.json
  doselog import backup.json --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().IntVarP(&importFlagYear, "year", "y", 0, "Year for free-text dates (required for text imports)")
	importCmd.Flags().StringVar(&importFlagInput, "input", "auto", "Input format: text, json, auto")
	importCmd.Flags().BoolVar(&importFlagDryRun, "dry-run", false, "Preview import without making changes")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	format := importFlagInput
	if format == "auto" {
		format = detectImportFormat(data)
	}

	var candidates []*model.Entry
	var warnings []string

	switch format {
	case "json":
		entries, itemErrs, err := importer.ParseJSON(data)
		if err != nil {
			return err
		}
		candidates = entries
		for _, ie := range itemErrs {
			warnings = append(warnings, ie.Error())
		}
	case "text":
		if importFlagYear == 0 {
			return errors.NewValidationError("Year is required for text imports",
				"Pass --year, e.g. --year 2025")
		}
		candidates, warnings = importer.ParseFreeText(string(data), importFlagYear)
	default:
		return fmt.Errorf("unrecognized file format")
	}

	cli := ctx.CLIFormatter()

	if importFlagDryRun {
		return printImportPreview(candidates, warnings)
	}

	result, err := ctx.EntryRepo.ImportMany(candidates)
	if err != nil {
		return err
	}
	for _, ie := range result.Errors {
		warnings = append(warnings, ie.Error())
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(&output.ImportResponse{
			Status:     "imported",
			Imported:   result.Imported,
			Duplicates: result.Duplicates,
			Warnings:   warnings,
		})
	}

	if len(candidates) == 0 {
		cli.Muted("Nothing to import.")
		for _, w := range warnings {
			cli.Warning(w)
		}
		return nil
	}

	cli.Success("Import complete")
	cli.Printf("  Imported:   %d\n", result.Imported)
	if result.Duplicates > 0 {
		cli.Printf("  Duplicates: %d\n", result.Duplicates)
	}
	for _, w := range warnings {
		cli.Warning(w)
	}
	return nil
}

// detectImportFormat decides between text and JSON by shape: JSON documents
// start with an array or object once whitespace is stripped.
func detectImportFormat(data []byte) string {
	trimmed := strings.TrimLeft(string(data), " \t\r\n")
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		return "json"
	}
	return "text"
}

func printImportPreview(candidates []*model.Entry, warnings []string) error {
	if ctx.IsJSON() {
		resp := &output.ListResponse{
			Entries:    make([]*output.EntryOutput, len(candidates)),
			TotalCount: len(candidates),
			ShownCount: len(candidates),
		}
		for i, e := range candidates {
			resp.Entries[i] = output.NewEntryOutput(e)
		}
		return ctx.JSONFormatter().JSON(resp)
	}

	cli := ctx.CLIFormatter()
	cli.Title("Dry Run - Import Preview")
	cli.Println("")
	for _, e := range candidates {
		cli.PrintEntry(e)
	}
	cli.Println("")
	cli.Printf("Would import %d entries.\n", len(candidates))
	for _, w := range warnings {
		cli.Warning(w)
	}
	return nil
}
