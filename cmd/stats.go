package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eskelund/doselog/internal/output"
	"github.com/eskelund/doselog/internal/trend"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"stat", "status"},
	Short:   "Show entry statistics and the weight trend",
	Long: `Show counts by entry type, latest and first recorded weight, net
weight change, days since the last medication dose, and the weight trend.

Examples:
  doselog stats
  doselog stats --format json`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	stats, err := ctx.EntryRepo.Statistics()
	if err != nil {
		return err
	}

	series, err := ctx.EntryRepo.WeightSeries()
	if err != nil {
		return err
	}

	var fit *trend.Trend
	if len(series) >= trend.MinPointsStat {
		// A fit over fewer points is too noisy to show as a statistic.
		fit, _ = trend.Fit(series)
	}

	if ctx.IsJSON() {
		resp := map[string]interface{}{
			"status":     "ok",
			"statistics": stats,
		}
		if fit != nil {
			resp["trend"] = map[string]interface{}{
				"slope_kg_per_day": fit.Slope,
				"direction":        fit.Classify(),
				"net_change_kg":    fit.NetChange(),
			}
		}
		return ctx.JSONFormatter().JSON(resp)
	}

	cli := ctx.CLIFormatter()
	cli.Title("Statistics")
	cli.Println("")
	cli.Printf("  Entries:        %d (%d daily, %d medication)\n",
		stats.TotalEntries, stats.DailyCount, stats.MedicationCount)

	if stats.LatestWeight != nil {
		cli.Printf("  Latest weight:  %s\n", cli.Weight(*stats.LatestWeight))
	}
	if stats.FirstWeight != nil {
		cli.Printf("  First weight:   %s\n", cli.Weight(*stats.FirstWeight))
	}
	if stats.NetChange != nil {
		cli.Printf("  Net change:     %+.1f kg\n", *stats.NetChange)
	}
	if stats.DaysSinceLastDose != nil {
		cli.Printf("  Last dose:      %s ago\n", output.FormatDays(*stats.DaysSinceLastDose))
	}

	if fit != nil {
		cli.Println("")
		cli.Printf("  Trend:          %s (%+.1f kg over %s)\n",
			fit.Classify(), fit.NetChange(),
			output.FormatDays(int(fit.Offsets[len(fit.Offsets)-1])))
	} else if len(series) > 0 {
		cli.Println("")
		cli.Muted(fmt.Sprintf("  Need %d weight entries for a trend, have %d.",
			trend.MinPointsStat, len(series)))
	}

	return nil
}
