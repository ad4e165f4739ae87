package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/eskelund/doselog/internal/chart"
	"github.com/eskelund/doselog/internal/tui"
)

// Chart command flags.
var (
	chartFlagWindow int
	chartFlagFull   bool
	chartFlagPlain  bool
)

// chartCmd represents the chart command.
var chartCmd = &cobra.Command{
	Use:     "chart",
	Aliases: []string{"graph", "plot"},
	Short:   "Draw the weight-trend chart",
	Long: `Draw the weight chart with gridlines, per-type markers and a dashed
trend line. Interactive by default: page through the series with arrow keys.
When stdout is not a terminal (or with --plain) a one-shot chart is printed
instead.

Examples:
  doselog chart
  doselog chart --window 30
  doselog chart --full --plain`,
	RunE: runChart,
}

func init() {
	chartCmd.Flags().IntVarP(&chartFlagWindow, "window", "w", chart.DefaultWindow,
		"Points per window (0 = full series)")
	chartCmd.Flags().BoolVar(&chartFlagFull, "full", false, "Show the full series, unwindowed")
	chartCmd.Flags().BoolVar(&chartFlagPlain, "plain", false, "Print once instead of interactive view")

	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	series, err := ctx.EntryRepo.WeightSeries()
	if err != nil {
		return err
	}

	interactive := !chartFlagPlain && !ctx.IsJSON() &&
		isatty.IsTerminal(os.Stdout.Fd()) && len(series) > 0

	if interactive {
		size := chartFlagWindow
		if chartFlagFull {
			size = 0
		}
		return tui.Run(tui.ChartConfig{
			Entries:    series,
			WindowSize: size,
		})
	}

	cfg := chart.DefaultConfig()
	cfg.Color = ctx.Formatter.IsColorEnabled()
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w < cfg.Width {
		cfg.Width = w
	}

	visible := series
	if !chartFlagFull && chartFlagWindow > 0 {
		visible = chart.NewWindow(chartFlagWindow, len(series)).Slice(series)
	}

	ctx.CLIFormatter().Println(chart.Render(visible, cfg))
	return nil
}
