// Package chart renders a weight series as a terminal chart: scaled axes,
// gridlines, a connected polyline, per-type point markers, an optional
// dashed trend overlay and a legend. Rendering is stateless per call;
// windowing state lives with the caller.
package chart

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/eskelund/doselog/internal/model"
	"github.com/eskelund/doselog/internal/trend"
)

const (
	// DefaultWindow is the number of trailing points shown when windowing.
	DefaultWindow = 14
	// DefaultWidth is the fallback chart width in cells.
	DefaultWidth = 72

	// gutterWidth is the left gutter holding weight labels.
	gutterWidth = 8
	// maxGridlines caps horizontal gridlines; past this the step doubles.
	maxGridlines = 10
	// verticalGridlines is the number of labeled time gridlines.
	verticalGridlines = 5
)

// Marker colors keyed by entry type, matching the CLI palette.
var (
	styleDaily      = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")) // Blue
	styleMedication = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")) // Purple
	styleTrend      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")) // Yellow
	styleGrid       = lipgloss.NewStyle().Foreground(lipgloss.Color("#4B5563")) // Dark gray
	styleLabel      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")) // Gray
)

// Config parameterizes one render call.
type Config struct {
	Width  int  // total width in cells, gutter included
	Color  bool // style the output with lipgloss
	Legend bool // append the legend line
}

// DefaultConfig returns the default chart configuration.
func DefaultConfig() Config {
	return Config{Width: DefaultWidth, Legend: true}
}

// Bounds is the weight axis range, rounded outward to the nearest 0.5,
// with the gridline step (0.5, or 1.0 when 0.5 would exceed the cap).
type Bounds struct {
	Min, Max, Step float64
}

// ComputeBounds derives the weight axis bounds for a series.
func ComputeBounds(weights []float64) Bounds {
	min, max := weights[0], weights[0]
	for _, w := range weights[1:] {
		if w < min {
			min = w
		}
		if w > max {
			max = w
		}
	}

	b := Bounds{
		Min:  math.Floor(min*2) / 2,
		Max:  math.Ceil(max*2) / 2,
		Step: 0.5,
	}
	if b.Max == b.Min {
		b.Max = b.Min + 0.5
	}
	if int((b.Max-b.Min)/0.5)+1 > maxGridlines {
		b.Step = 1.0
		b.Min = math.Floor(b.Min)
		b.Max = math.Ceil(b.Max)
	}
	return b
}

// cell is one glyph of the chart grid with an optional style.
type cell struct {
	r  rune
	st *lipgloss.Style
}

type grid struct {
	cells [][]cell
	rows  int
	cols  int
}

func newGrid(rows, cols int) *grid {
	cells := make([][]cell, rows)
	for i := range cells {
		cells[i] = make([]cell, cols)
		for j := range cells[i] {
			cells[i][j] = cell{r: ' '}
		}
	}
	return &grid{cells: cells, rows: rows, cols: cols}
}

func (g *grid) set(row, col int, r rune, st *lipgloss.Style) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return
	}
	g.cells[row][col] = cell{r: r, st: st}
}

// Render draws the series. Entries must be weight-bearing and in
// chronological order; the caller is responsible for windowing. An empty
// series renders only a centered "no data" message.
func Render(entries []*model.Entry, cfg Config) string {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}

	var weights []float64
	for _, e := range entries {
		if e.Weight != nil {
			weights = append(weights, *e.Weight)
		}
	}

	if len(weights) == 0 {
		return renderEmpty(cfg)
	}

	bounds := ComputeBounds(weights)
	rows := int(math.Round((bounds.Max-bounds.Min)/bounds.Step)) + 1
	cols := cfg.Width - gutterWidth
	if cols < verticalGridlines {
		cols = verticalGridlines
	}
	g := newGrid(rows, cols)

	style := func(s *lipgloss.Style) *lipgloss.Style {
		if !cfg.Color {
			return nil
		}
		return s
	}

	minT, maxT := timeRange(entries)
	span := maxT.Sub(minT)

	colOf := func(t time.Time) int {
		if span == 0 {
			return 0
		}
		return int(math.Round(float64(t.Sub(minT)) / float64(span) * float64(cols-1)))
	}
	rowOf := func(w float64) int {
		return int(math.Round((bounds.Max - w) / bounds.Step))
	}

	// Horizontal gridlines, one per weight level.
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.set(row, col, '·', style(&styleGrid))
		}
	}

	// Vertical gridlines, evenly spaced across the time range.
	tickCols := make([]int, verticalGridlines)
	for i := 0; i < verticalGridlines; i++ {
		tickCols[i] = i * (cols - 1) / (verticalGridlines - 1)
		for row := 0; row < rows; row++ {
			g.set(row, tickCols[i], '┊', style(&styleGrid))
		}
	}

	// Trend overlay, dashed, drawn under the polyline and markers.
	fit, fitErr := trend.Fit(entries)
	if fitErr == nil && len(weights) >= trend.MinPointsStat {
		for col := 0; col < cols; col += 2 {
			var offset float64
			if span > 0 {
				t := minT.Add(time.Duration(float64(span) * float64(col) / float64(cols-1)))
				offset = t.Sub(fit.Epoch).Hours() / 24
			}
			g.set(rowOf(fit.At(offset)), col, '╌', style(&styleTrend))
		}
	}

	// Polyline through all points in chronological order.
	prevCol, prevRow := -1, -1
	for _, e := range entries {
		if e.Weight == nil {
			continue
		}
		col, row := colOf(e.Date), rowOf(*e.Weight)
		if prevCol >= 0 {
			drawSegment(g, prevCol, prevRow, col, row, style(&styleLabel))
		}
		prevCol, prevRow = col, row
	}

	// Markers, color keyed by entry type, drawn last.
	for _, e := range entries {
		if e.Weight == nil {
			continue
		}
		st := style(&styleDaily)
		if e.Type == model.TypeMedication {
			st = style(&styleMedication)
		}
		g.set(rowOf(*e.Weight), colOf(e.Date), '●', st)
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		label := fmt.Sprintf("%*.1f ", gutterWidth-2, bounds.Max-float64(row)*bounds.Step)
		b.WriteString(render(label, style(&styleLabel)))
		b.WriteRune('┤')
		for col := 0; col < cols; col++ {
			c := g.cells[row][col]
			b.WriteString(render(string(c.r), c.st))
		}
		b.WriteRune('\n')
	}

	// Axis and date labels.
	b.WriteString(strings.Repeat(" ", gutterWidth-1))
	b.WriteRune('└')
	b.WriteString(render(strings.Repeat("─", cols), style(&styleGrid)))
	b.WriteRune('\n')
	b.WriteString(dateLabels(minT, maxT, tickCols, cols, style(&styleLabel)))

	if cfg.Legend {
		b.WriteRune('\n')
		b.WriteString(legend(fit, fitErr == nil && len(weights) >= trend.MinPointsStat, cfg))
	}

	return b.String()
}

// NoDataMessage is rendered when the series has no weight-bearing entries.
const NoDataMessage = "no weight data to chart"

func renderEmpty(cfg Config) string {
	pad := (cfg.Width - len(NoDataMessage)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + NoDataMessage
}

func render(s string, st *lipgloss.Style) string {
	if st == nil {
		return s
	}
	return st.Render(s)
}

func timeRange(entries []*model.Entry) (time.Time, time.Time) {
	var min, max time.Time
	for _, e := range entries {
		if e.Weight == nil {
			continue
		}
		if min.IsZero() || e.Date.Before(min) {
			min = e.Date
		}
		if max.IsZero() || e.Date.After(max) {
			max = e.Date
		}
	}
	return min, max
}

// drawSegment connects two points with line cells, interpolating rows
// across the intervening columns.
func drawSegment(g *grid, c0, r0, c1, r1 int, st *lipgloss.Style) {
	if c1 == c0 {
		lo, hi := r0, r1
		if lo > hi {
			lo, hi = hi, lo
		}
		for r := lo + 1; r < hi; r++ {
			g.set(r, c0, '│', st)
		}
		return
	}
	for c := c0 + 1; c < c1; c++ {
		frac := float64(c-c0) / float64(c1-c0)
		r := int(math.Round(float64(r0) + frac*float64(r1-r0)))
		g.set(r, c, '─', st)
	}
}

func dateLabels(minT, maxT time.Time, tickCols []int, cols int, st *lipgloss.Style) string {
	line := make([]rune, gutterWidth+cols)
	for i := range line {
		line[i] = ' '
	}
	span := maxT.Sub(minT)
	for i, col := range tickCols {
		var t time.Time
		if span == 0 {
			t = minT
		} else {
			t = minT.Add(time.Duration(float64(span) * float64(i) / float64(len(tickCols)-1)))
		}
		label := t.Format("02/01")
		start := gutterWidth + col - len(label)/2
		if start < 0 {
			start = 0
		}
		if start+len(label) > len(line) {
			start = len(line) - len(label)
		}
		copy(line[start:], []rune(label))
	}
	return render(string(line), st)
}

func legend(fit *trend.Trend, withTrend bool, cfg Config) string {
	style := func(s *lipgloss.Style) *lipgloss.Style {
		if !cfg.Color {
			return nil
		}
		return s
	}

	parts := []string{
		render("●", style(&styleDaily)) + " daily",
		render("●", style(&styleMedication)) + " medication",
	}
	if withTrend {
		parts = append(parts, fmt.Sprintf("%s trend: %s (%+.1f kg)",
			render("╌", style(&styleTrend)), fit.Classify(), fit.NetChange()))
	}
	return strings.Repeat(" ", gutterWidth) + strings.Join(parts, "   ")
}

// Window is a fixed-size trailing slice of the chronological series.
type Window struct {
	Size  int // 0 disables windowing
	Start int // index of the first visible point
}

// NewWindow returns a trailing window over a series of the given length.
func NewWindow(size, length int) Window {
	w := Window{Size: size}
	if size > 0 && length > size {
		w.Start = length - size
	}
	return w.Clamp(length)
}

// Clamp restricts the window start to [0, length-size].
func (w Window) Clamp(length int) Window {
	if w.Size <= 0 {
		w.Start = 0
		return w
	}
	max := length - w.Size
	if max < 0 {
		max = 0
	}
	if w.Start > max {
		w.Start = max
	}
	if w.Start < 0 {
		w.Start = 0
	}
	return w
}

// Prev pages backward by a whole window, clamped.
func (w Window) Prev(length int) Window {
	w.Start -= w.Size
	return w.Clamp(length)
}

// Next pages forward by a whole window, clamped.
func (w Window) Next(length int) Window {
	w.Start += w.Size
	return w.Clamp(length)
}

// Slice applies the window to the series. A zero-size window returns the
// full series.
func (w Window) Slice(entries []*model.Entry) []*model.Entry {
	if w.Size <= 0 || len(entries) <= w.Size {
		return entries
	}
	end := w.Start + w.Size
	if end > len(entries) {
		end = len(entries)
	}
	return entries[w.Start:end]
}
