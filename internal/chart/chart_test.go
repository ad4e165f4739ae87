package chart

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eskelund/doselog/internal/model"
)

func weightPtr(w float64) *float64 { return &w }

func series(start time.Time, weights ...float64) []*model.Entry {
	entries := make([]*model.Entry, len(weights))
	for i, w := range weights {
		entries[i] = model.NewDaily(start.AddDate(0, 0, i), weightPtr(w), "")
	}
	return entries
}

// =============================================================================
// Bounds Tests
// =============================================================================

func TestComputeBounds(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		want    Bounds
	}{
		{"narrow_range", []float64{82.1, 82.5}, Bounds{Min: 82.0, Max: 82.5, Step: 0.5}},
		{"on_half_steps", []float64{80.0, 81.5}, Bounds{Min: 80.0, Max: 81.5, Step: 0.5}},
		{"single_value", []float64{80.0}, Bounds{Min: 80.0, Max: 80.5, Step: 0.5}},
		{"wide_range_doubles_step", []float64{75.2, 84.8}, Bounds{Min: 75.0, Max: 85.0, Step: 1.0}},
		{"exactly_ten_lines", []float64{80.0, 84.5}, Bounds{Min: 80.0, Max: 84.5, Step: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeBounds(tt.weights))
		})
	}
}

// =============================================================================
// Render Tests
// =============================================================================

func TestRenderEmpty(t *testing.T) {
	out := Render(nil, DefaultConfig())
	assert.Contains(t, out, NoDataMessage)
	assert.NotContains(t, out, "┤")
	assert.NotContains(t, out, "└")
}

func TestRenderEmptyWhenNoWeights(t *testing.T) {
	entries := []*model.Entry{
		model.NewMedication(time.Now(), "5mg", nil, ""),
	}
	out := Render(entries, DefaultConfig())
	assert.Contains(t, out, NoDataMessage)
}

func TestRenderAxesAndMarkers(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	out := Render(series(start, 82.5, 82.1, 81.8), Config{Width: 60})

	assert.Contains(t, out, "┤")
	assert.Contains(t, out, "└")
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "82.5")
	assert.Contains(t, out, "01/03")
	assert.Contains(t, out, "03/03")
	assert.NotContains(t, out, "daily") // legend off
}

func TestRenderLegend(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	out := Render(series(start, 82.5, 82.1, 81.8), Config{Width: 60, Legend: true})

	assert.Contains(t, out, "daily")
	assert.Contains(t, out, "medication")
	assert.Contains(t, out, "trend: falling")
}

func TestRenderTrendNeedsThreePoints(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	out := Render(series(start, 82.5, 82.1), Config{Width: 60, Legend: true})

	assert.NotContains(t, out, "╌")
	assert.NotContains(t, out, "trend:")
}

func TestRenderRowCount(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	out := Render(series(start, 82.1, 82.5), Config{Width: 60})

	// Bounds 82.0..82.5 step 0.5 gives two weight rows plus the axis
	// and date label lines.
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "82.5")
	assert.Contains(t, lines[1], "82.0")
}

func TestRenderPlainHasNoANSI(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	out := Render(series(start, 82.5, 82.1, 81.8), Config{Width: 60, Color: false, Legend: true})
	assert.NotContains(t, out, "\x1b[")
}

// =============================================================================
// Window Tests
// =============================================================================

func TestNewWindowTrailing(t *testing.T) {
	w := NewWindow(14, 30)
	assert.Equal(t, 16, w.Start)

	w = NewWindow(14, 10)
	assert.Equal(t, 0, w.Start)
}

func TestWindowPaging(t *testing.T) {
	w := NewWindow(14, 30)

	w = w.Prev(30)
	assert.Equal(t, 2, w.Start)

	w = w.Prev(30)
	assert.Equal(t, 0, w.Start)

	w = w.Next(30)
	assert.Equal(t, 14, w.Start)

	w = w.Next(30)
	assert.Equal(t, 16, w.Start)

	w = w.Next(30)
	assert.Equal(t, 16, w.Start)
}

func TestWindowSlice(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	entries := series(start, 80, 79.5, 79, 78.5, 78)

	w := Window{Size: 2, Start: 1}
	got := w.Slice(entries)
	require.Len(t, got, 2)
	assert.Equal(t, 79.5, *got[0].Weight)

	full := Window{Size: 0}
	assert.Len(t, full.Slice(entries), 5)

	oversized := Window{Size: 10}
	assert.Len(t, oversized.Slice(entries), 5)
}
