package trend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eskelund/doselog/internal/errors"
	"github.com/eskelund/doselog/internal/model"
)

func weightPtr(w float64) *float64 { return &w }

func dailySeries(start time.Time, weights ...float64) []*model.Entry {
	entries := make([]*model.Entry, len(weights))
	for i, w := range weights {
		entries[i] = model.NewDaily(start.AddDate(0, 0, i), weightPtr(w), "")
	}
	return entries
}

func TestFitLinearSeries(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	trend, err := Fit(dailySeries(start, 80, 79, 78))
	require.NoError(t, err)

	assert.InDelta(t, -1.0, trend.Slope, 1e-9)
	assert.InDelta(t, 80.0, trend.Intercept, 1e-9)
	assert.Equal(t, start, trend.Epoch)
	assert.Equal(t, []float64{0, 1, 2}, trend.Offsets)
}

func TestFitIgnoresWeightlessEntries(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	entries := dailySeries(start, 80, 79)
	entries = append(entries, model.NewMedication(start.AddDate(0, 0, 2), "5mg", nil, ""))

	trend, err := Fit(entries)
	require.NoError(t, err)
	assert.Len(t, trend.Offsets, 2)
	assert.InDelta(t, -1.0, trend.Slope, 1e-9)
}

func TestFitNotEnoughPoints(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := Fit(nil)
	assert.ErrorIs(t, err, errors.ErrNotEnoughPoints)

	_, err = Fit(dailySeries(start, 80))
	assert.ErrorIs(t, err, errors.ErrNotEnoughPoints)
}

func TestFitSameInstant(t *testing.T) {
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	entries := []*model.Entry{
		model.NewDaily(date, weightPtr(80), ""),
		model.NewDaily(date, weightPtr(81), ""),
	}

	_, err := Fit(entries)
	assert.ErrorIs(t, err, errors.ErrNotEnoughPoints)
}

func TestAt(t *testing.T) {
	trend := &Trend{Slope: -0.5, Intercept: 82}
	assert.InDelta(t, 82.0, trend.At(0), 1e-9)
	assert.InDelta(t, 80.0, trend.At(4), 1e-9)
}

func TestNetChange(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	trend, err := Fit(dailySeries(start, 80, 79, 78))
	require.NoError(t, err)
	assert.InDelta(t, -2.0, trend.NetChange(), 1e-9)

	empty := &Trend{Slope: 1}
	assert.Equal(t, 0.0, empty.NetChange())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		slope float64
		want  Direction
	}{
		{"steep_loss", -0.5, Falling},
		{"steep_gain", 0.5, Rising},
		{"flat", 0.0, Stable},
		{"at_threshold", 0.1, Stable},
		{"at_negative_threshold", -0.1, Stable},
		{"just_above", 0.11, Rising},
		{"just_below", -0.11, Falling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend := &Trend{Slope: tt.slope}
			assert.Equal(t, tt.want, trend.Classify())
		})
	}
}
