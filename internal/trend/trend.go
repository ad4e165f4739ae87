// Package trend fits an ordinary least-squares line over a weight series.
// The x axis is elapsed days since the first sample; the y axis is the
// weight as entered (assumed kilograms).
package trend

import (
	"time"

	"github.com/eskelund/doselog/internal/errors"
	"github.com/eskelund/doselog/internal/model"
)

const (
	// MinPointsLine is the minimum number of samples for a fitted line.
	MinPointsLine = 2
	// MinPointsStat is the minimum number of samples before the trend
	// statistic is shown; short runs are too noisy to classify.
	MinPointsStat = 3

	// classifyThreshold is the slope (kg/day) beyond which the trend is
	// called rising or falling rather than stable.
	classifyThreshold = 0.1

	hoursPerDay = 24.0
)

// Direction labels the slope of a trend.
type Direction string

const (
	Rising  Direction = "rising"
	Falling Direction = "falling"
	Stable  Direction = "stable"
)

// Trend is a fitted line over (elapsed-days, weight) pairs.
type Trend struct {
	Slope     float64   `json:"slope"`     // kg per day
	Intercept float64   `json:"intercept"` // kg at the epoch
	Offsets   []float64 `json:"offsets"`   // per-point x offsets in days
	Epoch     time.Time `json:"epoch"`     // date of the first sample
}

// Fit computes the least-squares line over the weight-bearing entries,
// which must be in chronological order. Entries without a weight are
// ignored. At least MinPointsLine weighted samples are required.
func Fit(entries []*model.Entry) (*Trend, error) {
	var dates []time.Time
	var weights []float64
	for _, e := range entries {
		if e.Weight == nil {
			continue
		}
		dates = append(dates, e.Date)
		weights = append(weights, *e.Weight)
	}

	n := len(weights)
	if n < MinPointsLine {
		return nil, errors.ErrNotEnoughPoints
	}

	epoch := dates[0]
	offsets := make([]float64, n)
	for i, d := range dates {
		offsets[i] = d.Sub(epoch).Hours() / hoursPerDay
	}

	var sumX, sumY, sumXY, sumXX float64
	for i := 0; i < n; i++ {
		sumX += offsets[i]
		sumY += weights[i]
		sumXY += offsets[i] * weights[i]
		sumXX += offsets[i] * offsets[i]
	}

	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		// All samples on the same instant; no line to fit.
		return nil, errors.ErrNotEnoughPoints
	}

	slope := (fn*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / fn

	return &Trend{
		Slope:     slope,
		Intercept: intercept,
		Offsets:   offsets,
		Epoch:     epoch,
	}, nil
}

// At returns the fitted weight at the given x offset in days.
func (t *Trend) At(offset float64) float64 {
	return t.Intercept + t.Slope*offset
}

// NetChange is the fitted change over the observed window:
// slope times the last x offset.
func (t *Trend) NetChange() float64 {
	if len(t.Offsets) == 0 {
		return 0
	}
	return t.Slope * t.Offsets[len(t.Offsets)-1]
}

// Classify labels the slope: above +0.1 kg/day rising, below -0.1 falling,
// otherwise stable.
func (t *Trend) Classify() Direction {
	switch {
	case t.Slope > classifyThreshold:
		return Rising
	case t.Slope < -classifyThreshold:
		return Falling
	default:
		return Stable
	}
}
