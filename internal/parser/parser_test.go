package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eskelund/doselog/internal/errors"
)

func TestWeight(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"82.5", 82.5},
		{"82,5", 82.5},
		{"82", 82},
		{"82.5 kg", 82.5},
		{"82kg", 82},
		{"82.5 KG", 82.5},
		{"  82.5 kilos  ", 82.5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Weight(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeightInvalid(t *testing.T) {
	for _, input := range []string{"", "abc", "82.5 lbs", "-5", "82..5"} {
		t.Run(input, func(t *testing.T) {
			_, err := Weight(input)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestDose(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"5mg", "5mg"},
		{"5 mg", "5mg"},
		{"7.5mg", "7.5mg"},
		{"7,5 mg", "7.5mg"},
		{"5 MG", "5mg"},
		{"  10mg  ", "10mg"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Dose(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDoseInvalid(t *testing.T) {
	for _, input := range []string{"", "5", "mg", "5ml", "five mg"} {
		t.Run(input, func(t *testing.T) {
			_, err := Dose(input)
			assert.Error(t, err)
		})
	}
}

func TestDate(t *testing.T) {
	got, err := Date("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local), got)

	got, err = Date("2025-03-01T12:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC), got)
}

func TestDateEmptyMeansNow(t *testing.T) {
	for _, input := range []string{"", "now", "NOW"} {
		got, err := Date(input)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), got, 5*time.Second)
	}
}

func TestDateNaturalLanguage(t *testing.T) {
	got, err := Date("yesterday")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -1), got, 24*time.Hour)
}

func TestDateInvalid(t *testing.T) {
	_, err := Date("not a date at all xyzzy")
	assert.Error(t, err)
}
