// Package validate provides input validation helpers for the doselog CLI.
package validate

import (
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/eskelund/doselog/internal/errors"
)

const (
	// MaxWeight is the upper bound for a plausible weight in kilograms.
	MaxWeight = 1000.0
	// MaxNoteLength is the maximum length for a note.
	MaxNoteLength = 4096
	// MaxDoseLength is the maximum length for a dose string.
	MaxDoseLength = 32
)

// doseRegex validates normalized dose strings like "5mg" or "7.5mg".
var doseRegex = regexp.MustCompile(`^\d+(?:\.\d+)?mg$`)

// Weight validates a weight value in kilograms.
func Weight(kg float64) error {
	if kg <= 0 || kg >= MaxWeight {
		return errors.NewValidationErrorWithField("weight", formatWeight(kg),
			"Weight out of range",
			"Weights must be between 0 and 1000 kg")
	}
	return nil
}

// Note validates a free-text note.
func Note(note string) error {
	if utf8.RuneCountInString(note) > MaxNoteLength {
		return errors.NewValidationError(
			"Note too long",
			"Notes must be 4096 characters or fewer")
	}
	return nil
}

// Dose validates a normalized dose string.
func Dose(dose string) error {
	if dose == "" {
		return errors.ErrMissingDose
	}
	if len(dose) > MaxDoseLength {
		return errors.NewValidationErrorWithField("dose", dose,
			"Dose too long",
			"Doses must be 32 characters or fewer")
	}
	if !doseRegex.MatchString(dose) {
		return errors.NewValidationErrorWithField("dose", dose,
			"Invalid dose format",
			"Use a number followed by 'mg', like '5mg'")
	}
	return nil
}

func formatWeight(kg float64) string {
	return strconv.FormatFloat(kg, 'f', -1, 64)
}
