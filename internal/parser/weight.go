// Package parser parses CLI input values for doselog: weights, doses and
// natural-language dates.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/eskelund/doselog/internal/errors"
)

// weightPattern matches weight expressions like "82.5", "82,5 kg", "82kg".
// Decimal comma is accepted alongside decimal point.
var weightPattern = regexp.MustCompile(`(?i)^(\d+(?:[.,]\d+)?)\s*(kg|kilo|kilos|kilogram|kilograms)?$`)

// Weight parses a weight expression into kilograms.
func Weight(input string) (float64, error) {
	input = strings.TrimSpace(input)
	matches := weightPattern.FindStringSubmatch(input)
	if matches == nil {
		return 0, &errors.ValidationError{
			Message:    "Invalid weight",
			Field:      "weight",
			Value:      input,
			Suggestion: "Use a number like '82.5' or '82,5', optionally followed by 'kg'",
		}
	}

	value, err := strconv.ParseFloat(strings.Replace(matches[1], ",", ".", 1), 64)
	if err != nil {
		return 0, errors.ErrInvalidWeight
	}
	return value, nil
}
