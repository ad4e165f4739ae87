package parser

import (
	"regexp"
	"strings"

	"github.com/eskelund/doselog/internal/errors"
)

// dosePattern matches dose expressions like "5mg", "5 mg", "7.5mg", "7,5 mg".
var dosePattern = regexp.MustCompile(`(?i)^(\d+(?:[.,]\d+)?)\s*mg$`)

// Dose parses a dose expression and normalizes it to "<number>mg".
func Dose(input string) (string, error) {
	input = strings.TrimSpace(input)
	matches := dosePattern.FindStringSubmatch(input)
	if matches == nil {
		return "", &errors.ValidationError{
			Message:    "Invalid dose",
			Field:      "dose",
			Value:      input,
			Suggestion: "Use a number followed by 'mg', like '5mg' or '7.5 mg'",
		}
	}
	return strings.Replace(matches[1], ",", ".", 1) + "mg", nil
}
