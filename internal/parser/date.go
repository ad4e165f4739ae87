package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/eskelund/doselog/internal/errors"
)

// Date parses a date expression. Exact formats (RFC3339, "2006-01-02") are
// tried first, then natural language ("yesterday", "last monday at 9am")
// via go-dateparser.
func Date(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "now") {
		return time.Now(), nil
	}

	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", input, time.Local); err == nil {
		return t, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, &errors.ValidationError{
			Message:    "Invalid date",
			Field:      "date",
			Value:      input,
			Suggestion: "Try formats like '2025-03-01', 'yesterday', or 'last monday'",
		}
	}
	return result.Time, nil
}
