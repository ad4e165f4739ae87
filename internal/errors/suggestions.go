package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	ErrEntryNotFound:   "Use 'doselog list' to see entry IDs.",
	ErrEmptyImport:     "Check the file format. Use 'doselog import --help' for supported formats.",
	ErrInvalidDate:     "Try formats like '2025-03-01', 'yesterday', or 'last monday'.",
	ErrMissingDose:     "Specify a dose like '5mg' for medication entries.",
	ErrInvalidWeight:   "Use a number like '82.5' or '82,5', optionally followed by 'kg'.",
	ErrNotEnoughPoints: "At least two weight entries are needed for a trend.",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	var ve *ValidationError
	if errors.As(err, &ve) && ve.Suggestion != "" {
		return ve.Suggestion
	}

	return ""
}

// FormatError formats an error with its suggestion, if one exists.
func FormatError(err error) string {
	msg := err.Error()
	if suggestion := GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}
