package output

import (
	"time"

	"github.com/eskelund/doselog/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// EntryOutput represents an entry in JSON output.
type EntryOutput struct {
	Key    string   `json:"key"`
	Type   string   `json:"type"`
	Date   string   `json:"date"`
	Weight *float64 `json:"weight,omitempty"`
	Notes  string   `json:"notes,omitempty"`
	Dose   string   `json:"dose,omitempty"`
}

// NewEntryOutput creates an EntryOutput from an Entry.
func NewEntryOutput(e *model.Entry) *EntryOutput {
	return &EntryOutput{
		Key:    e.Key,
		Type:   string(e.Type),
		Date:   e.Date.Format(time.RFC3339),
		Weight: e.Weight,
		Notes:  e.Notes,
		Dose:   e.Dose,
	}
}

// AddResponse represents the add/dose command output in JSON.
type AddResponse struct {
	Status string       `json:"status"`
	Entry  *EntryOutput `json:"entry"`
}

// DeleteResponse represents the delete command output in JSON.
type DeleteResponse struct {
	Status  string `json:"status"`
	Deleted bool   `json:"deleted"`
	Key     string `json:"key"`
}

// ListResponse represents the list command output in JSON.
type ListResponse struct {
	Entries    []*EntryOutput `json:"entries"`
	TotalCount int            `json:"total_count"`
	ShownCount int            `json:"shown_count"`
}

// ImportResponse represents the import command output in JSON.
type ImportResponse struct {
	Status     string   `json:"status"`
	Imported   int      `json:"imported"`
	Duplicates int      `json:"duplicates"`
	Warnings   []string `json:"warnings,omitempty"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PrintError prints an error response.
func (j *JSONFormatter) PrintError(status, message, suggestion string) error {
	return j.JSON(&ErrorResponse{
		Status:     status,
		Error:      message,
		Suggestion: suggestion,
	})
}
