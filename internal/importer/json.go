package importer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/eskelund/doselog/internal/errors"
	"github.com/eskelund/doselog/internal/model"
)

// entryJSON is the wire shape of an exported entry. Dates are ISO-8601
// strings; a date-only form is accepted as well.
type entryJSON struct {
	Type   string   `json:"type"`
	Date   string   `json:"date"`
	Weight *float64 `json:"weight,omitempty"`
	Notes  string   `json:"notes,omitempty"`
	Dose   string   `json:"dose,omitempty"`
}

// backupJSON is the export wrapper format.
type backupJSON struct {
	ExportDate string       `json:"exportDate,omitempty"`
	Version    string       `json:"version,omitempty"`
	EntryCount int          `json:"entryCount,omitempty"`
	Entries    []*entryJSON `json:"entries"`
}

// ParseJSON parses either a bare array of entries or a backup wrapper with
// an `entries` array. Both normalize to the array case before per-index
// field validation. Only a document that parses as neither shape is a hard
// error; invalid items are collected and the rest of the batch continues.
func ParseJSON(data []byte) ([]*model.Entry, []*errors.ImportItemError, error) {
	var raw []*entryJSON

	if err := json.Unmarshal(data, &raw); err != nil {
		var backup backupJSON
		if err := json.Unmarshal(data, &backup); err != nil || backup.Entries == nil {
			return nil, nil, fmt.Errorf("unrecognized import format: %w", errors.ErrEmptyImport)
		}
		raw = backup.Entries
	}

	var entries []*model.Entry
	var itemErrs []*errors.ImportItemError

	for i, item := range raw {
		entry, err := item.toEntry()
		if err != nil {
			itemErrs = append(itemErrs, &errors.ImportItemError{Index: i, Err: err})
			continue
		}
		entries = append(entries, entry)
	}

	return entries, itemErrs, nil
}

func (j *entryJSON) toEntry() (*model.Entry, error) {
	date, err := parseEntryDate(j.Date)
	if err != nil {
		return nil, err
	}

	entry := &model.Entry{
		Type:   model.EntryType(j.Type),
		Date:   date,
		Weight: j.Weight,
		Notes:  j.Notes,
		Dose:   j.Dose,
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return entry, nil
}

func parseEntryDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.ErrInvalidDate
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, &errors.ValidationError{
		Message:    "Invalid entry date",
		Field:      "date",
		Value:      s,
		Suggestion: "Dates must be ISO-8601, like '2025-03-01T00:00:00Z'",
	}
}
