package model

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/eskelund/doselog/internal/errors"
	"github.com/eskelund/doselog/internal/validate"
)

// EntryType distinguishes daily check-ins from medication doses.
type EntryType string

const (
	TypeDaily      EntryType = "daily"
	TypeMedication EntryType = "medication"
)

// IsValid returns true if the type is a member of the enum.
func (t EntryType) IsValid() bool {
	return t == TypeDaily || t == TypeMedication
}

// Entry represents one logged daily check-in or medication dose record.
// Type and Date are immutable after creation; entries are only ever
// replaced wholesale, never partially edited.
type Entry struct {
	Key    string    `json:"key"`
	Type   EntryType `json:"type" validate:"required"`
	Date   time.Time `json:"date" validate:"required"`
	Weight *float64  `json:"weight,omitempty"`
	Notes  string    `json:"notes,omitempty" validate:"max=4096"`
	Dose   string    `json:"dose,omitempty" validate:"max=32"`
}

// SetKey sets the database key for this entry.
func (e *Entry) SetKey(key string) {
	e.Key = key
}

// GetKey returns the database key for this entry.
func (e *Entry) GetKey() string {
	return e.Key
}

// Validate checks the entry invariants: type must be a member of the enum,
// date must be set, and medication entries must carry a non-empty dose.
func (e *Entry) Validate() error {
	if !e.Type.IsValid() {
		return errors.NewValidationErrorWithField("type", string(e.Type),
			"Invalid entry type",
			"Entry type must be 'daily' or 'medication'")
	}
	if e.Date.IsZero() {
		return errors.NewValidationError("Entry date is required",
			"Provide a date like '2025-03-01'")
	}
	if e.Type == TypeMedication {
		if err := validate.Dose(e.Dose); err != nil {
			return err
		}
	}
	if e.Weight != nil {
		if err := validate.Weight(*e.Weight); err != nil {
			return err
		}
	}
	return validate.Note(e.Notes)
}

// Day returns the entry's date truncated to the calendar day, in the
// date's own location.
func (e *Entry) Day() time.Time {
	y, m, d := e.Date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, e.Date.Location())
}

// DedupKey returns the composite key used to collapse duplicate imports:
// calendar day, type, and either the dose or the weight. Two entries
// sharing this key are treated as the same record during import merge.
// This can merge legitimately distinct same-day entries; that ambiguity
// is inherited from the export formats, which carry no stable identity.
func (e *Entry) DedupKey() string {
	discriminator := e.Dose
	if discriminator == "" && e.Weight != nil {
		discriminator = strconv.FormatFloat(*e.Weight, 'f', -1, 64)
	}
	return fmt.Sprintf("%s|%s|%s", e.Day().Format("2006-01-02"), e.Type, discriminator)
}

// GenerateEntryKey generates a database key for an entry.
func GenerateEntryKey(uuid string) string {
	return fmt.Sprintf("%s:%s", PrefixEntry, uuid)
}

// NewDaily creates a daily check-in entry.
func NewDaily(date time.Time, weight *float64, notes string) *Entry {
	return &Entry{
		Type:   TypeDaily,
		Date:   date,
		Weight: weight,
		Notes:  notes,
	}
}

// NewMedication creates a medication dose entry.
func NewMedication(date time.Time, dose string, weight *float64, notes string) *Entry {
	return &Entry{
		Type:   TypeMedication,
		Date:   date,
		Dose:   dose,
		Weight: weight,
		Notes:  notes,
	}
}

// SortNewestFirst sorts entries by descending date, in place. Entries are
// kept in this order after every mutation or bulk load.
func SortNewestFirst(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}
