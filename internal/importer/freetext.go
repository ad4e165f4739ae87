// Package importer normalizes external data formats into Entry candidates.
// Two grammars are supported: a line-oriented free-text log and a JSON
// export (bare array or backup wrapper). The importer never persists;
// candidates are handed to the entry repository for merging.
package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/eskelund/doselog/internal/logging"
	"github.com/eskelund/doselog/internal/model"
)

// headerPattern matches a date header line like "01/03 - 82,5 kg".
// The source format omits the year; it is supplied by the caller.
var headerPattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})\s*-\s*(\d+(?:[.,]\d+)?)\s*kg\s*$`)

// notePattern matches a note line like "- felt fine".
var notePattern = regexp.MustCompile(`^-\s*(.+)$`)

// dosePattern matches a medication note like "mounjaro 5 mg". A note
// matching this promotes the open entry from daily to medication.
var dosePattern = regexp.MustCompile(`(?i)^mounjaro\s+(\d+(?:[.,]\d+)?)\s*mg$`)

// ParseFreeText parses the line-oriented log format. A date header opens a
// new daily entry; subsequent "-" lines attach notes until the next header;
// a mounjaro note promotes the entry to medication and sets its dose.
// Malformed headers are skipped with a warning, never a hard failure.
func ParseFreeText(text string, year int) ([]*model.Entry, []string) {
	var entries []*model.Entry
	var warnings []string

	var open *model.Entry
	var notes []string

	flush := func() {
		if open == nil {
			return
		}
		open.Notes = strings.Join(notes, ". ")
		entries = append(entries, open)
		open = nil
		notes = nil
	}

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := headerPattern.FindStringSubmatch(line); m != nil {
			day, _ := strconv.Atoi(m[1])
			month, _ := strconv.Atoi(m[2])
			if day < 1 || day > 31 || month < 1 || month > 12 {
				warning := fmt.Sprintf("line %d: date %s/%s out of range, skipped", i+1, m[1], m[2])
				warnings = append(warnings, warning)
				logging.Warn("skipping malformed date header",
					logging.KeyLine, i+1, "day", day, "month", month)
				continue
			}

			flush()
			weight, _ := strconv.ParseFloat(strings.Replace(m[3], ",", ".", 1), 64)
			date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
			open = model.NewDaily(date, &weight, "")
			continue
		}

		if m := notePattern.FindStringSubmatch(line); m != nil {
			note := strings.TrimSpace(m[1])
			if open == nil {
				warnings = append(warnings, fmt.Sprintf("line %d: note without a date header, skipped", i+1))
				continue
			}
			if dm := dosePattern.FindStringSubmatch(note); dm != nil {
				open.Type = model.TypeMedication
				open.Dose = strings.Replace(dm[1], ",", ".", 1) + "mg"
				continue
			}
			notes = append(notes, note)
			continue
		}

		warnings = append(warnings, fmt.Sprintf("line %d: unrecognized line, skipped", i+1))
	}

	flush()
	return entries, warnings
}
