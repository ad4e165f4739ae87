package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/eskelund/doselog/internal/errors"
	"github.com/eskelund/doselog/internal/logging"
	"github.com/eskelund/doselog/internal/model"
)

// EntryRepo provides operations for Entry records. It owns the canonical
// collection; every mutation is validated and persisted before it is
// considered applied.
type EntryRepo struct {
	db *DB
}

// NewEntryRepo creates a new entry repository.
func NewEntryRepo(db *DB) *EntryRepo {
	return &EntryRepo{db: db}
}

// Add validates the entry, assigns a key and persists it.
func (r *EntryRepo) Add(entry *model.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	// UUID v7 for time-sortable keys
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	entry.Key = model.GenerateEntryKey(id.String())

	if err := r.db.Set(entry); err != nil {
		logging.Error("storage write failed",
			logging.KeyOperation, "add entry", logging.KeyError, err)
		return errors.NewStorageError("add entry", err)
	}
	logging.Debug("entry stored", logging.KeyEntryID, entry.Key)
	return nil
}

// Get retrieves an entry by key.
func (r *EntryRepo) Get(key string) (*model.Entry, error) {
	entry := &model.Entry{}
	if err := r.db.Get(key, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete removes an entry by key. It reports whether a removal occurred;
// nothing is persisted when the key does not exist.
func (r *EntryRepo) Delete(key string) (bool, error) {
	exists, err := r.db.Exists(key)
	if err != nil {
		return false, errors.NewStorageError("delete entry", err)
	}
	if !exists {
		return false, nil
	}
	if err := r.db.Delete(key); err != nil {
		return false, errors.NewStorageError("delete entry", err)
	}
	return true, nil
}

// Clear removes all entries and returns how many were removed.
func (r *EntryRepo) Clear() (int, error) {
	n, err := r.db.DeleteByPrefix(model.PrefixEntry + ":")
	if err != nil {
		return 0, errors.NewStorageError("clear entries", err)
	}
	logging.Debug("entries cleared", logging.KeyCount, n)
	return n, nil
}

// List retrieves all entries, newest first. A missing or unreadable
// collection degrades to an empty one with a logged warning rather than
// failing the command.
func (r *EntryRepo) List() ([]*model.Entry, error) {
	entries, err := GetAllByPrefix(r.db, model.PrefixEntry+":", func() *model.Entry {
		return &model.Entry{}
	})
	if err != nil {
		logging.Warn("could not read entries, starting from an empty collection",
			logging.KeyError, err)
		return nil, nil
	}
	model.SortNewestFirst(entries)
	return entries, nil
}

// ListByType retrieves entries of one type, newest first.
func (r *EntryRepo) ListByType(t model.EntryType) ([]*model.Entry, error) {
	entries, err := GetFilteredByPrefix(r.db, model.PrefixEntry+":", func() *model.Entry {
		return &model.Entry{}
	}, func(e *model.Entry) bool {
		return e.Type == t
	}, 0)
	if err != nil {
		return nil, err
	}
	model.SortNewestFirst(entries)
	return entries, nil
}

// WeightSeries returns the weight-bearing entries in chronological order,
// the shape the trend calculator and chart renderer consume.
func (r *EntryRepo) WeightSeries() ([]*model.Entry, error) {
	entries, err := GetFilteredByPrefix(r.db, model.PrefixEntry+":", func() *model.Entry {
		return &model.Entry{}
	}, func(e *model.Entry) bool {
		return e.Weight != nil
	}, 0)
	if err != nil {
		return nil, err
	}
	model.SortNewestFirst(entries)
	// Chronological order: reverse the newest-first sort.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// ImportResult summarizes a bulk import.
type ImportResult struct {
	Imported   int                       `json:"imported"`
	Duplicates int                       `json:"duplicates"`
	Errors     []*errors.ImportItemError `json:"errors,omitempty"`
}

// ImportMany validates each candidate independently, collecting per-item
// errors without aborting the batch. Survivors are merged into the existing
// collection and deduplicated by composite key (day, type, dose-or-weight);
// the existing entry wins a collision. The import fails only when zero
// candidates survive validation.
func (r *EntryRepo) ImportMany(candidates []*model.Entry) (*ImportResult, error) {
	result := &ImportResult{}

	var survivors []*model.Entry
	for i, entry := range candidates {
		if err := entry.Validate(); err != nil {
			result.Errors = append(result.Errors, &errors.ImportItemError{Index: i, Err: err})
			logging.Warn("skipping invalid import entry",
				logging.KeyIndex, i, logging.KeyError, err)
			continue
		}
		survivors = append(survivors, entry)
	}

	if len(survivors) == 0 && len(candidates) > 0 {
		return result, errors.ErrEmptyImport
	}

	existing, err := r.List()
	if err != nil {
		return result, err
	}
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[e.DedupKey()] = true
	}

	for _, entry := range survivors {
		key := entry.DedupKey()
		if seen[key] {
			result.Duplicates++
			continue
		}
		seen[key] = true

		if err := r.Add(entry); err != nil {
			return result, err
		}
		result.Imported++
	}

	return result, nil
}

// Statistics is a read-only projection over the collection.
type Statistics struct {
	TotalEntries      int      `json:"total_entries"`
	DailyCount        int      `json:"daily_count"`
	MedicationCount   int      `json:"medication_count"`
	LatestWeight      *float64 `json:"latest_weight"`
	FirstWeight       *float64 `json:"first_weight"`
	NetChange         *float64 `json:"net_change"`
	DaysSinceLastDose *int     `json:"days_since_last_dose"`
}

// Statistics derives counts by type, latest and first recorded weight, net
// weight change and days since the last medication dose. On an empty
// collection it returns zeroed counts and nil weight fields, never an error.
func (r *EntryRepo) Statistics() (*Statistics, error) {
	entries, err := r.List()
	if err != nil {
		return nil, err
	}

	stats := &Statistics{TotalEntries: len(entries)}
	var lastDose time.Time

	// entries are newest first
	for _, e := range entries {
		switch e.Type {
		case model.TypeDaily:
			stats.DailyCount++
		case model.TypeMedication:
			stats.MedicationCount++
			if lastDose.IsZero() {
				lastDose = e.Date
			}
		}
		if e.Weight != nil {
			if stats.LatestWeight == nil {
				stats.LatestWeight = e.Weight
			}
			stats.FirstWeight = e.Weight
		}
	}

	if stats.LatestWeight != nil && stats.FirstWeight != nil {
		change := *stats.LatestWeight - *stats.FirstWeight
		stats.NetChange = &change
	}
	if !lastDose.IsZero() {
		days := int(time.Since(lastDose).Hours() / 24)
		stats.DaysSinceLastDose = &days
	}

	return stats, nil
}
