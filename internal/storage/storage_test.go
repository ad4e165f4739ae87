package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eskelund/doselog/internal/errors"
	"github.com/eskelund/doselog/internal/model"
)

// Helper to create an in-memory database for testing
func setupTestDB(t *testing.T) *DB {
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func weightPtr(w float64) *float64 {
	return &w
}

// =============================================================================
// DB Tests
// =============================================================================

func TestOpenClose(t *testing.T) {
	t.Run("in_memory", func(t *testing.T) {
		db, err := Open(Options{InMemory: true})
		require.NoError(t, err)
		assert.NotNil(t, db)
		assert.NoError(t, db.Close())
	})

	t.Run("empty_path_uses_in_memory", func(t *testing.T) {
		db, err := Open(Options{Path: ""})
		require.NoError(t, err)
		assert.NotNil(t, db)
		db.Close()
	})
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	assert.Contains(t, path, "doselog")
	assert.Contains(t, path, "db")
}

// =============================================================================
// EntryRepo Tests
// =============================================================================

func TestEntryRepoAdd(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepo(db)

	entry := model.NewDaily(time.Now(), weightPtr(82.5), "felt fine")
	err := repo.Add(entry)
	require.NoError(t, err)
	assert.NotEmpty(t, entry.Key)
	assert.Contains(t, entry.Key, "entry:")
}

func TestEntryRepoAddRejectsInvalid(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepo(db)

	entry := &model.Entry{Type: model.TypeMedication, Date: time.Now()}
	err := repo.Add(entry)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	// Nothing was persisted
	entries, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntryRepoAddThenList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepo(db)

	entry := model.NewDaily(time.Now(), weightPtr(82.5), "")
	require.NoError(t, repo.Add(entry))

	entries, err := repo.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.Key, entries[0].Key)
	assert.Equal(t, 82.5, *entries[0].Weight)
}

func TestEntryRepoListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepo(db)

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	// Inserted out of order
	require.NoError(t, repo.Add(model.NewDaily(base.AddDate(0, 0, 1), weightPtr(82.3), "")))
	require.NoError(t, repo.Add(model.NewDaily(base, weightPtr(82.5), "")))
	require.NoError(t, repo.Add(model.NewDaily(base.AddDate(0, 0, 2), weightPtr(82.1), "")))

	entries, err := repo.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.True(t, entries[0].Date.After(entries[1].Date))
	assert.True(t, entries[1].Date.After(entries[2].Date))
}

func TestEntryRepoDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepo(db)

	entry := model.NewDaily(time.Now(), weightPtr(82.5), "")
	require.NoError(t, repo.Add(entry))

	deleted, err := repo.Delete(entry.Key)
	require.NoError(t, err)
	assert.True(t, deleted)

	entries, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntryRepoDeleteNonExistent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepo(db)

	entry := model.NewDaily(time.Now(), weightPtr(82.5), "")
	require.NoError(t, repo.Add(entry))

	deleted, err := repo.Delete("entry:does-not-exist")
	require.NoError(t, err)
	assert.False(t, deleted)

	// Persisted state unchanged
	entries, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestEntryRepoClear(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepo(db)

	require.NoError(t, repo.Add(model.NewDaily(time.Now(), weightPtr(82.5), "")))
	require.NoError(t, repo.Add(model.NewMedication(time.Now(), "5mg", nil, "")))

	n, err := repo.Clear()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	entries, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// =============================================================================
// ImportMany Tests
// =============================================================================

func TestImportMany(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepo(db)

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	candidates := []*model.Entry{
		model.NewMedication(base, "5mg", weightPtr(82.5), ""),
		model.NewDaily(base.AddDate(0, 0, 1), weightPtr(82.1), ""),
	}

	result, err := repo.ImportMany(candidates)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Duplicates)
	assert.Empty(t, result.Errors)

	entries, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestImportManyIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepo(db)

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	batch := func() []*model.Entry {
		return []*model.Entry{
			model.NewMedication(base, "5mg", weightPtr(82.5), ""),
			model.NewDaily(base.AddDate(0, 0, 1), weightPtr(82.1), ""),
		}
	}

	_, err := repo.ImportMany(batch())
	require.NoError(t, err)

	result, err := repo.ImportMany(batch())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 2, result.Duplicates)

	entries, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestImportManyCollectsErrors(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepo(db)

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	candidates := []*model.Entry{
		model.NewDaily(base, weightPtr(82.5), ""),
		{Type: model.TypeMedication, Date: base}, // missing dose
		{Type: "weekly", Date: base},             // bad type
	}

	result, err := repo.ImportMany(candidates)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 1, result.Errors[0].Index)
	assert.Equal(t, 2, result.Errors[1].Index)
}

func TestImportManyFailsWhenNothingSurvives(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepo(db)

	candidates := []*model.Entry{
		{Type: "weekly", Date: time.Now()},
	}

	_, err := repo.ImportMany(candidates)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrEmptyImport)
}

func TestImportManyInternalDuplicatesCollapse(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepo(db)

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	candidates := []*model.Entry{
		model.NewDaily(base, weightPtr(82.5), "morning"),
		model.NewDaily(base.Add(8*time.Hour), weightPtr(82.5), "evening"),
	}

	result, err := repo.ImportMany(candidates)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Duplicates)
}

// =============================================================================
// WeightSeries and Statistics Tests
// =============================================================================

func TestWeightSeriesChronological(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepo(db)

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Add(model.NewDaily(base.AddDate(0, 0, 2), weightPtr(82.1), "")))
	require.NoError(t, repo.Add(model.NewDaily(base, weightPtr(82.5), "")))
	require.NoError(t, repo.Add(model.NewMedication(base.AddDate(0, 0, 1), "5mg", nil, "")))

	series, err := repo.WeightSeries()
	require.NoError(t, err)
	// The doseless medication entry carries no weight and is excluded.
	require.Len(t, series, 2)
	assert.Equal(t, base, series[0].Date)
	assert.Equal(t, base.AddDate(0, 0, 2), series[1].Date)
}

func TestStatisticsEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepo(db)

	stats, err := repo.Statistics()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalEntries)
	assert.Equal(t, 0, stats.DailyCount)
	assert.Equal(t, 0, stats.MedicationCount)
	assert.Nil(t, stats.LatestWeight)
	assert.Nil(t, stats.FirstWeight)
	assert.Nil(t, stats.NetChange)
	assert.Nil(t, stats.DaysSinceLastDose)
}

func TestStatistics(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepo(db)

	base := time.Now().AddDate(0, 0, -10)
	require.NoError(t, repo.Add(model.NewDaily(base, weightPtr(84.0), "")))
	require.NoError(t, repo.Add(model.NewMedication(base.AddDate(0, 0, 3), "5mg", weightPtr(83.2), "")))
	require.NoError(t, repo.Add(model.NewDaily(base.AddDate(0, 0, 9), weightPtr(82.0), "")))

	stats, err := repo.Statistics()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalEntries)
	assert.Equal(t, 2, stats.DailyCount)
	assert.Equal(t, 1, stats.MedicationCount)
	require.NotNil(t, stats.LatestWeight)
	assert.Equal(t, 82.0, *stats.LatestWeight)
	require.NotNil(t, stats.FirstWeight)
	assert.Equal(t, 84.0, *stats.FirstWeight)
	require.NotNil(t, stats.NetChange)
	assert.InDelta(t, -2.0, *stats.NetChange, 0.001)
	require.NotNil(t, stats.DaysSinceLastDose)
	assert.Equal(t, 7, *stats.DaysSinceLastDose)
}
