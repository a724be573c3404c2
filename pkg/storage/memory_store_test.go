package storage

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neroguard/neroguard/pkg/models"
)

func testEntry(id, input string) Entry {
	return Entry{
		ID:    id,
		Input: input,
		Result: &models.AnalysisResult{
			RiskLevel:       models.LevelLow,
			Confidence:      50,
			Summary:         "No significant threats detected, but exercise normal caution.",
			Details:         []string{"No specific threat indicators identified in this analysis."},
			Recommendations: []string{"Verify the source if you weren't expecting this content."},
			Indicators:      []models.Indicator{},
			Timestamp:       time.Date(2026, time.March, 5, 14, 30, 5, 0, time.UTC),
			InputType:       models.InputText,
		},
	}
}

func TestMemoryStoreNewestFirst(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Save(testEntry("a", "first")))
	require.NoError(t, store.Save(testEntry("b", "second")))
	require.NoError(t, store.Save(testEntry("c", "third")))

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "c", entries[0].ID)
	assert.Equal(t, "b", entries[1].ID)
	assert.Equal(t, "a", entries[2].ID)
}

func TestMemoryStoreEvictsOldestBeyondCap(t *testing.T) {
	store := NewMemoryStore()

	for i := 0; i < MaxEntries+10; i++ {
		id := fmt.Sprintf("id-%d", i)
		require.NoError(t, store.Save(testEntry(id, "input "+id)))
	}

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, MaxEntries)

	// Newest survives, the first ten saved are gone.
	assert.Equal(t, fmt.Sprintf("id-%d", MaxEntries+9), entries[0].ID)
	for _, e := range entries {
		assert.NotEqual(t, "id-0", e.ID)
		assert.NotEqual(t, "id-9", e.ID)
	}
}

func TestMemoryStoreGetAndDelete(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(testEntry("a", "keep")))
	require.NoError(t, store.Save(testEntry("b", "drop")))

	entry, ok, err := store.Get("b")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "drop", entry.Input)

	require.NoError(t, store.Delete("b"))

	_, ok, err = store.Get("b")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an unknown id is a no-op.
	require.NoError(t, store.Delete("missing"))

	entries, err := store.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestMemoryStoreSearch(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(testEntry("a", "https://github.com/foo")))
	require.NoError(t, store.Save(testEntry("b", "claim your PRIZE now")))
	require.NoError(t, store.Save(testEntry("c", "https://example.com")))

	matches, err := store.Search("prize")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "b", matches[0].ID)

	matches, err = store.Search("https://")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	// Empty query matches everything.
	matches, err = store.Search("")
	require.NoError(t, err)
	assert.Len(t, matches, 3)
}

func TestMemoryStoreClear(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(testEntry("a", "one")))
	require.NoError(t, store.Save(testEntry("b", "two")))

	require.NoError(t, store.Clear())

	entries, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMemoryStoreRejectsEmptyID(t *testing.T) {
	store := NewMemoryStore()
	assert.Error(t, store.Save(Entry{Input: "no id"}))
}
