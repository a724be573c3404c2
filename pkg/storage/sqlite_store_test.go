package storage

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neroguard/neroguard/pkg/models"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := OpenSQLite(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)

	saved := Entry{
		ID:    "entry-1",
		Input: "http://192.168.1.1/login?verify=1",
		Result: &models.AnalysisResult{
			RiskLevel:  models.LevelCritical,
			Confidence: 80,
			Summary:    "Strong indicators of malicious content. Avoid interaction.",
			Details:    []string{"Direct IP address usage detected in URL"},
			Recommendations: []string{
				"Do not interact with this content in any way.",
			},
			Indicators: []models.Indicator{
				{Type: "IP Address URL", Severity: models.SeverityWarning, Description: "URL uses an IP address instead of a domain name, which is uncommon for legitimate sites."},
			},
			Timestamp: time.Date(2026, time.March, 5, 14, 30, 5, 0, time.UTC),
			InputType: models.InputURL,
		},
	}
	require.NoError(t, store.Save(saved))

	got, ok, err := store.Get("entry-1")
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, saved.Input, got.Input)
	require.NotNil(t, got.Result)
	assert.Equal(t, saved.Result.RiskLevel, got.Result.RiskLevel)
	assert.Equal(t, saved.Result.Confidence, got.Result.Confidence)
	assert.Equal(t, saved.Result.Indicators, got.Result.Indicators)
	assert.Equal(t, saved.Result.Details, got.Result.Details)
	assert.Equal(t, saved.Result.InputType, got.Result.InputType)

	// Timestamp round-trips through the JSON date-time encoding.
	assert.True(t, saved.Result.Timestamp.Equal(got.Result.Timestamp))
}

func TestSQLiteStoreNewestFirstAndEviction(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < MaxEntries+5; i++ {
		id := fmt.Sprintf("id-%d", i)
		require.NoError(t, store.Save(testEntry(id, "input "+id)))
	}

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, MaxEntries)
	assert.Equal(t, fmt.Sprintf("id-%d", MaxEntries+4), entries[0].ID)
	assert.Equal(t, "id-5", entries[len(entries)-1].ID)
}

func TestSQLiteStoreDeleteAndClear(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save(testEntry("a", "one")))
	require.NoError(t, store.Save(testEntry("b", "two")))

	require.NoError(t, store.Delete("a"))
	_, ok, err := store.Get("a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Delete("missing"))

	require.NoError(t, store.Clear())
	entries, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSQLiteStoreSearch(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save(testEntry("a", "https://github.com/foo")))
	require.NoError(t, store.Save(testEntry("b", "claim your PRIZE now")))

	matches, err := store.Search("prize")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "b", matches[0].ID)

	matches, err = store.Search("")
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestSQLiteStoreRejectsEmptyPath(t *testing.T) {
	_, err := OpenSQLite("")
	assert.Error(t, err)
}
