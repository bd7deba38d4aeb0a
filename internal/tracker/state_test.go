package tracker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState() *State {
	return &State{
		Candidates: []Candidate{
			{
				ID:         "roark-inspire",
				Name:       "Roark Capital / Inspire Brands",
				Likelihood: 62,
				Trend:      TrendUp,
				History: []HistoryPoint{
					{Date: "2026-08-29", Likelihood: 62, Note: "Positive news coverage (1 positive mention)"},
				},
			},
		},
		Timeline: []TimelineEntry{
			{Date: "2026-08-29", Event: "Roark nearing binding offer", Impact: "high", Type: EntryTypeNews},
		},
		RecentNews: []NewsLogEntry{
			{Date: "2026-08-29", Summary: "Found 1 relevant news item."},
		},
		LastUpdated: "2026-08-29T08:00:00Z",
	}
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.json")
	store := NewStore(path)

	want := sampleState()
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStoreLoadMissingFileFails(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.json"))

	_, err := store.Load()
	assert.Error(t, err)
}

func TestStoreLoadMalformedFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewStore(path).Load()
	assert.Error(t, err)
}

func TestStoreSaveReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tracker.json")
	store := NewStore(path)

	require.NoError(t, store.Save(sampleState()))

	second := sampleState()
	second.LastUpdated = "2026-08-30T08:00:00Z"
	require.NoError(t, store.Save(second))

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tracker.json", entries[0].Name())

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30T08:00:00Z", got.LastUpdated)
}

func TestCandidateByID(t *testing.T) {
	state := sampleState()

	cand := state.CandidateByID("roark-inspire")
	require.NotNil(t, cand)
	assert.Equal(t, "Roark Capital / Inspire Brands", cand.Name)

	// Returned pointer aliases the slice element.
	cand.Likelihood = 70
	assert.Equal(t, 70, state.Candidates[0].Likelihood)

	assert.Nil(t, state.CandidateByID("unknown"))
}
