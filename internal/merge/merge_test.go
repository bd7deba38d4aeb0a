package merge

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prognar/PH-Tracker/internal/tracker"
)

func newMerger() Merger {
	return Merger{Key: DefaultKey, TimelineLimit: 50, NewsLogLimit: 30}
}

func TestMergeTimelinePrependsNewestFirst(t *testing.T) {
	existing := []tracker.TimelineEntry{{Date: "2026-08-01", Event: "old entry", Impact: "low", Type: tracker.EntryTypeNews}}

	timeline, added := newMerger().MergeTimeline(existing, []Item{
		{Date: "2026-08-30", Title: "First item", Impact: "high"},
		{Date: "2026-08-30", Title: "Second item", Impact: "medium"},
	})

	require.Equal(t, 2, added)
	require.Len(t, timeline, 3)
	// Each accepted item is pushed to the front, so the last one ends first.
	assert.Equal(t, "Second item", timeline[0].Event)
	assert.Equal(t, "First item", timeline[1].Event)
	assert.Equal(t, "old entry", timeline[2].Event)
	assert.Equal(t, tracker.EntryTypeNews, timeline[0].Type)
}

func TestMergeTimelineDedupsWithinRun(t *testing.T) {
	prefix := strings.Repeat("x", 50)

	timeline, added := newMerger().MergeTimeline(nil, []Item{
		{Date: "2026-08-30", Title: prefix + " variant one", Impact: "high"},
		{Date: "2026-08-30", Title: prefix + " variant two", Impact: "low"},
	})

	assert.Equal(t, 1, added)
	require.Len(t, timeline, 1)
	assert.Equal(t, "high", timeline[0].Impact, "first occurrence wins")
}

func TestMergeTimelineDedupsAgainstExisting(t *testing.T) {
	existing := []tracker.TimelineEntry{{Date: "2026-08-29", Event: "Roark Capital nearing a binding offer for Pizza Hut", Impact: "high", Type: tracker.EntryTypeNews}}

	// Same headline from a different source the next day.
	timeline, added := newMerger().MergeTimeline(existing, []Item{
		{Date: "2026-08-30", Title: "ROARK CAPITAL NEARING A BINDING OFFER FOR PIZZA HUT", Impact: "high"},
	})

	assert.Equal(t, 0, added)
	assert.Len(t, timeline, 1)
}

func TestMergeTimelineTruncatesEventTo100(t *testing.T) {
	long := strings.Repeat("a", 150)

	timeline, _ := newMerger().MergeTimeline(nil, []Item{{Date: "2026-08-30", Title: long, Impact: "low"}})

	require.Len(t, timeline, 1)
	assert.Len(t, timeline[0].Event, 100)
}

func TestMergeTimelineRetentionLimit(t *testing.T) {
	var existing []tracker.TimelineEntry
	for i := 0; i < 50; i++ {
		existing = append(existing, tracker.TimelineEntry{Date: "2026-08-01", Event: fmt.Sprintf("existing %d", i)})
	}

	timeline, added := newMerger().MergeTimeline(existing, []Item{
		{Date: "2026-08-30", Title: "brand new entry", Impact: "high"},
	})

	require.Equal(t, 1, added)
	assert.Len(t, timeline, 50)
	assert.Equal(t, "brand new entry", timeline[0].Event)
	assert.Equal(t, "existing 48", timeline[49].Event, "oldest entry aged out")
}

func TestDefaultKey(t *testing.T) {
	assert.Equal(t, "short", DefaultKey("Short"))
	long := strings.Repeat("A", 60)
	assert.Equal(t, strings.Repeat("a", 50), DefaultKey(long))
}

func TestPrependSummaryRetention(t *testing.T) {
	var log []tracker.NewsLogEntry
	m := newMerger()
	for i := 0; i < 35; i++ {
		log = m.PrependSummary(log, "2026-08-30", fmt.Sprintf("run %d", i))
	}

	require.Len(t, log, 30)
	assert.Equal(t, "run 34", log[0].Summary)
	assert.Equal(t, "run 5", log[29].Summary)
}

func TestBuildSummary(t *testing.T) {
	assert.Equal(t,
		"Found 1 relevant news item. No specific candidates mentioned.",
		BuildSummary(1, nil))
	assert.Equal(t,
		"Found 3 relevant news items. Candidates mentioned: Roark Capital / Inspire Brands, Flynn Group.",
		BuildSummary(3, []string{"Roark Capital / Inspire Brands", "Flynn Group"}))
}
