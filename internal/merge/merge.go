// Package merge folds classified items into the persisted timeline and
// recent-news log, with dedup and bounded retention.
package merge

import (
	"fmt"
	"strings"

	"github.com/prognar/PH-Tracker/internal/tracker"
)

const (
	// Timeline event text is the headline cut to 100 chars; the dedup key
	// is the lowercased first 50. Both constants are load-bearing: changing
	// them changes which stories collapse into one entry.
	eventMaxLen = 100
	dedupKeyLen = 50
)

// Item is one classified, relevant news item headed for the timeline.
type Item struct {
	Date   string
	Title  string
	Impact string
}

// KeyFunc derives the dedup key for an event text. The default is a
// truncated-prefix heuristic; it is replaceable because distinct stories
// sharing a long common prefix silently merge under it.
type KeyFunc func(event string) string

// DefaultKey lowercases the first 50 characters of the event text.
func DefaultKey(event string) string {
	key := strings.ToLower(event)
	if len(key) > dedupKeyLen {
		key = key[:dedupKeyLen]
	}
	return key
}

// Merger applies timeline and news-log updates with retention limits.
type Merger struct {
	Key           KeyFunc
	TimelineLimit int
	NewsLogLimit  int
}

// MergeTimeline prepends one entry per item whose dedup key is not already
// present, newest first, then truncates to the retention limit. Returns the
// new timeline and the count of accepted entries; the difference from
// len(items) is duplicates.
func (m Merger) MergeTimeline(timeline []tracker.TimelineEntry, items []Item) ([]tracker.TimelineEntry, int) {
	key := m.Key
	if key == nil {
		key = DefaultKey
	}

	seen := make(map[string]struct{}, len(timeline))
	for _, e := range timeline {
		seen[key(e.Event)] = struct{}{}
	}

	added := 0
	for _, item := range items {
		event := item.Title
		if len(event) > eventMaxLen {
			event = event[:eventMaxLen]
		}

		k := key(event)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}

		timeline = append([]tracker.TimelineEntry{{
			Date:   item.Date,
			Event:  event,
			Impact: item.Impact,
			Type:   tracker.EntryTypeNews,
		}}, timeline...)
		added++
	}

	if m.TimelineLimit > 0 && len(timeline) > m.TimelineLimit {
		timeline = timeline[:m.TimelineLimit]
	}
	return timeline, added
}

// PrependSummary puts this run's summary at the head of the recent-news log
// and truncates it.
func (m Merger) PrependSummary(log []tracker.NewsLogEntry, date, summary string) []tracker.NewsLogEntry {
	log = append([]tracker.NewsLogEntry{{Date: date, Summary: summary}}, log...)
	if m.NewsLogLimit > 0 && len(log) > m.NewsLogLimit {
		log = log[:m.NewsLogLimit]
	}
	return log
}

// BuildSummary renders the human-readable run summary.
func BuildSummary(relevantCount int, candidateNames []string) string {
	head := fmt.Sprintf("Found %d relevant news item%s. ", relevantCount, plural(relevantCount))
	if len(candidateNames) == 0 {
		return head + "No specific candidates mentioned."
	}
	return head + "Candidates mentioned: " + strings.Join(candidateNames, ", ") + "."
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
