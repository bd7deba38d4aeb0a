// Package app orchestrates one tracker run: poll sources, filter to fresh
// items, classify, score, merge, persist. Persistence happens exactly once,
// at the end; a crash mid-run leaves the store untouched.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/prognar/PH-Tracker/internal/classify"
	"github.com/prognar/PH-Tracker/internal/config"
	"github.com/prognar/PH-Tracker/internal/feed"
	"github.com/prognar/PH-Tracker/internal/fetch"
	"github.com/prognar/PH-Tracker/internal/logger"
	"github.com/prognar/PH-Tracker/internal/merge"
	"github.com/prognar/PH-Tracker/internal/metrics"
	"github.com/prognar/PH-Tracker/internal/score"
	"github.com/prognar/PH-Tracker/internal/sources"
	"github.com/prognar/PH-Tracker/internal/tracker"
)

const dateLayout = "2006-01-02"

// relevantItem pairs a feed item with its classification.
type relevantItem struct {
	item   feed.Item
	result classify.Result
}

// Run executes one complete pipeline invocation.
func Run(ctx context.Context, cfg *config.Config) error {
	start := time.Now()
	defer func() {
		metrics.Global.RecordProcessingTime(time.Since(start))
	}()

	store := tracker.NewStore(cfg.DataFilePath)
	state, err := store.Load()
	if err != nil {
		metrics.Global.SetError(err.Error())
		return err
	}

	today := start.UTC().Format(dateLayout)
	logger.Info("starting tracker run", "date", today)

	registry := loadSources(cfg)
	classifier := classify.New(classify.DefaultKeywords(), loadCatalog(cfg))
	fetcher := fetch.New(fetch.Config{
		Timeout:       cfg.RequestTimeout,
		MaxRedirects:  cfg.MaxRedirects,
		RatePerSec:    cfg.FetchRatePerSec,
		Burst:         cfg.FetchConcurrency,
		RetryAttempts: cfg.RetryAttempts,
		RetryDelay:    cfg.RetryDelay,
	})

	// Fetching: every source polled independently, failures isolated.
	items := fetchAll(ctx, fetcher, registry, start, cfg.FetchConcurrency)
	logger.Info("fetch complete", "items", len(items), "sources", len(registry))

	// Filtering: only items published within the freshness window survive.
	fresh := filterFresh(items, start, cfg.FreshnessWindow)
	metrics.Global.AddItemsFresh(len(fresh))
	logger.Info("freshness filter applied", "kept", len(fresh), "window", cfg.FreshnessWindow)

	// Classifying.
	relevant, tallies, mentioned := classifyAll(classifier, fresh)
	metrics.Global.AddItemsRelevant(len(relevant))

	// Deciding: with nothing relevant, only the timestamp moves.
	if len(relevant) == 0 {
		logger.Info("no relevant news found, updating timestamp only")
		state.LastUpdated = start.UTC().Format(time.RFC3339)
		if err := store.Save(state); err != nil {
			metrics.Global.SetError(err.Error())
			return err
		}
		metrics.Global.SetLastRun()
		return nil
	}

	// Merging: scores first, then timeline and news log, then one write.
	engine := score.Engine{HistoryLimit: cfg.HistoryLimit}
	updated := engine.Apply(state.Candidates, tallies, today)
	metrics.Global.AddCandidatesUpdated(updated)

	merger := merge.Merger{
		Key:           merge.DefaultKey,
		TimelineLimit: cfg.TimelineLimit,
		NewsLogLimit:  cfg.NewsLogLimit,
	}

	entries := make([]merge.Item, 0, len(relevant))
	for _, r := range relevant {
		entries = append(entries, merge.Item{
			Date:   r.item.Date,
			Title:  r.item.Title,
			Impact: string(r.result.Impact),
		})
	}

	var added int
	state.Timeline, added = merger.MergeTimeline(state.Timeline, entries)
	metrics.Global.AddDuplicatesFiltered(len(entries) - added)

	summary := merge.BuildSummary(len(relevant), candidateNames(state, mentioned))
	state.RecentNews = merger.PrependSummary(state.RecentNews, today, summary)
	state.LastUpdated = start.UTC().Format(time.RFC3339)

	if err := store.Save(state); err != nil {
		metrics.Global.SetError(err.Error())
		return err
	}

	metrics.Global.SetLastRun()
	logger.Info("tracker updated", "summary", summary, "timeline_added", added, "candidates_updated", updated)
	return nil
}

func loadSources(cfg *config.Config) []sources.Source {
	registry, err := sources.Load(cfg.SourcesConfigPath)
	if err != nil {
		logger.Warn("using built-in source list", "path", cfg.SourcesConfigPath, "error", err)
		return sources.Defaults()
	}
	return registry
}

func loadCatalog(cfg *config.Config) []classify.Candidate {
	catalog, err := classify.LoadCatalog(cfg.CandidatesConfigPath)
	if err != nil {
		logger.Warn("candidate catalog unreadable, using fallback keywords",
			"path", cfg.CandidatesConfigPath, "error", err)
		return classify.FallbackCatalog()
	}
	return catalog
}

// fetchAll polls every source concurrently and joins before returning.
// Order between sources does not matter; results land in one flat list.
func fetchAll(ctx context.Context, fetcher *fetch.Client, registry []sources.Source, runStart time.Time, concurrency int) []feed.Item {
	if concurrency < 1 {
		concurrency = 1
	}

	var (
		mu    sync.Mutex
		items []feed.Item
		wg    sync.WaitGroup
	)
	sem := make(chan struct{}, concurrency)

	for _, src := range registry {
		wg.Add(1)
		go func(src sources.Source) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			metrics.Global.IncrementSourcesPolled()
			logger.Debug("fetching source", "name", src.Name)

			raw, err := fetcher.Fetch(ctx, src.URL)
			if err != nil {
				// One source failing must not abort the run.
				logger.Warn("source fetch failed", "name", src.Name, "error", err)
				metrics.Global.IncrementSourceErrors()
				return
			}

			parsed := feed.Parse(raw, runStart)
			logger.Info("source fetched", "name", src.Name, "items", len(parsed))
			metrics.Global.AddItemsFetched(len(parsed))

			mu.Lock()
			items = append(items, parsed...)
			mu.Unlock()
		}(src)
	}

	wg.Wait()
	return items
}

func filterFresh(items []feed.Item, runStart time.Time, window time.Duration) []feed.Item {
	cutoff := runStart.Add(-window)

	fresh := make([]feed.Item, 0, len(items))
	for _, item := range items {
		day, err := time.Parse(dateLayout, item.Date)
		if err != nil {
			continue
		}
		if !day.Before(cutoff) {
			fresh = append(fresh, item)
		}
	}
	return fresh
}

// classifyAll returns the relevant items, a sentiment tally per attributed
// candidate, and candidate ids in first-mention order.
func classifyAll(classifier *classify.Classifier, items []feed.Item) ([]relevantItem, map[string]score.Tally, []string) {
	var (
		relevant  []relevantItem
		tallies   = make(map[string]score.Tally)
		mentioned []string
	)

	for _, item := range items {
		res := classifier.Classify(item.Title, item.Description)
		if res.Impact == classify.ImpactNone {
			continue
		}

		relevant = append(relevant, relevantItem{item: item, result: res})
		logger.Info("relevant item",
			"title", item.Title,
			"impact", res.Impact,
			"candidate", orNone(res.CandidateID),
			"sentiment", res.Sentiment)

		if res.CandidateID == "" {
			continue
		}
		tally, seen := tallies[res.CandidateID]
		if !seen {
			mentioned = append(mentioned, res.CandidateID)
		}
		tally.Add(res.Sentiment)
		tallies[res.CandidateID] = tally
	}

	return relevant, tallies, mentioned
}

// candidateNames resolves mention ids to display names from the persisted
// state, keeping first-mention order. Unknown ids pass through as-is.
func candidateNames(state *tracker.State, ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if cand := state.CandidateByID(id); cand != nil {
			names = append(names, cand.Name)
			continue
		}
		names = append(names, id)
	}
	return names
}

func orNone(id string) string {
	if id == "" {
		return "none"
	}
	return id
}
