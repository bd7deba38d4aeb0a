package metrics

import (
	"sync"
	"time"
)

// Metrics collects counters for a tracker run. The monitoring endpoints in
// cmd/phtracker read them through GetStats.
type Metrics struct {
	mu sync.RWMutex

	// Counters
	SourcesPolled      int64
	SourceErrors       int64
	ItemsFetched       int64
	ItemsFresh         int64
	ItemsRelevant      int64
	DuplicatesFiltered int64
	CandidatesUpdated  int64

	// Timings
	LastProcessingTime time.Duration

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) IncrementSourcesPolled() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SourcesPolled++
}

func (m *Metrics) IncrementSourceErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SourceErrors++
}

func (m *Metrics) AddItemsFetched(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ItemsFetched += int64(n)
}

func (m *Metrics) AddItemsFresh(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ItemsFresh += int64(n)
}

func (m *Metrics) AddItemsRelevant(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ItemsRelevant += int64(n)
}

func (m *Metrics) AddDuplicatesFiltered(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DuplicatesFiltered += int64(n)
}

func (m *Metrics) AddCandidatesUpdated(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CandidatesUpdated += int64(n)
}

func (m *Metrics) RecordProcessingTime(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastProcessingTime = duration
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"sources_polled":          m.SourcesPolled,
		"source_errors":           m.SourceErrors,
		"items_fetched":           m.ItemsFetched,
		"items_fresh":             m.ItemsFresh,
		"items_relevant":          m.ItemsRelevant,
		"duplicates_filtered":     m.DuplicatesFiltered,
		"candidates_updated":      m.CandidatesUpdated,
		"last_processing_time_ms": m.LastProcessingTime.Milliseconds(),
		"last_run_time":           m.LastRunTime.Format(time.RFC3339),
		"last_error_time":         m.LastErrorTime.Format(time.RFC3339),
		"last_error":              m.LastError,
		"is_healthy":              m.IsHealthy,
	}
}
