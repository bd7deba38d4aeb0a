// Package tracker defines the persisted tracker document and its store.
package tracker

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Trend values for a candidate.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// EntryTypeNews tags timeline entries produced by the pipeline, as opposed
// to entries a user adds by hand in the dashboard overlay.
const EntryTypeNews = "news"

// HistoryPoint is one audited likelihood movement, newest last.
type HistoryPoint struct {
	Date       string `json:"date"`
	Likelihood int    `json:"likelihood"`
	Note       string `json:"note"`
}

// Candidate is a tracked potential acquirer. The pipeline only updates
// Likelihood, Trend and History; the candidate set itself is seed data.
type Candidate struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Likelihood int            `json:"likelihood"`
	Trend      string         `json:"trend"`
	History    []HistoryPoint `json:"history"`
}

// TimelineEntry is one event in the acquisition timeline, newest first.
type TimelineEntry struct {
	Date   string `json:"date"`
	Event  string `json:"event"`
	Impact string `json:"impact"`
	Type   string `json:"type"`
}

// NewsLogEntry is one free-text run summary, newest first.
type NewsLogEntry struct {
	Date    string `json:"date"`
	Summary string `json:"summary"`
}

// State is the whole persisted document. It is read once at run start,
// mutated in memory, and rewritten once at run end.
type State struct {
	Candidates  []Candidate     `json:"candidates"`
	Timeline    []TimelineEntry `json:"timeline"`
	RecentNews  []NewsLogEntry  `json:"recentNews"`
	LastUpdated string          `json:"lastUpdated"`
}

// CandidateByID returns a pointer into the candidate slice, or nil.
func (s *State) CandidateByID(id string) *Candidate {
	for i := range s.Candidates {
		if s.Candidates[i].ID == id {
			return &s.Candidates[i]
		}
	}
	return nil
}

// Store reads and rewrites the tracker document on disk.
type Store struct {
	filePath string
}

func NewStore(filePath string) *Store {
	return &Store{filePath: filePath}
}

// Load reads the full document. Any failure here is fatal for the run: the
// pipeline must not mutate state it could not read.
func (s *Store) Load() (*State, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tracker state: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tracker state: %w", err)
	}

	return &state, nil
}

// Save rewrites the full document. The write goes to a temp file in the
// same directory followed by a rename, so a crash never leaves a torn file.
func (s *Store) Save(state *State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tracker state: %w", err)
	}

	dir := filepath.Dir(s.filePath)
	tmp, err := os.CreateTemp(dir, ".tracker-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close state file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.filePath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}
