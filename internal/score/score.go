// Package score folds per-candidate sentiment tallies into likelihood
// movements on the persisted candidate records.
package score

import (
	"fmt"
	"sort"

	"github.com/prognar/PH-Tracker/internal/classify"
	"github.com/prognar/PH-Tracker/internal/logger"
	"github.com/prognar/PH-Tracker/internal/tracker"
)

// Likelihood bounds. Scores never pin to 0 or 100; nothing is ever certain.
const (
	MinLikelihood = 5
	MaxLikelihood = 95
)

const (
	maxPositiveDelta = 10
	maxNegativeDelta = 15
)

// Tally counts this run's sentiment signals attributed to one candidate.
type Tally struct {
	Positive int
	Negative int
	Neutral  int
}

func (t Tally) Mentions() int {
	return t.Positive + t.Negative + t.Neutral
}

func (t *Tally) Add(s classify.Sentiment) {
	switch s {
	case classify.SentimentPositive:
		t.Positive++
	case classify.SentimentNegative:
		t.Negative++
	default:
		t.Neutral++
	}
}

// Engine applies the delta policy once per run, after classification.
type Engine struct {
	HistoryLimit int
}

// Apply updates likelihood, trend and history for every candidate with a
// tally, then re-sorts candidates descending by likelihood. Candidates
// without mentions are left untouched. Returns how many moved.
func (e Engine) Apply(candidates []tracker.Candidate, tallies map[string]Tally, today string) int {
	updated := 0

	for i := range candidates {
		cand := &candidates[i]
		tally, ok := tallies[cand.ID]
		if !ok {
			continue
		}

		delta, reason := delta(tally)
		if delta == 0 {
			continue
		}

		newLikelihood := clamp(cand.Likelihood + delta)

		cand.History = append(cand.History, tracker.HistoryPoint{
			Date:       today,
			Likelihood: newLikelihood,
			Note:       reason,
		})
		if e.HistoryLimit > 0 && len(cand.History) > e.HistoryLimit {
			cand.History = cand.History[len(cand.History)-e.HistoryLimit:]
		}

		oldLikelihood := cand.Likelihood
		cand.Likelihood = newLikelihood
		if delta > 0 {
			cand.Trend = tracker.TrendUp
		} else {
			cand.Trend = tracker.TrendDown
		}

		logger.Info("candidate likelihood updated",
			"candidate", cand.Name,
			"from", oldLikelihood,
			"to", newLikelihood,
			"delta", delta)
		updated++
	}

	// Descending by likelihood; governs default display order downstream.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Likelihood > candidates[j].Likelihood
	})

	return updated
}

// delta implements the policy: positive majority gains up to +10, negative
// majority loses up to -15, any other mention activity is worth +2.
func delta(t Tally) (int, string) {
	switch {
	case t.Positive > t.Negative:
		d := t.Positive * 3
		if d > maxPositiveDelta {
			d = maxPositiveDelta
		}
		return d, fmt.Sprintf("Positive news coverage (%d positive mention%s)", t.Positive, plural(t.Positive))
	case t.Negative > t.Positive:
		d := t.Negative * 5
		if d > maxNegativeDelta {
			d = maxNegativeDelta
		}
		return -d, fmt.Sprintf("Negative news coverage (%d negative mention%s)", t.Negative, plural(t.Negative))
	case t.Mentions() > 0:
		return 2, fmt.Sprintf("Mentioned in news (%d mention%s)", t.Mentions(), plural(t.Mentions()))
	}
	return 0, ""
}

func clamp(v int) int {
	if v < MinLikelihood {
		return MinLikelihood
	}
	if v > MaxLikelihood {
		return MaxLikelihood
	}
	return v
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
