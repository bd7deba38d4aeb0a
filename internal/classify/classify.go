// Package classify scores news items for relevance, attributes them to a
// candidate acquirer, and derives a sentiment signal. All of it is plain
// keyword matching over lowercased item text.
package classify

import "strings"

// Impact is the coarse relevance tier of an item.
type Impact string

const (
	ImpactNone   Impact = "none"
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Sentiment is the directional signal used for likelihood deltas.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Result of classifying one item. CandidateID is empty when no candidate
// keyword matched.
type Result struct {
	Impact      Impact
	CandidateID string
	Sentiment   Sentiment
}

// Keywords are the injected matching tables. Tiers are checked high before
// medium before low, first match wins.
type Keywords struct {
	High   []string
	Medium []string
	Low    []string

	// Brand plus any deal-context word rescues otherwise-unmatched items
	// into the low tier.
	Brand       string
	DealContext []string

	Positive []string
	Negative []string
}

// Classifier is a pure function of its keyword tables and candidate catalog.
type Classifier struct {
	kw      Keywords
	catalog []Candidate
}

func New(kw Keywords, catalog []Candidate) *Classifier {
	return &Classifier{kw: kw, catalog: catalog}
}

// Classify folds title and description into one lowercased text and runs
// the three checks. Attribution and sentiment are only meaningful when
// Impact is not none; irrelevant items are dropped by the caller.
func (c *Classifier) Classify(title, description string) Result {
	text := strings.ToLower(title + " " + description)

	impact := c.impact(text)
	if impact == ImpactNone {
		return Result{Impact: ImpactNone}
	}

	return Result{
		Impact:      impact,
		CandidateID: c.attribute(text),
		Sentiment:   c.sentiment(text),
	}
}

func (c *Classifier) impact(text string) Impact {
	if containsAny(text, c.kw.High) {
		return ImpactHigh
	}
	if containsAny(text, c.kw.Medium) {
		return ImpactMedium
	}
	if containsAny(text, c.kw.Low) {
		return ImpactLow
	}

	if c.kw.Brand != "" && strings.Contains(text, c.kw.Brand) && containsAny(text, c.kw.DealContext) {
		return ImpactLow
	}

	return ImpactNone
}

// attribute returns the id of the first candidate, in catalog load order,
// with a matching keyword. At most one candidate per item.
func (c *Classifier) attribute(text string) string {
	for _, cand := range c.catalog {
		if containsAny(text, cand.Keywords) {
			return cand.ID
		}
	}
	return ""
}

// sentiment counts positive-word hits minus negative-word hits. Each word
// counts once regardless of how often it appears.
func (c *Classifier) sentiment(text string) Sentiment {
	score := 0
	for _, w := range c.kw.Positive {
		if strings.Contains(text, w) {
			score++
		}
	}
	for _, w := range c.kw.Negative {
		if strings.Contains(text, w) {
			score--
		}
	}

	switch {
	case score > 0:
		return SentimentPositive
	case score < 0:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if k != "" && strings.Contains(text, k) {
			return true
		}
	}
	return false
}
