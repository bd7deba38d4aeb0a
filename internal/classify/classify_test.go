package classify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClassifier() *Classifier {
	return New(DefaultKeywords(), FallbackCatalog())
}

func TestImpactTiers(t *testing.T) {
	c := newTestClassifier()

	cases := []struct {
		name  string
		title string
		want  Impact
	}{
		{"high tier wins", "Yum reaches definitive agreement to sell Pizza Hut", ImpactHigh},
		{"medium tier", "Bidders granted access to the data room for the pizza chain", ImpactMedium},
		{"low tier", "Pizza Hut China operations reviewed by analysts", ImpactLow},
		{"brand plus context rescues", "Pizza Hut could change hands in a larger restaurant deal", ImpactLow},
		{"brand without context", "Pizza Hut launches new menu item", ImpactNone},
		{"unrelated", "Local bakery wins award", ImpactNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := c.Classify(tc.title, "")
			assert.Equal(t, tc.want, res.Impact)
		})
	}
}

func TestHighCheckedBeforeMedium(t *testing.T) {
	c := newTestClassifier()

	// "binding offer" (high) and "due diligence" (medium) both match.
	res := c.Classify("Binding offer expected after due diligence on Pizza Hut", "")
	assert.Equal(t, ImpactHigh, res.Impact)
}

func TestCandidateAttribution(t *testing.T) {
	c := newTestClassifier()

	res := c.Classify("Flynn Restaurant Group weighs offer for Pizza Hut", "")
	assert.Equal(t, "flynn-group", res.CandidateID)

	res = c.Classify("Offer for Pizza Hut rumored, no buyer named", "")
	assert.Empty(t, res.CandidateID)
}

func TestAttributionTakesFirstCatalogMatch(t *testing.T) {
	c := newTestClassifier()

	// Both Roark and Flynn appear; roark-inspire is earlier in the catalog.
	res := c.Classify("Roark Capital and Flynn Group both circle Pizza Hut deal", "")
	assert.Equal(t, "roark-inspire", res.CandidateID)
}

func TestSentiment(t *testing.T) {
	c := newTestClassifier()

	pos := c.Classify("Apollo Global confirms interest in Pizza Hut deal", "")
	assert.Equal(t, SentimentPositive, pos.Sentiment)

	neg := c.Classify("Apollo Global denies Pizza Hut deal talks and withdraws", "")
	assert.Equal(t, SentimentNegative, neg.Sentiment)

	neu := c.Classify("Pizza Hut deal rumors circulate among franchisees", "")
	assert.Equal(t, SentimentNeutral, neu.Sentiment)
}

func TestClassifyUsesDescriptionToo(t *testing.T) {
	c := newTestClassifier()

	res := c.Classify("Quiet day in restaurant M&A", "Analysts still expect a bid for Pizza Hut this year")
	assert.Equal(t, ImpactHigh, res.Impact)
}

func TestRoarkBindingOfferScenario(t *testing.T) {
	c := newTestClassifier()

	res := c.Classify("Roark Capital nearing a binding offer for Pizza Hut", "")
	assert.Equal(t, ImpactHigh, res.Impact)
	assert.Equal(t, "roark-inspire", res.CandidateID)
	assert.Equal(t, SentimentPositive, res.Sentiment)
}

func TestIrrelevantItemsSkipAttribution(t *testing.T) {
	c := newTestClassifier()

	res := c.Classify("Roark Capital buys a software company", "")
	assert.Equal(t, ImpactNone, res.Impact)
	assert.Empty(t, res.CandidateID)
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.yaml")
	doc := `candidates:
  - id: buyer-a
    name: Buyer A
    keywords: [alpha corp]
  - id: buyer-b
    name: Buyer B
    keywords: [beta corp, beta holdings]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, "buyer-a", catalog[0].ID)
	assert.Equal(t, []string{"beta corp", "beta holdings"}, catalog[1].Keywords)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestFallbackCatalogCoversKnownBuyers(t *testing.T) {
	ids := make(map[string]bool)
	for _, c := range FallbackCatalog() {
		require.NotEmpty(t, c.ID)
		require.NotEmpty(t, c.Keywords)
		ids[c.ID] = true
	}
	assert.True(t, ids["roark-inspire"])
	assert.True(t, ids["flynn-group"])
}
