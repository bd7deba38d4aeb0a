package classify

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Candidate is one catalog entry: a tracked potential acquirer and the
// keywords that attribute news to it. Catalog order matters — attribution
// takes the first match.
type Candidate struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

type catalogConfig struct {
	Candidates []Candidate `yaml:"candidates"`
}

// LoadCatalog reads the candidate catalog from a YAML file.
func LoadCatalog(path string) ([]Candidate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg catalogConfig
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	return cfg.Candidates, nil
}

// FallbackCatalog is used when the catalog file is unreadable, so a broken
// config degrades attribution instead of aborting the run.
func FallbackCatalog() []Candidate {
	return []Candidate{
		{ID: "roark-inspire", Name: "Roark Capital / Inspire Brands", Keywords: []string{"roark capital", "inspire brands"}},
		{ID: "flynn-group", Name: "Flynn Group", Keywords: []string{"flynn group", "flynn restaurant", "greg flynn"}},
		{ID: "rbi", Name: "Restaurant Brands International", Keywords: []string{"restaurant brands international", "burger king owner"}},
		{ID: "apollo", Name: "Apollo Global Management", Keywords: []string{"apollo global", "apollo management"}},
		{ID: "blackstone", Name: "Blackstone", Keywords: []string{"blackstone pizza", "blackstone restaurant"}},
		{ID: "sycamore", Name: "Sycamore Partners", Keywords: []string{"sycamore partners"}},
		{ID: "triartisan-yadav", Name: "TriArtisan / Yadav Enterprises", Keywords: []string{"triartisan", "yadav enterprises"}},
		{ID: "middle-east-swf", Name: "Middle East Sovereign Wealth", Keywords: []string{"sovereign wealth", "middle east pizza"}},
		{ID: "sun-holdings", Name: "Sun Holdings", Keywords: []string{"sun holdings"}},
		{ID: "asian-strategic", Name: "Asian Strategic Buyer", Keywords: []string{"yum china pizza"}},
	}
}
