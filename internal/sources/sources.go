// Package sources holds the registry of feed endpoints polled each run.
package sources

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Source is a single feed-search endpoint. Entries are independent; each
// exists only to widen topical coverage and is polled once per run.
type Source struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	Type string `yaml:"type"`
}

// registryConfig is the YAML config structure
// sources:
//   - name: ...
//     url: https://...
//     type: rss
type registryConfig struct {
	Sources []Source `yaml:"sources"`
}

// Load reads the source list from a YAML file.
func Load(path string) ([]Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg registryConfig
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	if len(cfg.Sources) == 0 {
		return nil, fmt.Errorf("no sources defined in %s", path)
	}
	return cfg.Sources, nil
}

// Defaults returns the built-in registry: Google News RSS queries covering
// deal news, named-buyer news, SEC filings, franchisees, and executive
// movements.
func Defaults() []Source {
	return []Source{
		// General Pizza Hut acquisition news
		{
			Name: "Google News - Pizza Hut Sale",
			URL:  "https://news.google.com/rss/search?q=Pizza+Hut+sale+acquisition+Yum+Brands&hl=en-US&gl=US&ceid=US:en",
			Type: "rss",
		},
		{
			Name: "Google News - Pizza Hut Deal",
			URL:  "https://news.google.com/rss/search?q=Pizza+Hut+deal+buyer+bid&hl=en-US&gl=US&ceid=US:en",
			Type: "rss",
		},
		// Buyer-specific searches
		{
			Name: "Google News - Roark Pizza",
			URL:  "https://news.google.com/rss/search?q=Roark+Capital+Pizza+Hut+OR+Inspire+Brands+pizza&hl=en-US&gl=US&ceid=US:en",
			Type: "rss",
		},
		{
			Name: "Google News - Flynn Pizza Hut",
			URL:  "https://news.google.com/rss/search?q=Flynn+Restaurant+Group+Pizza+Hut&hl=en-US&gl=US&ceid=US:en",
			Type: "rss",
		},
		{
			Name: "Google News - RBI Pizza",
			URL:  "https://news.google.com/rss/search?q=Restaurant+Brands+International+Pizza&hl=en-US&gl=US&ceid=US:en",
			Type: "rss",
		},
		{
			Name: "Google News - Apollo Pizza",
			URL:  "https://news.google.com/rss/search?q=Apollo+Global+Pizza+Hut+OR+Apollo+pizza+acquisition&hl=en-US&gl=US&ceid=US:en",
			Type: "rss",
		},
		{
			Name: "Google News - Blackstone Restaurant",
			URL:  "https://news.google.com/rss/search?q=Blackstone+pizza+OR+Blackstone+restaurant+acquisition&hl=en-US&gl=US&ceid=US:en",
			Type: "rss",
		},
		// Deal process / SEC filings
		{
			Name: "Google News - Yum Brands Filing",
			URL:  "https://news.google.com/rss/search?q=Yum+Brands+SEC+filing+OR+Yum+Brands+8-K&hl=en-US&gl=US&ceid=US:en",
			Type: "rss",
		},
		// Franchisee news
		{
			Name: "Google News - Pizza Hut Franchisee",
			URL:  "https://news.google.com/rss/search?q=Pizza+Hut+franchisee+acquisition+OR+Pizza+Hut+franchisee+sale&hl=en-US&gl=US&ceid=US:en",
			Type: "rss",
		},
		// Executive movements
		{
			Name: "Google News - Pizza Hut Executive",
			URL:  "https://news.google.com/rss/search?q=%22former+Pizza+Hut%22+OR+%22ex-Pizza+Hut%22+OR+%22leaves+Pizza+Hut%22+OR+%22Pizza+Hut+executive%22&hl=en-US&gl=US&ceid=US:en",
			Type: "rss",
		},
		{
			Name: "Google News - Pizza Hut Leadership",
			URL:  "https://news.google.com/rss/search?q=Pizza+Hut+CEO+OR+Pizza+Hut+president+OR+Pizza+Hut+CMO+OR+Pizza+Hut+CFO&hl=en-US&gl=US&ceid=US:en",
			Type: "rss",
		},
		// Specific known executives who left
		{
			Name: "Google News - David Graves",
			URL:  "https://news.google.com/rss/search?q=%22David+Graves%22+Pizza+Hut&hl=en-US&gl=US&ceid=US:en",
			Type: "rss",
		},
		{
			Name: "Google News - Chequan Lewis",
			URL:  "https://news.google.com/rss/search?q=%22Chequan+Lewis%22+Pizza+Hut&hl=en-US&gl=US&ceid=US:en",
			Type: "rss",
		},
	}
}
