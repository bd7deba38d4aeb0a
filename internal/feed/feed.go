// Package feed extracts items from raw RSS-style text.
//
// This is lenient, best-effort extraction bounded to the four tags the
// pipeline cares about, not a conformant feed parser. Malformed markup
// degrades to empty fields instead of failing the run.
package feed

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Item is one entry pulled out of a feed. Date is a calendar date
// (YYYY-MM-DD); it falls back to the run date when pubDate is absent or
// unparseable.
type Item struct {
	Title       string
	Link        string
	Date        string
	Description string
}

const dateLayout = "2006-01-02"

// pubDate layouts seen in the wild, most common first.
var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
}

// Parse walks every <item> block in raw and extracts the first title, link,
// pubDate and description of each.
func Parse(raw string, runDate time.Time) []Item {
	var items []Item

	rest := raw
	for {
		block, remainder, ok := nextBlock(rest, "item")
		if !ok {
			break
		}
		rest = remainder

		items = append(items, Item{
			Title:       sanitizeTitle(tagContent(block, "title")),
			Link:        strings.TrimSpace(tagContent(block, "link")),
			Date:        normalizeDate(tagContent(block, "pubDate"), runDate),
			Description: sanitizeDescription(tagContent(block, "description")),
		})
	}

	return items
}

// nextBlock returns the content of the first <tag>...</tag> pair and the
// text after it.
func nextBlock(s, tag string) (content, rest string, ok bool) {
	open, close := "<"+tag+">", "</"+tag+">"

	i := strings.Index(s, open)
	if i < 0 {
		return "", "", false
	}
	s = s[i+len(open):]

	j := strings.Index(s, close)
	if j < 0 {
		return "", "", false
	}
	return s[:j], s[j+len(close):], true
}

// tagContent extracts the first <tag>...</tag> content inside block, or "".
func tagContent(block, tag string) string {
	content, _, _ := nextBlock(block, tag)
	return content
}

func stripCDATA(s string) string {
	s = strings.ReplaceAll(s, "<![CDATA[", "")
	return strings.ReplaceAll(s, "]]>", "")
}

var entityReplacer = strings.NewReplacer("&amp;", "&", "&quot;", `"`)

func sanitizeTitle(s string) string {
	s = stripCDATA(s)
	s = entityReplacer.Replace(s)
	return strings.TrimSpace(s)
}

// sanitizeDescription strips markup and decodes entities. goquery handles
// both in one pass; if it refuses the input we fall back to a manual strip.
func sanitizeDescription(s string) string {
	s = stripCDATA(s)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(entityReplacer.Replace(stripTags(s)))
	}
	return strings.TrimSpace(doc.Text())
}

func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func normalizeDate(raw string, runDate time.Time) string {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		for _, layout := range pubDateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t.UTC().Format(dateLayout)
			}
		}
	}
	return runDate.UTC().Format(dateLayout)
}
