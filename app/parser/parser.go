package parser

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mmcdole/gofeed/atom"
	"github.com/mmcdole/gofeed/rss"

	"feedigest/app/subscription"
)

// Parser normalizes raw feed payloads into entries. Formats are tried in
// order: RSS first, Atom second. A payload matching neither is an error.
type Parser struct {
	rssParser  *rss.Parser
	atomParser *atom.Parser
}

func NewParser() *Parser {
	return &Parser{
		rssParser:  &rss.Parser{},
		atomParser: &atom.Parser{},
	}
}

// Parse extracts normalized entries from data. Items missing a link or a
// parsable timestamp are skipped individually and logged; they never fail
// the whole channel.
func (p *Parser) Parse(data []byte, channel subscription.Channel) ([]Entry, error) {
	if feed, err := p.rssParser.Parse(bytes.NewReader(data)); err == nil {
		return p.normalizeRSS(feed, channel), nil
	}

	if feed, err := p.atomParser.Parse(bytes.NewReader(data)); err == nil {
		return p.normalizeAtom(feed, channel), nil
	}

	return nil, fmt.Errorf("payload is neither RSS nor Atom")
}

func (p *Parser) normalizeRSS(feed *rss.Feed, channel subscription.Channel) []Entry {
	entries := make([]Entry, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Link == "" {
			log.Printf("Skipping item %q at %s: missing link", item.Title, channel.URL)
			continue
		}

		published, ok := parseDate(item.PubDateParsed, item.PubDate)
		if !ok {
			log.Printf("Skipping item %q at %s: unparsable date %q", item.Title, channel.URL, item.PubDate)
			continue
		}

		entries = append(entries, Entry{
			Title:     item.Title,
			Author:    channel.Author,
			Published: published,
			URL:       item.Link,
			Group:     channel.Group,
		})
	}
	return entries
}

func (p *Parser) normalizeAtom(feed *atom.Feed, channel subscription.Channel) []Entry {
	entries := make([]Entry, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		if len(entry.Links) == 0 || entry.Links[0].Href == "" {
			log.Printf("Skipping entry %q at %s: missing link", entry.Title, channel.URL)
			continue
		}

		// Prefer published, fall back to updated.
		published, ok := parseDate(entry.PublishedParsed, entry.Published)
		if !ok {
			published, ok = parseDate(entry.UpdatedParsed, entry.Updated)
		}
		if !ok {
			log.Printf("Skipping entry %q at %s: no usable timestamp", entry.Title, channel.URL)
			continue
		}

		entries = append(entries, Entry{
			Title:     entry.Title,
			Author:    channel.Author,
			Published: published,
			URL:       entry.Links[0].Href,
			Group:     channel.Group,
		})
	}
	return entries
}

// parseDate returns the pre-parsed timestamp when gofeed recognized the
// format, otherwise runs the raw value through the lenient dateparse parser.
func parseDate(parsed *time.Time, raw string) (time.Time, bool) {
	if parsed != nil {
		return *parsed, true
	}
	if raw == "" {
		return time.Time{}, false
	}

	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
