package parser

import (
	"testing"
	"time"

	"feedigest/app/subscription"
)

var techChannel = subscription.Channel{
	URL:    "https://alice.example.com/feed",
	Author: "Alice",
	Group:  "Tech",
}

func TestParseRSS(t *testing.T) {
	data := `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Alice's Blog</title>
    <link>https://alice.example.com</link>
    <item>
      <title>First Post</title>
      <link>https://alice.example.com/first</link>
      <pubDate>Mon, 03 Jul 2023 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Second Post</title>
      <link>https://alice.example.com/second</link>
      <pubDate>Tue, 04 Jul 2023 11:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

	entries, err := NewParser().Parse([]byte(data), techChannel)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Title != "First Post" {
		t.Errorf("Expected title 'First Post', got '%s'", first.Title)
	}
	if first.URL != "https://alice.example.com/first" {
		t.Errorf("Unexpected URL: %s", first.URL)
	}
	if first.Author != "Alice" {
		t.Errorf("Author must come from the channel, got '%s'", first.Author)
	}
	if first.Group != "Tech" {
		t.Errorf("Group must come from the channel, got '%s'", first.Group)
	}

	want := time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC)
	if !first.Published.Equal(want) {
		t.Errorf("Expected published %s, got %s", want, first.Published)
	}
}

func TestParseRSSSkipsItemWithUnparsableDate(t *testing.T) {
	data := `<rss version="2.0"><channel><title>t</title>
    <item>
      <title>Bad Date</title>
      <link>https://example.com/bad</link>
      <pubDate>not a date at all</pubDate>
    </item>
    <item>
      <title>Good</title>
      <link>https://example.com/good</link>
      <pubDate>Mon, 03 Jul 2023 10:00:00 GMT</pubDate>
    </item>
  </channel></rss>`

	entries, err := NewParser().Parse([]byte(data), techChannel)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry after skipping bad date, got %d", len(entries))
	}
	if entries[0].Title != "Good" {
		t.Errorf("Expected surviving entry 'Good', got '%s'", entries[0].Title)
	}
}

func TestParseRSSSkipsItemWithoutDate(t *testing.T) {
	data := `<rss version="2.0"><channel><title>t</title>
    <item>
      <title>No Date</title>
      <link>https://example.com/nodate</link>
    </item>
    <item>
      <title>Dated</title>
      <link>https://example.com/dated</link>
      <pubDate>Mon, 03 Jul 2023 10:00:00 GMT</pubDate>
    </item>
  </channel></rss>`

	entries, err := NewParser().Parse([]byte(data), techChannel)
	if err != nil {
		t.Fatal(err)
	}

	// Missing pubDate drops only that item, not the channel.
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Title != "Dated" {
		t.Errorf("Expected surviving entry 'Dated', got '%s'", entries[0].Title)
	}
}

func TestParseRSSSkipsItemWithoutLink(t *testing.T) {
	data := `<rss version="2.0"><channel><title>t</title>
    <item>
      <title>No Link</title>
      <pubDate>Mon, 03 Jul 2023 10:00:00 GMT</pubDate>
    </item>
  </channel></rss>`

	entries, err := NewParser().Parse([]byte(data), techChannel)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestParseRSSMissingTitle(t *testing.T) {
	data := `<rss version="2.0"><channel><title>t</title>
    <item>
      <link>https://example.com/untitled</link>
      <pubDate>Mon, 03 Jul 2023 10:00:00 GMT</pubDate>
    </item>
  </channel></rss>`

	entries, err := NewParser().Parse([]byte(data), techChannel)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Title != "" {
		t.Errorf("Missing title should normalize to empty string, got '%s'", entries[0].Title)
	}
}

func TestParseAtom(t *testing.T) {
	data := `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Alice's Atom Feed</title>
  <updated>2023-07-03T12:00:00Z</updated>
  <entry>
    <title>Atom Entry</title>
    <link href="https://alice.example.com/atom1"/>
    <published>2023-07-03T10:00:00Z</published>
    <updated>2023-07-04T09:00:00Z</updated>
  </entry>
</feed>`

	entries, err := NewParser().Parse([]byte(data), techChannel)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry.URL != "https://alice.example.com/atom1" {
		t.Errorf("Unexpected URL: %s", entry.URL)
	}

	// published wins over updated when both are present
	want := time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC)
	if !entry.Published.Equal(want) {
		t.Errorf("Expected published %s, got %s", want, entry.Published)
	}
}

func TestParseAtomFallsBackToUpdated(t *testing.T) {
	data := `<feed xmlns="http://www.w3.org/2005/Atom">
  <title>t</title>
  <entry>
    <title>Only Updated</title>
    <link href="https://example.com/updated-only"/>
    <updated>2023-07-04T09:00:00Z</updated>
  </entry>
</feed>`

	entries, err := NewParser().Parse([]byte(data), techChannel)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}

	want := time.Date(2023, 7, 4, 9, 0, 0, 0, time.UTC)
	if !entries[0].Published.Equal(want) {
		t.Errorf("Expected updated timestamp %s, got %s", want, entries[0].Published)
	}
}

func TestParseAtomSkipsEntryWithoutTimestamp(t *testing.T) {
	data := `<feed xmlns="http://www.w3.org/2005/Atom">
  <title>t</title>
  <entry>
    <title>No Dates</title>
    <link href="https://example.com/nodates"/>
  </entry>
</feed>`

	entries, err := NewParser().Parse([]byte(data), techChannel)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestParseUnrecognizedPayload(t *testing.T) {
	_, err := NewParser().Parse([]byte("this is not a feed"), techChannel)
	if err == nil {
		t.Error("Expected error for payload that is neither RSS nor Atom")
	}
}

func TestParsePrefersRSSOverAtom(t *testing.T) {
	// A valid RSS payload must be handled by the RSS branch even though the
	// Atom parser would reject it anyway; the attempt order is fixed.
	data := `<rss version="2.0"><channel><title>t</title>
    <item>
      <title>RSS Item</title>
      <link>https://example.com/rss</link>
      <pubDate>Mon, 03 Jul 2023 10:00:00 GMT</pubDate>
    </item>
  </channel></rss>`

	entries, err := NewParser().Parse([]byte(data), techChannel)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Title != "RSS Item" {
		t.Errorf("Expected RSS branch to handle the payload, got %+v", entries)
	}
}
