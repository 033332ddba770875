package subscription

import (
	"encoding/xml"
	"fmt"
	"log"
	"os"
)

type opmlDocument struct {
	XMLName xml.Name `xml:"opml"`
	Body    struct {
		Outlines []opmlOutline `xml:"outline"`
	} `xml:"body"`
}

type opmlOutline struct {
	Type     string        `xml:"type,attr"`
	Text     string        `xml:"text,attr"`
	Title    string        `xml:"title,attr"`
	XMLURL   string        `xml:"xmlUrl,attr"`
	Outlines []opmlOutline `xml:"outline"`
}

// Load reads an OPML subscription list and flattens it into channels.
// Top-level outlines carrying a type attribute are direct subscriptions;
// outlines without one are group containers whose text becomes the group
// label for every child. Any malformed outline is a configuration error.
func Load(path string) ([]Channel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subscription list: %w", err)
	}

	var doc opmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse OPML: %w", err)
	}

	var channels []Channel
	for _, outline := range doc.Body.Outlines {
		if outline.Type != "" {
			channel, err := newChannel(outline, "")
			if err != nil {
				return nil, err
			}
			channels = append(channels, channel)
			continue
		}

		group := outline.Text
		log.Printf("Loading group %q", group)
		for _, child := range outline.Outlines {
			channel, err := newChannel(child, group)
			if err != nil {
				return nil, err
			}
			channels = append(channels, channel)
		}
	}

	return channels, nil
}

func newChannel(outline opmlOutline, group string) (Channel, error) {
	if outline.Type != "rss" {
		return Channel{}, fmt.Errorf("outline type must be \"rss\", got %q", outline.Type)
	}
	if outline.XMLURL == "" {
		return Channel{}, fmt.Errorf("outline %q is missing xmlUrl", outline.Title)
	}
	if outline.Title == "" {
		return Channel{}, fmt.Errorf("outline for %s is missing title", outline.XMLURL)
	}

	return Channel{
		URL:    outline.XMLURL,
		Author: outline.Title,
		Group:  group,
	}, nil
}
