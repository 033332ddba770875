package parser

import "time"

// Entry is one normalized feed item ready for aggregation and rendering.
// Entries are immutable value records; Author and Group come from the owning
// channel, never from feed content. Published is always valid for entries
// that survive normalization.
type Entry struct {
	Title     string
	Author    string
	Published time.Time
	URL       string
	Group     string
}
