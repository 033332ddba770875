package digest

import (
	"time"

	"feedigest/app/parser"
)

// ThisYearKey holds entries published within the trailing year; AllKey holds
// every entry. The remaining bucket keys are the non-empty group labels.
const (
	AllKey      = ""
	ThisYearKey = "this-year"
)

// Partition splits an already-sorted entry collection into overlapping
// buckets. Every entry lands in AllKey, additionally in its group bucket
// when the group is non-empty, and additionally in ThisYearKey when
// published on or after the cutoff one calendar year before now (Feb 29
// normalizes to Mar 1 of the previous year). Relative order within each
// bucket follows the input.
func Partition(entries []parser.Entry, now time.Time) map[string][]parser.Entry {
	cutoff := now.AddDate(-1, 0, 0)

	buckets := make(map[string][]parser.Entry)
	for _, entry := range entries {
		keys := []string{AllKey}
		if entry.Group != "" {
			keys = append(keys, entry.Group)
		}
		if !entry.Published.Before(cutoff) {
			keys = append(keys, ThisYearKey)
		}

		for _, key := range keys {
			buckets[key] = append(buckets[key], entry)
		}
	}

	return buckets
}
