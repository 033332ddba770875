package digest

import (
	"sort"

	"github.com/samber/lo"

	"feedigest/app/parser"
)

// Aggregate merges per-channel entry lists into one collection ordered most
// recent first. The sort is stable, so entries with equal timestamps keep
// their merge order.
func Aggregate(lists [][]parser.Entry) []parser.Entry {
	entries := lo.Flatten(lists)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Published.After(entries[j].Published)
	})

	return entries
}
