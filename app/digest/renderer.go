package digest

import (
	"fmt"
	"strings"

	"feedigest/app/parser"
)

// Render produces the markdown digest for one ordered entry list. A year
// heading is emitted before the first entry of each calendar year in the
// input sequence; the input is never re-sorted. Headings and entry lines
// are independent blocks joined by a blank line. Empty input renders to
// an empty string.
func Render(entries []parser.Entry) string {
	if len(entries) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(entries)+1)

	year := entries[0].Published.Year()
	blocks = append(blocks, fmt.Sprintf("# %d", year))

	for _, entry := range entries {
		if y := entry.Published.Year(); y != year {
			year = y
			blocks = append(blocks, fmt.Sprintf("# %d", year))
		}
		blocks = append(blocks, formatEntry(entry))
	}

	return strings.Join(blocks, "\n\n")
}

func formatEntry(entry parser.Entry) string {
	return fmt.Sprintf("%s @%s [%s](%s)",
		entry.Published.Format("2006-01-02"),
		entry.Author,
		entry.Title,
		entry.URL)
}
