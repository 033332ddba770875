package digest

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"feedigest/app/parser"
)

// Write renders every non-empty bucket into dir as <key>.md, with the
// all-entries bucket written as all.md. Files are fully overwritten.
func Write(dir string, buckets map[string][]parser.Entry) error {
	for key, entries := range buckets {
		if len(entries) == 0 {
			continue
		}

		name := key
		if name == AllKey {
			name = "all"
		}

		path := filepath.Join(dir, name+".md")
		if err := os.WriteFile(path, []byte(Render(entries)), 0644); err != nil {
			return fmt.Errorf("failed to write digest %s: %w", path, err)
		}
		log.Printf("Wrote %s (%d entries)", path, len(entries))
	}

	return nil
}
