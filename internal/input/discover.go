// Package input discovers instruction files and loads them into records
// the conversion pipelines consume. A record's read error is surfaced on
// the record itself so the driver can fail that input without touching
// the oracle.
package input

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Record is one discovered input: its path, its content, and any read
// error. Err set means the content is unusable and the input must be
// rejected before conversion.
type Record struct {
	Path    string
	Content string
	Err     error
}

// Discover expands the given glob patterns, reads every match, and
// returns records in stable path order. A pattern that matches nothing
// is treated as a literal path so the caller sees a read error rather
// than silence. Only a malformed pattern is a hard error.
func Discover(patterns []string) ([]Record, error) {
	seen := make(map[string]bool)
	var paths []string

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			matches = []string{pattern}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}

	sort.Strings(paths)

	records := make([]Record, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			records = append(records, Record{Path: p, Err: err})
			continue
		}
		records = append(records, Record{Path: p, Content: string(data)})
	}
	return records, nil
}
