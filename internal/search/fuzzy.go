// Package search implements the incremental find used by the browser.
// Matching is prefix-only: a query matches an entry when the entry name
// starts with the query, case-insensitively unless configured otherwise.
package search

import (
	"strings"

	"github.com/jordannakamoto/ils/internal/fs"
)

// Match scans entries in display order and returns the index of the
// first entry whose name starts with query, along with the total number
// of matching entries. An empty query matches nothing: (-1, 0).
func Match(query string, entries []fs.Entry, caseSensitive bool) (first, count int) {
	first = -1
	if query == "" {
		return first, 0
	}

	q := query
	if !caseSensitive {
		q = strings.ToLower(q)
	}

	for i, e := range entries {
		name := e.Name
		if !caseSensitive {
			name = strings.ToLower(name)
		}
		if strings.HasPrefix(name, q) {
			if first == -1 {
				first = i
			}
			count++
		}
	}
	return first, count
}

// PrefixLen reports how many leading runes of name the query covers,
// for highlighting. Zero means name does not match query.
func PrefixLen(name, query string, caseSensitive bool) int {
	if query == "" {
		return 0
	}
	n, q := name, query
	if !caseSensitive {
		n = strings.ToLower(n)
		q = strings.ToLower(q)
	}
	if !strings.HasPrefix(n, q) {
		return 0
	}
	return len([]rune(query))
}
