package search

import (
	"testing"

	"github.com/jordannakamoto/ils/internal/fs"
)

func mkEntries(names ...string) []fs.Entry {
	entries := make([]fs.Entry, len(names))
	for i, n := range names {
		entries[i] = fs.Entry{Name: n, FullPath: "/tmp/" + n}
	}
	return entries
}

func TestMatch(t *testing.T) {
	entries := mkEntries("docs", "Downloads", "desktop.ini", "music", "Documents")

	tests := []struct {
		name          string
		query         string
		caseSensitive bool
		wantFirst     int
		wantCount     int
	}{
		{name: "empty query matches nothing", query: "", wantFirst: -1, wantCount: 0},
		{name: "single letter prefix", query: "d", wantFirst: 0, wantCount: 4},
		{name: "narrows with more letters", query: "do", wantFirst: 0, wantCount: 3},
		{name: "unique match", query: "mu", wantFirst: 3, wantCount: 1},
		{name: "case-insensitive by default", query: "DOWN", wantFirst: 1, wantCount: 1},
		{name: "case-sensitive respects case", query: "do", caseSensitive: true, wantFirst: 0, wantCount: 1},
		{name: "no match", query: "zzz", wantFirst: -1, wantCount: 0},
		{name: "prefix only not substring", query: "ocs", wantFirst: -1, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, count := Match(tt.query, entries, tt.caseSensitive)
			if first != tt.wantFirst || count != tt.wantCount {
				t.Errorf("Match(%q) = (%d, %d), want (%d, %d)",
					tt.query, first, count, tt.wantFirst, tt.wantCount)
			}
		})
	}
}

func TestMatchEmptyEntries(t *testing.T) {
	first, count := Match("a", nil, false)
	if first != -1 || count != 0 {
		t.Errorf("Match on empty entries = (%d, %d), want (-1, 0)", first, count)
	}
}

func TestPrefixLen(t *testing.T) {
	if got := PrefixLen("Documents", "doc", false); got != 3 {
		t.Errorf("PrefixLen case-insensitive = %d, want 3", got)
	}
	if got := PrefixLen("Documents", "doc", true); got != 0 {
		t.Errorf("PrefixLen case-sensitive mismatch = %d, want 0", got)
	}
	if got := PrefixLen("日記.txt", "日", false); got != 1 {
		t.Errorf("PrefixLen multibyte = %d, want 1", got)
	}
	if got := PrefixLen("notes", "", false); got != 0 {
		t.Errorf("PrefixLen empty query = %d, want 0", got)
	}
}
