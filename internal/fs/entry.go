package fs

import (
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/unicode/norm"
)

// Entry represents a single name inside a directory. Classification
// (directory or file) is never cached on the entry: callers ask the
// FS so that the answer tracks the live filesystem.
type Entry struct {
	Name     string
	FullPath string
}

// IsHidden reports whether the entry should be treated as hidden.
func (e Entry) IsHidden() bool {
	return IsHidden(e.FullPath, e.Name)
}

// FS is the filesystem surface the browser depends on. The OS
// implementation is used in production; tests may substitute their own.
type FS interface {
	// List returns the immediate children of dir, unsorted and
	// unfiltered. The error is returned verbatim so callers can
	// distinguish permission failures from disappearance.
	List(dir string) ([]Entry, error)

	// IsDir reports whether path currently names a directory.
	IsDir(path string) bool
}

// OS is the real-filesystem implementation of FS.
type OS struct{}

func (OS) List(dir string) ([]Entry, error) {
	names, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(names))
	for _, d := range names {
		name := norm.NFC.String(d.Name())
		fullPath := filepath.Join(dir, name)
		if ShouldHideFromListing(fullPath, name) {
			continue
		}
		entries = append(entries, Entry{
			Name:     name,
			FullPath: fullPath,
		})
	}
	return entries, nil
}

func (OS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// SortEntries orders entries directories-first, then lexicographically
// by name within each group. Directory status is resolved through fsys
// once per entry at sort time.
func SortEntries(fsys FS, entries []Entry) {
	isDir := make(map[string]bool, len(entries))
	for _, e := range entries {
		isDir[e.FullPath] = fsys.IsDir(e.FullPath)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := isDir[entries[i].FullPath], isDir[entries[j].FullPath]
		if di != dj {
			return di
		}
		return entries[i].Name < entries[j].Name
	})
}
