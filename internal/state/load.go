package state

import (
	"path/filepath"

	fsutil "github.com/jordannakamoto/ils/internal/fs"
)

// loadEntries reads a directory through the state's filesystem,
// applying the hidden filter and the dirs-first sort. The state is not
// touched; callers commit the result only on success.
func loadEntries(fsys fsutil.FS, path string, showHidden bool) ([]FileEntry, error) {
	entries, err := fsys.List(path)
	if err != nil {
		return nil, &NavError{Path: path, Err: err}
	}

	if !showHidden {
		visible := entries[:0]
		for _, e := range entries {
			if !e.IsHidden() {
				visible = append(visible, e)
			}
		}
		entries = visible
	}

	fsutil.SortEntries(fsys, entries)
	return entries, nil
}

// LoadDirectory replaces the state's listing with path's contents.
// On failure the previous listing, selection, and scroll survive
// untouched and the error is returned for the status line.
func LoadDirectory(state *AppState, path string) error {
	path = filepath.Clean(path)

	entries, err := loadEntries(state.FS, path, state.ShowHidden)
	if err != nil {
		return err
	}

	state.CurrentPath = path
	state.Entries = entries
	state.SelectedIndex = 0
	state.ScrollRow = 0
	state.recomputeLayout()
	return nil
}

// reloadInPlace refreshes the current directory, keeping the selection
// on the same name when it still exists.
func reloadInPlace(state *AppState) error {
	keep := ""
	if e := state.Selected(); e != nil {
		keep = e.Name
	}

	entries, err := loadEntries(state.FS, state.CurrentPath, state.ShowHidden)
	if err != nil {
		return err
	}

	state.Entries = entries
	if keep != "" {
		state.selectByName(keep)
	}
	state.recomputeLayout()
	return nil
}

// selectByName moves the selection to the entry with the given name,
// when present.
func (s *AppState) selectByName(name string) bool {
	for i, e := range s.Entries {
		if e.Name == name {
			s.SelectedIndex = i
			s.updateScrollVisibility()
			return true
		}
	}
	return false
}
