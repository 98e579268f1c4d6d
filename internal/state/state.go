package state

import (
	"time"

	"github.com/jordannakamoto/ils/internal/config"
	fsutil "github.com/jordannakamoto/ils/internal/fs"
	"github.com/jordannakamoto/ils/internal/layout"
	"github.com/jordannakamoto/ils/internal/preview"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// ===== STATE DEFINITIONS =====

// AppState is the single source of truth
type AppState struct {
	// Navigation & filesystem
	CurrentPath string
	Entries     []FileEntry // visible entries, sorted, hidden filtered

	// Selection & viewport
	SelectedIndex int
	ScrollRow     int // first visible grid row
	Grid          layout.Grid

	// View toggles
	ListMode   bool
	ShowSizes  bool
	ShowHidden bool

	// Input mode
	Mode Mode

	// Preview
	PreviewVisible bool
	SplitRatio     float64
	Preview        *preview.Builder

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Status line
	StatusMessage string
	StatusIsError bool

	// Key events arriving before this deadline are dropped, so keys
	// held through a find auto-navigation do not act in the new
	// directory.
	SuppressKeysUntil time.Time

	FS       fsutil.FS
	Settings config.Settings
}

// ===== HELPER METHODS =====

// Selected returns the selected entry, or nil for an empty directory.
func (s *AppState) Selected() *FileEntry {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Entries) {
		return nil
	}
	return &s.Entries[s.SelectedIndex]
}

// SelectedPath returns the selected entry's path, or "".
func (s *AppState) SelectedPath() string {
	if e := s.Selected(); e != nil {
		return e.FullPath
	}
	return ""
}

// InSuppressWindow reports whether key input is currently swallowed.
func (s *AppState) InSuppressWindow(now time.Time) bool {
	return now.Before(s.SuppressKeysUntil)
}

// EntryRows returns the height of the entry pane: the screen minus
// the path bar, the status line, and the preview split when visible.
func (s *AppState) EntryRows() int {
	rows := s.ScreenHeight - 2
	if rows < 1 {
		return 1
	}
	if s.PreviewVisible {
		rows -= s.PreviewRows() + 1 // border line
		if rows < 1 {
			rows = 1
		}
	}
	return rows
}

// PreviewRows returns the height of the preview pane content.
func (s *AppState) PreviewRows() int {
	if !s.PreviewVisible {
		return 0
	}
	content := s.ScreenHeight - 2
	rows := int(float64(content) * s.SplitRatio)
	if rows < 1 {
		rows = 1
	}
	if rows > content-1 {
		rows = content - 1
	}
	if rows < 0 {
		rows = 0
	}
	return rows
}

// recomputeLayout refreshes the grid geometry for the current entry
// count and pane size, then re-clamps the viewport.
func (s *AppState) recomputeLayout() {
	s.Grid = layout.Compute(len(s.Entries), s.ScreenWidth, s.EntryRows(), s.ListMode)
	s.clampSelection()
	s.updateScrollVisibility()
}

func (s *AppState) clampSelection() {
	if len(s.Entries) == 0 {
		s.SelectedIndex = 0
		return
	}
	if s.SelectedIndex >= len(s.Entries) {
		s.SelectedIndex = len(s.Entries) - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
}

// updateScrollVisibility scrolls just enough to keep the selection
// inside the viewport.
func (s *AppState) updateScrollVisibility() {
	if s.Grid.Cols < 1 || s.Grid.VisibleRows < 1 {
		s.ScrollRow = 0
		return
	}

	selRow := s.SelectedIndex / s.Grid.Cols
	if selRow < s.ScrollRow {
		s.ScrollRow = selRow
	}
	if selRow >= s.ScrollRow+s.Grid.VisibleRows {
		s.ScrollRow = selRow - s.Grid.VisibleRows + 1
	}

	maxRow := s.Grid.Rows(len(s.Entries)) - s.Grid.VisibleRows
	if maxRow < 0 {
		maxRow = 0
	}
	if s.ScrollRow > maxRow {
		s.ScrollRow = maxRow
	}
	if s.ScrollRow < 0 {
		s.ScrollRow = 0
	}
}

// setStatus replaces the transient status line message.
func (s *AppState) setStatus(msg string, isError bool) {
	s.StatusMessage = msg
	s.StatusIsError = isError
}

func (s *AppState) clearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
