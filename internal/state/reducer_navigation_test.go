package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jordannakamoto/ils/internal/config"
	"github.com/jordannakamoto/ils/internal/fileops"
	fsutil "github.com/jordannakamoto/ils/internal/fs"
	"github.com/jordannakamoto/ils/internal/undo"
)

func newTestReducer() *StateReducer {
	ops := fileops.Ops{}
	return NewStateReducer(ops, undo.NewLog(ops))
}

func newTestState(t *testing.T, dir string) *AppState {
	t.Helper()
	state := &AppState{
		FS:           fsutil.OS{},
		Settings:     config.DefaultSettings(),
		Mode:         Normal{},
		ScreenWidth:  120,
		ScreenHeight: 32,
		SplitRatio:   config.DefaultSplitRatio,
	}
	if err := LoadDirectory(state, dir); err != nil {
		t.Fatalf("LoadDirectory(%s) failed: %v", dir, err)
	}
	return state
}

func mkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x\n"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func names(entries []FileEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestMoveClampsAtEdges(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a", "b", "c", "d", "e", "f"} {
		touch(t, filepath.Join(dir, n))
	}

	r := newTestReducer()
	state := newTestState(t, dir)
	state.Grid.Cols = 3 // 2 rows of 3

	tests := []struct {
		name   string
		start  int
		action MoveAction
		want   int
	}{
		{"right moves one", 0, MoveAction{Dir: DirRight}, 1},
		{"left at start is no-op", 0, MoveAction{Dir: DirLeft}, 0},
		{"down moves a row", 1, MoveAction{Dir: DirDown}, 4},
		{"up from top row is no-op", 2, MoveAction{Dir: DirUp}, 2},
		{"down past last row is no-op", 4, MoveAction{Dir: DirDown}, 4},
		{"right at end is no-op", 5, MoveAction{Dir: DirRight}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state.SelectedIndex = tt.start
			if _, err := r.Reduce(state, tt.action); err != nil {
				t.Fatalf("Reduce failed: %v", err)
			}
			if state.SelectedIndex != tt.want {
				t.Errorf("SelectedIndex = %d, want %d", state.SelectedIndex, tt.want)
			}
		})
	}
}

func TestJumpMoveStopsAtEdge(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a", "b", "c"} {
		touch(t, filepath.Join(dir, n))
	}

	r := newTestReducer()
	state := newTestState(t, dir)
	state.Grid.Cols = 1
	state.Settings.JumpAmount = 5

	if _, err := r.Reduce(state, MoveAction{Dir: DirDown, Jump: true}); err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if state.SelectedIndex != 2 {
		t.Errorf("jump past end should stop at last entry, got %d", state.SelectedIndex)
	}
}

func TestEnterDirectoryAndBack(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "projects")
	mkdirAll(t, sub)
	touch(t, filepath.Join(sub, "readme.md"))
	touch(t, filepath.Join(dir, "zz.txt"))

	r := newTestReducer()
	state := newTestState(t, dir)

	// Directories sort first, so "projects" is index 0.
	state.SelectedIndex = 0
	if _, err := r.Reduce(state, EnterDirectoryAction{}); err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if state.CurrentPath != sub {
		t.Errorf("CurrentPath = %s, want %s", state.CurrentPath, sub)
	}
	if state.SelectedIndex != 0 {
		t.Errorf("selection should reset on enter, got %d", state.SelectedIndex)
	}

	if _, err := r.Reduce(state, GoBackAction{}); err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if state.CurrentPath != dir {
		t.Errorf("CurrentPath = %s, want %s", state.CurrentPath, dir)
	}
	if sel := state.Selected(); sel == nil || sel.Name != "projects" {
		t.Errorf("back should land on the directory we left, got %v", sel)
	}
}

func TestEnterDirectoryOnFileIsNoop(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "plain.txt"))

	r := newTestReducer()
	state := newTestState(t, dir)

	if _, err := r.Reduce(state, EnterDirectoryAction{}); err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if state.CurrentPath != dir {
		t.Errorf("file selection must not navigate, CurrentPath = %s", state.CurrentPath)
	}
}

func TestFailedNavigationPreservesState(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission bits do not bind as root")
	}

	dir := t.TempDir()
	locked := filepath.Join(dir, "locked")
	mkdirAll(t, locked)
	touch(t, filepath.Join(dir, "visible.txt"))
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	r := newTestReducer()
	state := newTestState(t, dir)
	state.SelectedIndex = 0 // "locked" sorts first
	prevEntries := names(state.Entries)

	if _, err := r.Reduce(state, EnterDirectoryAction{}); err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}

	if state.CurrentPath != dir {
		t.Errorf("failed navigation must not change CurrentPath, got %s", state.CurrentPath)
	}
	if got := names(state.Entries); len(got) != len(prevEntries) {
		t.Errorf("listing changed after failed navigation: %v", got)
	}
	if !state.StatusIsError || state.StatusMessage == "" {
		t.Errorf("expected error status, got %q", state.StatusMessage)
	}
}

func TestSiblingNavigationIsCyclic(t *testing.T) {
	root := t.TempDir()
	for _, n := range []string{"alpha", "beta", "gamma"} {
		mkdirAll(t, filepath.Join(root, n))
	}

	r := newTestReducer()
	state := newTestState(t, filepath.Join(root, "gamma"))

	if _, err := r.Reduce(state, SiblingAction{Next: true}); err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if got := filepath.Base(state.CurrentPath); got != "alpha" {
		t.Errorf("next sibling from last should wrap to first, got %s", got)
	}

	if _, err := r.Reduce(state, SiblingAction{Next: false}); err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if got := filepath.Base(state.CurrentPath); got != "gamma" {
		t.Errorf("prev sibling should wrap back, got %s", got)
	}
}

func TestSelectionHistoryRestoredOnRevisit(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "docs")
	mkdirAll(t, sub)
	for _, n := range []string{"a", "b", "c"} {
		touch(t, filepath.Join(dir, n))
	}

	r := newTestReducer()
	state := newTestState(t, dir)
	state.SelectedIndex = 2

	if err := r.changeDirectory(state, sub); err != nil {
		t.Fatalf("changeDirectory failed: %v", err)
	}
	if state.SelectedIndex != 0 {
		t.Fatalf("fresh directory should select 0, got %d", state.SelectedIndex)
	}

	if err := r.changeDirectory(state, dir); err != nil {
		t.Fatalf("changeDirectory failed: %v", err)
	}
	if state.SelectedIndex != 2 {
		t.Errorf("revisit should restore saved selection, got %d", state.SelectedIndex)
	}
}
