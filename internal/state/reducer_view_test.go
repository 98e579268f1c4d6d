package state

import (
	"path/filepath"
	"testing"
)

func TestToggleHiddenReloadsListing(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "visible"))
	touch(t, filepath.Join(dir, ".secret"))

	r := newTestReducer()
	state := newTestState(t, dir)

	if len(state.Entries) != 1 {
		t.Fatalf("hidden files should start filtered, entries = %v", names(state.Entries))
	}

	if _, err := r.Reduce(state, ToggleHiddenAction{}); err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if len(state.Entries) != 2 {
		t.Errorf("toggle should reveal hidden entries, got %v", names(state.Entries))
	}

	if _, err := r.Reduce(state, ToggleHiddenAction{}); err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if len(state.Entries) != 1 {
		t.Errorf("second toggle should filter again, got %v", names(state.Entries))
	}
}

func TestToggleSizesForcesListMode(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a"))

	r := newTestReducer()
	state := newTestState(t, dir)

	if _, err := r.Reduce(state, ToggleSizesAction{}); err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if !state.ShowSizes || !state.ListMode {
		t.Errorf("sizes view implies list mode: sizes=%v list=%v", state.ShowSizes, state.ListMode)
	}
	if state.Grid.Cols != 1 {
		t.Errorf("list mode should be one column, got %d", state.Grid.Cols)
	}

	if _, err := r.Reduce(state, ToggleListAction{}); err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if state.ListMode || state.ShowSizes {
		t.Errorf("leaving list mode should drop sizes view: sizes=%v list=%v", state.ShowSizes, state.ListMode)
	}
}

func TestResizeRecomputesGridAndClampsScroll(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 30; i++ {
		touch(t, filepath.Join(dir, string(rune('a'+i%26))+string(rune('0'+i/26))))
	}

	r := newTestReducer()
	state := newTestState(t, dir)
	state.SelectedIndex = len(state.Entries) - 1
	state.updateScrollVisibility()

	if _, err := r.Reduce(state, ResizeAction{Width: 44, Height: 8}); err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if state.ScreenWidth != 44 || state.ScreenHeight != 8 {
		t.Errorf("dimensions not applied: %dx%d", state.ScreenWidth, state.ScreenHeight)
	}

	selRow := state.SelectedIndex / state.Grid.Cols
	if selRow < state.ScrollRow || selRow >= state.ScrollRow+state.Grid.VisibleRows {
		t.Errorf("selection row %d outside viewport [%d, %d)",
			selRow, state.ScrollRow, state.ScrollRow+state.Grid.VisibleRows)
	}
}

func TestPreviewResizeClampsRatio(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a"))

	r := newTestReducer()
	state := newTestState(t, dir)
	state.PreviewVisible = true

	for i := 0; i < 50; i++ {
		if _, err := r.Reduce(state, PreviewResizeAction{Delta: 0.05}); err != nil {
			t.Fatalf("Reduce failed: %v", err)
		}
	}
	if state.SplitRatio > 1.0 {
		t.Errorf("ratio must clamp at 1.0, got %f", state.SplitRatio)
	}

	for i := 0; i < 50; i++ {
		if _, err := r.Reduce(state, PreviewResizeAction{Delta: -0.05}); err != nil {
			t.Fatalf("Reduce failed: %v", err)
		}
	}
	if state.SplitRatio < 0.2 {
		t.Errorf("ratio must clamp at 0.2, got %f", state.SplitRatio)
	}
}

func TestHelpToggle(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a"))

	r := newTestReducer()
	state := newTestState(t, dir)

	if _, err := r.Reduce(state, HelpToggleAction{}); err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if _, ok := state.Mode.(Help); !ok {
		t.Fatalf("expected Help mode, got %T", state.Mode)
	}

	if _, err := r.Reduce(state, HelpToggleAction{}); err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if _, ok := state.Mode.(Normal); !ok {
		t.Errorf("second toggle should dismiss, got %T", state.Mode)
	}
}
