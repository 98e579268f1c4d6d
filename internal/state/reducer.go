package state

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jordannakamoto/ils/internal/config"
	"github.com/jordannakamoto/ils/internal/search"
	"github.com/jordannakamoto/ils/internal/undo"
)

var (
	userHomeDirFn = os.UserHomeDir
	timeNow       = time.Now
)

// FileOps is the mutation surface the reducer drives. fileops.Ops is
// the production implementation; tests substitute recorders.
type FileOps interface {
	undo.Mutator
	Duplicate(path string) (string, error)
	Trash(path string) (string, error)
	Delete(path string) error
}

// ===== REDUCER =====

// StateReducer applies actions to state
type StateReducer struct {
	selectionHistory map[string]int // path -> selected index
	ops              FileOps
	undoLog          *undo.Log
}

// NewStateReducer creates a new reducer
func NewStateReducer(ops FileOps, undoLog *undo.Log) *StateReducer {
	return &StateReducer{
		selectionHistory: make(map[string]int),
		ops:              ops,
		undoLog:          undoLog,
	}
}

// changeDirectory commits a navigation. The new listing is read before
// any state changes, so a failed load leaves listing, selection, and
// scroll exactly as they were and only the status line reports it.
func (r *StateReducer) changeDirectory(state *AppState, path string) error {
	path = filepath.Clean(path)

	entries, err := loadEntries(state.FS, path, state.ShowHidden)
	if err != nil {
		return err
	}

	r.selectionHistory[state.CurrentPath] = state.SelectedIndex

	state.CurrentPath = path
	state.Entries = entries
	state.SelectedIndex = 0
	state.ScrollRow = 0

	if saved, ok := r.selectionHistory[path]; ok && saved < len(entries) {
		state.SelectedIndex = saved
	}
	state.recomputeLayout()
	return nil
}

// Reduce applies an action to state and returns new state
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch action.(type) {
	case ResizeAction, RefreshAction:
	default:
		state.clearStatus()
	}

	switch a := action.(type) {

	// ===== NAVIGATION =====

	case MoveAction:
		r.move(state, a)
		return state, nil

	case EnterDirectoryAction:
		entry := state.Selected()
		if entry == nil || !state.FS.IsDir(entry.FullPath) {
			return state, nil
		}
		if err := r.changeDirectory(state, entry.FullPath); err != nil {
			state.setStatus(err.Error(), true)
		}
		return state, nil

	case GoBackAction:
		parent := filepath.Dir(state.CurrentPath)
		if parent == state.CurrentPath {
			return state, nil
		}
		from := filepath.Base(state.CurrentPath)
		if err := r.changeDirectory(state, parent); err != nil {
			state.setStatus(err.Error(), true)
			return state, nil
		}
		// Land on the directory we came out of.
		state.selectByName(from)
		return state, nil

	case GoHomeAction:
		home, err := userHomeDirFn()
		if err != nil {
			state.setStatus(fmt.Sprintf("home directory unavailable: %v", err), true)
			return state, nil
		}
		if err := r.changeDirectory(state, home); err != nil {
			state.setStatus(err.Error(), true)
		}
		return state, nil

	case SiblingAction:
		r.gotoSibling(state, a.Next)
		return state, nil

	case RefreshAction:
		if err := reloadInPlace(state); err != nil {
			state.setStatus(err.Error(), true)
		}
		return state, nil

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.recomputeLayout()
		return state, nil

	case ToggleHiddenAction:
		state.ShowHidden = !state.ShowHidden
		if err := reloadInPlace(state); err != nil {
			state.ShowHidden = !state.ShowHidden
			state.setStatus(err.Error(), true)
		}
		return state, nil

	case ToggleListAction:
		state.ListMode = !state.ListMode
		if !state.ListMode {
			state.ShowSizes = false
		}
		state.recomputeLayout()
		return state, nil

	case ToggleSizesAction:
		state.ShowSizes = !state.ShowSizes
		if state.ShowSizes {
			state.ListMode = true
		}
		state.recomputeLayout()
		return state, nil

	// ===== PREVIEW =====

	case TogglePreviewAction:
		state.PreviewVisible = !state.PreviewVisible
		state.recomputeLayout()
		return state, nil

	case PreviewScrollAction:
		if !state.PreviewVisible || state.Preview == nil {
			return state, nil
		}
		if path := state.SelectedPath(); path != "" {
			state.Preview.ScrollBy(path, a.Delta)
		}
		return state, nil

	case PreviewResizeAction:
		state.SplitRatio = config.ClampSplitRatio(state.SplitRatio + a.Delta)
		state.recomputeLayout()
		return state, nil

	// ===== MODES =====

	case HelpToggleAction:
		if _, ok := state.Mode.(Help); ok {
			state.Mode = Normal{}
		} else {
			state.Mode = Help{}
		}
		return state, nil

	case FuzzyStartAction:
		state.Mode = FuzzyFind{
			JumpOnUnique:   !a.Stay,
			PrevMatchCount: len(state.Entries),
		}
		return state, nil

	case FuzzyCharAction:
		m, ok := state.Mode.(FuzzyFind)
		if !ok {
			return state, nil
		}
		m.Query += string(a.Char)
		r.applyFuzzyQuery(state, m, true)
		return state, nil

	case FuzzyBackspaceAction:
		m, ok := state.Mode.(FuzzyFind)
		if !ok {
			return state, nil
		}
		runes := []rune(m.Query)
		if len(runes) > 0 {
			m.Query = string(runes[:len(runes)-1])
		}
		r.applyFuzzyQuery(state, m, false)
		return state, nil

	case FuzzyCancelAction:
		if _, ok := state.Mode.(FuzzyFind); ok {
			state.Mode = Normal{}
		}
		return state, nil

	case PromptStartAction:
		p := Prompt{Kind: a.Kind}
		if a.Kind == PromptRename {
			entry := state.Selected()
			if entry == nil {
				return state, nil
			}
			p.Buffer = entry.Name
		}
		state.Mode = p
		return state, nil

	case PromptCharAction:
		p, ok := state.Mode.(Prompt)
		if !ok || a.Char == filepath.Separator {
			return state, nil
		}
		p.Buffer += string(a.Char)
		state.Mode = p
		return state, nil

	case PromptBackspaceAction:
		p, ok := state.Mode.(Prompt)
		if !ok {
			return state, nil
		}
		runes := []rune(p.Buffer)
		if len(runes) > 0 {
			p.Buffer = string(runes[:len(runes)-1])
		}
		state.Mode = p
		return state, nil

	case PromptCancelAction:
		if _, ok := state.Mode.(Prompt); ok {
			state.Mode = Normal{}
		}
		return state, nil

	case PromptConfirmAction:
		p, ok := state.Mode.(Prompt)
		if !ok {
			return state, nil
		}
		state.Mode = Normal{}
		r.confirmPrompt(state, p)
		return state, nil

	// ===== FILE OPERATIONS =====

	case DuplicateAction:
		entry := state.Selected()
		if entry == nil {
			return state, nil
		}
		dest, err := r.ops.Duplicate(entry.FullPath)
		if err != nil {
			state.setStatus(fmt.Sprintf("duplicate failed: %v", err), true)
			return state, nil
		}
		r.undoLog.Record(undo.Copy{Src: entry.FullPath, Dest: dest})
		r.afterMutation(state, dest)
		state.selectByName(filepath.Base(dest))
		state.setStatus(fmt.Sprintf("duplicated to %s", filepath.Base(dest)), false)
		return state, nil

	case TrashAction:
		entry := state.Selected()
		if entry == nil {
			return state, nil
		}
		if _, err := r.ops.Trash(entry.FullPath); err != nil {
			state.setStatus(fmt.Sprintf("trash failed: %v", err), true)
			return state, nil
		}
		r.afterMutation(state, entry.FullPath)
		state.setStatus(fmt.Sprintf("moved %s to trash", entry.Name), false)
		return state, nil

	case DeleteAction:
		entry := state.Selected()
		if entry == nil {
			return state, nil
		}
		if err := r.ops.Delete(entry.FullPath); err != nil {
			state.setStatus(fmt.Sprintf("delete failed: %v", err), true)
			return state, nil
		}
		r.afterMutation(state, entry.FullPath)
		state.setStatus(fmt.Sprintf("deleted %s", entry.Name), false)
		return state, nil

	case UndoAction:
		if !r.undoLog.CanUndo() {
			state.setStatus("nothing to undo", false)
			return state, nil
		}
		if r.undoLog.Undo() {
			state.setStatus("undone", false)
		} else {
			state.setStatus("undo skipped: file changed on disk", true)
		}
		r.afterMutation(state, "")
		return state, nil

	case RedoAction:
		if !r.undoLog.CanRedo() {
			state.setStatus("nothing to redo", false)
			return state, nil
		}
		if r.undoLog.Redo() {
			state.setStatus("redone", false)
		} else {
			state.setStatus("redo skipped: file changed on disk", true)
		}
		r.afterMutation(state, "")
		return state, nil
	}

	return state, nil
}

// move applies one grid movement, repeated for jump variants.
// Moves that would leave the grid are no-ops rather than wrapping.
func (r *StateReducer) move(state *AppState, a MoveAction) {
	if len(state.Entries) == 0 || state.Grid.Cols < 1 {
		return
	}

	delta := 0
	switch a.Dir {
	case DirUp:
		delta = -state.Grid.Cols
	case DirDown:
		delta = state.Grid.Cols
	case DirLeft:
		delta = -1
	case DirRight:
		delta = 1
	}

	steps := 1
	if a.Jump {
		steps = state.Settings.JumpAmount
	}

	for i := 0; i < steps; i++ {
		next := state.SelectedIndex + delta
		if next < 0 || next >= len(state.Entries) {
			break
		}
		state.SelectedIndex = next
	}
	state.updateScrollVisibility()
}

// gotoSibling moves to the next or previous directory among the
// parent's subdirectories, cyclically.
func (r *StateReducer) gotoSibling(state *AppState, next bool) {
	parent := filepath.Dir(state.CurrentPath)
	if parent == state.CurrentPath {
		return
	}

	children, err := loadEntries(state.FS, parent, state.ShowHidden)
	if err != nil {
		state.setStatus(err.Error(), true)
		return
	}

	var siblings []string
	for _, c := range children {
		if state.FS.IsDir(c.FullPath) {
			siblings = append(siblings, c.Name)
		}
	}
	if len(siblings) < 2 {
		return
	}
	sort.Strings(siblings)

	current := filepath.Base(state.CurrentPath)
	idx := -1
	for i, name := range siblings {
		if name == current {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}

	step := 1
	if !next {
		step = len(siblings) - 1
	}
	target := siblings[(idx+step)%len(siblings)]
	if err := r.changeDirectory(state, filepath.Join(parent, target)); err != nil {
		state.setStatus(err.Error(), true)
	}
}

// applyFuzzyQuery recomputes matches for the (already edited) fuzzy
// mode. Selection snaps only when exactly one match remains; forward
// typing additionally performs the unique-match auto-navigation.
func (r *StateReducer) applyFuzzyQuery(state *AppState, m FuzzyFind, forward bool) {
	first, count := search.Match(m.Query, state.Entries, state.Settings.CaseSensitiveFind)
	if count == 1 {
		state.SelectedIndex = first
		state.updateScrollVisibility()
	}

	// Backspace never navigates, and neither does a keystroke that
	// follows an empty match set.
	if forward && count == 1 && m.PrevMatchCount >= 1 {
		target := state.Entries[first]
		if state.FS.IsDir(target.FullPath) {
			if err := r.changeDirectory(state, target.FullPath); err != nil {
				state.setStatus(err.Error(), true)
				m.PrevMatchCount = count
				state.Mode = m
				return
			}
			state.SuppressKeysUntil = timeNow().Add(
				time.Duration(state.Settings.FindSuppressMS) * time.Millisecond)
			if m.JumpOnUnique {
				state.Mode = Normal{}
			} else {
				state.Mode = FuzzyFind{
					JumpOnUnique:   m.JumpOnUnique,
					PrevMatchCount: len(state.Entries),
				}
			}
			return
		}
		if m.JumpOnUnique {
			state.Mode = Normal{}
			return
		}
	}

	m.PrevMatchCount = count
	state.Mode = m
}

// confirmPrompt executes the operation a prompt was collecting input
// for. The prompt has already been dismissed.
func (r *StateReducer) confirmPrompt(state *AppState, p Prompt) {
	name := strings.TrimSpace(p.Buffer)
	if name == "" {
		return
	}

	switch p.Kind {
	case PromptRename:
		entry := state.Selected()
		if entry == nil || name == entry.Name {
			return
		}
		newPath := filepath.Join(state.CurrentPath, name)
		if err := r.ops.Rename(entry.FullPath, newPath); err != nil {
			state.setStatus(fmt.Sprintf("rename failed: %v", err), true)
			return
		}
		r.undoLog.Record(undo.Rename{Old: entry.FullPath, New: newPath})
		invalidatePreview(state, entry.FullPath)
		r.afterMutation(state, newPath)
		state.selectByName(name)
		state.setStatus(fmt.Sprintf("renamed to %s", name), false)

	case PromptNewFile:
		path := filepath.Join(state.CurrentPath, name)
		if err := r.ops.CreateFile(path); err != nil {
			state.setStatus(fmt.Sprintf("create failed: %v", err), true)
			return
		}
		r.undoLog.Record(undo.Create{Path: path})
		r.afterMutation(state, path)
		state.selectByName(name)
		state.setStatus(fmt.Sprintf("created %s", name), false)

	case PromptNewDir:
		path := filepath.Join(state.CurrentPath, name)
		if err := r.ops.CreateDir(path); err != nil {
			state.setStatus(fmt.Sprintf("create failed: %v", err), true)
			return
		}
		r.undoLog.Record(undo.Create{Path: path, IsDir: true})
		r.afterMutation(state, path)
		state.selectByName(name)
		state.setStatus(fmt.Sprintf("created %s/", name), false)
	}
}

// afterMutation refreshes the listing and drops stale preview state
// for a path touched by a file operation.
func (r *StateReducer) afterMutation(state *AppState, touched string) {
	invalidatePreview(state, touched)
	invalidatePreview(state, state.CurrentPath)
	if err := reloadInPlace(state); err != nil {
		state.setStatus(err.Error(), true)
	}
}

func invalidatePreview(state *AppState, path string) {
	if path == "" || state.Preview == nil {
		return
	}
	state.Preview.Cache().Invalidate(path)
}
