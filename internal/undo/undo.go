// Package undo keeps a session-scoped history of reversible file
// operations. Only copy, rename, and create are representable; trash
// and delete never enter the log.
package undo

// Action is one recorded file operation. The closed set of
// implementations is Copy, Rename, and Create.
type Action interface {
	isAction()
}

// Copy records a file duplicated from Src to Dest.
type Copy struct {
	Src  string
	Dest string
}

// Rename records a path moved from Old to New.
type Rename struct {
	Old string
	New string
}

// Create records a file or directory created at Path.
type Create struct {
	Path  string
	IsDir bool
}

func (Copy) isAction()   {}
func (Rename) isAction() {}
func (Create) isAction() {}

// Mutator is the filesystem surface the log replays operations
// through. Production uses fileops; tests substitute a recorder.
type Mutator interface {
	CopyFile(src, dest string) error
	Rename(oldPath, newPath string) error
	CreateFile(path string) error
	CreateDir(path string) error
	Remove(path string) error
}

// Log is a two-stack undo/redo history. It is not safe for concurrent
// use; the event loop is its only caller.
type Log struct {
	fs   Mutator
	undo []Action
	redo []Action
}

func NewLog(fs Mutator) *Log {
	return &Log{fs: fs}
}

// Record pushes a on the undo stack and clears the redo stack, so
// redo never replays operations that a new action has diverged from.
func (l *Log) Record(a Action) {
	l.undo = append(l.undo, a)
	l.redo = nil
}

func (l *Log) CanUndo() bool { return len(l.undo) > 0 }
func (l *Log) CanRedo() bool { return len(l.redo) > 0 }

// Undo reverses the most recent action. On success the action moves to
// the redo stack. When the filesystem rejects the reversal (the target
// moved or vanished since it was recorded) the action is dropped and
// Undo reports false; the rest of the history stays intact.
func (l *Log) Undo() bool {
	if len(l.undo) == 0 {
		return false
	}
	a := l.undo[len(l.undo)-1]
	l.undo = l.undo[:len(l.undo)-1]

	var err error
	switch a := a.(type) {
	case Copy:
		err = l.fs.Remove(a.Dest)
	case Rename:
		err = l.fs.Rename(a.New, a.Old)
	case Create:
		err = l.fs.Remove(a.Path)
	}
	if err != nil {
		return false
	}

	l.redo = append(l.redo, a)
	return true
}

// Redo re-applies the most recently undone action. Failures drop the
// action, mirroring Undo.
func (l *Log) Redo() bool {
	if len(l.redo) == 0 {
		return false
	}
	a := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]

	var err error
	switch a := a.(type) {
	case Copy:
		err = l.fs.CopyFile(a.Src, a.Dest)
	case Rename:
		err = l.fs.Rename(a.Old, a.New)
	case Create:
		if a.IsDir {
			err = l.fs.CreateDir(a.Path)
		} else {
			err = l.fs.CreateFile(a.Path)
		}
	}
	if err != nil {
		return false
	}

	l.undo = append(l.undo, a)
	return true
}
