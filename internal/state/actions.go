package state

// Action is the base interface for all state mutations
type Action interface{}

// Direction is a grid movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// ===== NAVIGATION ACTIONS =====

type MoveAction struct {
	Dir  Direction
	Jump bool
}

type EnterDirectoryAction struct{}
type GoBackAction struct{}
type GoHomeAction struct{}
type SiblingAction struct {
	Next bool
}
type RefreshAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type ToggleHiddenAction struct{}
type ToggleListAction struct{}
type ToggleSizesAction struct{}

// ===== PREVIEW ACTIONS =====

type TogglePreviewAction struct{}
type PreviewScrollAction struct {
	Delta int
}
type PreviewResizeAction struct {
	Delta float64
}

// ===== MODE ACTIONS =====

type HelpToggleAction struct{}
type FuzzyStartAction struct {
	Stay bool
}
type FuzzyCharAction struct {
	Char rune
}
type FuzzyBackspaceAction struct{}
type FuzzyCancelAction struct{}
type PromptStartAction struct {
	Kind PromptKind
}
type PromptCharAction struct {
	Char rune
}
type PromptBackspaceAction struct{}
type PromptCancelAction struct{}
type PromptConfirmAction struct{}

// ===== FILE OPERATIONS =====

type DuplicateAction struct{}
type TrashAction struct{}
type DeleteAction struct{}
type UndoAction struct{}
type RedoAction struct{}

// ===== APPLICATION ACTIONS =====

// OpenAction opens the selection: directories are entered by the
// reducer, files are handed to the application loop.
type OpenAction struct{}

type QuitAction struct{}          // leave, shell stays where it was
type QuitChangeDirAction struct{} // leave and cd the shell here
type RevealAction struct{}        // leave and reveal the selected entry

// SuspendAction stops the process so the shell regains the terminal
// until it is resumed with fg.
type SuspendAction struct{}
