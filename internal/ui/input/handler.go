package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jordannakamoto/ils/internal/config"
	statepkg "github.com/jordannakamoto/ils/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	keys       config.Keybindings
	state      *statepkg.AppState // Reference to current state for mode checking
	now        func() time.Time
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action, keys config.Keybindings) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
		keys:       keys,
		now:        time.Now,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. Returns false
// when the application should stop reading input.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		ih.actionChan <- statepkg.QuitAction{}
		return false
	}
	if ev.Key() == tcell.KeyCtrlZ {
		ih.actionChan <- statepkg.SuspendAction{}
		return true
	}

	// Keys held through a find auto-navigation are dropped until the
	// suppress window passes.
	if ih.state != nil && ih.state.InSuppressWindow(ih.now()) {
		return true
	}

	var mode statepkg.Mode = statepkg.Normal{}
	if ih.state != nil && ih.state.Mode != nil {
		mode = ih.state.Mode
	}

	switch mode.(type) {
	case statepkg.Help:
		return ih.processHelpKey(ev)
	case statepkg.FuzzyFind:
		return ih.processFuzzyKey(ev)
	case statepkg.Prompt:
		return ih.processPromptKey(ev)
	}
	return ih.processNormalKey(ev)
}

// processHelpKey dismisses the overlay on any key.
func (ih *InputHandler) processHelpKey(_ *tcell.EventKey) bool {
	ih.actionChan <- statepkg.HelpToggleAction{}
	return true
}

func (ih *InputHandler) processFuzzyKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.FuzzyCancelAction{}
	case tcell.KeyEnter:
		// Accept the snapped selection and open it.
		ih.actionChan <- statepkg.FuzzyCancelAction{}
		ih.actionChan <- statepkg.OpenAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.FuzzyBackspaceAction{}
	case tcell.KeyRune:
		// Quit and reveal keep their exit intents mid-query; those
		// characters cannot be searched for.
		r := ev.Rune()
		if r == 'Q' {
			ih.actionChan <- statepkg.RevealAction{}
			return false
		}
		if role, _ := ih.keys.Lookup(string(r)); role == config.RoleQuit {
			ih.actionChan <- statepkg.QuitAction{}
			return false
		}
		ih.actionChan <- statepkg.FuzzyCharAction{Char: r}
	}
	return true
}

func (ih *InputHandler) processPromptKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.PromptCancelAction{}
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.PromptConfirmAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.PromptBackspaceAction{}
	case tcell.KeyRune:
		ih.actionChan <- statepkg.PromptCharAction{Char: ev.Rune()}
	}
	return true
}

func (ih *InputHandler) processNormalKey(ev *tcell.EventKey) bool {
	keyName := ""
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.QuitChangeDirAction{}
		return false
	case tcell.KeyEnter:
		keyName = "enter"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		keyName = "backspace"
	case tcell.KeyTab:
		keyName = "tab"
	case tcell.KeyUp:
		keyName = "up"
	case tcell.KeyDown:
		keyName = "down"
	case tcell.KeyLeft:
		keyName = "left"
	case tcell.KeyRight:
		keyName = "right"
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			keyName = "space"
		} else {
			keyName = string(r)
		}
	default:
		return true
	}

	// Q reveals the selection in the system file manager regardless of
	// bindings, then exits like Esc.
	if keyName == "Q" {
		ih.actionChan <- statepkg.RevealAction{}
		return false
	}

	role, jump := ih.keys.Lookup(keyName)
	switch role {
	case config.RoleUp:
		ih.actionChan <- statepkg.MoveAction{Dir: statepkg.DirUp, Jump: jump}
	case config.RoleDown:
		ih.actionChan <- statepkg.MoveAction{Dir: statepkg.DirDown, Jump: jump}
	case config.RoleLeft:
		ih.actionChan <- statepkg.MoveAction{Dir: statepkg.DirLeft, Jump: jump}
	case config.RoleRight:
		ih.actionChan <- statepkg.MoveAction{Dir: statepkg.DirRight, Jump: jump}
	case config.RoleOpen:
		ih.actionChan <- statepkg.OpenAction{}
	case config.RoleBack:
		ih.actionChan <- statepkg.GoBackAction{}
	case config.RoleHome:
		ih.actionChan <- statepkg.GoHomeAction{}
	case config.RoleQuit:
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case config.RoleTogglePreview:
		ih.actionChan <- statepkg.TogglePreviewAction{}
	case config.RolePreviewUp:
		ih.actionChan <- statepkg.PreviewScrollAction{Delta: -ih.previewScrollAmount()}
	case config.RolePreviewDown:
		ih.actionChan <- statepkg.PreviewScrollAction{Delta: ih.previewScrollAmount()}
	case config.RoleGrowPreview:
		ih.actionChan <- statepkg.PreviewResizeAction{Delta: 0.05}
	case config.RoleShrinkPreview:
		ih.actionChan <- statepkg.PreviewResizeAction{Delta: -0.05}
	case config.RoleToggleHidden:
		ih.actionChan <- statepkg.ToggleHiddenAction{}
	case config.RoleToggleList:
		ih.actionChan <- statepkg.ToggleListAction{}
	case config.RoleToggleSizes:
		ih.actionChan <- statepkg.ToggleSizesAction{}
	case config.RoleSiblingNext:
		ih.actionChan <- statepkg.SiblingAction{Next: true}
	case config.RoleSiblingPrev:
		ih.actionChan <- statepkg.SiblingAction{Next: false}
	case config.RoleFind:
		ih.actionChan <- statepkg.FuzzyStartAction{}
	case config.RoleFindStay:
		ih.actionChan <- statepkg.FuzzyStartAction{Stay: true}
	case config.RoleDuplicate:
		ih.actionChan <- statepkg.DuplicateAction{}
	case config.RoleRename:
		ih.actionChan <- statepkg.PromptStartAction{Kind: statepkg.PromptRename}
	case config.RoleNewFile:
		ih.actionChan <- statepkg.PromptStartAction{Kind: statepkg.PromptNewFile}
	case config.RoleNewDir:
		ih.actionChan <- statepkg.PromptStartAction{Kind: statepkg.PromptNewDir}
	case config.RoleTrash:
		ih.actionChan <- statepkg.TrashAction{}
	case config.RoleDelete:
		ih.actionChan <- statepkg.DeleteAction{}
	case config.RoleUndo:
		ih.actionChan <- statepkg.UndoAction{}
	case config.RoleRedo:
		ih.actionChan <- statepkg.RedoAction{}
	case config.RoleHelp:
		ih.actionChan <- statepkg.HelpToggleAction{}
	}
	return true
}

func (ih *InputHandler) previewScrollAmount() int {
	if ih.state != nil && ih.state.Settings.PreviewScrollAmount > 0 {
		return ih.state.Settings.PreviewScrollAmount
	}
	return config.DefaultSettings().PreviewScrollAmount
}
