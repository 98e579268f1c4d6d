package state

// Mode is the closed set of input modes. Exactly one is active at a
// time; the zero value of the application starts in Normal.
type Mode interface {
	isMode()
}

// Normal is the browsing mode.
type Normal struct{}

// Help shows the keybinding overlay until any key dismisses it.
type Help struct{}

// FuzzyFind is the incremental prefix find. JumpOnUnique controls
// whether the mode ends after a unique match auto-navigates.
// PrevMatchCount remembers the match count before the latest keystroke
// so a keystroke that lands on an already-unique result set does not
// re-trigger navigation.
type FuzzyFind struct {
	Query          string
	JumpOnUnique   bool
	PrevMatchCount int
}

// PromptKind selects what a text prompt is collecting input for.
type PromptKind int

const (
	PromptRename PromptKind = iota
	PromptNewFile
	PromptNewDir
)

// Prompt collects a line of text for rename and create operations.
type Prompt struct {
	Kind   PromptKind
	Buffer string
}

func (Normal) isMode()    {}
func (Help) isMode()      {}
func (FuzzyFind) isMode() {}
func (Prompt) isMode()    {}

// Label names the prompt for the input bar.
func (p Prompt) Label() string {
	switch p.Kind {
	case PromptRename:
		return "Rename"
	case PromptNewFile:
		return "New file"
	case PromptNewDir:
		return "New directory"
	}
	return ""
}
