package config

// Keybindings maps action roles to lists of key names. A key name is
// either a single character ("w", "/", "]") or one of the special
// names "enter", "backspace", "space", "tab", "up", "down", "left",
// "right". The uppercase form of a movement key performs the jump
// variant of that move and needs no binding of its own.
type Keybindings struct {
	Up    []string `toml:"up"`
	Down  []string `toml:"down"`
	Left  []string `toml:"left"`
	Right []string `toml:"right"`

	Open []string `toml:"open"`
	Back []string `toml:"back"`
	Home []string `toml:"home"`
	Quit []string `toml:"quit"`

	TogglePreview []string `toml:"toggle_preview"`
	PreviewUp     []string `toml:"preview_up"`
	PreviewDown   []string `toml:"preview_down"`
	GrowPreview   []string `toml:"grow_preview"`
	ShrinkPreview []string `toml:"shrink_preview"`

	ToggleHidden []string `toml:"toggle_hidden"`
	ToggleList   []string `toml:"toggle_list"`
	ToggleSizes  []string `toml:"toggle_sizes"`
	SiblingNext  []string `toml:"sibling_next"`
	SiblingPrev  []string `toml:"sibling_prev"`

	Find     []string `toml:"find"`
	FindStay []string `toml:"find_stay"`

	Duplicate []string `toml:"duplicate"`
	Rename    []string `toml:"rename"`
	NewFile   []string `toml:"new_file"`
	NewDir    []string `toml:"new_dir"`
	Trash     []string `toml:"trash"`
	Delete    []string `toml:"delete"`
	Undo      []string `toml:"undo"`
	Redo      []string `toml:"redo"`

	Help []string `toml:"help"`
}

// DefaultKeybindings returns the built-in WASD layout.
func DefaultKeybindings() Keybindings {
	return Keybindings{
		Up:    []string{"w", "up"},
		Down:  []string{"s", "down"},
		Left:  []string{"a", "left"},
		Right: []string{"d", "right"},

		Open: []string{"enter", "e"},
		Back: []string{"backspace", "b"},
		Home: []string{"~"},
		Quit: []string{"q"},

		TogglePreview: []string{"p"},
		PreviewUp:     []string{"i"},
		PreviewDown:   []string{"o"},
		GrowPreview:   []string{"."},
		ShrinkPreview: []string{","},

		ToggleHidden: []string{"h"},
		ToggleList:   []string{"v"},
		ToggleSizes:  []string{"z"},
		SiblingNext:  []string{"]"},
		SiblingPrev:  []string{"["},

		Find:     []string{"/"},
		FindStay: []string{"f"},

		Duplicate: []string{"c"},
		Rename:    []string{"r"},
		NewFile:   []string{"n"},
		NewDir:    []string{"N"},
		Trash:     []string{"t"},
		Delete:    []string{"x"},
		Undo:      []string{"u"},
		Redo:      []string{"U"},

		Help: []string{"?"},
	}
}

// Role identifies one bindable action.
type Role int

const (
	RoleNone Role = iota
	RoleUp
	RoleDown
	RoleLeft
	RoleRight
	RoleOpen
	RoleBack
	RoleHome
	RoleQuit
	RoleTogglePreview
	RolePreviewUp
	RolePreviewDown
	RoleGrowPreview
	RoleShrinkPreview
	RoleToggleHidden
	RoleToggleList
	RoleToggleSizes
	RoleSiblingNext
	RoleSiblingPrev
	RoleFind
	RoleFindStay
	RoleDuplicate
	RoleRename
	RoleNewFile
	RoleNewDir
	RoleTrash
	RoleDelete
	RoleUndo
	RoleRedo
	RoleHelp
)

// roleLists pairs each role with its configured key names, in match
// priority order. Explicit bindings always win over the implicit
// uppercase jump variants.
func (k Keybindings) roleLists() []struct {
	role Role
	keys []string
} {
	return []struct {
		role Role
		keys []string
	}{
		{RoleUp, k.Up},
		{RoleDown, k.Down},
		{RoleLeft, k.Left},
		{RoleRight, k.Right},
		{RoleOpen, k.Open},
		{RoleBack, k.Back},
		{RoleHome, k.Home},
		{RoleQuit, k.Quit},
		{RoleTogglePreview, k.TogglePreview},
		{RolePreviewUp, k.PreviewUp},
		{RolePreviewDown, k.PreviewDown},
		{RoleGrowPreview, k.GrowPreview},
		{RoleShrinkPreview, k.ShrinkPreview},
		{RoleToggleHidden, k.ToggleHidden},
		{RoleToggleList, k.ToggleList},
		{RoleToggleSizes, k.ToggleSizes},
		{RoleSiblingNext, k.SiblingNext},
		{RoleSiblingPrev, k.SiblingPrev},
		{RoleFind, k.Find},
		{RoleFindStay, k.FindStay},
		{RoleDuplicate, k.Duplicate},
		{RoleRename, k.Rename},
		{RoleNewFile, k.NewFile},
		{RoleNewDir, k.NewDir},
		{RoleTrash, k.Trash},
		{RoleDelete, k.Delete},
		{RoleUndo, k.Undo},
		{RoleRedo, k.Redo},
		{RoleHelp, k.Help},
	}
}

// Lookup resolves a key name to its role, plus whether the press is a
// jump variant (the uppercase form of a bound movement character).
func (k Keybindings) Lookup(keyName string) (Role, bool) {
	for _, rl := range k.roleLists() {
		for _, name := range rl.keys {
			if name == keyName {
				return rl.role, false
			}
		}
	}

	// Uppercase single characters fall back to the jump variant of
	// the lowercase movement binding.
	if len(keyName) == 1 && keyName[0] >= 'A' && keyName[0] <= 'Z' {
		lower := string(keyName[0] + 'a' - 'A')
		for _, rl := range k.roleLists() {
			switch rl.role {
			case RoleUp, RoleDown, RoleLeft, RoleRight:
				for _, name := range rl.keys {
					if name == lower {
						return rl.role, true
					}
				}
			}
		}
	}

	return RoleNone, false
}
