package config

import (
	"os"
	"path/filepath"
)

const defaultKeybindingsTOML = `# ils keybindings
# Each action takes a list of keys. Single characters bind that
# character; "enter", "backspace", "space", "tab", "up", "down",
# "left", "right" bind the special keys. Uppercase movement keys jump
# by jump_amount automatically.

up = ["w", "up"]
down = ["s", "down"]
left = ["a", "left"]
right = ["d", "right"]

open = ["enter", "e"]
back = ["backspace", "b"]
home = ["~"]
quit = ["q"]

toggle_preview = ["p"]
preview_up = ["i"]
preview_down = ["o"]
grow_preview = ["."]
shrink_preview = [","]

toggle_hidden = ["h"]
toggle_list = ["v"]
toggle_sizes = ["z"]
sibling_next = ["]"]
sibling_prev = ["["]

find = ["/"]
find_stay = ["f"]

duplicate = ["c"]
rename = ["r"]
new_file = ["n"]
new_dir = ["N"]
trash = ["t"]
delete = ["x"]
undo = ["u"]
redo = ["U"]

help = ["?"]
`

const defaultColorsTOML = `# ils colors
# Values are tcell color names or "#RRGGBB"; "default" keeps the
# terminal color.

path_fg = "black"
path_bg = "aqua"
selected_fg = "black"
selected_bg = "white"
directory_fg = "aqua"
match_fg = "yellow"
preview_border_fg = "gray"
error_fg = "red"
`

const defaultSettingsTOML = `# ils settings

show_hidden = false
preview_on_start = false
case_sensitive_find = false
jump_amount = 5
preview_scroll_amount = 10
find_suppress_ms = 500
exit_after_edit = false
`

// WriteDefaults materializes the default configuration files, skipping
// any that already exist so user edits survive reinstalls. Returns the
// config directory written to.
func WriteDefaults() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	files := map[string]string{
		"keybindings.toml": defaultKeybindingsTOML,
		"colors.toml":      defaultColorsTOML,
		"settings.toml":    defaultSettingsTOML,
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return "", err
		}
	}
	return dir, nil
}
