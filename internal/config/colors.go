package config

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Colors holds the user's color choices as written in colors.toml.
// Values are tcell color names or "#RRGGBB" hex; "default" keeps the
// terminal's own color.
type Colors struct {
	PathFg          string `toml:"path_fg"`
	PathBg          string `toml:"path_bg"`
	SelectedFg      string `toml:"selected_fg"`
	SelectedBg      string `toml:"selected_bg"`
	DirectoryFg     string `toml:"directory_fg"`
	MatchFg         string `toml:"match_fg"`
	PreviewBorderFg string `toml:"preview_border_fg"`
	ErrorFg         string `toml:"error_fg"`
}

func DefaultColors() Colors {
	return Colors{
		PathFg:          "black",
		PathBg:          "aqua",
		SelectedFg:      "black",
		SelectedBg:      "white",
		DirectoryFg:     "aqua",
		MatchFg:         "yellow",
		PreviewBorderFg: "gray",
		ErrorFg:         "red",
	}
}

// Palette is Colors resolved into tcell styles, ready for rendering.
type Palette struct {
	PathBar       tcell.Style
	Selected      tcell.Style
	Directory     tcell.Style
	Match         tcell.Style
	PreviewBorder tcell.Style
	Error         tcell.Style
	Base          tcell.Style
}

// Resolve parses the configured color names into a Palette.
// Unrecognized names fall back to the terminal default rather than
// failing the load.
func (c Colors) Resolve() Palette {
	base := tcell.StyleDefault

	return Palette{
		Base:          base,
		PathBar:       base.Foreground(parseColor(c.PathFg)).Background(parseColor(c.PathBg)),
		Selected:      base.Foreground(parseColor(c.SelectedFg)).Background(parseColor(c.SelectedBg)),
		Directory:     base.Foreground(parseColor(c.DirectoryFg)),
		Match:         base.Foreground(parseColor(c.MatchFg)).Bold(true),
		PreviewBorder: base.Foreground(parseColor(c.PreviewBorderFg)),
		Error:         base.Foreground(parseColor(c.ErrorFg)).Bold(true),
	}
}

func parseColor(name string) tcell.Color {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" || name == "default" || name == "none" {
		return tcell.ColorDefault
	}
	if c, ok := tcell.ColorNames[name]; ok {
		return c
	}
	if strings.HasPrefix(name, "#") {
		// Expand the #RGB short form; tcell only parses #RRGGBB.
		if len(name) == 4 {
			name = string([]byte{'#',
				name[1], name[1], name[2], name[2], name[3], name[3]})
		}
		return tcell.GetColor(name)
	}
	return tcell.ColorDefault
}
