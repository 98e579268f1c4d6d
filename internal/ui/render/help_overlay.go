package render

import "strings"

type helpOverlayEntry struct {
	keys  string
	label string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

func joinKeys(names []string) string {
	return strings.Join(names, " ")
}

func (r *Renderer) helpOverlaySections() []helpOverlaySection {
	k := r.keys
	return []helpOverlaySection{
		{
			title: "Navigate",
			entries: []helpOverlayEntry{
				{joinKeys(k.Up), "move up"},
				{joinKeys(k.Down), "move down"},
				{joinKeys(k.Left), "move left"},
				{joinKeys(k.Right), "move right"},
				{"W A S D", "jump move"},
				{joinKeys(k.Open), "open entry"},
				{joinKeys(k.Back), "parent directory"},
				{joinKeys(k.Home), "home directory"},
				{joinKeys(k.SiblingNext) + " " + joinKeys(k.SiblingPrev), "sibling directory"},
			},
		},
		{
			title: "Find",
			entries: []helpOverlayEntry{
				{joinKeys(k.Find), "find (jump on unique)"},
				{joinKeys(k.FindStay), "find (stay in find)"},
			},
		},
		{
			title: "View",
			entries: []helpOverlayEntry{
				{joinKeys(k.ToggleList), "list view"},
				{joinKeys(k.ToggleSizes), "file sizes"},
				{joinKeys(k.ToggleHidden), "hidden files"},
				{joinKeys(k.TogglePreview), "preview pane"},
				{joinKeys(k.PreviewUp) + " " + joinKeys(k.PreviewDown), "scroll preview"},
				{joinKeys(k.GrowPreview) + " " + joinKeys(k.ShrinkPreview), "resize preview"},
			},
		},
		{
			title: "Files",
			entries: []helpOverlayEntry{
				{joinKeys(k.Duplicate), "duplicate"},
				{joinKeys(k.Rename), "rename"},
				{joinKeys(k.NewFile), "new file"},
				{joinKeys(k.NewDir), "new directory"},
				{joinKeys(k.Trash), "move to trash"},
				{joinKeys(k.Delete), "delete"},
				{joinKeys(k.Undo), "undo"},
				{joinKeys(k.Redo), "redo"},
			},
		},
		{
			title: "Quit",
			entries: []helpOverlayEntry{
				{joinKeys(k.Quit), "quit"},
				{"esc", "quit and cd here"},
				{"Q", "reveal in file manager"},
			},
		},
	}
}

func (r *Renderer) buildHelpOverlayLines() []string {
	var lines []string
	for i, section := range r.helpOverlaySections() {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, "  "+padKeys(entry.keys)+entry.label)
		}
	}
	return lines
}

func padKeys(keys string) string {
	const keyColumn = 16
	if len(keys) >= keyColumn {
		return keys + " "
	}
	return keys + strings.Repeat(" ", keyColumn-len(keys))
}

func (r *Renderer) drawHelpOverlay(w, h int) {
	base := r.palette.Base
	for y := 0; y < h; y++ {
		r.fillLine(y, w, base)
	}

	title := " Help "
	titleX := (w - len(title)) / 2
	if titleX < 0 {
		titleX = 0
	}
	r.drawTextLine(titleX, 0, w-titleX, title, r.palette.PathBar)

	lines := r.buildHelpOverlayLines()
	for i, line := range lines {
		y := 2 + i
		if y >= h-1 {
			break
		}
		style := base
		if line != "" && !strings.HasPrefix(line, " ") {
			style = r.palette.Directory
		}
		r.drawTextLine(2, y, w-3, line, style)
	}

	footer := "any key to close"
	r.drawTextLine(2, h-1, w-3, footer, base.Dim(true))
}
