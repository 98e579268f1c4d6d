package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/jordannakamoto/ils/internal/config"
	"github.com/jordannakamoto/ils/internal/layout"
	"github.com/jordannakamoto/ils/internal/preview"
	searchpkg "github.com/jordannakamoto/ils/internal/search"
	statepkg "github.com/jordannakamoto/ils/internal/state"
	"github.com/jordannakamoto/ils/internal/textutil"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen           tcell.Screen
	palette          config.Palette
	keys             config.Keybindings
	runeWidthCache   [128]int // ASCII cache (0-127)
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // For non-ASCII runes
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen, palette config.Palette, keys config.Keybindings) *Renderer {
	return &Renderer{
		screen:  screen,
		palette: palette,
		keys:    keys,
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := r.screen.Size()
	if state == nil || w < 1 || h < 1 {
		r.screen.Show()
		return
	}

	if _, ok := state.Mode.(statepkg.Help); ok {
		r.drawHelpOverlay(w, h)
		r.screen.Show()
		return
	}

	r.drawPathBar(state, w)
	r.drawEntries(state, w)
	if state.PreviewVisible {
		r.drawPreview(state, w)
	}
	r.drawBottomBar(state, w, h)

	r.screen.Show()
}

// ===== PATH BAR =====

func (r *Renderer) drawPathBar(state *statepkg.AppState, w int) {
	r.fillLine(0, w, r.palette.PathBar)

	path := textutil.SanitizeTerminalText(state.CurrentPath)
	path = r.fitPath(path, w-2)
	r.drawTextLine(1, 0, w-1, path, r.palette.PathBar)
}

// fitPath keeps the tail of a path that exceeds the width, since the
// deepest segments are the ones being navigated.
func (r *Renderer) fitPath(path string, width int) string {
	if width <= 0 {
		return ""
	}
	if r.measureTextWidth(path) <= width {
		return path
	}

	runes := []rune(path)
	for len(runes) > 0 {
		candidate := "…" + string(runes)
		if r.measureTextWidth(candidate) <= width {
			return candidate
		}
		runes = runes[1:]
	}
	return "…"
}

// ===== ENTRY PANE =====

func (r *Renderer) drawEntries(state *statepkg.AppState, w int) {
	if len(state.Entries) == 0 {
		r.drawTextLine(1, 1, w-1, "(empty)", r.palette.Base.Dim(true))
		return
	}

	g := state.Grid
	if g.Cols < 1 || g.VisibleRows < 1 {
		return
	}

	totalRows := g.Rows(len(state.Entries))
	for row := state.ScrollRow; row < totalRows && row-state.ScrollRow < g.VisibleRows; row++ {
		y := 1 + row - state.ScrollRow
		for col := 0; col < g.Cols; col++ {
			idx := row*g.Cols + col
			if idx >= len(state.Entries) {
				break
			}
			if state.ListMode {
				r.drawListRow(state, idx, y, w)
			} else {
				r.drawGridCell(state, idx, col*layout.CellWidth, y)
			}
		}
	}
}

func (r *Renderer) drawGridCell(state *statepkg.AppState, idx, x, y int) {
	entry := state.Entries[idx]
	selected := idx == state.SelectedIndex

	marker := "  "
	if selected {
		marker = "> "
	}

	style := r.entryStyle(state, idx)
	x = r.drawTextLine(x, y, 2, marker, style)

	name := textutil.SanitizeTerminalText(entry.Name)
	name = r.truncateTextToWidth(name, layout.NameWidth)
	r.drawMatchedName(state, name, x, y, layout.NameWidth, style)
}

func (r *Renderer) drawListRow(state *statepkg.AppState, idx, y, w int) {
	entry := state.Entries[idx]
	selected := idx == state.SelectedIndex

	marker := "  "
	if selected {
		marker = "> "
	}

	style := r.entryStyle(state, idx)
	if selected {
		r.fillLine(y, w, style)
	}

	name := textutil.SanitizeTerminalText(entry.Name)
	isDir := state.FS != nil && state.FS.IsDir(entry.FullPath)
	if isDir {
		name += "/"
	}

	sizeCol := ""
	if state.ShowSizes && !isDir {
		if info, err := os.Stat(entry.FullPath); err == nil {
			sizeCol = preview.FormatSize(info.Size())
		}
	}

	nameWidth := w - 3
	if sizeCol != "" {
		nameWidth -= len(sizeCol) + 2
	}
	if nameWidth < 1 {
		nameWidth = 1
	}
	name = r.truncateTextToWidth(name, nameWidth)

	x := r.drawTextLine(0, y, 2, marker, style)
	r.drawMatchedName(state, name, x, y, nameWidth, style)

	if sizeCol != "" {
		r.drawTextLine(w-len(sizeCol)-1, y, len(sizeCol), sizeCol, r.palette.Base.Dim(true))
	}
}

// drawMatchedName draws an entry name, overlaying the match style on
// the prefix the current find query covers.
func (r *Renderer) drawMatchedName(state *statepkg.AppState, name string, x, y, maxWidth int, style tcell.Style) {
	matched := 0
	if m, ok := state.Mode.(statepkg.FuzzyFind); ok && m.Query != "" {
		matched = searchpkg.PrefixLen(name, m.Query, state.Settings.CaseSensitiveFind)
	}
	if matched == 0 {
		r.drawTextLine(x, y, maxWidth, name, style)
		return
	}

	runes := []rune(name)
	if matched > len(runes) {
		matched = len(runes)
	}
	x = r.drawTextLine(x, y, maxWidth, string(runes[:matched]), r.palette.Match)
	r.drawTextLine(x, y, maxWidth, string(runes[matched:]), style)
}

func (r *Renderer) entryStyle(state *statepkg.AppState, idx int) tcell.Style {
	entry := state.Entries[idx]
	style := r.palette.Base
	if state.FS != nil && state.FS.IsDir(entry.FullPath) {
		style = r.palette.Directory
	}
	if entry.IsHidden() {
		style = style.Dim(true)
	}
	if idx == state.SelectedIndex {
		style = r.palette.Selected
	}
	return style
}

// ===== PREVIEW PANE =====

func (r *Renderer) drawPreview(state *statepkg.AppState, w int) {
	borderY := 1 + state.EntryRows()
	rows := state.PreviewRows()
	if rows < 1 || state.Preview == nil {
		return
	}

	r.drawPreviewBorder(state, borderY, w)

	path := state.SelectedPath()
	if path == "" {
		return
	}
	lines := state.Preview.Build(path, w-2, rows)
	for i, line := range lines {
		if i >= rows {
			break
		}
		r.drawStyledLine(1, borderY+1+i, w-1, line)
	}
}

func (r *Renderer) drawPreviewBorder(state *statepkg.AppState, y, w int) {
	style := r.palette.PreviewBorder
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}

	label := ""
	if e := state.Selected(); e != nil {
		label = textutil.SanitizeTerminalText(e.Name)
	}
	if label == "" {
		return
	}
	label = " " + r.truncateTextToWidth(label, w-6) + " "
	r.drawTextLine(2, y, w-2, label, style)
}

func (r *Renderer) drawStyledLine(x, y, maxX int, line preview.StyledLine) {
	for _, span := range line.Spans {
		if x >= maxX {
			return
		}
		for _, ru := range span.Text {
			if x >= maxX {
				return
			}
			x = r.drawStyledRune(x, y, maxX, ru, span.Style)
		}
	}
}

// ===== BOTTOM BAR =====

func (r *Renderer) drawBottomBar(state *statepkg.AppState, w, h int) {
	y := h - 1

	switch m := state.Mode.(type) {
	case statepkg.FuzzyFind:
		r.drawFindBar(state, m, y, w)
	case statepkg.Prompt:
		text := fmt.Sprintf("%s: %s▏", m.Label(), textutil.SanitizeTerminalText(m.Buffer))
		r.fillLine(y, w, r.palette.PathBar)
		r.drawTextLine(1, y, w-1, text, r.palette.PathBar)
	default:
		r.drawStatusLine(state, y, w)
	}
}

func (r *Renderer) drawFindBar(state *statepkg.AppState, m statepkg.FuzzyFind, y, w int) {
	r.fillLine(y, w, r.palette.PathBar)

	query := textutil.SanitizeTerminalText(m.Query)
	x := r.drawTextLine(1, y, w-1, "/"+query+"▏", r.palette.Match)

	if m.Query == "" {
		return
	}
	_, count := searchpkg.Match(m.Query, state.Entries, state.Settings.CaseSensitiveFind)
	suffix := fmt.Sprintf("  %d match", count)
	if count != 1 {
		suffix += "es"
	}
	r.drawTextLine(x, y, w-x-1, suffix, r.palette.PathBar.Dim(true))
}

func (r *Renderer) drawStatusLine(state *statepkg.AppState, y, w int) {
	left := state.StatusMessage
	style := r.palette.Base.Dim(true)
	if left == "" {
		if e := state.Selected(); e != nil {
			left = textutil.SanitizeTerminalText(filepath.Base(e.FullPath))
		}
	} else if state.StatusIsError {
		style = r.palette.Error
	}

	right := ""
	if len(state.Entries) > 0 {
		right = fmt.Sprintf("%d/%d", state.SelectedIndex+1, len(state.Entries))
	}
	if helpKey := firstKey(r.keys.Help); helpKey != "" {
		right = strings.TrimSpace(helpKey + " help  " + right)
	}

	rightWidth := r.measureTextWidth(right)
	leftWidth := w - rightWidth - 3
	if leftWidth > 0 {
		r.drawTextLine(1, y, leftWidth, r.truncateTextToWidth(left, leftWidth), style)
	}
	if rightWidth > 0 && rightWidth < w-1 {
		r.drawTextLine(w-rightWidth-1, y, rightWidth, right, r.palette.Base.Dim(true))
	}
}

func firstKey(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[0]
}
