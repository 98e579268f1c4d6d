package preview

import (
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"

	ilsfs "github.com/jordannakamoto/ils/internal/fs"
)

// Kind routes a path to its preview strategy.
type Kind int

const (
	KindDirectory Kind = iota
	KindText
	KindImage
	KindPDF
	KindBinary
)

// imageExtensions mirrors the decoders registered in image.go.
var imageExtensions = map[string]struct{}{
	".gif":  {},
	".jpeg": {},
	".jpg":  {},
	".png":  {},
}

// Classify decides how a path should be previewed. Directories are
// resolved live through fsys; files route on extension first and fall
// back to content sniffing.
func Classify(fsys ilsfs.FS, path string) Kind {
	if fsys.IsDir(path) {
		return KindDirectory
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".pdf" {
		return KindPDF
	}
	if _, ok := imageExtensions[ext]; ok {
		return KindImage
	}

	sample, err := ilsfs.ReadTextSample(path)
	if err != nil {
		return KindBinary
	}
	if ilsfs.IsTextFile(path, sample) {
		return KindText
	}
	return KindBinary
}

// Builder produces the preview pane content for one frame. It owns
// the async cache and the extraction loader.
type Builder struct {
	fsys   ilsfs.FS
	cache  *Cache
	loader *Loader
	base   tcell.Style
}

// NewBuilder wires a builder. notify wakes the event loop after an
// async extraction lands.
func NewBuilder(fsys ilsfs.FS, extract TextExtractor, notify func(), base tcell.Style) *Builder {
	cache := NewCache()
	return &Builder{
		fsys:   fsys,
		cache:  cache,
		loader: NewLoader(cache, extract, notify),
		base:   base,
	}
}

// Cache exposes the underlying cache for invalidation after file
// mutations.
func (b *Builder) Cache() *Cache {
	return b.cache
}

// ScrollBy moves the saved scroll position for path. Bounds are
// enforced at build time, when the line count is known.
func (b *Builder) ScrollBy(path string, delta int) {
	b.cache.SetScroll(path, b.cache.Scroll(path)+delta)
}

// Build renders the preview for path into a width x height pane.
// Errors surface as content rather than failing the frame.
func (b *Builder) Build(path string, width, height int) []StyledLine {
	switch Classify(b.fsys, path) {
	case KindDirectory:
		lines, err := Summarize(b.fsys, path)
		if err != nil {
			return Plain([]string{"unreadable: " + err.Error()}, b.base)
		}
		return Plain(Window(lines, b.cache.Scroll(path), height), b.base)

	case KindText:
		window, offset, err := ReadTextWindow(path, b.cache.Scroll(path), height)
		if err != nil {
			return Plain([]string{"unreadable: " + err.Error()}, b.base)
		}
		b.cache.SetScroll(path, offset)
		return Highlight(path, window, b.base)

	case KindImage:
		lines, err := RenderImage(path, width, height)
		if err != nil {
			return Plain([]string{"image: " + err.Error()}, b.base)
		}
		return lines

	case KindPDF:
		switch state := b.loader.Request(path).(type) {
		case Loading:
			return Plain([]string{"extracting text..."}, b.base.Dim(true))
		case Failed:
			return Plain([]string{"extraction failed: " + state.Message}, b.base.Dim(true))
		case Loaded:
			offset := ClampScroll(b.cache.Scroll(path), len(state.Lines))
			b.cache.SetScroll(path, offset)
			return Plain(Window(state.Lines, offset, height), b.base)
		}
		return nil

	default:
		return Plain([]string{"(binary file)"}, b.base.Dim(true))
	}
}
