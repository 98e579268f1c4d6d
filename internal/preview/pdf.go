package preview

import (
	"fmt"
	"io"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/jordannakamoto/ils/internal/log"
)

// TextExtractor pulls plain text out of a document format that needs
// real parsing. Implementations may be slow; the Loader always calls
// them off the event loop.
type TextExtractor interface {
	ExtractText(path string) ([]string, error)
}

// PDFExtractor extracts text from PDF files.
type PDFExtractor struct{}

func (PDFExtractor) ExtractText(path string) ([]string, error) {
	f, r, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	reader, err := r.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read pdf text: %w", err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) == 1 && strings.TrimSpace(lines[0]) == "" {
		return []string{"(no extractable text)"}, nil
	}
	return lines, nil
}

// Loader runs extractions in the background, exactly once per path,
// and pokes the event loop when a result lands.
type Loader struct {
	cache   *Cache
	extract TextExtractor
	notify  func()
}

// NewLoader wires a loader to the shared cache. notify is called from
// worker goroutines after a terminal state is stored; it must be safe
// to call from any goroutine.
func NewLoader(cache *Cache, extract TextExtractor, notify func()) *Loader {
	return &Loader{cache: cache, extract: extract, notify: notify}
}

// Request returns the current state for path, spawning the extraction
// worker when the path has never been requested. Repeated calls while
// Loading never spawn a second worker.
func (l *Loader) Request(path string) State {
	state, claimed := l.cache.ClaimOrGet(path)
	if !claimed {
		return state
	}

	go func() {
		lines, err := l.extract.ExtractText(path)
		if err != nil {
			log.Warnf("preview extraction failed for %s: %v", path, err)
			l.cache.Put(path, Failed{Message: err.Error()})
		} else {
			l.cache.Put(path, Loaded{Lines: lines})
		}
		if l.notify != nil {
			l.notify()
		}
	}()
	return Loading{}
}
