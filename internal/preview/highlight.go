package preview

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
)

// Span is a run of text sharing one style.
type Span struct {
	Text  string
	Style tcell.Style
}

// StyledLine is one rendered preview line.
type StyledLine struct {
	Spans []Span
}

// Plain wraps raw lines in the base style.
func Plain(lines []string, base tcell.Style) []StyledLine {
	out := make([]StyledLine, len(lines))
	for i, line := range lines {
		out[i] = StyledLine{Spans: []Span{{Text: line, Style: base}}}
	}
	return out
}

// Text returns the concatenated text of the line.
func (l StyledLine) Text() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

const highlightStyle = "monokai"

// Highlight runs the file's lines through syntax highlighting. The
// lexer is picked from the filename, then sniffed from content; when
// neither recognizes the file the lines come back in the base style.
func Highlight(path string, lines []string, base tcell.Style) []StyledLine {
	src := strings.Join(lines, "\n")

	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		lexer = lexers.Analyse(src)
	}
	if lexer == nil {
		return Plain(lines, base)
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(highlightStyle)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return Plain(lines, base)
	}

	out := make([]StyledLine, 0, len(lines))
	current := StyledLine{}
	for _, token := range iterator.Tokens() {
		st := tokenStyle(style, token.Type, base)
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				out = append(out, current)
				current = StyledLine{}
			}
			if part != "" {
				current.Spans = append(current.Spans, Span{Text: part, Style: st})
			}
		}
	}
	out = append(out, current)

	// Tokenization can disagree with the caller's line count around a
	// trailing newline; never return more lines than were given.
	if len(out) > len(lines) {
		out = out[:len(lines)]
	}
	for len(out) < len(lines) {
		out = append(out, StyledLine{})
	}
	return out
}

func tokenStyle(style *chroma.Style, tt chroma.TokenType, base tcell.Style) tcell.Style {
	entry := style.Get(tt)
	st := base
	if entry.Colour.IsSet() {
		st = st.Foreground(tcell.NewRGBColor(
			int32(entry.Colour.Red()),
			int32(entry.Colour.Green()),
			int32(entry.Colour.Blue()),
		))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}
