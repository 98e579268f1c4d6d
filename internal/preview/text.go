package preview

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/jordannakamoto/ils/internal/fs"
	"github.com/jordannakamoto/ils/internal/textutil"
)

// maxPreviewBytes caps how far into a file the windowed read may scan.
// Scrolling is bounded by the lines inside this budget.
const maxPreviewBytes = 512 * 1024

// ReadTextWindow reads lines [offset, offset+height) of a text file,
// with tabs expanded. Reading stops at the end of the window, so the
// cost tracks the scroll position rather than the file size. The
// returned offset is clamped so at least one line stays visible when
// offset points past the end of the file.
func ReadTextWindow(path string, offset, height int) ([]string, int, error) {
	if offset < 0 {
		offset = 0
	}
	if height < 1 {
		height = 1
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		_ = f.Close()
	}()

	br := bufio.NewReader(fs.NewTextReader(io.LimitReader(f, maxPreviewBytes)))
	var window []string
	last := ""
	n := 0
	for n < offset+height {
		line, readErr := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			line = textutil.ExpandTabs(line, textutil.DefaultTabWidth)
			if n >= offset {
				window = append(window, line)
			}
			last = line
			n++
		}
		if readErr != nil {
			if readErr != io.EOF {
				return nil, 0, readErr
			}
			break
		}
	}

	if n == 0 {
		return nil, 0, nil
	}
	if len(window) == 0 {
		// The file ended before the window started.
		offset = n - 1
		window = []string{last}
	}
	return window, offset, nil
}

// ClampScroll bounds offset so at least one line stays visible.
func ClampScroll(offset, totalLines int) int {
	if totalLines < 1 {
		return 0
	}
	if offset > totalLines-1 {
		offset = totalLines - 1
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// Window slices lines to the visible range [offset, offset+height).
func Window(lines []string, offset, height int) []string {
	offset = ClampScroll(offset, len(lines))
	if height < 0 {
		height = 0
	}
	end := offset + height
	if end > len(lines) {
		end = len(lines)
	}
	return lines[offset:end]
}
