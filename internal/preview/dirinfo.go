package preview

import (
	"fmt"
	"io/fs"
	"path/filepath"

	ilsfs "github.com/jordannakamoto/ils/internal/fs"
)

// Summarize builds the preview lines for a directory: immediate child
// counts, recursive size, and the child listing. Unreadable subtrees
// are skipped rather than failing the whole summary.
func Summarize(fsys ilsfs.FS, path string) ([]string, error) {
	children, err := fsys.List(path)
	if err != nil {
		return nil, err
	}
	ilsfs.SortEntries(fsys, children)

	dirs, files := 0, 0
	for _, c := range children {
		if fsys.IsDir(c.FullPath) {
			dirs++
		} else {
			files++
		}
	}

	lines := []string{
		fmt.Sprintf("%d directories, %d files", dirs, files),
		fmt.Sprintf("total size %s", FormatSize(recursiveSize(path))),
		"",
	}
	for _, c := range children {
		name := c.Name
		if fsys.IsDir(c.FullPath) {
			name += "/"
		}
		lines = append(lines, name)
	}
	return lines, nil
}

func recursiveSize(root string) int64 {
	var total int64
	_ = filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			if info, err := d.Info(); err == nil {
				total += info.Size()
			}
		}
		return nil
	})
	return total
}

// FormatSize renders a byte count in the usual binary units.
func FormatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
