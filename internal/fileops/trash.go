package fileops

import (
	"fmt"
	"os"
	"path/filepath"
)

// trashDir returns the freedesktop trash files directory, creating it
// on first use. XDG_DATA_HOME overrides the ~/.local/share default.
func trashDir() (string, error) {
	data := os.Getenv("XDG_DATA_HOME")
	if data == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		data = filepath.Join(home, ".local", "share")
	}
	dir := filepath.Join(data, "Trash", "files")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// Trash moves a path into the user trash directory instead of deleting
// it. Name collisions inside the trash get a numeric suffix. Returns
// the path the entry landed on.
func (Ops) Trash(path string) (string, error) {
	dir, err := trashDir()
	if err != nil {
		return "", err
	}

	base := filepath.Base(path)
	dest := filepath.Join(dir, base)
	for i := 1; ; i++ {
		if _, err := os.Lstat(dest); os.IsNotExist(err) {
			break
		}
		dest = filepath.Join(dir, fmt.Sprintf("%s.%d", base, i))
		if i > 1000 {
			return "", fmt.Errorf("trash %s: no free name", base)
		}
	}

	if err := os.Rename(path, dest); err != nil {
		return "", err
	}
	return dest, nil
}
