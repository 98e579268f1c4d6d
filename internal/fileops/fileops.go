// Package fileops performs the file mutations the browser exposes:
// duplicate, rename, create, trash, and delete.
package fileops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Ops is the real-filesystem mutator. It satisfies undo.Mutator.
type Ops struct{}

// CopyFile copies a regular file, preserving its permission bits.
// The destination must not already exist.
func (Ops) CopyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("copy %s: is a directory", src)
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dest)
		return err
	}
	return out.Close()
}

// Rename moves a path. Refuses to clobber an existing destination.
func (Ops) Rename(oldPath, newPath string) error {
	if _, err := os.Lstat(newPath); err == nil {
		return fmt.Errorf("rename %s: %s already exists", oldPath, filepath.Base(newPath))
	}
	return os.Rename(oldPath, newPath)
}

// CreateFile creates an empty file, failing if the path exists.
func (Ops) CreateFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}

// CreateDir creates a single directory, failing if the path exists.
func (Ops) CreateDir(path string) error {
	return os.Mkdir(path, 0o755)
}

// Remove deletes a file or an empty directory.
func (Ops) Remove(path string) error {
	return os.Remove(path)
}

// Delete removes a path permanently, recursing into directories.
func (Ops) Delete(path string) error {
	return os.RemoveAll(path)
}

// DuplicatePath derives the destination for duplicating path: the stem
// gains a "_copy" suffix before the extension, with a numeric suffix
// when earlier copies already exist.
func DuplicatePath(path string) (string, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for i := 0; i < 1000; i++ {
		suffix := "_copy"
		if i > 0 {
			suffix = fmt.Sprintf("_copy%d", i+1)
		}
		candidate := filepath.Join(dir, stem+suffix+ext)
		if _, err := os.Lstat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("duplicate %s: no free name", base)
}

// Duplicate copies path next to itself under a derived name and
// returns the destination.
func (o Ops) Duplicate(path string) (string, error) {
	dest, err := DuplicatePath(path)
	if err != nil {
		return "", err
	}
	if err := o.CopyFile(path, dest); err != nil {
		return "", err
	}
	return dest, nil
}
