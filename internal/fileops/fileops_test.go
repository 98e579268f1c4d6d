package fileops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dest := filepath.Join(dir, "b.txt")
	writeFile(t, src, "hello")

	var ops Ops
	require.NoError(t, ops.CopyFile(src, dest))

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))

	assert.Error(t, ops.CopyFile(src, dest), "existing destination must be refused")
	assert.Error(t, ops.CopyFile(dir, filepath.Join(dir, "c")), "directories are not copyable")
}

func TestRenameRefusesClobber(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	writeFile(t, a, "a")
	writeFile(t, b, "b")

	var ops Ops
	assert.Error(t, ops.Rename(a, b))

	c := filepath.Join(dir, "c")
	require.NoError(t, ops.Rename(a, c))
	_, err := os.Stat(c)
	assert.NoError(t, err)
}

func TestCreateFileAndDir(t *testing.T) {
	dir := t.TempDir()
	var ops Ops

	f := filepath.Join(dir, "new.txt")
	require.NoError(t, ops.CreateFile(f))
	assert.Error(t, ops.CreateFile(f), "second create must fail")

	d := filepath.Join(dir, "sub")
	require.NoError(t, ops.CreateDir(d))
	info, err := os.Stat(d)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDuplicatePathNaming(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "report.pdf")
	writeFile(t, src, "x")

	dest, err := DuplicatePath(src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report_copy.pdf"), dest)

	writeFile(t, dest, "x")
	dest2, err := DuplicatePath(src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report_copy2.pdf"), dest2)
}

func TestDuplicate(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "notes")
	writeFile(t, src, "body")

	var ops Ops
	dest, err := ops.Duplicate(src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "notes_copy"), dest)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "body", string(got))
}

func TestDelete(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.MkdirAll(filepath.Join(sub, "deep"), 0o755))
	writeFile(t, filepath.Join(sub, "deep", "f"), "x")

	var ops Ops
	require.NoError(t, ops.Delete(sub))
	_, err := os.Stat(sub)
	assert.True(t, os.IsNotExist(err))
}
