package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testContent := []byte("hello world")

	require.NoError(t, fsys.WriteFile(testFile, testContent, 0644))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	subDir := filepath.Join(tmpDir, "sub", "dir")
	require.NoError(t, fsys.MkdirAll(subDir, 0755))

	renamed := testFile + ".old"
	require.NoError(t, fsys.Rename(testFile, renamed))
	_, err = fsys.Stat(testFile)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fsys.RemoveAll(filepath.Join(tmpDir, "sub")))
	_, err = fsys.Stat(subDir)
	assert.True(t, os.IsNotExist(err))
}

func TestNewOS_Symlinks(t *testing.T) {
	fsys := NewOS()
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "target")
	link := filepath.Join(tmpDir, "link")

	require.NoError(t, fsys.WriteFile(target, []byte("x"), 0644))
	require.NoError(t, fsys.Symlink(target, link))

	linfo, err := fsys.Lstat(link)
	require.NoError(t, err)
	assert.True(t, linfo.Mode()&fs.ModeSymlink != 0, "Lstat should report the link itself")

	info, err := fsys.Stat(link)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular(), "Stat should follow the link")

	dest, err := fsys.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, target, dest)
}

func TestNewOS_WalkDoesNotFollowLinks(t *testing.T) {
	fsys := NewOS()
	tmpDir := t.TempDir()
	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "secret"), []byte("x"), 0644))
	require.NoError(t, os.Symlink(outside, filepath.Join(tmpDir, "link")))

	var visited []string
	err := fsys.Walk(tmpDir, func(path string, info fs.FileInfo, err error) error {
		require.NoError(t, err)
		rel, _ := filepath.Rel(tmpDir, path)
		visited = append(visited, rel)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{".", "link"}, visited)
}

func TestNewMemory_NoSymlinkSupport(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/a", 0755))

	err := fsys.Symlink("/a", "/b")
	assert.Error(t, err)

	_, err = fsys.Readlink("/a")
	assert.Error(t, err)

	info, err := fsys.Lstat("/a")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
