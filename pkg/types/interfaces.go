package types

import (
	"io/fs"
	"path/filepath"
)

// FS is the filesystem interface required by the prober and runner
type FS interface {
	// Stat follows symlinks, Lstat does not.
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)

	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Chmod(name string, mode fs.FileMode) error

	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	Rename(oldpath, newpath string) error
	RemoveAll(path string) error

	// Walk visits root and everything below it without following symlinks.
	Walk(root string, fn filepath.WalkFunc) error
}
