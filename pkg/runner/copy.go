package runner

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/configmapper/pkg/errors"
	"github.com/arthur-debert/configmapper/pkg/logging"
)

// ownerRWX is added to every directory while the copy is in progress so
// children can be written into read-only sources.
const ownerRWX = 0700

// CopyTree duplicates source at destination, like `cp -r source destination`
// when destination does not exist. Directories, regular files and symlinks
// are copied with their permission bits; symlinks are copied as links.
// Directory modes are applied once their contents are in place. On failure
// the partial destination is removed.
func (r *FSRunner) CopyTree(source, destination string) error {
	logger := logging.GetLogger("runner").With().Str("source", source).Str("destination", destination).Logger()
	defer logging.LogOperationStart(logger, "copy-tree")()

	if err := r.ensureParent(destination); err != nil {
		return errors.Wrapf(err, errors.ErrCopy, "cannot create parent of %s", destination)
	}

	type dirMode struct {
		path string
		perm fs.FileMode
	}
	var dirs []dirMode

	err := r.fs.Walk(source, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(source, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(destination, rel)

		switch {
		case info.Mode()&fs.ModeSymlink != 0:
			link, err := r.fs.Readlink(path)
			if err != nil {
				return err
			}
			return r.fs.Symlink(link, dest)
		case info.IsDir():
			perm := info.Mode().Perm()
			dirs = append(dirs, dirMode{path: dest, perm: perm})
			return r.fs.MkdirAll(dest, perm|ownerRWX)
		default:
			data, err := r.fs.ReadFile(path)
			if err != nil {
				return err
			}
			return r.fs.WriteFile(dest, data, info.Mode().Perm())
		}
	})

	// deepest first, so a parent never loses write access before its
	// children are done
	for i := len(dirs) - 1; err == nil && i >= 0; i-- {
		err = r.fs.Chmod(dirs[i].path, dirs[i].perm)
	}

	if err != nil {
		if cleanupErr := r.fs.RemoveAll(destination); cleanupErr != nil {
			logger.Warn().Err(cleanupErr).Msg("Failed to remove partial copy")
		}
		return errors.Wrapf(err, errors.ErrCopy, "error copying %s to %s", source, destination).
			WithDetail("source", source).
			WithDetail("destination", destination)
	}
	return nil
}

func (r *FSRunner) ensureParent(path string) error {
	return r.fs.MkdirAll(filepath.Dir(path), dirPerm)
}
