package runner

import (
	"context"

	"github.com/arthur-debert/configmapper/pkg/errors"
	"github.com/arthur-debert/configmapper/pkg/git"
	"github.com/arthur-debert/configmapper/pkg/logging"
	"github.com/arthur-debert/configmapper/pkg/types"
)

// AsideSuffix is appended to pre-existing external content before it is
// removed.
const AsideSuffix = ".old-config-mapper"

const dirPerm = 0755

// AsidePath returns where RenameAside moves path.
func AsidePath(path string) string {
	return path + AsideSuffix
}

// Runner executes filesystem operations against the outside world.
type Runner interface {
	CloneRepository(ctx context.Context, source, destination string) error
	CopyTree(source, destination string) error
	RenameAside(path string) (string, error)
	RemoveTree(path string) error
	CreateSymlink(target, linkPath string) error
}

// FSRunner implements Runner on a types.FS and a git client.
type FSRunner struct {
	fs  types.FS
	git git.Client
}

// New creates a runner.
func New(fs types.FS, gitClient git.Client) *FSRunner {
	return &FSRunner{fs: fs, git: gitClient}
}

// CloneRepository clones source into destination with the git client.
func (r *FSRunner) CloneRepository(ctx context.Context, source, destination string) error {
	logger := logging.GetLogger("runner").With().Str("repo", source).Str("destination", destination).Logger()
	defer logging.LogOperationStart(logger, "clone-repository")()

	if err := r.ensureParent(destination); err != nil {
		return errors.Wrapf(err, errors.ErrClone, "cannot create parent of %s", destination).
			WithDetail("repo", source)
	}
	if err := r.git.Clone(ctx, source, destination); err != nil {
		return errors.Wrapf(err, errors.ErrClone, "error cloning %s into %s", source, destination).
			WithDetail("repo", source).
			WithDetail("path", destination)
	}
	return nil
}

// RenameAside moves path to AsidePath(path) and returns the new location.
func (r *FSRunner) RenameAside(path string) (string, error) {
	aside := AsidePath(path)
	logger := logging.GetLogger("runner").With().Str("path", path).Str("aside", aside).Logger()
	defer logging.LogOperationStart(logger, "rename-aside")()

	if err := r.fs.Rename(path, aside); err != nil {
		return "", errors.Wrapf(err, errors.ErrRename, "error renaming %s", path).
			WithDetail("path", path).
			WithDetail("to", aside)
	}
	return aside, nil
}

// RemoveTree deletes path and everything below it.
func (r *FSRunner) RemoveTree(path string) error {
	logger := logging.GetLogger("runner").With().Str("path", path).Logger()
	defer logging.LogOperationStart(logger, "remove-tree")()

	if err := r.fs.RemoveAll(path); err != nil {
		return errors.Wrapf(err, errors.ErrRemove, "error deleting %s", path).
			WithDetail("path", path)
	}
	return nil
}

// CreateSymlink creates a symlink at linkPath pointing to target.
func (r *FSRunner) CreateSymlink(target, linkPath string) error {
	logger := logging.GetLogger("runner").With().Str("target", target).Str("link", linkPath).Logger()
	defer logging.LogOperationStart(logger, "create-symlink")()

	if err := r.ensureParent(linkPath); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot create parent of %s", linkPath)
	}
	if err := r.fs.Symlink(target, linkPath); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "error creating symlink from %s to %s", target, linkPath).
			WithDetail("target", target).
			WithDetail("path", linkPath)
	}
	return nil
}
