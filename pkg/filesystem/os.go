package filesystem

import (
	"github.com/arthur-debert/configmapper/pkg/types"
	"github.com/spf13/afero"
)

// NewOS creates a filesystem backed by the real OS filesystem
func NewOS() types.FS {
	return NewAferoFS(afero.NewOsFs())
}

// NewMemory creates an in-memory filesystem. It has no symlink support.
func NewMemory() types.FS {
	return NewAferoFS(afero.NewMemMapFs())
}
