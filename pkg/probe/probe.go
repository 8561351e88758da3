// Package probe inspects paths without changing them.
package probe

import (
	"io/fs"

	"github.com/arthur-debert/configmapper/pkg/types"
)

// Link reports what is at path itself, without following a final symlink.
// Any stat error, including permission errors, reads as Absent.
func Link(fsys types.FS, path string) types.PathState {
	info, err := fsys.Lstat(path)
	if err != nil {
		return types.Absent
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		return types.Symlink
	}
	return types.RegularOrDirectory
}

// Content reports whether content is reachable at path, following symlinks.
// A dangling symlink reads as Absent.
func Content(fsys types.FS, path string) types.PathState {
	if _, err := fsys.Stat(path); err != nil {
		return types.Absent
	}
	return types.RegularOrDirectory
}

// Observe probes both paths of an entry.
func Observe(fsys types.FS, entry types.Entry) types.Observation {
	return types.Observation{
		Target:   Content(fsys, entry.Target),
		External: Link(fsys, entry.External),
	}
}
