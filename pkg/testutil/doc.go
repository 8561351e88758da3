// Package testutil provides helpers shared by config-mapper's tests.
//
// Key components:
//   - IsolateHome: points HOME and the XDG directories at a temporary tree
//   - CreateFile, CreateDir, CreateSymlink, CreateFileTree: fixture setup
//   - AssertSymlinkTo, AssertNotExists, AssertFileContent: state checks
//
// Tests that need symlinks use the real filesystem under t.TempDir();
// afero's MemMapFs cannot represent them.
package testutil
