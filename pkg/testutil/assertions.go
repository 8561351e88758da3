package testutil

import (
	"os"
	"testing"
)

// AssertSymlinkTo fails the test unless link is a symlink whose stored
// destination is exactly target.
func AssertSymlinkTo(t *testing.T, link, target string) {
	t.Helper()

	info, err := os.Lstat(link)
	if err != nil {
		t.Fatalf("Expected symlink at %s: %v", link, err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Fatalf("Expected %s to be a symlink, got mode %s", link, info.Mode())
	}
	dest, err := os.Readlink(link)
	if err != nil {
		t.Fatalf("Failed to read symlink %s: %v", link, err)
	}
	if dest != target {
		t.Errorf("Symlink %s points to %s, expected %s", link, dest, target)
	}
}

// AssertNotExists fails the test if anything, including a dangling symlink,
// is at path.
func AssertNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Lstat(path); err == nil {
		t.Errorf("Expected nothing at %s", path)
	} else if !os.IsNotExist(err) {
		t.Errorf("Unexpected error checking %s: %v", path, err)
	}
}

// AssertFileContent fails the test unless reading path (following links)
// yields want.
func AssertFileContent(t *testing.T, path, want string) {
	t.Helper()

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	if string(got) != want {
		t.Errorf("Content of %s = %q, expected %q", path, string(got), want)
	}
}
