package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// settingsEnv lists the CONFIG_MAPPER_* variables a developer's shell could
// leak into a test.
var settingsEnv = []string{"CONFIG_MAPPER_CONFIG", "CONFIG_MAPPER_STRICT", "CONFIG_MAPPER_COLOR"}

// IsolateHome creates a temporary home and points HOME, XDG_CONFIG_HOME and
// XDG_STATE_HOME into it. Settings variables are cleared and NO_COLOR is set.
// Everything is restored when the test ends. It returns the home directory.
func IsolateHome(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	home := CreateDir(t, root, "home")

	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("NO_COLOR", "1")

	for _, name := range settingsEnv {
		// t.Setenv registers the restore; the unset makes the variable absent
		// rather than empty.
		t.Setenv(name, "")
		if err := os.Unsetenv(name); err != nil {
			t.Fatalf("Failed to unset %s: %v", name, err)
		}
	}

	return home
}
