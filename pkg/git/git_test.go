package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

// initRepo creates a local repo with one committed file.
func initRepo(t *testing.T, dir string) {
	t.Helper()
	cmds := [][]string{
		{"git", "init", "-b", "main", dir},
		{"git", "-C", dir, "config", "user.email", "test@test.com"},
		{"git", "-C", dir, "config", "user.name", "Test"},
	}
	for _, args := range cmds {
		out, err := exec.Command(args[0], args[1:]...).CombinedOutput()
		require.NoError(t, err, string(out))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "init.vim"), []byte("set nu\n"), 0644))
	for _, args := range [][]string{
		{"git", "-C", dir, "add", "init.vim"},
		{"git", "-C", dir, "commit", "-m", "Initial commit"},
	} {
		out, err := exec.Command(args[0], args[1:]...).CombinedOutput()
		require.NoError(t, err, string(out))
	}
}

func TestClone(t *testing.T) {
	requireGit(t)

	remote := t.TempDir()
	initRepo(t, remote)

	dest := filepath.Join(t.TempDir(), "nvim")
	err := NewShellClient().Clone(context.Background(), remote, dest)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dest, "init.vim"))
	require.NoError(t, err)
	assert.Equal(t, "set nu\n", string(got))
}

func TestClone_NonZeroExit(t *testing.T) {
	requireGit(t)

	missing := filepath.Join(t.TempDir(), "does-not-exist")
	dest := filepath.Join(t.TempDir(), "dest")

	err := NewShellClient().Clone(context.Background(), missing, dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git clone failed")

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}

func TestClone_BinaryMissing(t *testing.T) {
	client := NewShellClientWithBinary(filepath.Join(t.TempDir(), "no-such-git"))

	err := client.Clone(context.Background(), "https://example.invalid/x.git", t.TempDir()+"/x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git clone failed")
}
