package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/configmapper/pkg/errors"
	"github.com/arthur-debert/configmapper/pkg/paths"
	"github.com/arthur-debert/configmapper/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Expands(t *testing.T) {
	entries := []types.Entry{
		{Name: "vimrc", Target: "~/dotfiles/vimrc", External: "~/.vimrc"},
		{Name: "hosts", Target: "/srv/hosts/", External: "/etc/hosts"},
	}

	resolved, err := Resolve(entries, paths.NewExpander("/home/u"))
	require.NoError(t, err)
	require.Len(t, resolved, 2)

	assert.Equal(t, "/home/u/dotfiles/vimrc", resolved[0].Target)
	assert.Equal(t, "/home/u/.vimrc", resolved[0].External)
	assert.Equal(t, "/srv/hosts", resolved[1].Target)

	// input untouched
	assert.Equal(t, "~/.vimrc", entries[0].External)
}

func TestResolve_NoHome(t *testing.T) {
	t.Run("tilde used", func(t *testing.T) {
		_, err := Resolve([]types.Entry{
			{Name: "a", Target: "~/a", External: "/tmp/a"},
		}, paths.NewExpander(""))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrHomeUnresolved))
	})

	t.Run("absolute only", func(t *testing.T) {
		resolved, err := Resolve([]types.Entry{
			{Name: "a", Target: "/srv/a", External: "/tmp/a"},
		}, paths.NewExpander(""))
		require.NoError(t, err)
		assert.Len(t, resolved, 1)
	})
}

func TestResolve_Collisions(t *testing.T) {
	tests := []struct {
		name    string
		entries []types.Entry
	}{
		{
			name: "target equals external",
			entries: []types.Entry{
				{Name: "a", Target: "~/same", External: "/home/u/same"},
			},
		},
		{
			name: "shared target",
			entries: []types.Entry{
				{Name: "a", Target: "/srv/t", External: "/x/a"},
				{Name: "b", Target: "/srv/t/", External: "/x/b"},
			},
		},
		{
			name: "shared external",
			entries: []types.Entry{
				{Name: "a", Target: "/srv/a", External: "~/.rc"},
				{Name: "b", Target: "/srv/b", External: "/home/u/.rc"},
			},
		},
		{
			name: "external of one is target of another",
			entries: []types.Entry{
				{Name: "a", Target: "/srv/a", External: "/x/a"},
				{Name: "b", Target: "/x/a", External: "/x/b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.entries, paths.NewExpander("/home/u"))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrPathCollision), "error: %v", err)
		})
	}
}

func TestResolve_RelativePathsBecomeAbsolute(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	resolved, err := Resolve([]types.Entry{
		{Name: "vimrc", Target: "dotfiles/vimrc", External: "~/.vimrc"},
		{Name: "tmux", Target: "./dotfiles/../tmux.conf", External: "links/.tmux.conf"},
	}, paths.NewExpander("/home/u"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(wd, "dotfiles", "vimrc"), resolved[0].Target)
	assert.Equal(t, "/home/u/.vimrc", resolved[0].External)
	assert.Equal(t, filepath.Join(wd, "tmux.conf"), resolved[1].Target)
	assert.Equal(t, filepath.Join(wd, "links", ".tmux.conf"), resolved[1].External)
	for _, e := range resolved {
		assert.True(t, filepath.IsAbs(e.Target), e.Target)
		assert.True(t, filepath.IsAbs(e.External), e.External)
	}
}

func TestResolve_RelativeCollision(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	_, err = Resolve([]types.Entry{
		{Name: "a", Target: "shared", External: "/x/a"},
		{Name: "b", Target: filepath.Join(wd, "shared"), External: "/x/b"},
	}, paths.NewExpander("/home/u"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathCollision))
}
