package paths

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/configmapper/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	exp := NewExpander("/home/u")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare tilde", "~", "/home/u"},
		{"tilde slash", "~/.vimrc", "/home/u/.vimrc"},
		{"nested", "~/.config/nvim", "/home/u/.config/nvim"},
		{"trailing slash cleaned", "~/dotfiles/", "/home/u/dotfiles"},
		{"absolute untouched", "/etc/hosts", "/etc/hosts"},
		{"relative untouched", "dotfiles/vimrc", "dotfiles/vimrc"},
		{"other user untouched", "~bob/.vimrc", "~bob/.vimrc"},
		{"inner tilde untouched", "/tmp/~/x", "/tmp/~/x"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := exp.Expand(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpand_NoHome(t *testing.T) {
	exp := NewExpander("")

	_, err := exp.Expand("~/.vimrc")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrHomeUnresolved))

	got, err := exp.Expand("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", got)
}

func TestResolveHome(t *testing.T) {
	t.Setenv("HOME", "/custom/home")
	assert.Equal(t, "/custom/home", ResolveHome())
}

func TestSettingsPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "config-mapper", "settings.toml"), SettingsPath())
}
