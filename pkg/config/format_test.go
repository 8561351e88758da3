package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/configmapper/pkg/errors"
	"github.com/arthur-debert/configmapper/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var formatEntries = []types.Entry{
	{Name: "vimrc", Target: "/srv/vimrc", External: "/home/u/.vimrc"},
	{Name: "nvim", Target: "/srv/nvim", External: "/home/u/.config/nvim", Repo: "https://example.com/nvim.git"},
}

func TestEncode_TOML(t *testing.T) {
	out, err := Encode(formatEntries, FormatTOML)
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "[[item]]")
	assert.Contains(t, text, "vimrc")
	assert.Contains(t, text, "https://example.com/nvim.git")

	// the first entry has no repo, so only one repo line
	assert.Equal(t, 1, strings.Count(text, "repo = "))

	decoded, err := Decode(out)
	require.NoError(t, err)
	assert.Equal(t, formatEntries, decoded)
}

func TestEncode_YAML(t *testing.T) {
	out, err := Encode(formatEntries, FormatYAML)
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "item:")
	assert.Contains(t, text, "name: vimrc")
	assert.Contains(t, text, "external: /home/u/.config/nvim")
}

func TestEncode_YAMLReadableByLoader(t *testing.T) {
	out, err := Encode(formatEntries, FormatYAML)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "entries.yaml")
	require.NoError(t, os.WriteFile(path, out, 0644))

	loaded, err := LoadEntries(path)
	require.NoError(t, err)
	assert.Equal(t, formatEntries, loaded)
}

func TestEncode_Text(t *testing.T) {
	out, err := Encode(formatEntries, FormatText)
	require.NoError(t, err)

	assert.Equal(t, "vimrc: /home/u/.vimrc -> /srv/vimrc\n"+
		"nvim: /home/u/.config/nvim -> /srv/nvim (repo https://example.com/nvim.git)\n", string(out))
}

func TestEncode_UnknownFormat(t *testing.T) {
	_, err := Encode(formatEntries, "xml")
	assert.Error(t, err)
}

func TestDecode_RejectsUnknownKeys(t *testing.T) {
	_, err := Decode([]byte("[[item]]\nname = \"a\"\nflavor = \"x\"\n"))
	assert.Error(t, err)
}

func TestDecode_Sample(t *testing.T) {
	entries, err := Decode(SampleEntries())
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.NotEmpty(t, e.Name)
		assert.NotEmpty(t, e.Target)
		assert.NotEmpty(t, e.External)
	}
}

func TestWriteSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config_mapper.toml")

	require.NoError(t, WriteSample(path, false))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, SampleEntries(), data)

	err = WriteSample(path, false)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))

	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))
	require.NoError(t, WriteSample(path, true))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, SampleEntries(), data)
}
